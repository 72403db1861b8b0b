package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcode-cli/vcode/pkg/discovery"
	"github.com/vcode-cli/vcode/pkg/registry"
)

// PageSize is the number of rows shown per page in project listings.
const PageSize = 20

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	indexStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	nameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	typeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RenderProjects renders registered projects as an aligned table.
// start is the zero-based index of the first row, used for numbering
// across pages.
func RenderProjects(projects []registry.Project, start int) string {
	nameW := len("Name")
	for _, p := range projects {
		if w := lipgloss.Width(p.Name); w > nameW {
			nameW = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s  %s\n",
		headerStyle.Render(pad("#", 4)),
		headerStyle.Render(pad("Name", nameW)),
		headerStyle.Render("Path"))

	for i, p := range projects {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			indexStyle.Render(pad(fmt.Sprintf("%d", start+i+1), 4)),
			nameStyle.Render(pad(p.Name, nameW)),
			p.Path)
	}
	return b.String()
}

// RenderFound renders scan results with their detected project type.
func RenderFound(found []discovery.FoundProject) string {
	nameW, typeW := len("Name"), len("Type")
	for _, p := range found {
		if w := lipgloss.Width(p.Name); w > nameW {
			nameW = w
		}
		if w := lipgloss.Width(p.Type.Display()); w > typeW {
			typeW = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s  %s\n",
		headerStyle.Render(pad("Name", nameW)),
		headerStyle.Render(pad("Type", typeW)),
		headerStyle.Render("Path"))

	for _, p := range found {
		fmt.Fprintf(&b, "  %s  %s  %s\n",
			nameStyle.Render(pad(p.Name, nameW)),
			typeStyle.Render(pad(p.Type.Display(), typeW)),
			p.Path)
	}
	return b.String()
}

// RenderMatches renders directory matches from a name search.
func RenderMatches(matches []discovery.DirectoryMatch) string {
	var b strings.Builder
	for i, m := range matches {
		fmt.Fprintf(&b, "  %s  %s\n",
			indexStyle.Render(pad(fmt.Sprintf("%d", i+1), 4)),
			m.Path)
	}
	return b.String()
}

// pad right-pads s to width terminal cells, not bytes.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
