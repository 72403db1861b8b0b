package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/vcode-cli/vcode/pkg/discovery"
	"github.com/vcode-cli/vcode/pkg/registry"
)

var (
	// ErrCancelled is returned when the user cancels the selection
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoProjects is returned when there are no projects to select from
	ErrNoProjects = errors.New("no projects found")
)

// SelectProject prompts the user to select a registered project using fzf
func SelectProject(projects []registry.Project) (*registry.Project, error) {
	if len(projects) == 0 {
		return nil, ErrNoProjects
	}

	var input bytes.Buffer
	for _, p := range projects {
		input.WriteString(fmt.Sprintf("%s\t%s\n", p.Name, p.Path))
	}

	lines, err := runFzf(&input, false)
	if err != nil {
		return nil, err
	}

	selectedPath := pathField(lines[0])
	for _, p := range projects {
		if p.Path == selectedPath {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("selected project path %q not found in original list", selectedPath)
}

// SelectFoundProjects prompts the user to review scan results with an
// fzf multi-select. Everything starts selected; the user deselects
// what they do not want registered.
func SelectFoundProjects(found []discovery.FoundProject) ([]discovery.FoundProject, error) {
	if len(found) == 0 {
		return nil, nil
	}

	byPath := make(map[string]discovery.FoundProject, len(found))
	var input bytes.Buffer
	for _, p := range found {
		byPath[p.Path] = p
		input.WriteString(fmt.Sprintf("%s\t%s\n", p.DisplayName(), p.Path))
	}

	lines, err := runFzf(&input, true)
	if err != nil {
		return nil, err
	}

	var selected []discovery.FoundProject
	for _, line := range lines {
		if p, ok := byPath[pathField(line)]; ok {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// runFzf feeds input to fzf and returns the selected lines.
func runFzf(input *bytes.Buffer, multi bool) ([]string, error) {
	// Check if fzf is installed
	fzfPath, err := exec.LookPath("fzf")
	if err != nil {
		return nil, fmt.Errorf("fzf not found in PATH: %w", err)
	}

	// --height=40%: Match typical fzf behavior
	// --layout=reverse: Top-down list
	// --delimiter=\t: Use tab as delimiter
	// --with-nth=1,2: Display and search both name and path
	// #nosec G204 - fzf binary is looked up in PATH, no user-controlled arguments are passed directly
	args := []string{
		"--height=40%",
		"--layout=reverse",
		"--delimiter=\t",
		"--with-nth=1,2",
		"--cycle",
	}
	if multi {
		// Start with everything selected; Tab toggles entries off.
		args = append(args, "--multi", "--bind", "load:select-all")
	}

	cmd := exec.Command(fzfPath, args...)
	cmd.Stdin = input
	cmd.Stderr = os.Stderr // fzf uses stderr for UI rendering
	var output bytes.Buffer
	cmd.Stdout = &output

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// fzf returns 130 on cancellation (ESC, Ctrl-C, Ctrl-G)
			if exitErr.ExitCode() == 130 {
				return nil, ErrCancelled
			}
		}
		return nil, fmt.Errorf("fzf failed: %w", err)
	}

	raw := strings.TrimSpace(output.String())
	if raw == "" {
		return nil, ErrCancelled
	}
	return strings.Split(raw, "\n"), nil
}

// pathField extracts the path column from an fzf output line.
func pathField(line string) string {
	parts := strings.Split(line, "\t")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
