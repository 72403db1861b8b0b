package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vcode-cli/vcode/pkg/editor"
	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/registry"
	"github.com/vcode-cli/vcode/pkg/ui"
)

var (
	listJSON        bool
	listInteractive bool
)

// listCmd prints all registered projects
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListCommand(listJSON, listInteractive)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "select a project to open")
}

func runListCommand(asJSON, interactive bool) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	projects, err := store.List()
	if err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	if asJSON {
		byName := make(map[string]string, len(projects))
		for _, p := range projects {
			byName[p.Name] = p.Path
		}
		data, err := json.MarshalIndent(byName, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode projects")
		}
		fmt.Println(string(data))
		return nil
	}

	if len(projects) == 0 {
		ui.Infof("no projects found; add one with: vcode add <name> <path>")
		return nil
	}

	if interactive {
		selected, err := ui.SelectProject(projects)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				ui.Infof("selection cancelled")
				return nil
			}
			return err
		}
		if err := editor.Open(appConfig, appConfig.DefaultEditor, selected.Path, false); err != nil {
			fmt.Println(vcerrors.FormatUserError(err))
			return err
		}
		ui.Successf("Opening %q in %s", selected.Name, appConfig.DefaultEditor)
		return nil
	}

	printProjectPages(projects)
	return nil
}

// printProjectPages renders the project table, paging on interactive
// terminals when the list is long.
func printProjectPages(projects []registry.Project) {
	if len(projects) <= ui.PageSize || !ui.IsInteractive() {
		fmt.Println()
		fmt.Print(ui.RenderProjects(projects, 0))
		fmt.Printf("\nTotal: %d project%s\n", len(projects), pluralize(len(projects)))
		return
	}

	reader := bufio.NewReader(os.Stdin)
	totalPages := (len(projects) + ui.PageSize - 1) / ui.PageSize

	for page := 0; page < totalPages; page++ {
		start := page * ui.PageSize
		end := min(start+ui.PageSize, len(projects))

		fmt.Println()
		fmt.Print(ui.RenderProjects(projects[start:end], start))
		fmt.Printf("\nPage %d/%d | Total: %d\n", page+1, totalPages, len(projects))

		if page == totalPages-1 {
			break
		}
		fmt.Print("Press Enter for next page, q to quit: ")
		line, err := reader.ReadString('\n')
		if err != nil || strings.TrimSpace(line) == "q" {
			break
		}
	}
}
