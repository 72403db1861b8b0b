package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

// searchCmd filters the registry by name or path substring
var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Aliases: []string{"find"},
	Short:   "Search projects by name or path",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSearchCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearchCommand(query string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	matched, err := store.Search(query)
	if err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	if len(matched) == 0 {
		ui.Infof("no projects found matching %q", query)
		return nil
	}

	ui.Infof("projects matching %q:", query)
	fmt.Println()
	fmt.Print(ui.RenderProjects(matched, 0))
	return nil
}
