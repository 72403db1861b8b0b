package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

// removeCmd unregisters a project
var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a project",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRemoveCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemoveCommand(name string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Remove(name); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	ui.Successf("Removed project %q", name)
	return nil
}
