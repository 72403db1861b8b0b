package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

// renameCmd changes a project's registered name
var renameCmd = &cobra.Command{
	Use:     "rename <old-name> <new-name>",
	Aliases: []string{"mv"},
	Short:   "Rename a project",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRenameCommand(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRenameCommand(oldName, newName string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Rename(oldName, newName); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	ui.Successf("Renamed %q to %q", oldName, newName)
	return nil
}
