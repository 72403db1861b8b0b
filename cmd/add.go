package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

// addCmd registers a single project by name and path
var addCmd = &cobra.Command{
	Use:     "add <name> <path>",
	Aliases: []string{"a"},
	Short:   "Add a new project",
	Long: `Register a project under a name so it can be opened with 'vcode <name>'.

The path is canonicalized when it exists; a relative path that does not
exist yet is anchored at the current directory.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddCommand(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAddCommand(name, path string) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Add(name, resolved); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	ui.Successf("Added project %q", name)
	return nil
}
