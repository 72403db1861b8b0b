package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

var clearYes bool

// clearCmd wipes the project registry
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClearCommand(clearYes)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation")
}

func runClearCommand(yes bool) error {
	if !yes {
		fmt.Print("Are you sure you want to clear all projects? [y/N]: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(line)) != "y" {
			ui.Infof("cancelled")
			return nil
		}
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	ui.Successf("All projects cleared")
	return nil
}
