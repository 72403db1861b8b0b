package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vcode-cli/vcode/pkg/config"
	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

var (
	configShow         bool
	configProjectsRoot string
	configEditor       string
)

// configCmd shows or updates persisted configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update configuration",
	Long: `View the loaded configuration, or persist new values for the projects
root and the default editor.

Examples:
  vcode config --show
  vcode config --projects-root ~/src
  vcode config --editor nvim`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// With no setter flags passed this behaves like --show.
		setter := false
		cmd.Flags().Visit(func(f *pflag.Flag) {
			if f.Name != "show" {
				setter = true
			}
		})
		return runConfigCommand(configShow || !setter, configProjectsRoot, configEditor)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolVar(&configShow, "show", false, "show current configuration")
	configCmd.Flags().StringVar(&configProjectsRoot, "projects-root", "", "set the projects root directory")
	configCmd.Flags().StringVar(&configEditor, "editor", "", "set the default editor")
}

func runConfigCommand(show bool, projectsRoot, editorName string) error {
	if show || (projectsRoot == "" && editorName == "") {
		ui.Infof("configuration:")
		fmt.Printf("\n  Editor:        %s\n", appConfig.DefaultEditor)
		fmt.Printf("  Projects Root: %s\n", appConfig.ProjectsRoot)
		fmt.Printf("  Registry:      %s\n\n", appConfig.Registry.DatabasePath)
		return nil
	}

	updated := *appConfig
	if projectsRoot != "" {
		resolved, err := resolvePath(projectsRoot)
		if err != nil {
			return err
		}
		updated.ProjectsRoot = resolved
	}
	if editorName != "" {
		updated.DefaultEditor = editorName
	}

	if err := updated.Validate(); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	if err := config.Save(&updated); err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	ui.Successf("Configuration updated")
	return nil
}
