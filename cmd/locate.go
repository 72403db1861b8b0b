package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vcode-cli/vcode/pkg/discovery"
	"github.com/vcode-cli/vcode/pkg/ui"
)

// locateCmd searches the home tree for directories by exact name
var locateCmd = &cobra.Command{
	Use:   "locate <name>",
	Short: "Find directories under your home by name",
	Long: `Search your home directory tree for directories whose name matches,
case-insensitively. Matches closer to home are listed first; at most 20
results are shown. Hidden directories and build artifacts are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLocateCommand(args[0])
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocateCommand(name string) error {
	matches, err := discovery.SearchByName(name)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		ui.Infof("no directories named %q found", name)
		return nil
	}

	suffix := "es"
	if len(matches) == 1 {
		suffix = ""
	}
	ui.Infof("%d match%s for %q:", len(matches), suffix, name)
	fmt.Print(ui.RenderMatches(matches))
	return nil
}
