package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/vcode-cli/vcode/pkg/discovery"
	vcerrors "github.com/vcode-cli/vcode/pkg/errors"
	"github.com/vcode-cli/vcode/pkg/ui"
)

var (
	scanDepth    int
	scanFilter   string
	scanNoReview bool
)

// scanCmd discovers projects on disk and registers them in bulk
var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory for projects",
	Long: `Scan a directory tree for projects and register the ones you select.

Directories exactly at the target depth are evaluated: with the default
'auto' filter only directories with a recognized project marker are
reported, while 'all' reports every directory at that depth. Build
artifact and VCS directories are always skipped.

Examples:
  vcode scan                      # scan the configured projects root
  vcode scan ~/src --depth 2      # evaluate grandchildren of ~/src
  vcode scan --filter all         # include unrecognized directories
  vcode scan --no-review          # register everything without asking`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := ""
		if len(args) > 0 {
			base = args[0]
		}
		return runScanCommand(base, scanDepth, scanFilter, scanNoReview)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntVarP(&scanDepth, "depth", "d", 0, "depth to scan (default from config)")
	scanCmd.Flags().StringVarP(&scanFilter, "filter", "f", "", "filter mode: auto or all (default from config)")
	scanCmd.Flags().BoolVar(&scanNoReview, "no-review", false, "skip interactive review and add all found projects")
}

func runScanCommand(base string, depth int, filter string, noReview bool) error {
	if base == "" {
		base = appConfig.ProjectsRoot
	}
	resolved, err := resolvePath(base)
	if err != nil {
		return err
	}

	if depth == 0 {
		depth = appConfig.Scan.DefaultDepth
	}
	if filter == "" {
		filter = appConfig.Scan.DefaultFilter
	}
	mode, ok := discovery.ParseFilterMode(filter)
	if !ok {
		return errors.Newf("invalid filter mode %q: use 'auto' or 'all'", filter)
	}

	ui.Infof("scanning %s at depth %d (filter: %s)", resolved, depth, filter)

	found, err := discovery.Scan(resolved, depth, mode)
	if err != nil {
		fmt.Println(vcerrors.FormatUserError(err))
		return err
	}

	if len(found) == 0 {
		ui.Infof("no projects found")
		return nil
	}
	ui.Successf("Found %d project%s", len(found), pluralize(len(found)))

	toAdd := found
	if noReview {
		fmt.Println()
		fmt.Print(ui.RenderFound(found))
	} else {
		selected, err := ui.SelectFoundProjects(found)
		if err != nil {
			if errors.Is(err, ui.ErrCancelled) {
				ui.Infof("scan cancelled")
				return nil
			}
			return err
		}
		toAdd = selected
	}

	if len(toAdd) == 0 {
		ui.Infof("no projects selected")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	added, failures := store.AddFound(toAdd)
	for _, f := range failures {
		ui.Warnf("%v", f)
	}
	ui.Successf("Added %d project%s", added, pluralize(added))
	return nil
}
