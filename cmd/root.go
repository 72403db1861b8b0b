package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vcode-cli/vcode/pkg/bootstrap"
	"github.com/vcode-cli/vcode/pkg/config"
	"github.com/vcode-cli/vcode/pkg/ui"
)

var cfgFile string
var verbose bool
var appConfig *config.Config

var (
	reuseWindow    bool
	editorOverride string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vcode [project]",
	Short: "Launch projects instantly by name",
	Long: `vcode is a quick project launcher that opens your projects in your
favorite editor by name, without navigating through directories.

Register projects once with 'vcode add' or discover them in bulk with
'vcode scan', then open any of them with 'vcode <name>'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runOpenCommand(args[0], reuseWindow, editorOverride)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pre-parse global flags so the config is loaded before cobra runs.
	cfgFile, verbose = bootstrap.PreParseGlobalFlags(os.Args)

	if err := initConfig(); err != nil {
		cobra.CheckErr(err)
	}
	ui.SetVerbose(verbose)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() {
		_ = initConfig()
	})

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "C", "", "config file (default is $HOME/.config/vcode/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().BoolVarP(&reuseWindow, "reuse", "r", false, "reuse an existing editor window")
	rootCmd.Flags().StringVarP(&editorOverride, "editor", "e", "", "editor to use (overrides default)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error
	appConfig, verbose, err = bootstrap.InitConfig(cfgFile, verbose)
	return err
}

// resetConfig clears the cached configuration.
// This is primarily used in tests to ensure each test starts with a fresh config.
func resetConfig() {
	appConfig = nil
	bootstrap.Reset()
}
