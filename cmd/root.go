// Package cmd provides the root command and CLI setup for scanspec.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"scanspec.dev/pkg/scanspec/internal/adapter"
	"scanspec.dev/pkg/scanspec/internal/controller"
	"scanspec.dev/pkg/scanspec/internal/domain"
	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

var fsAdapter adapter.FSAdapter
var reportStore adapter.ReportStore
var runner domain.Runner
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// logFileFlag overrides log.filename.
var logFileFlag string

// verboseFlag switches logging to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalFSAdapter()
	reportStore = adapter.NewReportStore(fsAdapter)
	runner = domain.NewRunner(strscan.PeekContract())
	workflow = domain.NewWorkflow(
		reportStore,
		ui,
		runner,
		strscan.Aliases(),
		strscan.PeekContract(),
	)
}

const aliasesHelp = `Aliases are the names peek is reachable under:
  - peek    Scanner.Peek
  - peep    Scanner.Peep (deprecated alias)`

const rootLongDescription = `scanspec checks string scanner peek operations against a shared contract:
peek returns up to N bytes from the current position without moving it, and
rejects negative, oversized and non-integer arguments with distinct errors.

` + aliasesHelp

const runLongDescription = `Run the peek contract against the given aliases (default: all).

` + aliasesHelp

const listLongDescription = `List the aliases and the contract examples they are checked against.

` + aliasesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "scanspec",
		Short:        "Peek contract conformance tool",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for conformance reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default from log.filename)")

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseAliases returns the aliases named on the command line, falling back
// to run.aliases from the configuration.
func parseAliases(args []string) []string {
	if len(args) > 0 {
		return args
	}

	return viper.GetStringSlice(aliasesConfigKey)
}
