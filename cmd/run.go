package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanspec.dev/pkg/scanspec/internal/domain"
	m "scanspec.dev/pkg/scanspec/internal/model"
)

var runParallelFlag int
var noSaveFlag bool

// runCmd represents the run command. It is built in init, after the config
// defaults are registered, so its flag defaults come from viper.
var runCmd *cobra.Command

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [aliases...]",
		Short: "Check aliases against the peek contract",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), domain.RunArgs{
				Aliases: parseAliases(args),
				Reports: m.Path(viper.GetString(outputFlagName)),
				Threads: viper.GetInt(runParallelConfigKey),
				NoSave:  viper.GetBool(noSaveFlagName),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	runCmd = newRunCmd()
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of aliases checked in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVar(&noSaveFlag, noSaveFlagName, viper.GetBool(noSaveFlagName), "do not write reports to the output directory")
	bindFlagToConfig(cmd.Flags().Lookup(noSaveFlagName), noSaveFlagName)
}
