package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"scanspec.dev/pkg/scanspec/internal/domain"
	m "scanspec.dev/pkg/scanspec/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View previously saved conformance reports",
		Long:  "View conformance reports saved by a previous run in the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(cmd.Context(), domain.ViewArgs{Reports: reportsPath})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
