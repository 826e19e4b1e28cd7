package cmd

import (
	"github.com/spf13/cobra"

	"scanspec.dev/pkg/scanspec/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [aliases...]",
		Short: "List aliases and contract examples",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Aliases: parseAliases(args)})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
