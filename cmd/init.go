package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default scanspec.yaml configuration file",
		Long: `Create a scanspec.yaml in the current working directory populated with the
current CLI defaults (reports directory, parallelism, aliases, logging) so it
can be edited manually.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if force {
				write = viper.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing configuration file")

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
