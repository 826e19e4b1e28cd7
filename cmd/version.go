package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	"scanspec.dev/pkg/scanspec/pkg/strscan"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the build version, the Go version and the size of the bundled peek contract.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("contract\t %d examples, %d aliases\n", len(strscan.PeekContract()), len(strscan.Aliases()))

			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("scanspec version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
