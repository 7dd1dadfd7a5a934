package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/ubiq/internal/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show ubiq version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildinfo.Read()
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "ubiq %s\n", info.Version)
		fmt.Fprintf(out, "module: %s\n", info.ModulePath)
		if info.Commit != "" {
			fmt.Fprintf(out, "commit: %s\n", info.Commit)
		}
		if info.CommitTime != "" {
			fmt.Fprintf(out, "commit_time: %s\n", info.CommitTime)
		}
		fmt.Fprintf(out, "go: %s\n", info.GoVersion)
		fmt.Fprintf(out, "platform: %s\n", info.Platform)
		_, err := fmt.Fprintf(out, "modified: %t\n", info.Modified)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
