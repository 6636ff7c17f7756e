package cmd

import (
	"fmt"

	"wifi-toggle/internal/pkg/version"

	"github.com/spf13/cobra"
)

var shortVersion bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and git info",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetGitInfo()
		out := cmd.OutOrStdout()
		if shortVersion {
			fmt.Fprintln(out, info.Tag)
			return
		}
		fmt.Fprintf(out, "wifi-toggle %s\nBranch: %s\nCommit: %s\nDirty: %v\n", info.Tag, info.Branch, info.Commit, info.Dirty)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "Print only the release tag")
	rootCmd.AddCommand(versionCmd)
}
