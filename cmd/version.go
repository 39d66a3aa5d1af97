package cmd

import (
	"fmt"

	"golang-ipconfig/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build info",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Get()
		fmt.Printf("Version: %s\nCommit: %s\nDate: %s\n", info.Version, info.Commit, info.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
