package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "golang-ipconfig",
	Short: "golang-ipconfig reports per-address IP configuration for host network interfaces",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
