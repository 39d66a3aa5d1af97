package cmd

import (
	"fmt"
	"strconv"

	"golang-ipconfig/internal/pkg/netmask"

	"github.com/spf13/cobra"
)

var maskCmd = &cobra.Command{
	Use:   "mask <prefix>",
	Short: "Convert a CIDR prefix length to a dotted-decimal subnet mask",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid prefix %q: must be an integer", args[0])
		}

		mask, ok := netmask.FromPrefix(prefix)
		if !ok {
			// Out of range yields an absent result, not a failure
			fmt.Fprintf(cmd.ErrOrStderr(), "no mask for prefix %d: valid range is 0-32\n", prefix)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), mask)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(maskCmd)
}
