package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang-ipconfig/internal/adapter/infrastructure/file"
	"golang-ipconfig/internal/adapter/infrastructure/network"
	"golang-ipconfig/internal/adapter/netinfo"
	"golang-ipconfig/internal/adapter/report"
	"golang-ipconfig/internal/pkg/config"
	"golang-ipconfig/internal/pkg/logging"
	"golang-ipconfig/internal/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	configFlag string
	statusFlag string
	familyFlag string
	outputFlag string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Report address, mask, gateway and DNS for every interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if outputFlag != "" {
			cfg.Output.Format = outputFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logging.InitLogger(cfg.Logging)

		// Filters are validated here, before the core runs
		filter, err := buildFilter(statusFlag, familyFlag)
		if err != nil {
			return err
		}

		provider := netinfo.NewProvider(network.NewManagerAdapter(), file.NewManagerAdapter(), cfg.Output.ResolvConf)
		enumerator := report.NewEnumerator(provider)

		records, err := enumerator.Enumerate(cmd.Context(), filter)
		if err != nil {
			logging.WithComponent("cmd").WithError(err).Error("Failed to enumerate interface configuration")
			return err
		}

		return render(cmd.OutOrStdout(), cfg.Output.Format, records)
	},
}

// buildFilter maps the flag values onto an enumeration filter, rejecting
// anything outside the two accepted values per dimension.
func buildFilter(status, family string) (report.Filter, error) {
	var filter report.Filter

	switch strings.ToLower(status) {
	case "":
	case "up":
		filter.Status = types.StatusUp
	case "down":
		filter.Status = types.StatusDown
	default:
		return report.Filter{}, fmt.Errorf("invalid status filter %q: must be 'up' or 'down'", status)
	}

	switch strings.ToLower(family) {
	case "":
	case "ipv4":
		filter.Family = types.FamilyIPv4
	case "ipv6":
		filter.Family = types.FamilyIPv6
	default:
		return report.Filter{}, fmt.Errorf("invalid family filter %q: must be 'ipv4' or 'ipv6'", family)
	}

	return filter, nil
}

func render(w io.Writer, format string, records []types.IPConfigRecord) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case config.FormatYAML:
		return yaml.NewEncoder(w).Encode(records)
	default:
		return renderTable(w, records)
	}
}

func renderTable(w io.Writer, records []types.IPConfigRecord) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INTERFACE\tSTATUS\tFAMILY\tADDRESS\tPREFIX\tMASK\tGATEWAY\tDNS")
	for _, r := range records {
		mask := "-"
		if r.SubnetMask != nil {
			mask = *r.SubnetMask
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.InterfaceName, r.Status, r.AddressFamily, r.IPAddress,
			strconv.Itoa(r.PrefixLength), mask, r.Gateway, r.DNSServers)
	}
	return tw.Flush()
}

func init() {
	showCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	showCmd.Flags().StringVar(&statusFlag, "status", "", "Filter interfaces by operational status (up|down)")
	showCmd.Flags().StringVar(&familyFlag, "family", "", "Filter addresses by family (ipv4|ipv6)")
	showCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output format (table|json|yaml)")
	rootCmd.AddCommand(showCmd)
}
