// Package report provides the configuration report adapter. It turns the
// raw interface snapshot from an InterfaceProvider into normalized
// per-address IPConfigRecord values.
package report

import (
	"context"
	"fmt"
	"strings"

	"golang-ipconfig/internal/pkg/logging"
	"golang-ipconfig/internal/pkg/netmask"
	"golang-ipconfig/internal/port"
	"golang-ipconfig/internal/types"
)

// Filter selects which interfaces and addresses are reported.
// Zero values mean "no filtering on that dimension".
type Filter struct {
	Status types.OperStatus    // retain only interfaces with this exact status
	Family types.AddressFamily // retain only addresses of this family
}

// Enumerator produces IP configuration records from an interface provider.
// Each Enumerate call reads a fresh snapshot; nothing is cached between
// calls and there is no shared mutable state.
type Enumerator struct {
	provider port.InterfaceProvider
}

// NewEnumerator creates an enumerator backed by the given provider.
func NewEnumerator(provider port.InterfaceProvider) *Enumerator {
	return &Enumerator{provider: provider}
}

// Enumerate returns one record per (interface, unicast address) pair that
// passes the filter. Interfaces and addresses keep the provider's order;
// no deduplication is performed. A provider failure propagates to the
// caller unrecovered. The context only aborts the loop early, there are
// no partial side effects to undo.
func (e *Enumerator) Enumerate(ctx context.Context, filter Filter) ([]types.IPConfigRecord, error) {
	logger := logging.WithComponent("report")

	ifaces, err := e.provider.Interfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to query interfaces: %w", err)
	}

	logger.WithField("interface_count", len(ifaces)).Debug("Enumerating interface configuration")

	var records []types.IPConfigRecord
	for _, iface := range ifaces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if filter.Status != "" && iface.Status != filter.Status {
			continue
		}

		// Gateway and DNS belong to the interface and repeat on every
		// address record it yields.
		gateway := strings.Join(iface.Gateways, ",")
		dnsServers := strings.Join(iface.DNSServers, ",")

		for _, addr := range iface.Addresses {
			if filter.Family != "" && addr.Family != filter.Family {
				continue
			}

			record := types.IPConfigRecord{
				InterfaceName: iface.Name,
				Description:   iface.Description,
				Status:        iface.Status,
				AddressFamily: addr.Family,
				IPAddress:     addr.Address,
				PrefixLength:  addr.PrefixLength,
				Gateway:       gateway,
				DNSServers:    dnsServers,
			}

			// SubnetMask is materialized for IPv4 only; IPv6 extent stays
			// a prefix length.
			if addr.Family == types.FamilyIPv4 {
				if mask, ok := netmask.FromPrefix(addr.PrefixLength); ok {
					record.SubnetMask = &mask
				}
			}

			records = append(records, record)
		}
	}

	return records, nil
}
