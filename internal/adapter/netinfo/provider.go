// Package netinfo implements the InterfaceProvider port on top of the
// NetworkManager and FileManager infrastructure ports. It assembles the
// per-interface snapshot (addresses, gateways, DNS) from live host state.
package netinfo

import (
	"context"
	"fmt"
	"strings"

	"golang-ipconfig/internal/pkg/logging"
	"golang-ipconfig/internal/port"
	"golang-ipconfig/internal/types"

	"github.com/vishvananda/netlink"
)

// DefaultResolvConf is the resolver configuration consulted for DNS
// server addresses when no other path is configured.
const DefaultResolvConf = "/etc/resolv.conf"

// Provider implements the InterfaceProvider port using netlink queries
// and the host resolver configuration.
type Provider struct {
	networkMgr port.NetworkManager
	fileMgr    port.FileManager
	resolvConf string
}

// Ensure Provider implements the InterfaceProvider port
var _ port.InterfaceProvider = (*Provider)(nil)

// NewProvider creates an interface provider. resolvConf may be empty to
// use DefaultResolvConf.
func NewProvider(networkMgr port.NetworkManager, fileMgr port.FileManager, resolvConf string) *Provider {
	if resolvConf == "" {
		resolvConf = DefaultResolvConf
	}
	return &Provider{
		networkMgr: networkMgr,
		fileMgr:    fileMgr,
		resolvConf: resolvConf,
	}
}

// Interfaces returns a fresh snapshot of all host interfaces in the order
// netlink reports them.
func (p *Provider) Interfaces(ctx context.Context) ([]types.InterfaceInfo, error) {
	links, err := p.networkMgr.ListLinks()
	if err != nil {
		return nil, fmt.Errorf("failed to list network links: %w", err)
	}

	// Routes are fetched once per snapshot and matched to links by index.
	routes4, err := p.networkMgr.ListRoutes(netlink.FAMILY_V4)
	if err != nil {
		return nil, fmt.Errorf("failed to list IPv4 routes: %w", err)
	}
	routes6, err := p.networkMgr.ListRoutes(netlink.FAMILY_V6)
	if err != nil {
		return nil, fmt.Errorf("failed to list IPv6 routes: %w", err)
	}

	// Linux keeps DNS configuration host-wide, so the same server list is
	// attached to every interface.
	dnsServers := p.readDNSServers()

	var ifaces []types.InterfaceInfo
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attrs := link.Attrs()

		addrs, err := p.collectAddresses(link)
		if err != nil {
			return nil, err
		}

		ifaces = append(ifaces, types.InterfaceInfo{
			Name:        attrs.Name,
			Description: describeLink(link),
			Status:      statusFromOper(attrs.OperState),
			Addresses:   addrs,
			Gateways:    gatewaysForLink(attrs.Index, routes4, routes6),
			DNSServers:  dnsServers,
		})
	}

	return ifaces, nil
}

// collectAddresses returns the link's unicast addresses, IPv4 first then
// IPv6, each in netlink order.
func (p *Provider) collectAddresses(link netlink.Link) ([]types.UnicastAddress, error) {
	var out []types.UnicastAddress

	for _, family := range []int{netlink.FAMILY_V4, netlink.FAMILY_V6} {
		addrs, err := p.networkMgr.ListAddresses(link, family)
		if err != nil {
			return nil, fmt.Errorf("failed to list addresses on %s: %w", link.Attrs().Name, err)
		}

		for _, addr := range addrs {
			prefixLen, _ := addr.IPNet.Mask.Size()
			out = append(out, types.UnicastAddress{
				Address:      addr.IPNet.IP.String(),
				Family:       familyOf(addr),
				PrefixLength: prefixLen,
			})
		}
	}

	return out, nil
}

// readDNSServers parses nameserver entries from the resolver configuration.
// A missing or unreadable file yields an empty list, not an error.
func (p *Provider) readDNSServers() []string {
	logger := logging.WithComponent("netinfo")

	if !p.fileMgr.FileExists(p.resolvConf) {
		logger.WithField("path", p.resolvConf).Debug("Resolver configuration not found")
		return nil
	}

	data, err := p.fileMgr.ReadFile(p.resolvConf)
	if err != nil {
		logger.WithError(err).WithField("path", p.resolvConf).Warn("Failed to read resolver configuration")
		return nil
	}

	var servers []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[0] == "nameserver" {
			servers = append(servers, fields[1])
		}
	}

	return servers
}

// gatewaysForLink returns the gateway addresses of default routes bound to
// the given link index, IPv4 routes before IPv6 routes.
func gatewaysForLink(linkIndex int, routeSets ...[]netlink.Route) []string {
	var gateways []string
	for _, routes := range routeSets {
		for _, route := range routes {
			if route.LinkIndex != linkIndex || route.Gw == nil {
				continue
			}
			if !isDefaultRoute(route) {
				continue
			}
			gateways = append(gateways, route.Gw.String())
		}
	}
	return gateways
}

// isDefaultRoute reports whether the route destination covers all
// addresses (nil destination or a /0 prefix).
func isDefaultRoute(route netlink.Route) bool {
	if route.Dst == nil {
		return true
	}
	ones, _ := route.Dst.Mask.Size()
	return ones == 0
}

// familyOf classifies a netlink address as IPv4 or IPv6.
func familyOf(addr netlink.Addr) types.AddressFamily {
	if addr.IPNet.IP.To4() != nil {
		return types.FamilyIPv4
	}
	return types.FamilyIPv6
}

// statusFromOper maps the netlink operational state onto the report's
// status labels. States other than up/down/unknown pass through with
// their native netlink label.
func statusFromOper(state netlink.LinkOperState) types.OperStatus {
	switch state {
	case netlink.OperUp:
		return types.StatusUp
	case netlink.OperDown:
		return types.StatusDown
	case netlink.OperUnknown:
		return types.StatusUnknown
	default:
		return types.OperStatus(state.String())
	}
}

// describeLink produces a human-readable interface description: the
// configured alias when present, otherwise the link kind.
func describeLink(link netlink.Link) string {
	if alias := link.Attrs().Alias; alias != "" {
		return alias
	}
	return link.Type() + " interface"
}
