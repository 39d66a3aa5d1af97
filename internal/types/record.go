// Package types defines common types used across the application.
package types

// AddressFamily classifies an address as IPv4, IPv6, or another
// OS-reported family label passed through unchanged.
type AddressFamily string

const (
	FamilyIPv4 AddressFamily = "IPv4"
	FamilyIPv6 AddressFamily = "IPv6"
)

// OperStatus is the operational status of an interface as reported by the
// operating system. Up and Down are the filterable values; anything else
// the OS reports is carried through as its native label.
type OperStatus string

const (
	StatusUp      OperStatus = "Up"
	StatusDown    OperStatus = "Down"
	StatusUnknown OperStatus = "Unknown"
)

// UnicastAddress is a single unicast address assigned to an interface.
type UnicastAddress struct {
	Address      string        // address in string form, without prefix
	Family       AddressFamily // IPv4, IPv6, or raw OS label
	PrefixLength int           // CIDR prefix length as reported by the OS
}

// InterfaceInfo is the snapshot of one network interface returned by an
// InterfaceProvider. Gateways and DNSServers belong to the interface and
// apply to all of its addresses.
type InterfaceInfo struct {
	Name        string
	Description string
	Status      OperStatus
	Addresses   []UnicastAddress
	Gateways    []string
	DNSServers  []string
}

// IPConfigRecord is one row of the configuration report: a single
// (interface, address) pair with the interface-level fields duplicated.
// Records are constructed once and never mutated.
type IPConfigRecord struct {
	InterfaceName string        `json:"interfaceName" yaml:"interfaceName"`
	Description   string        `json:"description" yaml:"description"`
	Status        OperStatus    `json:"status" yaml:"status"`
	AddressFamily AddressFamily `json:"addressFamily" yaml:"addressFamily"`
	IPAddress     string        `json:"ipAddress" yaml:"ipAddress"`
	PrefixLength  int           `json:"prefixLength" yaml:"prefixLength"`

	// SubnetMask is set if and only if AddressFamily is IPv4. IPv6 subnet
	// extent is represented by PrefixLength alone.
	SubnetMask *string `json:"subnetMask,omitempty" yaml:"subnetMask,omitempty"`

	Gateway    string `json:"gateway" yaml:"gateway"`
	DNSServers string `json:"dnsServers" yaml:"dnsServers"`
}
