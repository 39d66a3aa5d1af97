// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"github.com/vishvananda/netlink"
)

//go:generate mockgen -destination=../mock/network.go -package=mock golang-ipconfig/internal/port NetworkManager,FileManager

// NetworkManager is a port for network interface queries.
// This interface abstracts the netlink read operations the provider needs.
type NetworkManager interface {
	// ListLinks returns all network links on the host
	ListLinks() ([]netlink.Link, error)

	// ListAddresses returns addresses of the given family configured on the link
	ListAddresses(link netlink.Link, family int) ([]netlink.Addr, error)

	// ListRoutes returns routes of the given family
	ListRoutes(family int) ([]netlink.Route, error)
}

// FileManager is a port for file system reads.
// The provider uses it to read resolver configuration.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// FileExists checks if a file exists
	FileExists(filename string) bool
}
