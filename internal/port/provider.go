// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"golang-ipconfig/internal/types"
)

//go:generate mockgen -destination=../mock/provider.go -package=mock golang-ipconfig/internal/port InterfaceProvider

// InterfaceProvider is the port for obtaining the host's network interface
// snapshot: per interface its name, description, operational status,
// unicast addresses with family and prefix length, gateway addresses, and
// DNS server addresses. Every call returns a fresh snapshot; the core
// makes no assumption about how the data is obtained.
type InterfaceProvider interface {
	// Interfaces returns all interfaces on the host in OS-reported order.
	// A failure here is not recoverable by callers and is propagated as is.
	Interfaces(ctx context.Context) ([]types.InterfaceInfo, error)
}
