// Package netmask converts CIDR prefix lengths into dotted-decimal
// IPv4 subnet masks.
package netmask

import (
	"fmt"
)

// FromPrefix converts a CIDR prefix length into a dotted-decimal subnet
// mask string. The second return value is false when prefix is outside
// [0, 32]; that is the expected outcome for invalid or non-IPv4 input,
// not an error. Callers use it to distinguish "no mask" from "0.0.0.0".
func FromPrefix(prefix int) (string, bool) {
	if prefix < 0 || prefix > 32 {
		return "", false
	}

	var octets [4]uint8
	for i := 0; i < 4; i++ {
		bits := prefix - 8*i
		switch {
		case bits <= 0:
			octets[i] = 0
		case bits >= 8:
			octets[i] = 255
		default:
			octets[i] = uint8(0xFF << (8 - bits) & 0xFF)
		}
	}

	return fmt.Sprintf("%d.%d.%d.%d", octets[0], octets[1], octets[2], octets[3]), true
}
