//go:build unit

package netmask

import (
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPrefix_KnownValues(t *testing.T) {
	tests := []struct {
		prefix int
		want   string
	}{
		{0, "0.0.0.0"},
		{1, "128.0.0.0"},
		{8, "255.0.0.0"},
		{9, "255.128.0.0"},
		{16, "255.255.0.0"},
		{19, "255.255.224.0"},
		{24, "255.255.255.0"},
		{30, "255.255.255.252"},
		{31, "255.255.255.254"},
		{32, "255.255.255.255"},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.prefix), func(t *testing.T) {
			mask, ok := FromPrefix(tt.prefix)
			assert.True(t, ok)
			assert.Equal(t, tt.want, mask)
		})
	}
}

func TestFromPrefix_OutOfRange(t *testing.T) {
	for _, prefix := range []int{-1, 33, -100, 255} {
		t.Run(strconv.Itoa(prefix), func(t *testing.T) {
			mask, ok := FromPrefix(prefix)
			assert.False(t, ok)
			assert.Empty(t, mask)
		})
	}
}

func TestFromPrefix_AllValidPrefixes(t *testing.T) {
	for prefix := 0; prefix <= 32; prefix++ {
		mask, ok := FromPrefix(prefix)
		require.True(t, ok, "prefix %d", prefix)

		octets := strings.Split(mask, ".")
		require.Len(t, octets, 4, "prefix %d", prefix)
		for _, octet := range octets {
			n, err := strconv.Atoi(octet)
			require.NoError(t, err, "prefix %d", prefix)
			assert.GreaterOrEqual(t, n, 0)
			assert.LessOrEqual(t, n, 255)
		}
	}
}

func TestFromPrefix_MatchesStdlibCIDRMask(t *testing.T) {
	// Independent formulation of the same conversion; both must agree for
	// every valid prefix.
	for prefix := 0; prefix <= 32; prefix++ {
		mask, ok := FromPrefix(prefix)
		require.True(t, ok)
		assert.Equal(t, net.IP(net.CIDRMask(prefix, 32)).String(), mask, "prefix %d", prefix)
	}
}

func TestFromPrefix_Monotonic(t *testing.T) {
	prev := uint32(0)
	for prefix := 0; prefix <= 32; prefix++ {
		mask, ok := FromPrefix(prefix)
		require.True(t, ok)

		value := maskValue(t, mask)
		if prefix > 0 {
			assert.GreaterOrEqual(t, value, prev, "prefix %d", prefix)
		}
		prev = value
	}
}

func maskValue(t *testing.T, mask string) uint32 {
	t.Helper()
	var value uint32
	for _, octet := range strings.Split(mask, ".") {
		n, err := strconv.Atoi(octet)
		require.NoError(t, err)
		value = value<<8 | uint32(n)
	}
	return value
}
