//go:build unit

package netinfo

import (
	"context"
	"net"
	"testing"

	"golang-ipconfig/internal/mock"
	"golang-ipconfig/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

const testResolvConf = "/etc/resolv.conf"

func addr(cidr string) netlink.Addr {
	ip, ipNet, _ := net.ParseCIDR(cidr)
	ipNet.IP = ip
	return netlink.Addr{IPNet: ipNet}
}

func TestProvider_Interfaces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)

	eth0 := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 2, Name: "eth0", Alias: "uplink", OperState: netlink.OperUp}}
	lo := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo", OperState: netlink.OperUnknown}}

	networkMgr.EXPECT().ListLinks().Return([]netlink.Link{eth0, lo}, nil)
	networkMgr.EXPECT().ListRoutes(netlink.FAMILY_V4).Return([]netlink.Route{
		// default route on eth0
		{LinkIndex: 2, Gw: net.ParseIP("192.168.1.1")},
		// connected route, not a default, must be ignored
		{LinkIndex: 2, Gw: net.ParseIP("192.168.1.254"), Dst: &net.IPNet{IP: net.ParseIP("10.0.0.0"), Mask: net.CIDRMask(24, 32)}},
		// default route on another link
		{LinkIndex: 7, Gw: net.ParseIP("172.16.0.1")},
	}, nil)
	networkMgr.EXPECT().ListRoutes(netlink.FAMILY_V6).Return([]netlink.Route{
		{LinkIndex: 2, Gw: net.ParseIP("fe80::1")},
	}, nil)
	networkMgr.EXPECT().ListAddresses(eth0, netlink.FAMILY_V4).Return([]netlink.Addr{addr("192.168.1.10/24")}, nil)
	networkMgr.EXPECT().ListAddresses(eth0, netlink.FAMILY_V6).Return([]netlink.Addr{addr("fe80::10/64")}, nil)
	networkMgr.EXPECT().ListAddresses(lo, netlink.FAMILY_V4).Return([]netlink.Addr{addr("127.0.0.1/8")}, nil)
	networkMgr.EXPECT().ListAddresses(lo, netlink.FAMILY_V6).Return([]netlink.Addr{}, nil)

	fileMgr.EXPECT().FileExists(testResolvConf).Return(true)
	fileMgr.EXPECT().ReadFile(testResolvConf).Return([]byte("# local resolver\nsearch example.net\nnameserver 8.8.8.8\nnameserver 1.1.1.1\n"), nil)

	provider := NewProvider(networkMgr, fileMgr, "")
	ifaces, err := provider.Interfaces(context.Background())
	require.NoError(t, err)
	require.Len(t, ifaces, 2)

	t.Run("Eth0", func(t *testing.T) {
		iface := ifaces[0]
		assert.Equal(t, "eth0", iface.Name)
		assert.Equal(t, "uplink", iface.Description)
		assert.Equal(t, types.StatusUp, iface.Status)
		require.Len(t, iface.Addresses, 2)
		assert.Equal(t, types.UnicastAddress{Address: "192.168.1.10", Family: types.FamilyIPv4, PrefixLength: 24}, iface.Addresses[0])
		assert.Equal(t, types.UnicastAddress{Address: "fe80::10", Family: types.FamilyIPv6, PrefixLength: 64}, iface.Addresses[1])
		assert.Equal(t, []string{"192.168.1.1", "fe80::1"}, iface.Gateways)
		assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, iface.DNSServers)
	})

	t.Run("Loopback", func(t *testing.T) {
		iface := ifaces[1]
		assert.Equal(t, "lo", iface.Name)
		assert.Equal(t, "dummy interface", iface.Description)
		assert.Equal(t, types.StatusUnknown, iface.Status)
		require.Len(t, iface.Addresses, 1)
		assert.Equal(t, "127.0.0.1", iface.Addresses[0].Address)
		assert.Equal(t, 8, iface.Addresses[0].PrefixLength)
		assert.Empty(t, iface.Gateways)
		assert.Equal(t, []string{"8.8.8.8", "1.1.1.1"}, iface.DNSServers)
	})
}

func TestProvider_MissingResolvConf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)

	lo := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo", OperState: netlink.OperUp}}

	networkMgr.EXPECT().ListLinks().Return([]netlink.Link{lo}, nil)
	networkMgr.EXPECT().ListRoutes(netlink.FAMILY_V4).Return(nil, nil)
	networkMgr.EXPECT().ListRoutes(netlink.FAMILY_V6).Return(nil, nil)
	networkMgr.EXPECT().ListAddresses(lo, netlink.FAMILY_V4).Return(nil, nil)
	networkMgr.EXPECT().ListAddresses(lo, netlink.FAMILY_V6).Return(nil, nil)

	fileMgr.EXPECT().FileExists("/nonexistent/resolv.conf").Return(false)

	provider := NewProvider(networkMgr, fileMgr, "/nonexistent/resolv.conf")
	ifaces, err := provider.Interfaces(context.Background())
	require.NoError(t, err)
	require.Len(t, ifaces, 1)
	assert.Empty(t, ifaces[0].DNSServers)
}

func TestProvider_LinkListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)

	networkMgr.EXPECT().ListLinks().Return(nil, assert.AnError)

	provider := NewProvider(networkMgr, fileMgr, "")
	ifaces, err := provider.Interfaces(context.Background())
	assert.Nil(t, ifaces)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list network links")
}

func TestProvider_AddressListFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)

	eth0 := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 2, Name: "eth0", OperState: netlink.OperUp}}

	networkMgr.EXPECT().ListLinks().Return([]netlink.Link{eth0}, nil)
	networkMgr.EXPECT().ListRoutes(netlink.FAMILY_V4).Return(nil, nil)
	networkMgr.EXPECT().ListRoutes(netlink.FAMILY_V6).Return(nil, nil)
	networkMgr.EXPECT().ListAddresses(eth0, netlink.FAMILY_V4).Return(nil, assert.AnError)
	fileMgr.EXPECT().FileExists(testResolvConf).Return(false)

	provider := NewProvider(networkMgr, fileMgr, "")
	_, err := provider.Interfaces(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list addresses on eth0")
}
