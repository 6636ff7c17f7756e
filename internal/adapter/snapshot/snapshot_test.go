//go:build unit

package snapshot

import (
	"context"
	"fmt"
	"net"
	"testing"

	"wifi-toggle/internal/adapter/infrastructure/command"
	"wifi-toggle/internal/mock"
	"wifi-toggle/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

const serviceOrder = `An asterisk (*) denotes that a network service is disabled.
(1) Thunderbolt Ethernet
(Hardware Port: Thunderbolt Ethernet, Device: en4)

(2) Wi-Fi
(Hardware Port: Wi-Fi, Device: en0)

(3) iPhone USB
(Hardware Port: iPhone USB, Device: en8)
`

func ifconfigOutput(device, status string) []byte {
	return []byte(fmt.Sprintf("%s: flags=8863<UP,BROADCAST,SMART,RUNNING,SIMPLEX,MULTICAST> mtu 1500\n\tether 3c:22:fb:00:11:22\n\tmedia: autoselect\n\tstatus: %s\n", device, status))
}

func TestNetworksetupProvider_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	runner := mock.NewMockCommandRunner(ctrl)
	provider := NewNetworksetupProvider(runner, types.Classifier{}, "networksetup", "ifconfig")

	t.Run("SkipsMissingDevice", func(t *testing.T) {
		gomock.InOrder(
			runner.EXPECT().Run(ctx, "networksetup", []string{"-listnetworkserviceorder"}).Return([]byte(serviceOrder), nil),
			runner.EXPECT().Run(ctx, "ifconfig", []string{"en4"}).Return(ifconfigOutput("en4", "active"), nil),
			runner.EXPECT().Run(ctx, "ifconfig", []string{"en0"}).Return(ifconfigOutput("en0", "active"), nil),
			runner.EXPECT().Run(ctx, "ifconfig", []string{"en8"}).Return(
				[]byte("ifconfig: interface en8 does not exist\n"),
				&command.ExitError{Command: "ifconfig", ExitCode: 1},
			),
		)

		ifaces, err := provider.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Interface{
			{DisplayName: "Thunderbolt Ethernet", DeviceID: "en4", Status: types.StatusActive, Medium: types.MediumWired},
			{DisplayName: "Wi-Fi", DeviceID: "en0", Status: types.StatusActive, Medium: types.MediumWireless},
		}, ifaces)
	})

	t.Run("ListFailure", func(t *testing.T) {
		runner.EXPECT().Run(ctx, "networksetup", []string{"-listnetworkserviceorder"}).Return(nil, assert.AnError)

		_, err := provider.Snapshot(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrEnumeration)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("StatusQueryFailure", func(t *testing.T) {
		runner.EXPECT().Run(ctx, "networksetup", []string{"-listnetworkserviceorder"}).Return([]byte(serviceOrder), nil)
		runner.EXPECT().Run(ctx, "ifconfig", []string{"en4"}).Return(
			[]byte("ifconfig: ioctl (SIOCGIFFLAGS): Operation not permitted\n"),
			&command.ExitError{Command: "ifconfig", ExitCode: 1},
		)

		_, err := provider.Snapshot(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrEnumeration)
		assert.Contains(t, err.Error(), "failed to query en4")
	})

	t.Run("NoServices", func(t *testing.T) {
		runner.EXPECT().Run(ctx, "networksetup", []string{"-listnetworkserviceorder"}).Return([]byte("An asterisk (*) denotes that a network service is disabled.\n"), nil)

		ifaces, err := provider.Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, ifaces)
	})
}

func device(name string, state netlink.LinkOperState) *netlink.Device {
	return &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: name, OperState: state, Flags: net.FlagUp}}
}

func TestNetlinkProvider_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)
	provider := NewNetlinkProvider(networkMgr, fileMgr, types.Classifier{}, "/sys/class/net")

	t.Run("ClassifiesAndSkipsVanishedLinks", func(t *testing.T) {
		lo := &netlink.Device{LinkAttrs: netlink.LinkAttrs{Name: "lo", Flags: net.FlagLoopback | net.FlagUp}}
		eth0 := device("eth0", netlink.OperUp)
		wlan0 := device("wlan0", netlink.OperDown)
		usb0 := device("usb0", netlink.OperUp)
		usb0.Alias = "iPhone USB"
		veth := &netlink.Veth{LinkAttrs: netlink.LinkAttrs{Name: "veth1"}}

		networkMgr.EXPECT().ListLinks().Return([]netlink.Link{lo, eth0, veth, wlan0, usb0}, nil)

		fileMgr.EXPECT().FileExists("/sys/class/net/eth0/wireless").Return(false, nil)
		fileMgr.EXPECT().FileExists("/sys/class/net/wlan0/wireless").Return(true, nil)

		networkMgr.EXPECT().GetLinkByName("eth0").Return(eth0, nil)
		networkMgr.EXPECT().GetLinkByName("wlan0").Return(wlan0, nil)
		networkMgr.EXPECT().GetLinkByName("usb0").Return(nil, fmt.Errorf("netlink interface usb0: %w", types.ErrDeviceNotFound))

		ifaces, err := provider.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []types.Interface{
			{DisplayName: "Ethernet (eth0)", DeviceID: "eth0", Status: types.StatusActive, Medium: types.MediumWired},
			{DisplayName: "Wi-Fi (wlan0)", DeviceID: "wlan0", Status: types.StatusInactive, Medium: types.MediumWireless},
		}, ifaces)
	})

	t.Run("ListFailure", func(t *testing.T) {
		networkMgr.EXPECT().ListLinks().Return(nil, assert.AnError)

		_, err := provider.Snapshot(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrEnumeration)
	})

	t.Run("LinkQueryFailure", func(t *testing.T) {
		eth0 := device("eth0", netlink.OperUp)
		networkMgr.EXPECT().ListLinks().Return([]netlink.Link{eth0}, nil)
		fileMgr.EXPECT().FileExists("/sys/class/net/eth0/wireless").Return(false, nil)
		networkMgr.EXPECT().GetLinkByName("eth0").Return(nil, assert.AnError)

		_, err := provider.Snapshot(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrEnumeration)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("SysfsFailure", func(t *testing.T) {
		eth0 := device("eth0", netlink.OperUp)
		networkMgr.EXPECT().ListLinks().Return([]netlink.Link{eth0}, nil)
		fileMgr.EXPECT().FileExists("/sys/class/net/eth0/wireless").Return(false, assert.AnError)

		_, err := provider.Snapshot(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrEnumeration)
	})
}

func TestNewNetlinkProvider_DefaultSysfs(t *testing.T) {
	provider := NewNetlinkProvider(nil, nil, types.Classifier{}, "")
	assert.Equal(t, DefaultSysClassNet, provider.sysClassNet)
}
