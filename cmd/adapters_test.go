//go:build unit

package cmd

import (
	"path/filepath"
	"testing"

	"wifi-toggle/internal/adapter/notify"
	"wifi-toggle/internal/adapter/radio"
	"wifi-toggle/internal/adapter/snapshot"
	"wifi-toggle/internal/adapter/toggle"
	"wifi-toggle/internal/mock"
	"wifi-toggle/internal/pkg/config"
	"wifi-toggle/internal/pkg/policy"
	"wifi-toggle/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBuildAdapters(t *testing.T) {
	t.Run("NetworksetupOnDarwinWithoutNotifier", func(t *testing.T) {
		cfg := config.Default()
		cfg.History.Marker = filepath.Join(t.TempDir(), "marker")

		a, err := buildAdapters(cfg, "darwin")
		require.NoError(t, err)
		assert.IsType(t, &snapshot.NetworksetupProvider{}, a.provider)
		assert.IsType(t, &radio.NetworksetupController{}, a.radio)
		assert.IsType(t, &notify.LogNotifier{}, a.notifier)
		assert.Equal(t, cfg.History.Marker, a.history.Path())
	})

	t.Run("NetlinkOnLinux", func(t *testing.T) {
		a, err := buildAdapters(config.Default(), "linux")
		require.NoError(t, err)
		assert.IsType(t, &snapshot.NetlinkProvider{}, a.provider)
		assert.IsType(t, &radio.NetlinkController{}, a.radio)
		assert.IsType(t, &notify.NotifySendNotifier{}, a.notifier)
	})

	t.Run("ExplicitBackend", func(t *testing.T) {
		cfg := config.Default()
		cfg.Backend = config.BackendNetworksetup
		cfg.Notifications.Backend = config.NotifierNone

		a, err := buildAdapters(cfg, "linux")
		require.NoError(t, err)
		assert.IsType(t, &snapshot.NetworksetupProvider{}, a.provider)
		assert.IsType(t, notify.NopNotifier{}, a.notifier)
	})

	t.Run("InvalidPattern", func(t *testing.T) {
		cfg := config.Default()
		cfg.WirelessPattern = "("

		_, err := buildAdapters(cfg, "darwin")
		assert.Error(t, err)
	})
}

func TestBuildNotifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mock.NewMockCommandRunner(ctrl)

	cfg := config.Default()
	cfg.Notifications.Backend = config.NotifierApp
	cfg.Notifications.NotifierPath = "/Applications/Notifier.app/Contents/MacOS/Notifier"

	n, err := buildNotifier(cfg, "darwin", runner)
	require.NoError(t, err)
	assert.IsType(t, &notify.AppNotifier{}, n)

	cfg.Notifications.Backend = "carrier-pigeon"
	_, err = buildNotifier(cfg, "darwin", runner)
	assert.Error(t, err)
}

func TestRenderStatus(t *testing.T) {
	result := &toggle.Result{
		WiredWasActive: false,
		Interfaces: []types.Interface{
			{DisplayName: "USB 10/100/1000 LAN", DeviceID: "en7", Status: types.StatusActive, Medium: types.MediumWired},
			{DisplayName: "Wi-Fi", DeviceID: "en0", Status: types.StatusActive, Medium: types.MediumWireless},
		},
		Decision: policy.Decision{Action: policy.DisableWireless, Devices: []string{"en0"}},
	}

	out := renderStatus(result, "/tmp/marker")
	for _, want := range []string{"USB 10/100/1000 LAN", "en7", "Wi-Fi", "wireless", "active", "/tmp/marker", "disable_wireless", "en0"} {
		assert.Contains(t, out, want)
	}

	empty := renderStatus(&toggle.Result{}, "/tmp/marker")
	assert.Contains(t, empty, "no interfaces found")
	assert.Contains(t, empty, "none")
}
