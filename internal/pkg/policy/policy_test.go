//go:build unit

package policy

import (
	"testing"

	"wifi-toggle/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wifi(device string, status types.Status) types.Interface {
	return types.Interface{DisplayName: "Wi-Fi", DeviceID: device, Status: status, Medium: types.MediumWireless}
}

func ethernet(device string, status types.Status) types.Interface {
	return types.Interface{DisplayName: "Ethernet", DeviceID: device, Status: status, Medium: types.MediumWired}
}

func TestDecide_NoActionWithoutWired(t *testing.T) {
	wireless := []types.Interface{wifi("en0", types.StatusInactive)}

	for _, wiredWasActive := range []bool{false, true} {
		for _, wirelessActive := range []bool{false, true} {
			d := Decide(false, wirelessActive, wiredWasActive, wireless)
			if wiredWasActive && !wirelessActive {
				assert.Equal(t, EnableWireless, d.Action)
				continue
			}
			assert.Equal(t, NoAction, d.Action, "was=%v wireless=%v", wiredWasActive, wirelessActive)
			assert.False(t, d.NextHistory)
		}
	}
}

func TestDecide_Table(t *testing.T) {
	active := []types.Interface{wifi("en0", types.StatusActive)}
	inactive := []types.Interface{wifi("en0", types.StatusInactive)}

	tests := []struct {
		name           string
		wiredWasActive bool
		wiredActive    bool
		wirelessActive bool
		wireless       []types.Interface
		action         Action
		devices        []string
	}{
		{"ScenarioA_WiredConnected", false, true, true, active, DisableWireless, []string{"en0"}},
		{"ScenarioB_WiredDisconnected", true, false, false, inactive, EnableWireless, []string{"en0"}},
		{"ScenarioC_WiredAlreadyActive", true, true, false, inactive, NoAction, nil},
		{"WiredAlreadyActiveWirelessUp", true, true, true, active, NoAction, nil},
		{"WiredUpWirelessAlreadyOff", false, true, false, inactive, NoAction, nil},
		{"WiredGoneWirelessUp", true, false, true, active, NoAction, nil},
		{"NothingEver", false, false, false, inactive, NoAction, nil},
		{"ScenarioE_NoInactiveWireless", true, false, false, nil, NoAction, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Decide(tc.wiredActive, tc.wirelessActive, tc.wiredWasActive, tc.wireless)
			assert.Equal(t, tc.action, d.Action)
			assert.Equal(t, tc.devices, d.Devices)
			assert.Equal(t, tc.wiredActive, d.NextHistory)
			if tc.action == NoAction {
				assert.Empty(t, d.Notification.Message)
			}
		})
	}
}

func TestDecide_DisableEveryActiveWireless(t *testing.T) {
	wireless := []types.Interface{
		wifi("en1", types.StatusActive),
		wifi("en5", types.StatusInactive),
		wifi("en7", types.StatusActive),
	}

	d := Decide(true, true, false, wireless)
	require.Equal(t, DisableWireless, d.Action)
	assert.Equal(t, []string{"en1", "en7"}, d.Devices)
	assert.False(t, d.PowerOn())
	assert.Equal(t, "Ethernet is connected", d.Notification.Message)
	assert.Equal(t, "Wifi toggled", d.Notification.Title)
	assert.Equal(t, "Wifi is turned off", d.Notification.Subtitle)
	assert.NoError(t, d.Notification.Validate())
}

func TestDecide_EnableFirstInactiveWireless(t *testing.T) {
	wireless := []types.Interface{
		wifi("en3", types.StatusInactive),
		wifi("en1", types.StatusInactive),
	}

	d := Decide(false, false, true, wireless)
	require.Equal(t, EnableWireless, d.Action)
	assert.Equal(t, []string{"en3"}, d.Devices)
	assert.True(t, d.PowerOn())
	assert.Equal(t, "Ethernet is disconnected", d.Notification.Message)
	assert.Equal(t, "Wifi is turned on", d.Notification.Subtitle)
	assert.False(t, d.NextHistory)
}

func TestDecide_IgnoresWiredInterfacesInWirelessList(t *testing.T) {
	d := Decide(false, false, true, []types.Interface{ethernet("en0", types.StatusInactive)})
	assert.Equal(t, NoAction, d.Action)
}

func TestDecide_Idempotent(t *testing.T) {
	wireless := []types.Interface{wifi("en0", types.StatusActive)}
	first := Decide(true, true, false, wireless)
	second := Decide(true, true, false, wireless)
	assert.Equal(t, first, second)
}

func TestEvaluate(t *testing.T) {
	t.Run("ScenarioA", func(t *testing.T) {
		snapshot := []types.Interface{
			ethernet("en4", types.StatusActive),
			wifi("en0", types.StatusActive),
		}
		d := Evaluate(snapshot, false)
		assert.Equal(t, DisableWireless, d.Action)
		assert.Equal(t, []string{"en0"}, d.Devices)
		assert.True(t, d.NextHistory)
	})

	t.Run("ScenarioB", func(t *testing.T) {
		snapshot := []types.Interface{
			ethernet("en4", types.StatusInactive),
			wifi("en0", types.StatusInactive),
		}
		d := Evaluate(snapshot, true)
		assert.Equal(t, EnableWireless, d.Action)
		assert.Equal(t, []string{"en0"}, d.Devices)
		assert.False(t, d.NextHistory)
	})

	t.Run("ScenarioC", func(t *testing.T) {
		snapshot := []types.Interface{
			ethernet("en4", types.StatusActive),
			wifi("en0", types.StatusInactive),
		}
		d := Evaluate(snapshot, true)
		assert.Equal(t, NoAction, d.Action)
		assert.True(t, d.NextHistory)
	})

	t.Run("ScenarioE_NoWirelessHardware", func(t *testing.T) {
		d := Evaluate([]types.Interface{ethernet("en4", types.StatusInactive)}, true)
		assert.Equal(t, NoAction, d.Action)
		assert.False(t, d.NextHistory)
	})
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "none", NoAction.String())
	assert.Equal(t, "disable_wireless", DisableWireless.String())
	assert.Equal(t, "enable_wireless", EnableWireless.String())
}
