// Package radio switches wireless radios on and off.
package radio

import (
	"context"
	"fmt"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"
)

func powerArg(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// NetworksetupController uses `networksetup -setairportpower <device> on|off`.
type NetworksetupController struct {
	runner       port.CommandRunner
	networksetup string
}

// Ensure NetworksetupController implements the RadioController port
var _ port.RadioController = (*NetworksetupController)(nil)

// NewNetworksetupController creates a controller running the given networksetup binary.
func NewNetworksetupController(runner port.CommandRunner, networksetupPath string) *NetworksetupController {
	return &NetworksetupController{runner: runner, networksetup: networksetupPath}
}

// SetPower changes the airport power of the device.
func (c *NetworksetupController) SetPower(ctx context.Context, deviceID string, on bool) error {
	logger := logging.WithComponentAndDevice("radio", deviceID).WithField("power", powerArg(on))

	if _, err := c.runner.Run(ctx, c.networksetup, []string{"-setairportpower", deviceID, powerArg(on)}); err != nil {
		return fmt.Errorf("%w: %s %s: %w", types.ErrRadioControl, deviceID, powerArg(on), err)
	}

	logger.Info("Switched wireless radio")
	return nil
}

// NetlinkController brings the wireless link up or down.
type NetlinkController struct {
	networkMgr port.NetworkManager
}

// Ensure NetlinkController implements the RadioController port
var _ port.RadioController = (*NetlinkController)(nil)

// NewNetlinkController creates a controller using the netlink port.
func NewNetlinkController(networkMgr port.NetworkManager) *NetlinkController {
	return &NetlinkController{networkMgr: networkMgr}
}

// SetPower sets the link administratively up for on, down for off.
func (c *NetlinkController) SetPower(ctx context.Context, deviceID string, on bool) error {
	logger := logging.WithComponentAndDevice("radio", deviceID).WithField("power", powerArg(on))

	link, err := c.networkMgr.GetLinkByName(deviceID)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrRadioControl, err)
	}

	if on {
		err = c.networkMgr.SetLinkUp(link)
	} else {
		err = c.networkMgr.SetLinkDown(link)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrRadioControl, err)
	}

	logger.Info("Switched wireless link")
	return nil
}
