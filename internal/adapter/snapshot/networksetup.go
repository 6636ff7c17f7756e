// Package snapshot builds interface snapshots from the operating system.
package snapshot

import (
	"context"
	"fmt"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/pkg/macos"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"
)

// NetworksetupProvider lists macOS network services with networksetup and reads each
// device's link status from ifconfig.
type NetworksetupProvider struct {
	runner       port.CommandRunner
	classifier   types.Classifier
	networksetup string
	ifconfig     string
}

// Ensure NetworksetupProvider implements the InterfaceProvider port
var _ port.InterfaceProvider = (*NetworksetupProvider)(nil)

// NewNetworksetupProvider creates a provider running the given tool paths.
func NewNetworksetupProvider(runner port.CommandRunner, classifier types.Classifier, networksetupPath, ifconfigPath string) *NetworksetupProvider {
	return &NetworksetupProvider{
		runner:       runner,
		classifier:   classifier,
		networksetup: networksetupPath,
		ifconfig:     ifconfigPath,
	}
}

// Snapshot returns the services in priority order with their link status.
func (p *NetworksetupProvider) Snapshot(ctx context.Context) ([]types.Interface, error) {
	logger := logging.WithComponent("snapshot")

	out, err := p.runner.Run(ctx, p.networksetup, []string{"-listnetworkserviceorder"})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list network services: %w", types.ErrEnumeration, err)
	}

	ports, err := macos.ParseServiceOrder(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrEnumeration, err)
	}

	ifaces := make([]types.Interface, 0, len(ports))
	for _, sp := range ports {
		status, err := p.linkStatus(ctx, sp.Device)
		if err != nil {
			return nil, err
		}
		if status == nil {
			// Ephemeral devices such as a tethered phone are listed as services
			// but have no interface.
			logger.WithField("device", sp.Device).WithField("service", sp.HardwarePort).Debug("Skipping service without interface")
			continue
		}

		ifaces = append(ifaces, types.Interface{
			DisplayName: sp.HardwarePort,
			DeviceID:    sp.Device,
			Status:      *status,
			Medium:      p.classifier.Classify(sp.HardwarePort),
		})
	}

	logger.WithField("interfaces", len(ifaces)).Debug("Built interface snapshot")
	return ifaces, nil
}

// linkStatus returns nil without error when the device does not exist.
func (p *NetworksetupProvider) linkStatus(ctx context.Context, device string) (*types.Status, error) {
	out, err := p.runner.Run(ctx, p.ifconfig, []string{device})
	if err != nil {
		if macos.DeviceMissing(out, device) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to query %s: %w", types.ErrEnumeration, device, err)
	}
	status := macos.ParseIfconfigStatus(out)
	return &status, nil
}
