package snapshot

import (
	"context"
	"errors"
	"fmt"
	"net"
	"path/filepath"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"

	"github.com/vishvananda/netlink"
)

// DefaultSysClassNet is where Linux exposes per-device attributes.
const DefaultSysClassNet = "/sys/class/net"

// NetlinkProvider lists physical Linux links through netlink.
//
// Linux has no service names, so each link gets a hardware-port style display name:
// its alias when one is set, otherwise "Wi-Fi (<dev>)" for devices with a sysfs
// wireless directory and "Ethernet (<dev>)" for the rest.
type NetlinkProvider struct {
	networkMgr  port.NetworkManager
	fileMgr     port.FileManager
	classifier  types.Classifier
	sysClassNet string
}

// Ensure NetlinkProvider implements the InterfaceProvider port
var _ port.InterfaceProvider = (*NetlinkProvider)(nil)

// NewNetlinkProvider creates a provider. An empty sysClassNet selects DefaultSysClassNet.
func NewNetlinkProvider(networkMgr port.NetworkManager, fileMgr port.FileManager, classifier types.Classifier, sysClassNet string) *NetlinkProvider {
	if sysClassNet == "" {
		sysClassNet = DefaultSysClassNet
	}
	return &NetlinkProvider{
		networkMgr:  networkMgr,
		fileMgr:     fileMgr,
		classifier:  classifier,
		sysClassNet: sysClassNet,
	}
}

// Snapshot returns physical links in kernel index order.
func (p *NetlinkProvider) Snapshot(ctx context.Context) ([]types.Interface, error) {
	logger := logging.WithComponent("snapshot")

	links, err := p.networkMgr.ListLinks()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrEnumeration, err)
	}

	var ifaces []types.Interface
	for _, listed := range links {
		attrs := listed.Attrs()
		if listed.Type() != "device" || attrs.Flags&net.FlagLoopback != 0 {
			continue
		}

		displayName, err := p.displayName(attrs)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrEnumeration, err)
		}

		link, err := p.networkMgr.GetLinkByName(attrs.Name)
		if err != nil {
			if errors.Is(err, types.ErrDeviceNotFound) {
				logger.WithField("device", attrs.Name).Debug("Skipping link that disappeared")
				continue
			}
			return nil, fmt.Errorf("%w: %w", types.ErrEnumeration, err)
		}

		status := types.StatusInactive
		if link.Attrs().OperState == netlink.OperUp {
			status = types.StatusActive
		}

		ifaces = append(ifaces, types.Interface{
			DisplayName: displayName,
			DeviceID:    attrs.Name,
			Status:      status,
			Medium:      p.classifier.Classify(displayName),
		})
	}

	logger.WithField("interfaces", len(ifaces)).Debug("Built interface snapshot")
	return ifaces, nil
}

func (p *NetlinkProvider) displayName(attrs *netlink.LinkAttrs) (string, error) {
	if attrs.Alias != "" {
		return attrs.Alias, nil
	}
	wireless, err := p.fileMgr.FileExists(filepath.Join(p.sysClassNet, attrs.Name, "wireless"))
	if err != nil {
		return "", err
	}
	if wireless {
		return fmt.Sprintf("Wi-Fi (%s)", attrs.Name), nil
	}
	return fmt.Sprintf("Ethernet (%s)", attrs.Name), nil
}
