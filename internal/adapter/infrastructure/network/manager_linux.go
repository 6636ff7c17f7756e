//go:build linux

// Package network provides network management adapter implementation.
package network

import (
	"errors"
	"fmt"

	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"

	"github.com/vishvananda/netlink"
)

// ManagerAdapter is an adapter that implements the NetworkManager port using vishvananda/netlink library.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// ListLinks returns every link known to the kernel.
func (n *ManagerAdapter) ListLinks() ([]netlink.Link, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, fmt.Errorf("failed to list links: %w", err)
	}
	return links, nil
}

// GetLinkByName returns a network link by interface name.
func (n *ManagerAdapter) GetLinkByName(interfaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("netlink interface %s: %w", interfaceName, types.ErrDeviceNotFound)
		}
		return nil, fmt.Errorf("failed to get netlink interface %s: %w", interfaceName, err)
	}
	return link, nil
}

// SetLinkUp brings the interface up.
func (n *ManagerAdapter) SetLinkUp(link netlink.Link) error {
	if err := netlink.LinkSetUp(link); err != nil {
		return fmt.Errorf("failed to set link %s up: %w", link.Attrs().Name, err)
	}
	return nil
}

// SetLinkDown takes the interface down.
func (n *ManagerAdapter) SetLinkDown(link netlink.Link) error {
	if err := netlink.LinkSetDown(link); err != nil {
		return fmt.Errorf("failed to set link %s down: %w", link.Attrs().Name, err)
	}
	return nil
}
