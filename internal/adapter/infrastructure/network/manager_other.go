//go:build !linux

// Package network provides network management adapter implementation.
package network

import (
	"errors"

	"wifi-toggle/internal/port"

	"github.com/vishvananda/netlink"
)

// ErrUnsupported is returned on platforms without netlink.
var ErrUnsupported = errors.New("netlink is only available on linux")

// ManagerAdapter is a placeholder on platforms without netlink; every call fails.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the NetworkManager port
var _ port.NetworkManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new network manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

func (n *ManagerAdapter) ListLinks() ([]netlink.Link, error) { return nil, ErrUnsupported }

func (n *ManagerAdapter) GetLinkByName(string) (netlink.Link, error) { return nil, ErrUnsupported }

func (n *ManagerAdapter) SetLinkUp(netlink.Link) error { return ErrUnsupported }

func (n *ManagerAdapter) SetLinkDown(netlink.Link) error { return ErrUnsupported }
