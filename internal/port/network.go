// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"wifi-toggle/internal/types"
)

//go:generate mockgen -source=network.go -destination=../mock/mock_network.go -package=mock

// InterfaceProvider produces a fresh snapshot of the host's network interfaces.
type InterfaceProvider interface {
	// Snapshot lists interfaces in OS priority order. Devices that vanished while
	// being queried are left out. Other failures wrap types.ErrEnumeration.
	Snapshot(ctx context.Context) ([]types.Interface, error)
}

// RadioController switches the radio of a wireless device.
type RadioController interface {
	// SetPower turns the device radio on or off. Failures wrap types.ErrRadioControl.
	SetPower(ctx context.Context, deviceID string, on bool) error
}

// Notifier delivers user-facing messages.
type Notifier interface {
	// Notify validates and sends the notification. Malformed requests wrap
	// types.ErrNotify; delivery failures are returned unwrapped from that sentinel.
	Notify(ctx context.Context, n types.Notification) error
}

// HistoryStore persists whether wired connectivity was present at the last run.
type HistoryStore interface {
	// Read returns the persisted flag; absent or unreadable state reads as false.
	Read(ctx context.Context) bool

	// Write persists the flag. Failures wrap types.ErrPersistence.
	Write(ctx context.Context, wiredWasActive bool) error
}
