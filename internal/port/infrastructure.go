// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"github.com/vishvananda/netlink"
)

//go:generate mockgen -source=infrastructure.go -destination=../mock/mock_infrastructure.go -package=mock

// CommandRunner is a port for running OS tools.
// Arguments are always passed as a list; nothing goes through a shell.
type CommandRunner interface {
	// Run executes the command and returns its combined stdout and stderr.
	// A non-zero exit returns the output together with an error.
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}

// NetworkManager is a port for network interface operations.
// This interface abstracts the netlink calls used on Linux.
type NetworkManager interface {
	// ListLinks returns every link known to the kernel
	ListLinks() ([]netlink.Link, error)

	// GetLinkByName returns a network link by interface name.
	// A missing link returns an error wrapping types.ErrDeviceNotFound.
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// SetLinkUp brings the interface up
	SetLinkUp(link netlink.Link) error

	// SetLinkDown takes the interface down
	SetLinkDown(link netlink.Link) error
}

// FileManager is a port for file system operations.
// This interface abstracts the marker file and sysfs lookups.
type FileManager interface {
	// FileExists checks if a file exists
	FileExists(filename string) (bool, error)

	// Touch creates an empty file, and its parent directory, if missing
	Touch(filename string) error

	// Remove deletes a file; a missing file is not an error
	Remove(filename string) error
}
