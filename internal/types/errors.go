package types

import "errors"

var (
	// ErrEnumeration means listing interfaces or querying a link failed.
	ErrEnumeration = errors.New("interface enumeration failed")

	// ErrDeviceNotFound is returned by link queries for devices that no longer exist.
	// Snapshot providers absorb it.
	ErrDeviceNotFound = errors.New("device does not exist")

	// ErrPersistence means the history marker could not be written.
	ErrPersistence = errors.New("history persistence failed")

	// ErrRadioControl means the OS refused a radio power change.
	ErrRadioControl = errors.New("radio power change failed")

	// ErrNotify marks a malformed notification request.
	ErrNotify = errors.New("invalid notification request")
)
