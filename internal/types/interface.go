// Package types defines common types used across the application.
package types

import (
	"fmt"
	"regexp"
)

// DefaultWirelessPattern matches "wi-fi" or "wifi" in a network service name.
const DefaultWirelessPattern = `(?i)wi-?fi`

// Status is the link status reported for a device.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
)

func (s Status) String() string {
	if s == StatusActive {
		return "active"
	}
	return "inactive"
}

// ParseStatus converts the textual status printed by OS tools.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	}
	return StatusInactive, fmt.Errorf("unknown interface status %q", s)
}

// Medium is the physical class of an interface.
type Medium int

const (
	MediumWired Medium = iota
	MediumWireless
)

func (m Medium) String() string {
	if m == MediumWireless {
		return "wireless"
	}
	return "wired"
}

// Interface is one network service resolved to a device. Snapshots are rebuilt on
// every run; DeviceID is the only identity that means anything across runs.
type Interface struct {
	DisplayName string
	DeviceID    string
	Status      Status
	Medium      Medium
}

// Active reports whether the interface has link.
func (i Interface) Active() bool {
	return i.Status == StatusActive
}

// Classifier derives the medium of an interface from its display name only.
type Classifier struct {
	wireless *regexp.Regexp
}

var defaultClassifier = Classifier{wireless: regexp.MustCompile(DefaultWirelessPattern)}

// NewClassifier compiles a wireless name pattern. An empty pattern selects the default.
func NewClassifier(pattern string) (Classifier, error) {
	if pattern == "" {
		return defaultClassifier, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Classifier{}, fmt.Errorf("invalid wireless pattern %q: %w", pattern, err)
	}
	return Classifier{wireless: re}, nil
}

// Classify returns MediumWireless when the name matches the wireless pattern.
func (c Classifier) Classify(displayName string) Medium {
	re := c.wireless
	if re == nil {
		re = defaultClassifier.wireless
	}
	if re.MatchString(displayName) {
		return MediumWireless
	}
	return MediumWired
}

// Classify uses the default wireless pattern.
func Classify(displayName string) Medium {
	return defaultClassifier.Classify(displayName)
}

// Summary holds the booleans the reconciliation policy works on.
type Summary struct {
	WiredActive    bool
	WirelessActive bool
	wireless       []Interface
}

// Summarize derives per-medium activity. Several interfaces of the same medium are
// allowed; a medium is active when any of its interfaces is.
func Summarize(ifaces []Interface) Summary {
	var s Summary
	for _, iface := range ifaces {
		switch iface.Medium {
		case MediumWired:
			s.WiredActive = s.WiredActive || iface.Active()
		case MediumWireless:
			s.WirelessActive = s.WirelessActive || iface.Active()
			s.wireless = append(s.wireless, iface)
		}
	}
	return s
}

// Wireless returns the wireless interfaces in enumeration order.
func (s Summary) Wireless() []Interface {
	return s.wireless
}
