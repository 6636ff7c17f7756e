// Package macos parses the text output of the macOS network tools.
//
// Only the line shapes documented on each function are relied on; every other
// line is ignored.
package macos

import (
	"bufio"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"wifi-toggle/internal/types"
)

// ServicePort is one "(Hardware Port: ..., Device: ...)" entry.
type ServicePort struct {
	HardwarePort string
	Device       string
}

var (
	// (Hardware Port: Wi-Fi, Device: en0)
	hardwarePortLine = regexp.MustCompile(`^\(Hardware Port: ([A-Za-z0-9.\-/ ]+), Device: (en\d+)\)$`)
	// <TAB>status: active
	statusLine = regexp.MustCompile(`^\s+status: (active|inactive)$`)
)

// ParseServiceOrder parses `networksetup -listnetworkserviceorder`.
//
// Expected format, one block per service in priority order:
//
//	An asterisk (*) denotes that a network service is disabled.
//	(1) Ethernet
//	(Hardware Port: Ethernet, Device: en0)
//
//	(2) Wi-Fi
//	(Hardware Port: Wi-Fi, Device: en1)
//
// Only hardware port lines whose device is an "enN" interface are returned. Services
// without a device (VPNs, "Device: ") and bridges are skipped.
func ParseServiceOrder(output []byte) ([]ServicePort, error) {
	var ports []ServicePort
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		m := hardwarePortLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if seen[m[2]] {
			continue
		}
		seen[m[2]] = true
		ports = append(ports, ServicePort{HardwarePort: m[1], Device: m[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read service order: %w", err)
	}
	return ports, nil
}

// ParseIfconfigStatus extracts the link status from `ifconfig <device>`.
//
// ifconfig prints a tab indented "status: active" or "status: inactive" line for
// devices with media; it is normally the last line. Devices that print no status
// line have no link and are reported inactive.
func ParseIfconfigStatus(output []byte) types.Status {
	status := types.StatusInactive
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		m := statusLine.FindStringSubmatch(strings.TrimRight(scanner.Text(), "\r"))
		if m == nil {
			continue
		}
		// The regexp only admits the two known values.
		status, _ = types.ParseStatus(m[1])
	}
	return status
}

// DeviceMissing reports whether ifconfig failed because the device is gone.
func DeviceMissing(output []byte, device string) bool {
	return bytes.Contains(output, []byte("interface "+device+" does not exist"))
}
