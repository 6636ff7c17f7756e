// Package policy decides when the wireless radio should be switched.
//
// The policy only reacts to two transitions: wired connectivity appearing while
// wireless is still up (switch wireless off), and wired connectivity disappearing
// with nothing else connected (switch one wireless device back on). Everything else
// is left alone so repeated runs with unchanged input never toggle anything.
package policy

import "wifi-toggle/internal/types"

// Action is the class of radio change a decision asks for.
type Action int

const (
	NoAction Action = iota
	DisableWireless
	EnableWireless
)

func (a Action) String() string {
	switch a {
	case DisableWireless:
		return "disable_wireless"
	case EnableWireless:
		return "enable_wireless"
	default:
		return "none"
	}
}

const notificationTitle = "Wifi toggled"

// Decision is the outcome of one evaluation.
type Decision struct {
	Action Action
	// Devices lists the wireless devices to switch, in enumeration order.
	// Disable decisions carry every active wireless device, enable decisions exactly one.
	Devices      []string
	Notification types.Notification
	// NextHistory is the value to persist: always the current wired state.
	NextHistory bool
}

// PowerOn reports the radio power state the decision switches devices to.
func (d Decision) PowerOn() bool {
	return d.Action == EnableWireless
}

// Decide is the reconciliation table. The two acting rows need opposite wiredActive
// values, so at most one of them can match.
func Decide(wiredActive, wirelessActive, wiredWasActive bool, wireless []types.Interface) Decision {
	d := Decision{Action: NoAction, NextHistory: wiredActive}

	switch {
	case !wiredWasActive && wiredActive && wirelessActive:
		for _, iface := range wireless {
			if iface.Medium == types.MediumWireless && iface.Active() {
				d.Devices = append(d.Devices, iface.DeviceID)
			}
		}
		if len(d.Devices) == 0 {
			return d
		}
		d.Action = DisableWireless
		d.Notification = types.Notification{
			Message:  "Ethernet is connected",
			Title:    notificationTitle,
			Subtitle: "Wifi is turned off",
		}

	case wiredWasActive && !wiredActive && !wirelessActive:
		// Wireless may already be on or absent; nothing to enable is not an error.
		for _, iface := range wireless {
			if iface.Medium == types.MediumWireless && !iface.Active() {
				d.Devices = []string{iface.DeviceID}
				break
			}
		}
		if len(d.Devices) == 0 {
			return d
		}
		d.Action = EnableWireless
		d.Notification = types.Notification{
			Message:  "Ethernet is disconnected",
			Title:    notificationTitle,
			Subtitle: "Wifi is turned on",
		}
	}

	return d
}

// Evaluate derives the policy inputs from a snapshot and decides.
func Evaluate(snapshot []types.Interface, wiredWasActive bool) Decision {
	s := types.Summarize(snapshot)
	return Decide(s.WiredActive, s.WirelessActive, wiredWasActive, s.Wireless())
}
