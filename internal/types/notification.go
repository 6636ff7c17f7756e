package types

import "fmt"

// NotificationStyle selects how the desktop presents a notification.
type NotificationStyle string

const (
	StyleBanner NotificationStyle = "banner"
	StyleAlert  NotificationStyle = "alert"
)

// RemoveKind asks the notifier to clear earlier notifications.
type RemoveKind string

const (
	RemoveNone  RemoveKind = ""
	RemoveAll   RemoveKind = "all"
	RemovePrior RemoveKind = "prior"
)

// Notification is a user-facing message. Button and ButtonAction only apply to alerts.
type Notification struct {
	Message      string            `yaml:"message"`
	Title        string            `yaml:"title,omitempty"`
	Subtitle     string            `yaml:"subtitle,omitempty"`
	Sound        string            `yaml:"sound,omitempty"`
	Action       string            `yaml:"action,omitempty"`
	Style        NotificationStyle `yaml:"style,omitempty"`
	Button       string            `yaml:"button,omitempty"`
	ButtonAction string            `yaml:"button_action,omitempty"`
	Remove       RemoveKind        `yaml:"remove,omitempty"`
}

// Validate checks the style and removal kind. An empty style means banner.
func (n Notification) Validate() error {
	switch n.Style {
	case "", StyleBanner, StyleAlert:
	default:
		return fmt.Errorf("%w: unknown message type %q, allowed types are %q and %q", ErrNotify, n.Style, StyleAlert, StyleBanner)
	}
	switch n.Remove {
	case RemoveNone, RemoveAll, RemovePrior:
	default:
		return fmt.Errorf("%w: unknown remove type %q, allowed types are %q and %q", ErrNotify, n.Remove, RemoveAll, RemovePrior)
	}
	return nil
}

// EffectiveStyle returns the style with the banner default applied.
func (n Notification) EffectiveStyle() NotificationStyle {
	if n.Style == "" {
		return StyleBanner
	}
	return n.Style
}
