// Package notify delivers desktop notifications.
//
// Every backend validates the request before doing anything, so a malformed
// request fails the same way whichever backend is configured.
package notify

import (
	"context"
	"fmt"
	"strings"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"
)

// Defaults fill in fields a request leaves empty.
type Defaults struct {
	Style types.NotificationStyle
	Sound string
}

func (d Defaults) apply(n types.Notification) types.Notification {
	if n.Style == "" {
		n.Style = d.Style
	}
	if n.Sound == "" {
		n.Sound = d.Sound
	}
	return n
}

// AppNotifier drives the macOS Notifier.app command line.
type AppNotifier struct {
	runner   port.CommandRunner
	path     string
	defaults Defaults
}

// Ensure AppNotifier implements the Notifier port
var _ port.Notifier = (*AppNotifier)(nil)

// NewAppNotifier creates a notifier for the Notifier binary at path
// (Notifier.app/Contents/MacOS/Notifier).
func NewAppNotifier(runner port.CommandRunner, path string, defaults Defaults) *AppNotifier {
	return &AppNotifier{runner: runner, path: path, defaults: defaults}
}

// AppArgs builds the Notifier argument list. Each value is its own argument.
func AppArgs(n types.Notification) []string {
	args := []string{"--message", n.Message, "--type", string(n.EffectiveStyle())}
	if n.Title != "" {
		args = append(args, "--title", n.Title)
	}
	if n.Subtitle != "" {
		args = append(args, "--subtitle", n.Subtitle)
	}
	if n.Action != "" {
		args = append(args, "--messageaction", n.Action)
	}
	if n.Sound != "" {
		args = append(args, "--sound", n.Sound)
	}
	if n.EffectiveStyle() == types.StyleAlert {
		if n.Button != "" {
			args = append(args, "--messagebutton", n.Button)
		}
		if n.ButtonAction != "" {
			args = append(args, "--messagebuttonaction", n.ButtonAction)
		}
	}
	if n.Remove != types.RemoveNone {
		args = append(args, "--remove", string(n.Remove))
	}
	return args
}

// Notify validates and sends the notification.
func (a *AppNotifier) Notify(ctx context.Context, n types.Notification) error {
	n = a.defaults.apply(n)
	if err := n.Validate(); err != nil {
		return err
	}
	if _, err := a.runner.Run(ctx, a.path, AppArgs(n)); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	return nil
}

// NotifySendNotifier uses libnotify's notify-send.
type NotifySendNotifier struct {
	runner   port.CommandRunner
	path     string
	defaults Defaults
}

// Ensure NotifySendNotifier implements the Notifier port
var _ port.Notifier = (*NotifySendNotifier)(nil)

// NewNotifySendNotifier creates a notifier running notify-send at path.
func NewNotifySendNotifier(runner port.CommandRunner, path string, defaults Defaults) *NotifySendNotifier {
	return &NotifySendNotifier{runner: runner, path: path, defaults: defaults}
}

// NotifySendArgs maps a notification onto notify-send flags. Alerts become critical
// notifications, which stay on screen until dismissed. notify-send has no sound,
// click action or removal support, so those fields are dropped.
func NotifySendArgs(n types.Notification) []string {
	args := []string{"--app-name", "wifi-toggle"}
	if n.EffectiveStyle() == types.StyleAlert {
		args = append(args, "--urgency", "critical")
	}

	summary := n.Title
	body := n.Message
	if n.Subtitle != "" {
		body = n.Subtitle + "\n" + n.Message
	}
	if summary == "" {
		summary, body = body, ""
	}

	args = append(args, "--", summary)
	if body != "" {
		args = append(args, body)
	}
	return args
}

// Notify validates and sends the notification.
func (s *NotifySendNotifier) Notify(ctx context.Context, n types.Notification) error {
	n = s.defaults.apply(n)
	if err := n.Validate(); err != nil {
		return err
	}
	if n.Remove != types.RemoveNone {
		logging.WithComponent("notify").WithField("remove", n.Remove).Debug("notify-send cannot remove notifications, ignoring")
	}
	if _, err := s.runner.Run(ctx, s.path, NotifySendArgs(n)); err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	return nil
}

// LogNotifier writes notifications to the log, for hosts without a desktop.
type LogNotifier struct {
	defaults Defaults
}

// Ensure LogNotifier implements the Notifier port
var _ port.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(defaults Defaults) *LogNotifier {
	return &LogNotifier{defaults: defaults}
}

func (l *LogNotifier) Notify(ctx context.Context, n types.Notification) error {
	n = l.defaults.apply(n)
	if err := n.Validate(); err != nil {
		return err
	}
	parts := []string{n.Title, n.Subtitle, n.Message}
	text := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			text = append(text, p)
		}
	}
	logging.WithComponent("notify").WithField("style", n.EffectiveStyle()).Info(strings.Join(text, ": "))
	return nil
}

// NopNotifier validates requests and drops them.
type NopNotifier struct{}

// Ensure NopNotifier implements the Notifier port
var _ port.Notifier = NopNotifier{}

func (NopNotifier) Notify(ctx context.Context, n types.Notification) error {
	return n.Validate()
}
