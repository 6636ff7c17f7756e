package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/types"

	"gopkg.in/yaml.v3"
)

// Backend names for interface enumeration and radio control.
const (
	BackendAuto         = "auto"
	BackendNetworksetup = "networksetup"
	BackendNetlink      = "netlink"
)

// Notifier backend names.
const (
	NotifierAuto       = "auto"
	NotifierApp        = "notifier-app"
	NotifierNotifySend = "notify-send"
	NotifierLog        = "log"
	NotifierNone       = "none"
)

// BundledNotifier is where Notifier.app is shipped, relative to the executable.
const BundledNotifier = "notifier/Notifier.app/Contents/MacOS/Notifier"

// DefaultMarker is where the wired history flag lives unless configured.
const DefaultMarker = "/tmp/toggle-wifi_prev_eth_conn"

// HistoryConfig represents history marker configuration
type HistoryConfig struct {
	Marker string `yaml:"marker"`
}

// CommandsConfig names the OS tools used by the networksetup backend
type CommandsConfig struct {
	Networksetup string `yaml:"networksetup"`
	Ifconfig     string `yaml:"ifconfig"`
}

// NotificationsConfig represents notification delivery configuration
type NotificationsConfig struct {
	Backend        string                  `yaml:"backend"`
	Style          types.NotificationStyle `yaml:"style"`
	Sound          string                  `yaml:"sound"`
	NotifierPath   string                  `yaml:"notifier_path"`
	NotifySendPath string                  `yaml:"notify_send_path"`
}

// MetricsConfig represents metrics export configuration
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Config represents the main configuration structure
type Config struct {
	Logging         logging.LogConfig   `yaml:"logging"`
	Backend         string              `yaml:"backend"`
	WirelessPattern string              `yaml:"wireless_pattern"`
	Timeout         time.Duration       `yaml:"timeout"`
	History         HistoryConfig       `yaml:"history"`
	Commands        CommandsConfig      `yaml:"commands"`
	Notifications   NotificationsConfig `yaml:"notifications"`
	Metrics         MetricsConfig       `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// Load loads configuration from a YAML file. Unknown keys are rejected.
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var config Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	config.ApplyDefaults()
	return &config, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Backend == "" {
		c.Backend = BackendAuto
	}
	if c.WirelessPattern == "" {
		c.WirelessPattern = types.DefaultWirelessPattern
	}
	if c.History.Marker == "" {
		c.History.Marker = DefaultMarker
	}
	if c.Commands.Networksetup == "" {
		c.Commands.Networksetup = "networksetup"
	}
	if c.Commands.Ifconfig == "" {
		c.Commands.Ifconfig = "ifconfig"
	}
	if c.Notifications.Backend == "" {
		c.Notifications.Backend = NotifierAuto
	}
	if c.Notifications.Style == "" {
		c.Notifications.Style = types.StyleBanner
	}
	if c.Notifications.NotifySendPath == "" {
		c.Notifications.NotifySendPath = "notify-send"
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendNetworksetup, BackendNetlink:
	default:
		return fmt.Errorf("unknown backend %q: must be one of auto, networksetup, netlink", c.Backend)
	}

	if _, err := types.NewClassifier(c.WirelessPattern); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}

	switch c.Notifications.Backend {
	case NotifierAuto, NotifierApp, NotifierNotifySend, NotifierLog, NotifierNone:
	default:
		return fmt.Errorf("unknown notifications backend %q", c.Notifications.Backend)
	}

	if err := (types.Notification{Style: c.Notifications.Style}).Validate(); err != nil {
		return fmt.Errorf("notifications: %w", err)
	}

	if c.Notifications.Backend == NotifierApp && c.Notifications.NotifierPath == "" {
		return fmt.Errorf("notifications: notifier_path is required for the %s backend", NotifierApp)
	}

	return nil
}

// DiscoverNotifier fills an empty notifier_path with the Notifier binary bundled
// next to the executable in exeDir. It reports whether a binary was found.
func (c *Config) DiscoverNotifier(exeDir string) bool {
	if c.Notifications.NotifierPath != "" || exeDir == "" {
		return false
	}

	path := filepath.Join(exeDir, filepath.FromSlash(BundledNotifier))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	c.Notifications.NotifierPath = path
	return true
}

// ResolveBackend maps "auto" to the backend native to goos.
func (c *Config) ResolveBackend(goos string) string {
	if c.Backend != BackendAuto {
		return c.Backend
	}
	if goos == "darwin" {
		return BackendNetworksetup
	}
	return BackendNetlink
}

// ResolveNotifier maps "auto" to the notifier native to goos. On macOS the
// Notifier.app backend needs a path, configured or found by DiscoverNotifier;
// without one notifications only reach the log.
func (c *Config) ResolveNotifier(goos string) string {
	if c.Notifications.Backend != NotifierAuto {
		return c.Notifications.Backend
	}
	switch goos {
	case "darwin":
		if c.Notifications.NotifierPath != "" {
			return NotifierApp
		}
		return NotifierLog
	case "linux", "freebsd", "openbsd":
		return NotifierNotifySend
	}
	return NotifierLog
}
