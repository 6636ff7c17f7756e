package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"wifi-toggle/internal/pkg/config"
	"wifi-toggle/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag   string
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wifi-toggle",
	Short: "wifi-toggle turns wifi off while a wired connection is active",
	Long: `wifi-toggle inspects the network interfaces once and switches the wireless
radio off when a wired interface has just become active, or back on when the
wired connection has gone away. Run it from a network change hook.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runToggle,
}

// loadConfig reads --config (or the defaults), applies --log-level and sets up logging.
func loadConfig() (*config.Config, error) {
	return loadConfigIn(executableDir())
}

// loadConfigIn is loadConfig with the bundled Notifier looked up under exeDir.
func loadConfigIn(exeDir string) (*config.Config, error) {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}

	discovered := cfg.DiscoverNotifier(exeDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logging.InitLogger(cfg.Logging)
	if discovered {
		logging.WithComponent("config").WithField("path", cfg.Notifications.NotifierPath).Debug("Using bundled Notifier")
	}
	return cfg, nil
}

// executableDir returns the directory of the running binary, or "" if unknown.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// Execute runs the root command. Errors are printed once, by CheckErr.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")
}
