package cmd

import (
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"wifi-toggle/internal/adapter/toggle"
	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/pkg/metrics"

	"github.com/spf13/cobra"
)

// runToggle performs one reconciliation run.
func runToggle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := logging.GetLogger()
	logger.WithField("config_file", configFlag).Debug("Starting run")

	a, err := buildAdapters(cfg, runtime.GOOS)
	if err != nil {
		return err
	}

	var m *metrics.Metrics
	if cfg.Metrics.Textfile != "" {
		m = metrics.New()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := toggle.NewManager(a.provider, a.radio, a.notifier, a.history, m)
	result, runErr := manager.Run(ctx)

	if m != nil {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.WithError(err).Warn("Failed to write metrics")
		}
	}

	if runErr != nil {
		return runErr
	}

	logger.WithFields(map[string]interface{}{
		"action":   result.Decision.Action.String(),
		"switched": result.Switched,
		"wired":    result.Decision.NextHistory,
	}).Debug("Run complete")
	return nil
}
