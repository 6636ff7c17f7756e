package cmd

import (
	"fmt"

	"wifi-toggle/internal/adapter/history"
	"wifi-toggle/internal/adapter/infrastructure/command"
	"wifi-toggle/internal/adapter/infrastructure/file"
	"wifi-toggle/internal/adapter/infrastructure/network"
	"wifi-toggle/internal/adapter/notify"
	"wifi-toggle/internal/adapter/radio"
	"wifi-toggle/internal/adapter/snapshot"
	"wifi-toggle/internal/pkg/config"
	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"
)

// adapters holds the OS-facing side of a run.
type adapters struct {
	provider port.InterfaceProvider
	radio    port.RadioController
	notifier port.Notifier
	history  *history.MarkerStore
}

// buildAdapters creates the adapters for the backends cfg selects on goos.
func buildAdapters(cfg *config.Config, goos string) (*adapters, error) {
	classifier, err := types.NewClassifier(cfg.WirelessPattern)
	if err != nil {
		return nil, err
	}

	runner := command.NewRunnerAdapter(cfg.Timeout)
	fileMgr := file.NewManagerAdapter()

	a := &adapters{
		history: history.NewMarkerStore(cfg.History.Marker, fileMgr),
	}

	backend := cfg.ResolveBackend(goos)
	switch backend {
	case config.BackendNetworksetup:
		a.provider = snapshot.NewNetworksetupProvider(runner, classifier, cfg.Commands.Networksetup, cfg.Commands.Ifconfig)
		a.radio = radio.NewNetworksetupController(runner, cfg.Commands.Networksetup)
	case config.BackendNetlink:
		networkMgr := network.NewManagerAdapter()
		a.provider = snapshot.NewNetlinkProvider(networkMgr, fileMgr, classifier, "")
		a.radio = radio.NewNetlinkController(networkMgr)
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}

	a.notifier, err = buildNotifier(cfg, goos, runner)
	if err != nil {
		return nil, err
	}

	logging.GetLogger().WithFields(map[string]interface{}{
		"backend":  backend,
		"notifier": cfg.ResolveNotifier(goos),
		"marker":   cfg.History.Marker,
	}).Debug("Created adapters")
	return a, nil
}

func buildNotifier(cfg *config.Config, goos string, runner port.CommandRunner) (port.Notifier, error) {
	defaults := notify.Defaults{
		Style: cfg.Notifications.Style,
		Sound: cfg.Notifications.Sound,
	}

	switch backend := cfg.ResolveNotifier(goos); backend {
	case config.NotifierApp:
		return notify.NewAppNotifier(runner, cfg.Notifications.NotifierPath, defaults), nil
	case config.NotifierNotifySend:
		return notify.NewNotifySendNotifier(runner, cfg.Notifications.NotifySendPath, defaults), nil
	case config.NotifierLog:
		return notify.NewLogNotifier(defaults), nil
	case config.NotifierNone:
		return notify.NopNotifier{}, nil
	default:
		return nil, fmt.Errorf("unknown notifications backend %q", backend)
	}
}
