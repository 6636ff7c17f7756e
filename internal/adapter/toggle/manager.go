// Package toggle runs one reconciliation: observe interfaces, decide, switch the
// wireless radio and remember the wired state for the next run.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"wifi-toggle/internal/pkg/logging"
	"wifi-toggle/internal/pkg/metrics"
	"wifi-toggle/internal/pkg/policy"
	"wifi-toggle/internal/port"
	"wifi-toggle/internal/types"
)

// Result describes what a run saw and did.
type Result struct {
	WiredWasActive bool
	Interfaces     []types.Interface
	Decision       policy.Decision
	// Switched lists the devices whose radio was changed, in order.
	Switched []string
}

// Manager wires the reconciliation policy to the OS adapters.
type Manager struct {
	provider port.InterfaceProvider
	radio    port.RadioController
	notifier port.Notifier
	history  port.HistoryStore
	metrics  *metrics.Metrics
}

// NewManager creates a reconciliation manager. m may be nil.
func NewManager(provider port.InterfaceProvider, radio port.RadioController, notifier port.Notifier, history port.HistoryStore, m *metrics.Metrics) *Manager {
	return &Manager{
		provider: provider,
		radio:    radio,
		notifier: notifier,
		history:  history,
		metrics:  m,
	}
}

// Preview evaluates the policy without switching anything or writing history.
func (m *Manager) Preview(ctx context.Context) (*Result, error) {
	wiredWasActive := m.history.Read(ctx)

	ifaces, err := m.provider.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &Result{
		WiredWasActive: wiredWasActive,
		Interfaces:     ifaces,
		Decision:       policy.Evaluate(ifaces, wiredWasActive),
	}, nil
}

// Run performs one reconciliation.
//
// Enumeration and radio failures abort the run before history is written, so the
// next invocation sees the same transition again. A malformed notification does
// not prevent history from being written; it is returned afterwards.
func (m *Manager) Run(ctx context.Context) (*Result, error) {
	result, err := m.run(ctx)
	if m.metrics != nil {
		if err != nil {
			m.metrics.ObserveRun("error")
		} else {
			m.metrics.ObserveRun("ok")
		}
	}
	return result, err
}

func (m *Manager) run(ctx context.Context) (*Result, error) {
	logger := logging.WithComponent("toggle")

	result, err := m.Preview(ctx)
	if err != nil {
		return nil, err
	}
	if m.metrics != nil {
		m.metrics.ObserveSnapshot(result.Interfaces, result.WiredWasActive)
	}

	summary := types.Summarize(result.Interfaces)
	decision := result.Decision
	logger.WithFields(map[string]interface{}{
		"wired_was_active": result.WiredWasActive,
		"wired_active":     summary.WiredActive,
		"wireless_active":  summary.WirelessActive,
		"action":           decision.Action.String(),
	}).Debug("Evaluated interfaces")

	var notifyErr error
	for _, device := range decision.Devices {
		if err := m.radio.SetPower(ctx, device, decision.PowerOn()); err != nil {
			return result, err
		}
		result.Switched = append(result.Switched, device)
		if m.metrics != nil {
			m.metrics.ObserveRadioChange(decision.Action.String())
		}
		logging.WithComponentAndDevice("toggle", device).WithField("action", decision.Action.String()).Info(decision.Notification.Message)

		if err := m.notify(ctx, decision.Notification); err != nil && notifyErr == nil {
			notifyErr = err
		}
	}

	if err := m.history.Write(ctx, decision.NextHistory); err != nil {
		return result, errors.Join(err, notifyErr)
	}

	return result, notifyErr
}

// notify sends n and reports only malformed requests; delivery is best effort.
func (m *Manager) notify(ctx context.Context, n types.Notification) error {
	err := m.notifier.Notify(ctx, n)
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrNotify) {
		return fmt.Errorf("notification rejected: %w", err)
	}
	logging.WithComponent("toggle").WithError(err).Warn("Failed to deliver notification")
	return nil
}
