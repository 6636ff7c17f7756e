// Package metrics records what each run observed and did. The process exits after
// one run, so metrics are written for the node_exporter textfile collector instead
// of being served.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"wifi-toggle/internal/types"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "wifi_toggle"

type Metrics struct {
	RunsTotal      *prometheus.CounterVec
	ActionsTotal   *prometheus.CounterVec
	Interfaces     *prometheus.GaugeVec
	WiredActive    prometheus.Gauge
	WirelessActive prometheus.Gauge
	WiredHistory   prometheus.Gauge
	LastRun        prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New registers the metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	return NewWithRegistry(reg, reg)
}

// NewWithRegistry registers the metrics on reg and gathers from g when writing.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	m := &Metrics{
		RunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Reconciliation runs by result",
		}, []string{"result"}),
		ActionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "radio_changes_total",
			Help:      "Wireless radio power changes by action",
		}, []string{"action"}),
		Interfaces: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "interfaces",
			Help:      "Interfaces in the last snapshot by medium and status",
		}, []string{"medium", "status"}),
		WiredActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wired_active",
			Help:      "Whether a wired interface was active in the last snapshot",
		}),
		WirelessActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wireless_active",
			Help:      "Whether a wireless interface was active in the last snapshot",
		}),
		WiredHistory: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "wired_history",
			Help:      "Persisted wired flag read at the start of the last run",
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last run",
		}),
		gatherer: g,
	}

	reg.MustRegister(
		m.RunsTotal,
		m.ActionsTotal,
		m.Interfaces,
		m.WiredActive,
		m.WirelessActive,
		m.WiredHistory,
		m.LastRun,
	)
	return m
}

// ObserveSnapshot records interface counts and per-medium activity.
func (m *Metrics) ObserveSnapshot(ifaces []types.Interface, wiredWasActive bool) {
	m.Interfaces.Reset()
	for _, medium := range []types.Medium{types.MediumWired, types.MediumWireless} {
		for _, status := range []types.Status{types.StatusActive, types.StatusInactive} {
			m.Interfaces.WithLabelValues(medium.String(), status.String()).Set(0)
		}
	}
	for _, iface := range ifaces {
		m.Interfaces.WithLabelValues(iface.Medium.String(), iface.Status.String()).Inc()
	}

	s := types.Summarize(ifaces)
	m.WiredActive.Set(boolToFloat(s.WiredActive))
	m.WirelessActive.Set(boolToFloat(s.WirelessActive))
	m.WiredHistory.Set(boolToFloat(wiredWasActive))
}

// ObserveRadioChange counts one device switched on or off.
func (m *Metrics) ObserveRadioChange(action string) {
	m.ActionsTotal.WithLabelValues(action).Inc()
}

// ObserveRun counts a finished run.
func (m *Metrics) ObserveRun(result string) {
	m.RunsTotal.WithLabelValues(result).Inc()
	m.LastRun.SetToCurrentTime()
}

// WriteTextfile atomically writes all gathered metrics in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.gatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

func boolToFloat(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
