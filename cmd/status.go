package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"wifi-toggle/internal/adapter/notify"
	"wifi-toggle/internal/adapter/toggle"
	"wifi-toggle/internal/pkg/policy"
	"wifi-toggle/internal/pkg/ui"
	"wifi-toggle/internal/types"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show interfaces and what a run would do, without changing anything",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := buildAdapters(cfg, runtime.GOOS)
		if err != nil {
			return err
		}

		manager := toggle.NewManager(a.provider, a.radio, notify.NopNotifier{}, a.history, nil)
		result, err := manager.Preview(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderStatus(result, a.history.Path()))
		return nil
	},
}

func renderStatus(result *toggle.Result, marker string) string {
	rows := make([][]string, 0, len(result.Interfaces))
	for _, iface := range result.Interfaces {
		rows = append(rows, []string{
			iface.DisplayName,
			iface.DeviceID,
			iface.Medium.String(),
			ui.Status(iface.Active(), iface.Status.String()),
		})
	}

	summary := types.Summarize(result.Interfaces)
	action := ui.Muted(result.Decision.Action.String())
	if result.Decision.Action != policy.NoAction {
		action = ui.Accent(result.Decision.Action.String()) + " " + strings.Join(result.Decision.Devices, ", ")
	}

	var b strings.Builder
	if len(rows) == 0 {
		b.WriteString(ui.Muted("no interfaces found") + "\n")
	} else {
		b.WriteString(ui.Table([]string{"SERVICE", "DEVICE", "MEDIUM", "STATUS"}, rows) + "\n")
	}
	b.WriteString(ui.KeyValues("",
		ui.KV("wired active", ui.Bool(summary.WiredActive)),
		ui.KV("wireless active", ui.Bool(summary.WirelessActive)),
		ui.KV("wired last run", ui.Bool(result.WiredWasActive)),
		ui.KV("marker", marker),
		ui.KV("next action", action),
	))
	return b.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
