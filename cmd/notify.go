package cmd

import (
	"fmt"
	"runtime"

	"wifi-toggle/internal/adapter/infrastructure/command"
	"wifi-toggle/internal/pkg/ui"
	"wifi-toggle/internal/types"

	"github.com/spf13/cobra"
)

var (
	notification types.Notification
	styleFlag    string
	removeFlag   string
)

var notifyCmd = &cobra.Command{
	Use:   "notify <message>",
	Short: "Send a notification through the configured backend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		notifier, err := buildNotifier(cfg, runtime.GOOS, command.NewRunnerAdapter(cfg.Timeout))
		if err != nil {
			return err
		}

		n := notification
		n.Message = args[0]
		n.Style = types.NotificationStyle(styleFlag)
		n.Remove = types.RemoveKind(removeFlag)

		if err := notifier.Notify(cmd.Context(), n); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("Sent notification via %s", cfg.ResolveNotifier(runtime.GOOS)))
		return nil
	},
}

func init() {
	flags := notifyCmd.Flags()
	flags.StringVar(&notification.Title, "title", "", "Notification title")
	flags.StringVar(&notification.Subtitle, "subtitle", "", "Notification subtitle")
	flags.StringVar(&notification.Sound, "sound", "", "Sound name, \"default\" for the system sound")
	flags.StringVar(&notification.Action, "action", "", "URL, application or \"logout\" to open on click")
	flags.StringVar(&styleFlag, "style", "", "banner or alert (default from config)")
	flags.StringVar(&notification.Button, "button", "", "Alert button label")
	flags.StringVar(&notification.ButtonAction, "button-action", "", "Alert button action")
	flags.StringVar(&removeFlag, "remove", "", "Remove earlier notifications: all or prior")
	rootCmd.AddCommand(notifyCmd)
}
