//go:build unit

package notify

import (
	"context"
	"testing"

	"wifi-toggle/internal/mock"
	"wifi-toggle/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const notifierPath = "/Applications/Notifier.app/Contents/MacOS/Notifier"

func TestAppArgs(t *testing.T) {
	t.Run("BannerWithTitleAndSubtitle", func(t *testing.T) {
		args := AppArgs(types.Notification{
			Message:  "Ethernet is connected",
			Title:    "Wifi toggled",
			Subtitle: "Wifi is turned off",
		})
		assert.Equal(t, []string{
			"--message", "Ethernet is connected",
			"--type", "banner",
			"--title", "Wifi toggled",
			"--subtitle", "Wifi is turned off",
		}, args)
	})

	t.Run("QuotesStayInsideOneArgument", func(t *testing.T) {
		args := AppArgs(types.Notification{Message: "it's 'quoted'; rm -rf ~"})
		assert.Equal(t, []string{"--message", "it's 'quoted'; rm -rf ~", "--type", "banner"}, args)
	})

	t.Run("AlertWithButtonsAndRemoval", func(t *testing.T) {
		args := AppArgs(types.Notification{
			Message:      "Log out to finish",
			Style:        types.StyleAlert,
			Action:       "logout",
			Sound:        "default",
			Button:       "Log out",
			ButtonAction: "logout",
			Remove:       types.RemovePrior,
		})
		assert.Equal(t, []string{
			"--message", "Log out to finish",
			"--type", "alert",
			"--messageaction", "logout",
			"--sound", "default",
			"--messagebutton", "Log out",
			"--messagebuttonaction", "logout",
			"--remove", "prior",
		}, args)
	})

	t.Run("BannerIgnoresButtons", func(t *testing.T) {
		args := AppArgs(types.Notification{Message: "m", Button: "OK", ButtonAction: "/Applications/Safari.app"})
		assert.Equal(t, []string{"--message", "m", "--type", "banner"}, args)
	})
}

func TestAppNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	runner := mock.NewMockCommandRunner(ctrl)
	notifier := NewAppNotifier(runner, notifierPath, Defaults{Style: types.StyleBanner, Sound: "default"})

	t.Run("AppliesDefaults", func(t *testing.T) {
		runner.EXPECT().Run(ctx, notifierPath, []string{"--message", "hello", "--type", "banner", "--sound", "default"}).Return(nil, nil)
		assert.NoError(t, notifier.Notify(ctx, types.Notification{Message: "hello"}))
	})

	t.Run("InvalidStyleNeverRuns", func(t *testing.T) {
		err := notifier.Notify(ctx, types.Notification{Message: "hello", Style: "popup"})
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrNotify)
	})

	t.Run("InvalidRemoveKindNeverRuns", func(t *testing.T) {
		err := notifier.Notify(ctx, types.Notification{Message: "hello", Remove: "everything"})
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrNotify)
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		runner.EXPECT().Run(ctx, notifierPath, gomock.Any()).Return(nil, assert.AnError)

		err := notifier.Notify(ctx, types.Notification{Message: "hello"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, types.ErrNotify)
		assert.Contains(t, err.Error(), "failed to deliver notification")
	})
}

func TestNotifySendArgs(t *testing.T) {
	t.Run("TitleSubtitleMessage", func(t *testing.T) {
		args := NotifySendArgs(types.Notification{
			Message:  "Ethernet is disconnected",
			Title:    "Wifi toggled",
			Subtitle: "Wifi is turned on",
		})
		assert.Equal(t, []string{"--app-name", "wifi-toggle", "--", "Wifi toggled", "Wifi is turned on\nEthernet is disconnected"}, args)
	})

	t.Run("MessageOnlyBecomesSummary", func(t *testing.T) {
		args := NotifySendArgs(types.Notification{Message: "-x not a flag", Style: types.StyleAlert})
		assert.Equal(t, []string{"--app-name", "wifi-toggle", "--urgency", "critical", "--", "-x not a flag"}, args)
	})
}

func TestNotifySendNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	runner := mock.NewMockCommandRunner(ctrl)
	notifier := NewNotifySendNotifier(runner, "notify-send", Defaults{})

	t.Run("Sends", func(t *testing.T) {
		runner.EXPECT().Run(ctx, "notify-send", []string{"--app-name", "wifi-toggle", "--", "Wifi toggled", "Ethernet is connected"}).Return(nil, nil)
		assert.NoError(t, notifier.Notify(ctx, types.Notification{Title: "Wifi toggled", Message: "Ethernet is connected", Remove: types.RemoveAll}))
	})

	t.Run("Invalid", func(t *testing.T) {
		err := notifier.Notify(ctx, types.Notification{Message: "m", Style: "toast"})
		assert.ErrorIs(t, err, types.ErrNotify)
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		runner.EXPECT().Run(ctx, "notify-send", gomock.Any()).Return(nil, assert.AnError)
		err := notifier.Notify(ctx, types.Notification{Message: "m"})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestLogAndNopNotifier(t *testing.T) {
	ctx := context.Background()

	assert.NoError(t, NewLogNotifier(Defaults{}).Notify(ctx, types.Notification{Message: "m", Title: "t"}))
	assert.ErrorIs(t, NewLogNotifier(Defaults{}).Notify(ctx, types.Notification{Message: "m", Remove: "x"}), types.ErrNotify)

	assert.NoError(t, NopNotifier{}.Notify(ctx, types.Notification{Message: "m"}))
	assert.ErrorIs(t, NopNotifier{}.Notify(ctx, types.Notification{Message: "m", Style: "x"}), types.ErrNotify)
}
