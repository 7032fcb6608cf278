package tui

import (
	"github.com/MKhiriev/channel-console/internal/app"
	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// page is one tab of the console.
type page interface {
	title() string
	// activate is called whenever the tab becomes visible.
	activate() tea.Cmd
	update(msg tea.Msg) tea.Cmd
	view() string
	// capturesInput reports whether keys belong to a dialog or input, so
	// global shortcuts must not fire.
	capturesInput() bool
}

const (
	pageUsers        = "users"
	pageChannels     = "channels"
	pageUserChannels = "user-channels"
	pageActivity     = "activity"
)

var writeClipboard = clipboard.WriteAll

func mutate(entity, action string, fn func() error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{entity: entity, action: action, err: fn()}
	}
}

func mutationToast(msg mutationDoneMsg) tea.Cmd {
	texts := app.Texts(msg.entity, msg.action)
	if msg.err != nil {
		return notify(toastError, texts.FailureTitle, humanizeError(msg.err))
	}
	return notify(toastSuccess, texts.SuccessTitle, texts.SuccessDescription)
}

func invalidFormToast() tea.Cmd {
	return notify(toastError, app.MsgFormInvalid, "")
}

// copyJSON puts obj on the clipboard as indented JSON.
func copyJSON(obj map[string]any) tea.Cmd {
	if len(obj) == 0 {
		return notify(toastInfo, app.MsgNothingToCopy, "")
	}
	text := forms.FormatObject(obj)
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return toastMsg{kind: toastError, title: app.MsgCopyFailed, body: err.Error()}
		}
		return toastMsg{kind: toastSuccess, title: app.MsgCopied}
	}
}

// overlay draws a dialog below the page content.
func overlay(content, dialog string) string {
	if dialog == "" {
		return content
	}
	return content + "\n\n" + dialog
}
