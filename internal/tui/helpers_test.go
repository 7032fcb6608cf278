package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/channel-console/internal/cache"
	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/mock"
	"github.com/MKhiriev/channel-console/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"
)

type testServices struct {
	services *service.Services
	users    *mock.MockUserService
	channels *mock.MockChannelService
	mappings *mock.MockUserChannelService
	activity *mock.MockActivityService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	ts := testServices{
		users:    mock.NewMockUserService(ctrl),
		channels: mock.NewMockChannelService(ctrl),
		mappings: mock.NewMockUserChannelService(ctrl),
		activity: mock.NewMockActivityService(ctrl),
	}
	ts.services = &service.Services{
		UserService:        ts.users,
		ChannelService:     ts.channels,
		UserChannelService: ts.mappings,
		ActivityService:    ts.activity,
		Cache:              cache.New(),
	}
	return ts
}

func testUIConfig() config.UI {
	return config.UI{PageSize: 2}
}

var testCtx = context.Background()

// collect runs cmd and flattens batches into the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func findToast(msgs []tea.Msg) (toastMsg, bool) {
	for _, m := range msgs {
		if t, ok := m.(toastMsg); ok {
			return t, true
		}
	}
	return toastMsg{}, false
}

func strPtr(s string) *string { return &s }
