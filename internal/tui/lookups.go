package tui

import (
	"context"
	"sort"

	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/MKhiriev/channel-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// lookups resolves ids on mapping rows to user and channel names.
type lookups struct {
	users    []models.User
	channels []models.Channel

	userByID    map[int64]models.User
	channelByID map[int64]models.Channel
}

func newLookups(users []models.User, channels []models.Channel) lookups {
	lk := lookups{
		users:       users,
		channels:    channels,
		userByID:    make(map[int64]models.User, len(users)),
		channelByID: make(map[int64]models.Channel, len(channels)),
	}
	for _, u := range users {
		lk.userByID[u.ID] = u
	}
	for _, c := range channels {
		lk.channelByID[c.ID] = c
	}
	return lk
}

func loadLookups(ctx context.Context, users service.UserService, channels service.ChannelService) tea.Cmd {
	return func() tea.Msg {
		u, err := users.Lookup(ctx)
		if err != nil {
			return lookupsLoadedMsg{err: err}
		}
		c, err := channels.Lookup(ctx)
		if err != nil {
			return lookupsLoadedMsg{err: err}
		}
		return lookupsLoadedMsg{users: u, channels: c}
	}
}

func (lk lookups) userLabel(id int64) string {
	u, ok := lk.userByID[id]
	switch {
	case !ok:
		return "User #" + itoa(id)
	case u.Name != nil && *u.Name != "":
		return *u.Name
	case u.Email != nil && *u.Email != "":
		return *u.Email
	}
	return "User #" + itoa(id)
}

func (lk lookups) channelLabel(id int64) string {
	if c, ok := lk.channelByID[id]; ok {
		return c.Name
	}
	return "Channel #" + itoa(id)
}

func (lk lookups) channelType(id int64) string {
	return lk.channelByID[id].Type
}

// channelTypeFilterOptions returns the registered types, "other" and every
// type seen on channels, unique and sorted.
func channelTypeFilterOptions(channels []models.Channel) []string {
	seen := make(map[string]struct{})
	var out []string
	add := func(t string) {
		if t == "" {
			return
		}
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, t := range forms.ChannelTypes() {
		add(t)
	}
	for _, c := range channels {
		add(c.Type)
	}
	sort.Strings(out)
	return out
}
