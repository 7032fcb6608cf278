package tui

import (
	"testing"

	"github.com/MKhiriev/channel-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChannelTypeFilterOptions(t *testing.T) {
	channels := []models.Channel{
		{ID: 1, Type: "slack"},
		{ID: 2, Type: "custom"},
		{ID: 3, Type: "custom"},
		{ID: 4, Type: ""},
	}

	assert.Equal(t, []string{
		"custom", "discord", "email", "gmail", "google chat", "microsoft outlook",
		"microsoft teams", "other", "slack", "telegram", "whatsapp",
	}, channelTypeFilterOptions(channels))
}

func TestLookups_Labels(t *testing.T) {
	lk := newLookups(
		[]models.User{{ID: 1, Name: strPtr("Ann")}, {ID: 2, Email: strPtr("bob@example.com")}, {ID: 3}},
		[]models.Channel{{ID: 5, Name: "Ops", Type: "slack"}},
	)

	assert.Equal(t, "Ann", lk.userLabel(1))
	assert.Equal(t, "bob@example.com", lk.userLabel(2))
	assert.Equal(t, "User #3", lk.userLabel(3))
	assert.Equal(t, "User #42", lk.userLabel(42))
	assert.Equal(t, "Ops", lk.channelLabel(5))
	assert.Equal(t, "Channel #6", lk.channelLabel(6))
	assert.Equal(t, "slack", lk.channelType(5))
	assert.Empty(t, lk.channelType(6))
}

func TestUserChannelsPage_Filters(t *testing.T) {
	ts := newTestServices(t)
	p := newUserChannelsPage(testCtx, ts.services, testUIConfig())

	users := []models.User{{ID: 7, Name: strPtr("Ann")}}
	channels := []models.Channel{{ID: 1, Name: "Hook", Type: "custom"}}
	ts.users.EXPECT().Lookup(gomock.Any()).Return(users, nil)
	ts.channels.EXPECT().Lookup(gomock.Any()).Return(channels, nil)

	gomock.InOrder(
		ts.mappings.EXPECT().List(gomock.Any(), gomock.Cond(func(params models.ListParams) bool {
			return params.UserID == nil && params.ChannelType == ""
		})).Return([]models.UserChannel{}, nil),
		ts.mappings.EXPECT().List(gomock.Any(), gomock.Cond(func(params models.ListParams) bool {
			return params.UserID != nil && *params.UserID == 7 && params.ChannelType == "" && *params.Skip == 0
		})).Return([]models.UserChannel{}, nil),
		ts.mappings.EXPECT().List(gomock.Any(), gomock.Cond(func(params models.ListParams) bool {
			return params.UserID != nil && *params.UserID == 7 && params.ChannelType == "custom"
		})).Return([]models.UserChannel{{ID: 3, UserID: 7, ChannelID: 1}}, nil),
	)

	for _, msg := range collect(p.activate()) {
		p.update(msg)
	}
	require.Len(t, p.lookups.users, 1)
	assert.Equal(t, "User: All    Channel type: All", p.filtersView())

	for _, msg := range collect(p.update(keyRunes("u"))) {
		p.update(msg)
	}
	for _, msg := range collect(p.update(keyRunes("t"))) {
		p.update(msg)
	}

	assert.Equal(t, "User: Ann    Channel type: Custom", p.filtersView())
	assert.Len(t, p.table.rows, 1)
	assert.Equal(t, 0, cycle(-1, 1))
	assert.Equal(t, -1, cycle(0, 1))
}

func TestUserChannelsPage_LookupsKeepSelectedFilters(t *testing.T) {
	ts := newTestServices(t)
	p := newUserChannelsPage(testCtx, ts.services, testUIConfig())
	p.applyLookups(lookupsLoadedMsg{
		users:    []models.User{{ID: 7}, {ID: 8}},
		channels: []models.Channel{{ID: 1, Type: "zulip"}},
	})
	p.userFilter = 1
	p.typeFilter = len(p.typeOptions()) - 1 // zulip sorts last

	p.applyLookups(lookupsLoadedMsg{
		users:    []models.User{{ID: 8}},
		channels: []models.Channel{{ID: 1, Type: "zulip"}, {ID: 2, Type: "aaa"}},
	})

	params := p.params()
	require.NotNil(t, params.UserID)
	assert.Equal(t, int64(8), *params.UserID)
	assert.Equal(t, "zulip", params.ChannelType)
}

func TestUserChannelsPage_CopyContactDetails(t *testing.T) {
	ts := newTestServices(t)
	p := newUserChannelsPage(testCtx, ts.services, testUIConfig())
	p.table.rows = []models.UserChannel{{ID: 1, ContactDetails: map[string]any{"email": "a@b.com"}}}

	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { writeClipboard = orig })

	msgs := collect(p.update(keyRunes("c")))

	toast, ok := findToast(msgs)
	require.True(t, ok)
	assert.Equal(t, "Copied to clipboard", toast.title)
	assert.Equal(t, "{\n  \"email\": \"a@b.com\"\n}", copied)
}
