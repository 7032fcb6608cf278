package tui

import (
	"context"

	"github.com/MKhiriev/channel-console/internal/cache"
	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/MKhiriev/channel-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const allFilter = "All"

type userChannelsPage struct {
	ctx      context.Context
	mappings service.UserChannelService
	users    service.UserService
	channels service.ChannelService
	cache    *cache.QueryCache

	table   table[models.UserChannel]
	lookups lookups

	// userFilter and typeFilter index the filter options; -1 means all.
	userFilter int
	typeFilter int

	dialog  *userChannelDialog
	confirm *confirmDialog
}

func newUserChannelsPage(ctx context.Context, services *service.Services, cfg config.UI) *userChannelsPage {
	return &userChannelsPage{
		ctx:        ctx,
		mappings:   services.UserChannelService,
		users:      services.UserService,
		channels:   services.ChannelService,
		cache:      services.Cache,
		table:      newTable[models.UserChannel](models.EntityUserChannels, cfg.PageSize),
		lookups:    newLookups(nil, nil),
		userFilter: -1,
		typeFilter: -1,
	}
}

func (p *userChannelsPage) title() string { return "User-Channels" }

func (p *userChannelsPage) activate() tea.Cmd {
	return tea.Batch(loadLookups(p.ctx, p.users, p.channels), p.reload())
}

func (p *userChannelsPage) capturesInput() bool {
	return p.dialog != nil || p.confirm != nil
}

func (p *userChannelsPage) typeOptions() []string {
	return channelTypeFilterOptions(p.lookups.channels)
}

func (p *userChannelsPage) params() models.ListParams {
	params := p.table.pager.params()
	if p.userFilter >= 0 && p.userFilter < len(p.lookups.users) {
		id := p.lookups.users[p.userFilter].ID
		params.UserID = &id
	}
	if types := p.typeOptions(); p.typeFilter >= 0 && p.typeFilter < len(types) {
		params.ChannelType = types[p.typeFilter]
	}
	return params
}

func (p *userChannelsPage) reload() tea.Cmd {
	return p.table.load(p.ctx, p.params(), p.mappings.List)
}

// cycle moves a filter index over -1 (all) and n options.
func cycle(idx, n int) int {
	idx++
	if idx >= n {
		return -1
	}
	return idx
}

func (p *userChannelsPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rowsLoadedMsg[models.UserChannel]:
		p.table.apply(msg)
	case lookupsLoadedMsg:
		if msg.err != nil {
			return notify(toastError, "Failed to load users and channels", humanizeError(msg.err))
		}
		p.applyLookups(msg)
	case mutationDoneMsg:
		if msg.entity == models.EntityUserChannels {
			return p.mutationDone(msg)
		}
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

// applyLookups swaps in fresh lookups and keeps the selected filters
// pointing at the same user and type.
func (p *userChannelsPage) applyLookups(msg lookupsLoadedMsg) {
	var userID int64 = -1
	if p.userFilter >= 0 && p.userFilter < len(p.lookups.users) {
		userID = p.lookups.users[p.userFilter].ID
	}
	channelType := ""
	if types := p.typeOptions(); p.typeFilter >= 0 && p.typeFilter < len(types) {
		channelType = types[p.typeFilter]
	}

	p.lookups = newLookups(msg.users, msg.channels)

	p.userFilter = -1
	for i, u := range p.lookups.users {
		if u.ID == userID {
			p.userFilter = i
		}
	}
	p.typeFilter = -1
	for i, t := range p.typeOptions() {
		if t == channelType {
			p.typeFilter = i
		}
	}
}

func (p *userChannelsPage) mutationDone(msg mutationDoneMsg) tea.Cmd {
	if msg.action == models.ActionDelete && p.confirm != nil {
		p.confirm.pending = false
		if msg.err == nil {
			p.confirm = nil
		}
	}
	if msg.action != models.ActionDelete && p.dialog != nil {
		p.dialog.pending = false
		if msg.err == nil {
			p.dialog = nil
		}
	}

	if msg.err != nil {
		return mutationToast(msg)
	}
	return tea.Batch(mutationToast(msg), p.reload())
}

func (p *userChannelsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case p.confirm != nil:
		return p.updateConfirm(msg)
	case p.dialog != nil:
		return p.updateDialog(msg)
	}

	switch {
	case key.Matches(msg, keys.up):
		p.table.move(-1)
	case key.Matches(msg, keys.down):
		p.table.move(1)
	case key.Matches(msg, keys.prevPage):
		if p.table.pager.prev() {
			return p.reload()
		}
	case key.Matches(msg, keys.nextPage):
		if p.table.pager.next() {
			return p.reload()
		}
	case key.Matches(msg, keys.userFilter):
		p.userFilter = cycle(p.userFilter, len(p.lookups.users))
		p.table.pager.reset()
		return p.reload()
	case key.Matches(msg, keys.typeFilter):
		p.typeFilter = cycle(p.typeFilter, len(p.typeOptions()))
		p.table.pager.reset()
		return p.reload()
	case key.Matches(msg, keys.refresh):
		p.cache.Invalidate(models.EntityUserChannels)
		return p.activate()
	case key.Matches(msg, keys.newItem):
		p.dialog = newUserChannelDialog(nil, p.lookups)
	case key.Matches(msg, keys.edit):
		if m, ok := p.table.selected(); ok {
			p.dialog = newUserChannelDialog(&m, p.lookups)
		}
	case key.Matches(msg, keys.delete):
		if m, ok := p.table.selected(); ok {
			label := p.lookups.userLabel(m.UserID) + " / " + p.lookups.channelLabel(m.ChannelID)
			p.confirm = &confirmDialog{label: label, id: m.ID}
		}
	case key.Matches(msg, keys.copy):
		if m, ok := p.table.selected(); ok {
			return copyJSON(m.ContactDetails)
		}
	}
	return nil
}

func (p *userChannelsPage) updateConfirm(msg tea.KeyMsg) tea.Cmd {
	confirmed, cancelled := p.confirm.update(msg)
	if cancelled {
		p.confirm = nil
		return nil
	}
	if !confirmed {
		return nil
	}

	p.confirm.pending = true
	id := p.confirm.id
	return mutate(models.EntityUserChannels, models.ActionDelete, func() error {
		return p.mappings.Delete(p.ctx, id)
	})
}

func (p *userChannelsPage) updateDialog(msg tea.KeyMsg) tea.Cmd {
	action, cmd := p.dialog.update(msg)
	switch action {
	case dialogCancel:
		p.dialog = nil
		return nil
	case dialogNone:
		return cmd
	}

	req, err := p.dialog.submit()
	if err != nil {
		return invalidFormToast()
	}

	p.dialog.pending = true
	if id := p.dialog.form.ID; id != 0 {
		return mutate(models.EntityUserChannels, models.ActionUpdate, func() error {
			_, err := p.mappings.Update(p.ctx, id, req)
			return err
		})
	}
	return mutate(models.EntityUserChannels, models.ActionCreate, func() error {
		_, err := p.mappings.Create(p.ctx, req)
		return err
	})
}

func (p *userChannelsPage) columns() []column[models.UserChannel] {
	lk := p.lookups
	return []column[models.UserChannel]{
		{title: "ID", width: 6, cell: func(m models.UserChannel) string { return itoa(m.ID) }},
		{title: "User", width: 20, cell: func(m models.UserChannel) string { return lk.userLabel(m.UserID) }},
		{title: "Channel", width: 20, cell: func(m models.UserChannel) string { return lk.channelLabel(m.ChannelID) }},
		{title: "Type", width: 16, cell: func(m models.UserChannel) string {
			return forms.FormatChannelTypeLabel(lk.channelType(m.ChannelID))
		}},
		{title: "Contact", width: 36, cell: func(m models.UserChannel) string {
			return forms.FormatContactDetailsForDisplay(m.ContactDetails, lk.channelType(m.ChannelID))
		}},
		{title: "Preferred", width: 9, cell: func(m models.UserChannel) string {
			if m.IsPreferred {
				return "yes"
			}
			return "no"
		}},
	}
}

func (p *userChannelsPage) filtersView() string {
	user := allFilter
	if p.userFilter >= 0 && p.userFilter < len(p.lookups.users) {
		user = p.lookups.userLabel(p.lookups.users[p.userFilter].ID)
	}
	channelType := allFilter
	if types := p.typeOptions(); p.typeFilter >= 0 && p.typeFilter < len(types) {
		channelType = forms.FormatChannelTypeLabel(types[p.typeFilter])
	}
	return "User: " + user + "    Channel type: " + channelType
}

func (p *userChannelsPage) view() string {
	data := p.filtersView() + "\n\n"
	if status := p.table.status(); status != "" {
		data += status + "\n"
	} else {
		data += renderTable(p.columns(), p.table.rows, p.table.cursor)
	}
	data += "\n" + p.table.footer() + "\n"

	content := renderPage("User-Channel Mappings", data,
		"u user filter  t type filter  n new  e edit  d delete  c copy contact  [ ] page  r refresh")
	switch {
	case p.confirm != nil:
		return overlay(content, p.confirm.View())
	case p.dialog != nil:
		return overlay(content, p.dialog.View())
	}
	return content
}
