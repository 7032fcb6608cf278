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

var channelColumns = []column[models.Channel]{
	{title: "ID", width: 6, cell: func(c models.Channel) string { return itoa(c.ID) }},
	{title: "Name", width: 22, cell: func(c models.Channel) string { return c.Name }},
	{title: "Type", width: 18, cell: func(c models.Channel) string { return forms.FormatChannelTypeLabel(c.Type) }},
	{title: "Configuration", width: 60, cell: func(c models.Channel) string { return forms.FormatConfigForDisplay(c.Config) }},
}

type channelsPage struct {
	ctx      context.Context
	channels service.ChannelService
	cache    *cache.QueryCache

	table   table[models.Channel]
	search  searchBox
	dialog  *channelDialog
	confirm *confirmDialog
}

func newChannelsPage(ctx context.Context, services *service.Services, cfg config.UI) *channelsPage {
	return &channelsPage{
		ctx:      ctx,
		channels: services.ChannelService,
		cache:    services.Cache,
		table:    newTable[models.Channel](models.EntityChannels, cfg.PageSize),
		search:   newSearchBox(pageChannels, cfg.SearchDebounce),
	}
}

func (p *channelsPage) title() string { return "Channels" }

func (p *channelsPage) activate() tea.Cmd { return p.reload() }

func (p *channelsPage) capturesInput() bool {
	return p.dialog != nil || p.confirm != nil || p.search.focused
}

func (p *channelsPage) reload() tea.Cmd {
	params := p.table.pager.params()
	params.Search = p.search.term
	return p.table.load(p.ctx, params, p.channels.List)
}

func (p *channelsPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rowsLoadedMsg[models.Channel]:
		p.table.apply(msg)
	case debounceMsg:
		if p.search.settle(msg) {
			p.table.pager.reset()
			return p.reload()
		}
	case mutationDoneMsg:
		if msg.entity == models.EntityChannels {
			return p.mutationDone(msg)
		}
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *channelsPage) mutationDone(msg mutationDoneMsg) tea.Cmd {
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

func (p *channelsPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case p.confirm != nil:
		return p.updateConfirm(msg)
	case p.dialog != nil:
		return p.updateDialog(msg)
	case p.search.focused:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
			p.search.blur()
			return nil
		}
		return p.search.update(msg)
	}

	switch {
	case key.Matches(msg, keys.search):
		return p.search.focus()
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
	case key.Matches(msg, keys.refresh):
		p.cache.Invalidate(models.EntityChannels)
		return p.reload()
	case key.Matches(msg, keys.newItem):
		p.dialog = newChannelDialog(nil)
	case key.Matches(msg, keys.edit):
		if c, ok := p.table.selected(); ok {
			p.dialog = newChannelDialog(&c)
		}
	case key.Matches(msg, keys.delete):
		if c, ok := p.table.selected(); ok {
			p.confirm = &confirmDialog{label: c.Name, id: c.ID}
		}
	case key.Matches(msg, keys.copy):
		if c, ok := p.table.selected(); ok {
			return copyJSON(c.Config)
		}
	}
	return nil
}

func (p *channelsPage) updateConfirm(msg tea.KeyMsg) tea.Cmd {
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
	return mutate(models.EntityChannels, models.ActionDelete, func() error {
		return p.channels.Delete(p.ctx, id)
	})
}

func (p *channelsPage) updateDialog(msg tea.KeyMsg) tea.Cmd {
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
		return mutate(models.EntityChannels, models.ActionUpdate, func() error {
			_, err := p.channels.Update(p.ctx, id, req)
			return err
		})
	}
	return mutate(models.EntityChannels, models.ActionCreate, func() error {
		_, err := p.channels.Create(p.ctx, req)
		return err
	})
}

func (p *channelsPage) view() string {
	data := p.search.View() + "\n\n"
	if status := p.table.status(); status != "" {
		data += status + "\n"
	} else {
		data += renderTable(channelColumns, p.table.rows, p.table.cursor)
	}
	data += "\n" + p.table.footer() + "\n"

	content := renderPage("Channels", data, "/ search  n new  e edit  d delete  c copy config  [ ] page  r refresh")
	switch {
	case p.confirm != nil:
		return overlay(content, p.confirm.View())
	case p.dialog != nil:
		return overlay(content, p.dialog.View())
	}
	return content
}
