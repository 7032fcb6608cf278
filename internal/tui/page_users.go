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

var userColumns = []column[models.User]{
	{title: "ID", width: 6, cell: func(u models.User) string { return itoa(u.ID) }},
	{title: "Name", width: 20, cell: func(u models.User) string { return forms.OrNA(u.Name) }},
	{title: "Email", width: 28, cell: func(u models.User) string { return forms.OrNA(u.Email) }},
	{title: "Phone", width: 16, cell: func(u models.User) string { return forms.OrNA(u.Phone) }},
	{title: "Persona", width: 20, cell: func(u models.User) string { return forms.OrNA(u.Persona) }},
}

type usersPage struct {
	ctx   context.Context
	users service.UserService
	cache *cache.QueryCache

	table   table[models.User]
	search  searchBox
	dialog  *userDialog
	confirm *confirmDialog
}

func newUsersPage(ctx context.Context, services *service.Services, cfg config.UI) *usersPage {
	return &usersPage{
		ctx:    ctx,
		users:  services.UserService,
		cache:  services.Cache,
		table:  newTable[models.User](models.EntityUsers, cfg.PageSize),
		search: newSearchBox(pageUsers, cfg.SearchDebounce),
	}
}

func (p *usersPage) title() string { return "Users" }

func (p *usersPage) activate() tea.Cmd { return p.reload() }

func (p *usersPage) capturesInput() bool {
	return p.dialog != nil || p.confirm != nil || p.search.focused
}

func (p *usersPage) reload() tea.Cmd {
	params := p.table.pager.params()
	params.Search = p.search.term
	return p.table.load(p.ctx, params, p.users.List)
}

func (p *usersPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rowsLoadedMsg[models.User]:
		p.table.apply(msg)
	case debounceMsg:
		if p.search.settle(msg) {
			p.table.pager.reset()
			return p.reload()
		}
	case mutationDoneMsg:
		if msg.entity == models.EntityUsers {
			return p.mutationDone(msg)
		}
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return nil
}

func (p *usersPage) mutationDone(msg mutationDoneMsg) tea.Cmd {
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

func (p *usersPage) handleKey(msg tea.KeyMsg) tea.Cmd {
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
		p.cache.Invalidate(models.EntityUsers)
		return p.reload()
	case key.Matches(msg, keys.newItem):
		p.dialog = newUserDialog(nil)
	case key.Matches(msg, keys.edit):
		if u, ok := p.table.selected(); ok {
			p.dialog = newUserDialog(&u)
		}
	case key.Matches(msg, keys.delete):
		if u, ok := p.table.selected(); ok {
			label := forms.OrNA(u.Name)
			if u.Name == nil {
				label = "User #" + itoa(u.ID)
			}
			p.confirm = &confirmDialog{label: label, id: u.ID}
		}
	}
	return nil
}

func (p *usersPage) updateConfirm(msg tea.KeyMsg) tea.Cmd {
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
	return mutate(models.EntityUsers, models.ActionDelete, func() error {
		return p.users.Delete(p.ctx, id)
	})
}

func (p *usersPage) updateDialog(msg tea.KeyMsg) tea.Cmd {
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
		return mutate(models.EntityUsers, models.ActionUpdate, func() error {
			_, err := p.users.Update(p.ctx, id, req)
			return err
		})
	}
	return mutate(models.EntityUsers, models.ActionCreate, func() error {
		_, err := p.users.Create(p.ctx, req)
		return err
	})
}

func (p *usersPage) view() string {
	data := p.search.View() + "\n\n"
	if status := p.table.status(); status != "" {
		data += status + "\n"
	} else {
		data += renderTable(userColumns, p.table.rows, p.table.cursor)
	}
	data += "\n" + p.table.footer() + "\n"

	content := renderPage("Users", data, "/ search  n new  e edit  d delete  [ ] page  r refresh")
	switch {
	case p.confirm != nil:
		return overlay(content, p.confirm.View())
	case p.dialog != nil:
		return overlay(content, p.dialog.View())
	}
	return content
}
