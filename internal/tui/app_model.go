package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/channel-console/internal/config"
	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root model: a row of tabs, the active page and the toast
// stack. Keys go to the active page; every other message is broadcast, so
// async results reach their page even after a tab switch.
type appModel struct {
	pages  []page
	active int
	toasts toasts
	width  int
}

func newAppModel(ctx context.Context, services *service.Services, cfg config.UI) appModel {
	return appModel{
		pages: []page{
			newUsersPage(ctx, services, cfg),
			newChannelsPage(ctx, services, cfg),
			newUserChannelsPage(ctx, services, cfg),
			newActivityPage(ctx, services),
		},
		toasts: newToasts(),
	}
}

func (m appModel) Init() tea.Cmd {
	return m.pages[m.active].activate()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case toastMsg:
		cmd := m.toasts.push(msg)
		return m, cmd
	case toastExpiredMsg:
		m.toasts.expire(msg.id)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	cmds := make([]tea.Cmd, 0, len(m.pages))
	for _, p := range m.pages {
		cmds = append(cmds, p.update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m, tea.Quit
	}

	current := m.pages[m.active]
	if current.capturesInput() {
		return m, current.update(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.tab):
		return m.switchTo((m.active + 1) % len(m.pages))
	case key.Matches(msg, keys.backtab):
		return m.switchTo((m.active - 1 + len(m.pages)) % len(m.pages))
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(m.pages) {
		return m.switchTo(int(s[0] - '1'))
	}

	return m, current.update(msg)
}

func (m appModel) switchTo(idx int) (tea.Model, tea.Cmd) {
	if idx == m.active {
		return m, nil
	}
	m.active = idx
	return m, m.pages[idx].activate()
}

func (m appModel) View() string {
	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		label := itoa(int64(i+1)) + " " + p.title()
		if i == m.active {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")
	b.WriteString(m.pages[m.active].view())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab / 1-4 switch page  q quit"))
	if t := m.toasts.View(); t != "" {
		b.WriteString("\n\n")
		b.WriteString(t)
	}
	return appStyle.Render(b.String())
}
