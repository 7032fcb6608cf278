package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/channel-console/internal/service"
	"github.com/MKhiriev/channel-console/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const activityLimit = 100

var activityColumns = []column[models.ActivityEntry]{
	{title: "Time", width: 19, cell: func(e models.ActivityEntry) string {
		return e.CreatedAt.Local().Format("2006-01-02 15:04:05")
	}},
	{title: "Entity", width: 12, cell: func(e models.ActivityEntry) string { return e.Entity }},
	{title: "Action", width: 7, cell: func(e models.ActivityEntry) string { return e.Action }},
	{title: "Target", width: 7, cell: func(e models.ActivityEntry) string {
		if e.TargetID == 0 {
			return "-"
		}
		return itoa(e.TargetID)
	}},
	{title: "OK", width: 3, cell: func(e models.ActivityEntry) string {
		if e.Success {
			return "✓"
		}
		return "✗"
	}},
	{title: "Message", width: 60, cell: func(e models.ActivityEntry) string { return e.Message }},
}

// activityPage shows the newest journal entries.
type activityPage struct {
	ctx      context.Context
	activity service.ActivityService

	entries []models.ActivityEntry
	cursor  int
	loading bool
	status  string
}

func newActivityPage(ctx context.Context, services *service.Services) *activityPage {
	return &activityPage{ctx: ctx, activity: services.ActivityService}
}

func (p *activityPage) title() string { return "Activity" }

func (p *activityPage) capturesInput() bool { return false }

func (p *activityPage) activate() tea.Cmd {
	p.loading = true
	return func() tea.Msg {
		entries, err := p.activity.Recent(p.ctx, activityLimit)
		return activityLoadedMsg{entries: entries, err: err}
	}
}

func (p *activityPage) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case activityLoadedMsg:
		p.loading = false
		switch {
		case errors.Is(msg.err, service.ErrJournalDisabled):
			p.status = "The activity journal is disabled"
		case msg.err != nil:
			p.status = errorStyle.Render(humanizeError(msg.err))
		case len(msg.entries) == 0:
			p.status = "No activity yet"
		default:
			p.status = ""
		}
		p.entries = msg.entries
		if p.cursor >= len(p.entries) {
			p.cursor = max(len(p.entries)-1, 0)
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			p.cursor = max(p.cursor-1, 0)
		case key.Matches(msg, keys.down):
			p.cursor = min(p.cursor+1, max(len(p.entries)-1, 0))
		case key.Matches(msg, keys.refresh):
			return p.activate()
		}
	}
	return nil
}

func (p *activityPage) view() string {
	var data string
	switch {
	case p.loading:
		data = "Loading...\n"
	case p.status != "":
		data = p.status + "\n"
	default:
		data = renderTable(activityColumns, p.entries, p.cursor)
	}
	return renderPage("Activity", data, "r refresh")
}
