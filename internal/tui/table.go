package tui

import (
	"context"
	"strconv"

	"github.com/MKhiriev/channel-console/internal/cache"
	"github.com/MKhiriev/channel-console/models"
	tea "github.com/charmbracelet/bubbletea"
)

// table holds the rows of one list page and the key of the query they
// belong to.
type table[T any] struct {
	entity string
	rows   []T
	cursor int
	pager  pager

	key     cache.Key
	loading bool
	loadErr string
}

func newTable[T any](entity string, pageSize int) table[T] {
	return table[T]{entity: entity, pager: newPager(pageSize)}
}

// load starts the query for params and makes its key the current one.
func (t *table[T]) load(ctx context.Context, params models.ListParams, fetch func(context.Context, models.ListParams) ([]T, error)) tea.Cmd {
	key := cache.NewKey(t.entity, params)
	t.key = key
	t.loading = true

	return func() tea.Msg {
		rows, err := fetch(ctx, params)
		return rowsLoadedMsg[T]{key: key, rows: rows, err: err}
	}
}

// apply stores msg when it answers the current query. It reports false for
// superseded results, which are dropped.
func (t *table[T]) apply(msg rowsLoadedMsg[T]) bool {
	if msg.key != t.key {
		return false
	}

	t.loading = false
	if msg.err != nil {
		t.loadErr = humanizeError(msg.err)
		t.pager.canNext = false
		return true
	}

	t.loadErr = ""
	t.rows = msg.rows
	t.pager.observe(len(msg.rows))
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
	return true
}

func (t *table[T]) move(delta int) {
	t.cursor += delta
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t table[T]) selected() (T, bool) {
	var zero T
	if t.cursor < 0 || t.cursor >= len(t.rows) {
		return zero, false
	}
	return t.rows[t.cursor], true
}

func (t table[T]) status() string {
	switch {
	case t.loading:
		return "Loading..."
	case t.loadErr != "":
		return errorStyle.Render(t.loadErr)
	case len(t.rows) == 0:
		return "No records"
	}
	return ""
}

func (t table[T]) footer() string {
	out := t.pager.label()
	if t.pager.index > 0 {
		out = "< " + out
	}
	if t.pager.canNext {
		out += " >"
	}
	return out
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
