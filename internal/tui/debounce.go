package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debouncer delays a search until input has been quiet for delay. Every
// keystroke bumps the tag; only the tick carrying the latest tag fires.
type debouncer struct {
	page  string
	delay time.Duration
	tag   int
}

func newDebouncer(page string, delay time.Duration) debouncer {
	return debouncer{page: page, delay: delay}
}

func (d *debouncer) bump(term string) tea.Cmd {
	d.tag++
	msg := debounceMsg{page: d.page, tag: d.tag, term: term}
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// settled reports whether msg is the latest tick of this debouncer.
func (d debouncer) settled(msg debounceMsg) bool {
	return msg.page == d.page && msg.tag == d.tag
}
