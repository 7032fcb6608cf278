package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchBox is a debounced search input. term is the last settled value and
// the one sent to the backend.
type searchBox struct {
	input    textinput.Model
	focused  bool
	term     string
	debounce debouncer
}

func newSearchBox(page string, delay time.Duration) searchBox {
	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "Search by name..."
	in.Width = 30
	return searchBox{input: in, debounce: newDebouncer(page, delay)}
}

func (s *searchBox) focus() tea.Cmd {
	s.focused = true
	return s.input.Focus()
}

func (s *searchBox) blur() {
	s.focused = false
	s.input.Blur()
}

func (s *searchBox) update(msg tea.KeyMsg) tea.Cmd {
	before := s.input.Value()

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() == before {
		return cmd
	}
	return tea.Batch(cmd, s.changed(s.input.Value()))
}

// changed schedules a debounced query for value.
func (s *searchBox) changed(value string) tea.Cmd {
	return s.debounce.bump(strings.TrimSpace(value))
}

// settle applies a debounce tick and reports whether the term changed, i.e.
// whether a new query from page 0 is due.
func (s *searchBox) settle(msg debounceMsg) bool {
	if !s.debounce.settled(msg) || msg.term == s.term {
		return false
	}
	s.term = msg.term
	return true
}

func (s searchBox) View() string {
	return s.input.View()
}
