package tui

import (
	"github.com/MKhiriev/channel-console/internal/app"
	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 50

// dialogAction is what a key press asks the owning page to do.
type dialogAction int

const (
	dialogNone dialogAction = iota
	dialogSubmit
	dialogCancel
)

// focusRing cycles focus over n positions.
type focusRing struct {
	n, i int
}

func (f *focusRing) next() { f.i = (f.i + 1) % f.n }
func (f *focusRing) prev() { f.i = (f.i - 1 + f.n) % f.n }

// navigate handles the keys shared by every form dialog. handled is false
// for keys the focused widget should receive.
func navigate(ring *focusRing, msg tea.KeyMsg, inTextarea bool) (action dialogAction, handled bool) {
	switch {
	case key.Matches(msg, keys.esc):
		return dialogCancel, true
	case key.Matches(msg, keys.submit):
		return dialogSubmit, true
	case key.Matches(msg, keys.tab):
		ring.next()
		return dialogNone, true
	case key.Matches(msg, keys.backtab):
		ring.prev()
		return dialogNone, true
	case key.Matches(msg, keys.enter) && !inTextarea:
		return dialogSubmit, true
	}
	return dialogNone, false
}

func newInput(value, placeholder string) textinput.Model {
	in := textinput.New()
	in.Width = inputWidth
	in.Prompt = ""
	in.Placeholder = placeholder
	in.SetValue(value)
	return in
}

func newJSONArea(value, placeholder string) textarea.Model {
	ta := textarea.New()
	ta.SetWidth(inputWidth + 10)
	ta.SetHeight(8)
	ta.ShowLineNumbers = false
	ta.Placeholder = placeholder
	ta.SetValue(value)
	return ta
}

// optionSelector is a left/right cycling choice.
type optionSelector struct {
	labels []string
	idx    int
}

func (s *optionSelector) move(delta int) bool {
	if len(s.labels) == 0 {
		return false
	}
	if s.idx < 0 {
		s.idx = 0
		return true
	}
	next := (s.idx + delta + len(s.labels)) % len(s.labels)
	changed := next != s.idx
	s.idx = next
	return changed
}

func (s optionSelector) View(empty string) string {
	if s.idx < 0 || s.idx >= len(s.labels) {
		return "< " + empty + " >"
	}
	return "< " + s.labels[s.idx] + " >"
}

func dialogFooter(pending bool, fieldErrs forms.FieldErrors, notice string) string {
	out := ""
	if notice != "" {
		out += helpStyle.Render(notice) + "\n"
	}
	if len(fieldErrs) > 0 {
		out += errorStyle.Render(app.MsgFormInvalid) + "\n"
	}
	if pending {
		return out + helpStyle.Render("Saving...")
	}
	return out + helpStyle.Render("tab next field  enter / ctrl+s save  esc cancel")
}
