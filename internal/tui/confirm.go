package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// confirmDialog asks before a record is deleted.
type confirmDialog struct {
	label   string
	id      int64
	pending bool
}

// update reports whether the operator confirmed or cancelled. Keys are
// ignored while the delete is pending.
func (c *confirmDialog) update(msg tea.KeyMsg) (confirmed, cancelled bool) {
	if c.pending {
		return false, false
	}
	switch {
	case key.Matches(msg, keys.yes):
		return true, false
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		return false, true
	}
	return false, false
}

func (c *confirmDialog) View() string {
	content := titleStyle.Render("Are you sure?") + "\n\n"
	content += "Delete \"" + c.label + "\"? This action cannot be undone.\n\n"
	if c.pending {
		content += helpStyle.Render("Deleting...")
	} else {
		content += helpStyle.Render("y delete    n cancel")
	}
	return overlayBoxStyle.Render(content)
}
