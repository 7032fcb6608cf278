package tui

import (
	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/MKhiriev/channel-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	mappingFocusUser = iota
	mappingFocusChannel
	mappingFocusContact
	mappingFocusPreferred
	mappingFocusCount
)

// userChannelDialog renders a [forms.UserChannelForm]. The contact widget
// is a single-line input in email/phone mode and a JSON textarea otherwise.
type userChannelDialog struct {
	form     *forms.UserChannelForm
	users    []models.User
	channels []models.Channel

	userSel    optionSelector
	channelSel optionSelector
	scalar     textinput.Model
	json       textarea.Model

	ring    focusRing
	pending bool
	errs    forms.FieldErrors
}

func newUserChannelDialog(existing *models.UserChannel, lk lookups) *userChannelDialog {
	form := forms.NewUserChannelForm(existing, lk.channels)

	d := &userChannelDialog{
		form:     form,
		users:    lk.users,
		channels: lk.channels,
		ring:     focusRing{n: mappingFocusCount},
	}

	d.userSel.idx = -1
	for i, u := range lk.users {
		d.userSel.labels = append(d.userSel.labels, lk.userLabel(u.ID))
		if u.ID == form.UserID {
			d.userSel.idx = i
		}
	}
	d.channelSel.idx = -1
	for i, c := range lk.channels {
		d.channelSel.labels = append(d.channelSel.labels, c.Name+" ("+forms.FormatChannelTypeLabel(c.Type)+")")
		if c.ID == form.ChannelID {
			d.channelSel.idx = i
		}
	}

	d.rebuildContact()
	return d
}

func (d *userChannelDialog) rebuildContact() {
	mode := d.form.Mode()
	d.scalar = newInput(d.form.Input, mode.Placeholder())
	d.json = newJSONArea(d.form.Input, mode.Placeholder())
	d.refocus()
}

func (d *userChannelDialog) syncContact() {
	if d.form.Mode().IsScalar() {
		d.form.Input = d.scalar.Value()
	} else {
		d.form.Input = d.json.Value()
	}
}

func (d *userChannelDialog) selectChannel(delta int) {
	if !d.channelSel.move(delta) {
		return
	}
	d.syncContact()
	d.form.SelectChannel(d.channels[d.channelSel.idx].ID, d.channels)
	d.rebuildContact()
}

func (d *userChannelDialog) selectUser(delta int) {
	if d.userSel.move(delta) {
		d.form.UserID = d.users[d.userSel.idx].ID
	}
}

func (d *userChannelDialog) update(msg tea.KeyMsg) (dialogAction, tea.Cmd) {
	if d.pending {
		return dialogNone, nil
	}

	inTextarea := !d.form.Mode().IsScalar() && d.ring.i == mappingFocusContact
	action, handled := navigate(&d.ring, msg, inTextarea)
	if handled {
		d.refocus()
		return action, nil
	}

	var cmd tea.Cmd
	left, right := key.Matches(msg, keys.prevOption), key.Matches(msg, keys.nextOption)
	switch d.ring.i {
	case mappingFocusUser:
		if left {
			d.selectUser(-1)
		} else if right {
			d.selectUser(1)
		}
	case mappingFocusChannel:
		if left {
			d.selectChannel(-1)
		} else if right {
			d.selectChannel(1)
		}
	case mappingFocusContact:
		if inTextarea {
			d.json, cmd = d.json.Update(msg)
		} else {
			d.scalar, cmd = d.scalar.Update(msg)
		}
	case mappingFocusPreferred:
		if key.Matches(msg, keys.toggle) || left || right {
			d.form.IsPreferred = !d.form.IsPreferred
		}
	}
	return dialogNone, cmd
}

func (d *userChannelDialog) refocus() {
	d.scalar.Blur()
	d.json.Blur()
	if d.ring.i != mappingFocusContact {
		return
	}
	if d.form.Mode().IsScalar() {
		d.scalar.Focus()
	} else {
		d.json.Focus()
	}
}

func (d *userChannelDialog) submit() (models.UserChannelCreate, error) {
	d.syncContact()
	req, err := d.form.Submit()
	d.errs, _ = forms.AsFieldErrors(err)
	return req, err
}

func (d *userChannelDialog) View() string {
	title := "Create User-Channel Mapping"
	if d.form.ID != 0 {
		title = "Edit Mapping #" + itoa(d.form.ID)
	}

	mode := d.form.Mode()
	contact := d.scalar.View()
	if !mode.IsScalar() {
		contact = d.json.View()
	}
	preferred := "[ ] Preferred channel"
	if d.form.IsPreferred {
		preferred = "[x] Preferred channel"
	}

	out := titleStyle.Render(title) + "\n\n"
	out += renderField("User", d.userSel.View("Select a user"), d.ring.i == mappingFocusUser, d.errs.Get(forms.FieldUserID))
	out += renderField("Channel", d.channelSel.View("Select a channel"), d.ring.i == mappingFocusChannel, d.errs.Get(forms.FieldChannelID))
	out += renderField(mode.Label(), contact, d.ring.i == mappingFocusContact, d.errs.Get(forms.FieldContactDetails))
	out += renderField("", preferred, d.ring.i == mappingFocusPreferred, "")

	out += "\n" + dialogFooter(d.pending, d.errs, d.form.Notice())
	return overlayBoxStyle.Render(out)
}
