package tui

import (
	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/MKhiriev/channel-console/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var userFields = []struct {
	field, label, placeholder string
}{
	{forms.FieldName, "Name", "John Doe"},
	{forms.FieldEmail, "Email", "user@example.com"},
	{"phone", "Phone", "+1234567890"},
	{"persona", "Persona", "Optional persona"},
}

type userDialog struct {
	form    *forms.UserForm
	inputs  []textinput.Model
	ring    focusRing
	pending bool
	errs    forms.FieldErrors
}

func newUserDialog(existing *models.User) *userDialog {
	form := forms.NewUserForm(existing)
	values := []string{form.Name, form.Email, form.Phone, form.Persona}

	d := &userDialog{form: form, ring: focusRing{n: len(userFields)}}
	for i, f := range userFields {
		d.inputs = append(d.inputs, newInput(values[i], f.placeholder))
	}
	d.inputs[0].Focus()
	return d
}

func (d *userDialog) update(msg tea.KeyMsg) (dialogAction, tea.Cmd) {
	if d.pending {
		return dialogNone, nil
	}

	action, handled := navigate(&d.ring, msg, false)
	if handled {
		d.refocus()
		return action, nil
	}

	var cmd tea.Cmd
	d.inputs[d.ring.i], cmd = d.inputs[d.ring.i].Update(msg)
	return dialogNone, cmd
}

func (d *userDialog) refocus() {
	for i := range d.inputs {
		if i == d.ring.i {
			d.inputs[i].Focus()
		} else {
			d.inputs[i].Blur()
		}
	}
}

// submit copies the inputs into the form and validates it.
func (d *userDialog) submit() (models.UserCreate, error) {
	d.form.Name = d.inputs[0].Value()
	d.form.Email = d.inputs[1].Value()
	d.form.Phone = d.inputs[2].Value()
	d.form.Persona = d.inputs[3].Value()

	req, err := d.form.Submit()
	d.errs, _ = forms.AsFieldErrors(err)
	return req, err
}

func (d *userDialog) View() string {
	title := "Create User"
	if d.form.ID != 0 {
		title = "Edit User #" + itoa(d.form.ID)
	}

	out := titleStyle.Render(title) + "\n\n"
	for i, f := range userFields {
		out += renderField(f.label, d.inputs[i].View(), i == d.ring.i, d.errs.Get(f.field))
	}
	out += "\n" + dialogFooter(d.pending, d.errs, "")
	return overlayBoxStyle.Render(out)
}
