package tui

import (
	"strings"

	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/MKhiriev/channel-console/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	channelFocusName = iota
	channelFocusType
	channelFocusConfig
)

// channelDialog renders a [forms.ChannelForm]. The config inputs are rebuilt
// from the form every time the type changes.
type channelDialog struct {
	form    *forms.ChannelForm
	types   []string
	typeSel optionSelector

	name   textinput.Model
	fields []textinput.Model
	raw    textarea.Model

	ring    focusRing
	pending bool
	errs    forms.FieldErrors
}

func newChannelDialog(existing *models.Channel) *channelDialog {
	form := forms.NewChannelForm(existing)

	types := forms.ChannelTypes()
	if t := strings.TrimSpace(form.Type()); t != "" && !containsFold(types, t) {
		types = append(types, t)
	}
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = forms.FormatChannelTypeLabel(t)
	}

	d := &channelDialog{
		form:    form,
		types:   types,
		typeSel: optionSelector{labels: labels, idx: indexFold(types, form.Type())},
		name:    newInput(form.Name, "My Slack Channel"),
	}
	d.rebuildConfigInputs()
	d.name.Focus()
	return d
}

func (d *channelDialog) rebuildConfigInputs() {
	d.fields = nil
	for _, k := range d.form.Fields() {
		d.fields = append(d.fields, newInput(d.form.FieldValue(k), "Enter "+forms.FormatConfigKeyLabel(k)))
	}
	d.raw = newJSONArea(d.form.RawJSON, `{ "webhook_url": "https://example.com/hook" }`)

	n := channelFocusConfig
	if d.form.IsRaw() {
		n++
	} else {
		n += len(d.fields)
	}
	d.ring.n = n
	if d.ring.i >= n {
		d.ring.i = n - 1
	}
}

// sync copies the widget values into the form.
func (d *channelDialog) sync() {
	d.form.Name = d.name.Value()
	if d.form.IsRaw() {
		d.form.RawJSON = d.raw.Value()
		return
	}
	for i, k := range d.form.Fields() {
		d.form.SetField(k, d.fields[i].Value())
	}
}

func (d *channelDialog) selectType(delta int) {
	if !d.typeSel.move(delta) {
		return
	}
	d.sync()
	d.form.SetType(d.types[d.typeSel.idx])
	d.rebuildConfigInputs()
}

func (d *channelDialog) update(msg tea.KeyMsg) (dialogAction, tea.Cmd) {
	if d.pending {
		return dialogNone, nil
	}

	inTextarea := d.form.IsRaw() && d.ring.i == channelFocusConfig
	action, handled := navigate(&d.ring, msg, inTextarea)
	if handled {
		d.refocus()
		return action, nil
	}

	var cmd tea.Cmd
	switch i := d.ring.i; {
	case i == channelFocusName:
		d.name, cmd = d.name.Update(msg)
	case i == channelFocusType:
		switch {
		case key.Matches(msg, keys.prevOption):
			d.selectType(-1)
		case key.Matches(msg, keys.nextOption), key.Matches(msg, keys.toggle):
			d.selectType(1)
		}
	case inTextarea:
		d.raw, cmd = d.raw.Update(msg)
	default:
		f := i - channelFocusConfig
		d.fields[f], cmd = d.fields[f].Update(msg)
	}
	return dialogNone, cmd
}

func (d *channelDialog) refocus() {
	if d.ring.i == channelFocusName {
		d.name.Focus()
	} else {
		d.name.Blur()
	}
	for i := range d.fields {
		if d.ring.i == channelFocusConfig+i {
			d.fields[i].Focus()
		} else {
			d.fields[i].Blur()
		}
	}
	if d.form.IsRaw() && d.ring.i == channelFocusConfig {
		d.raw.Focus()
	} else {
		d.raw.Blur()
	}
}

func (d *channelDialog) submit() (models.ChannelCreate, error) {
	d.sync()
	req, err := d.form.Submit()
	d.errs, _ = forms.AsFieldErrors(err)
	return req, err
}

func (d *channelDialog) View() string {
	title := "Create Channel"
	if d.form.ID != 0 {
		title = "Edit Channel #" + itoa(d.form.ID)
	}

	out := titleStyle.Render(title) + "\n\n"
	out += renderField("Name", d.name.View(), d.ring.i == channelFocusName, d.errs.Get(forms.FieldName))
	out += renderField("Type", d.typeSel.View("Select a type"), d.ring.i == channelFocusType, d.errs.Get(forms.FieldType))

	switch {
	case d.form.IsRaw():
		out += renderField("Configuration (JSON)", d.raw.View(), d.ring.i == channelFocusConfig, d.errs.Get(forms.FieldConfig))
	case len(d.fields) > 0:
		for i, k := range d.form.Fields() {
			out += renderField(forms.FormatConfigKeyLabel(k), d.fields[i].View(), d.ring.i == channelFocusConfig+i, "")
		}
		if msg := d.errs.Get(forms.FieldConfig); msg != "" {
			out += "  " + errorStyle.Render(msg) + "\n"
		}
	}

	out += "\n" + dialogFooter(d.pending, d.errs, d.form.Notice())
	return overlayBoxStyle.Render(out)
}

func indexFold(list []string, v string) int {
	for i, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(v)) {
			return i
		}
	}
	return -1
}

func containsFold(list []string, v string) bool {
	return indexFold(list, v) >= 0
}
