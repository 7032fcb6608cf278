package tui

import (
	"testing"

	"github.com/MKhiriev/channel-console/internal/forms"
	"github.com/MKhiriev/channel-console/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelDialog_TypeSwitchRestoresFields(t *testing.T) {
	d := newChannelDialog(nil)
	d.name.SetValue("Alerts")

	d.update(keyType(tea.KeyTab))
	require.Equal(t, channelFocusType, d.ring.i)

	d.update(keyType(tea.KeyRight))
	assert.Equal(t, "discord", d.form.Type())
	require.Len(t, d.fields, 2)
	d.fields[0].SetValue("tok")
	d.fields[1].SetValue("42")

	d.update(keyType(tea.KeyRight))
	assert.Equal(t, "gmail", d.form.Type())
	assert.Len(t, d.fields, 3)
	assert.Equal(t, 5, d.ring.n)

	d.update(keyType(tea.KeyLeft))
	assert.Equal(t, "discord", d.form.Type())
	assert.Equal(t, "tok", d.fields[0].Value())
	assert.Equal(t, "42", d.fields[1].Value())

	req, err := d.submit()
	require.NoError(t, err)
	assert.Equal(t, models.ChannelCreate{
		Name:   "Alerts",
		Type:   "discord",
		Config: map[string]any{"bot_token": "tok", "guild_id": "42"},
	}, req)
}

func TestChannelDialog_RawModeUsesTextarea(t *testing.T) {
	existing := &models.Channel{ID: 3, Name: "Hook", Type: "webhook", Config: map[string]any{"url": "https://x"}}
	d := newChannelDialog(existing)

	assert.True(t, d.form.IsRaw())
	assert.Contains(t, d.types, "webhook")
	assert.Equal(t, "{\n  \"url\": \"https://x\"\n}", d.raw.Value())

	d.raw.SetValue("")
	req, err := d.submit()
	require.NoError(t, err)
	assert.Nil(t, req.Config)
}

func TestChannelDialog_InvalidRawJSON(t *testing.T) {
	d := newChannelDialog(&models.Channel{ID: 3, Name: "Hook", Type: "other"})
	d.raw.SetValue("{oops")

	_, err := d.submit()
	require.Error(t, err)
	assert.Contains(t, d.errs.Get(forms.FieldConfig), "Invalid JSON")
}

func TestUserChannelDialog_ChannelSwitchChangesMode(t *testing.T) {
	lk := newLookups(
		[]models.User{{ID: 7, Name: strPtr("Ann")}},
		[]models.Channel{
			{ID: 1, Name: "Mail", Type: "email"},
			{ID: 2, Name: "WA", Type: "whatsapp"},
			{ID: 3, Name: "Hook", Type: "custom"},
		},
	)
	d := newUserChannelDialog(nil, lk)

	d.update(keyType(tea.KeyRight))
	assert.Equal(t, int64(7), d.form.UserID)

	d.update(keyType(tea.KeyTab))
	d.update(keyType(tea.KeyRight))
	assert.Equal(t, forms.ContactModeEmail, d.form.Mode())

	d.update(keyType(tea.KeyTab))
	d.scalar.SetValue("a@b.com")
	d.update(keyType(tea.KeyShiftTab))

	d.update(keyType(tea.KeyRight))
	assert.Equal(t, forms.ContactModePhone, d.form.Mode())
	assert.Empty(t, d.scalar.Value())

	d.update(keyType(tea.KeyRight))
	assert.Equal(t, forms.ContactModeJSON, d.form.Mode())
	assert.Equal(t, "{\n  \"email\": \"a@b.com\"\n}", d.json.Value())

	d.update(keyType(tea.KeyLeft))
	d.update(keyType(tea.KeyLeft))
	assert.Equal(t, forms.ContactModeEmail, d.form.Mode())
	assert.Equal(t, "a@b.com", d.scalar.Value())

	d.ring.i = mappingFocusPreferred
	d.update(keyRunes(" "))

	req, err := d.submit()
	require.NoError(t, err)
	assert.Equal(t, models.UserChannelCreate{
		UserID:         7,
		ChannelID:      1,
		ContactDetails: map[string]any{"email": "a@b.com"},
		IsPreferred:    true,
	}, req)
}

func TestUserChannelDialog_EnterInTextareaDoesNotSubmit(t *testing.T) {
	lk := newLookups(nil, []models.Channel{{ID: 3, Name: "Hook", Type: "custom"}})
	d := newUserChannelDialog(nil, lk)
	d.ring.i = mappingFocusContact
	d.refocus()

	action, _ := d.update(keyType(tea.KeyEnter))
	assert.Equal(t, dialogNone, action)

	action, _ = d.update(keyType(tea.KeyCtrlS))
	assert.Equal(t, dialogSubmit, action)
}

func TestConfirmDialog(t *testing.T) {
	c := &confirmDialog{label: "Ann", id: 1}

	confirmed, cancelled := c.update(keyRunes("y"))
	assert.True(t, confirmed)
	assert.False(t, cancelled)

	c.pending = true
	confirmed, cancelled = c.update(keyType(tea.KeyEsc))
	assert.False(t, confirmed)
	assert.False(t, cancelled)
	assert.Contains(t, c.View(), "Deleting...")
}
