package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFieldsForType(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKeys  []string
		wantFound bool
	}{
		{name: "registered", input: "slack", wantKeys: []string{"bot_token", "channel_id"}, wantFound: true},
		{name: "case insensitive", input: "Microsoft Teams", wantKeys: []string{"client_id", "client_secret", "tenant_id", "bot_id", "bot_password"}, wantFound: true},
		{name: "other", input: "OTHER", wantFound: false},
		{name: "empty", input: "", wantFound: false},
		{name: "unregistered", input: "sms", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, ok := ConfigFieldsForType(tt.input)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantKeys, keys)
		})
	}
}

func TestConfigFieldsForType_ReturnsCopy(t *testing.T) {
	keys, ok := ConfigFieldsForType("slack")
	require.True(t, ok)
	keys[0] = "changed"

	again, _ := ConfigFieldsForType("slack")
	assert.Equal(t, "bot_token", again[0])
}

func TestChannelTypes(t *testing.T) {
	types := ChannelTypes()

	require.Len(t, types, len(channelConfigurations)+1)
	assert.Equal(t, "discord", types[0])
	assert.Equal(t, TypeOther, types[len(types)-1])
	for _, typ := range types[:len(types)-1] {
		assert.True(t, IsRegisteredType(typ), typ)
	}
}

func TestFormatConfigKeyLabel(t *testing.T) {
	tests := map[string]string{
		"bot_token":            "Bot Token",
		"apiKey":               "Api Key",
		"service_account_json": "Service Account Json",
		"slackUserId":          "Slack User Id",
		"id":                   "Id",
		"":                     "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatConfigKeyLabel(in), in)
	}
}

func TestFormatChannelTypeLabel(t *testing.T) {
	assert.Equal(t, "Google Chat", FormatChannelTypeLabel("google chat"))
	assert.Equal(t, "Other", FormatChannelTypeLabel("other"))
	assert.Equal(t, "Microsoft Outlook", FormatChannelTypeLabel("microsoft  outlook"))
}

func TestContactModeForChannel(t *testing.T) {
	tests := []struct {
		channelType string
		want        ContactMode
	}{
		{"slack", ContactModeEmail},
		{"Gmail", ContactModeEmail},
		{"google chat", ContactModeEmail},
		{"discord", ContactModeEmail},
		{"whatsapp", ContactModePhone},
		{"telegram", ContactModePhone},
		{"other", ContactModeJSON},
		{"sms", ContactModeJSON},
		{"", ContactModeJSON},
	}
	for _, tt := range tests {
		t.Run(tt.channelType, func(t *testing.T) {
			assert.Equal(t, tt.want, ContactModeForChannel(tt.channelType))
		})
	}
}

func TestContactMode_Key(t *testing.T) {
	assert.Equal(t, ContactKeyEmail, ContactModeEmail.Key())
	assert.Equal(t, ContactKeyPhone, ContactModePhone.Key())
	assert.Empty(t, ContactModeJSON.Key())
	assert.False(t, ContactModeJSON.IsScalar())
}
