// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TypeOther is the catch-all channel type. Its configuration, like the
// configuration of any unregistered type, is edited as raw JSON.
const TypeOther = "other"

type channelConfig struct {
	name string
	keys []string
}

// channelConfigurations lists the registered channel types in display order
// together with the configuration keys each of them expects.
var channelConfigurations = []channelConfig{
	{name: "discord", keys: []string{"bot_token", "guild_id"}},
	{name: "gmail", keys: []string{"client_id", "client_secret", "refresh_token"}},
	{name: "google chat", keys: []string{"service_account_json", "space_id"}},
	{name: "microsoft outlook", keys: []string{"client_id", "client_secret", "tenant_id", "refresh_token"}},
	{name: "microsoft teams", keys: []string{"client_id", "client_secret", "tenant_id", "bot_id", "bot_password"}},
	{name: "email", keys: []string{"smtp_server", "smtp_port", "smtp_user", "smtp_password"}},
	{name: "slack", keys: []string{"bot_token", "channel_id"}},
	{name: "telegram", keys: []string{"bot_token", "chat_id"}},
	{name: "whatsapp", keys: []string{"api_key", "phone_number_id"}},
}

// ConfigFieldsForType returns the ordered configuration keys of a registered
// channel type. The lookup is case-insensitive. For "other", an empty type
// and every unregistered type it returns false: those are edited as raw JSON.
func ConfigFieldsForType(channelType string) ([]string, bool) {
	t := normalizeType(channelType)
	if t == "" || t == TypeOther {
		return nil, false
	}
	for _, c := range channelConfigurations {
		if c.name == t {
			keys := make([]string, len(c.keys))
			copy(keys, c.keys)
			return keys, true
		}
	}
	return nil, false
}

// IsRegisteredType reports whether channelType has structured config fields.
func IsRegisteredType(channelType string) bool {
	_, ok := ConfigFieldsForType(channelType)
	return ok
}

// ChannelTypes returns every registered type in registry order followed by
// [TypeOther].
func ChannelTypes() []string {
	types := make([]string, 0, len(channelConfigurations)+1)
	for _, c := range channelConfigurations {
		types = append(types, c.name)
	}
	return append(types, TypeOther)
}

// FormatConfigKeyLabel turns a snake_case or camelCase key into Title Case:
// "bot_token" becomes "Bot Token", "apiKey" becomes "Api Key".
func FormatConfigKeyLabel(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return titleWords(strings.Fields(b.String()))
}

// FormatChannelTypeLabel capitalizes every word of a channel type:
// "google chat" becomes "Google Chat".
func FormatChannelTypeLabel(channelType string) string {
	return titleWords(strings.Fields(channelType))
}

func titleWords(words []string) string {
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func normalizeType(channelType string) string {
	return strings.ToLower(strings.TrimSpace(channelType))
}
