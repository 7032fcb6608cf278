// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

// ContactMode is the input widget used for a mapping's contact details.
type ContactMode string

const (
	ContactModeEmail ContactMode = "email"
	ContactModePhone ContactMode = "phone"
	ContactModeJSON  ContactMode = "json"
)

// Keys of the JSON object that scalar contact modes are encoded into.
const (
	ContactKeyEmail = "email"
	ContactKeyPhone = "phone"
)

var channelContactModes = map[string]ContactMode{
	"whatsapp":          ContactModePhone,
	"telegram":          ContactModePhone,
	"email":             ContactModeEmail,
	"gmail":             ContactModeEmail,
	"microsoft outlook": ContactModeEmail,
	"microsoft teams":   ContactModeEmail,
	"google chat":       ContactModeEmail,
	"slack":             ContactModeEmail,
	"discord":           ContactModeEmail,
}

// ContactModeForChannel resolves the contact input mode for a channel type.
// Unmapped and empty types resolve to [ContactModeJSON].
func ContactModeForChannel(channelType string) ContactMode {
	if mode, ok := channelContactModes[normalizeType(channelType)]; ok {
		return mode
	}
	return ContactModeJSON
}

// Key returns the JSON key a scalar mode is stored under, or an empty
// string for [ContactModeJSON].
func (m ContactMode) Key() string {
	switch m {
	case ContactModeEmail:
		return ContactKeyEmail
	case ContactModePhone:
		return ContactKeyPhone
	default:
		return ""
	}
}

// IsScalar reports whether the mode edits a single string value.
func (m ContactMode) IsScalar() bool {
	return m.Key() != ""
}

// Label is the caption of the contact input.
func (m ContactMode) Label() string {
	switch m {
	case ContactModeEmail:
		return "Email Address"
	case ContactModePhone:
		return "Phone Number"
	default:
		return "Contact Details (JSON)"
	}
}

// Placeholder is the hint shown in an empty contact input.
func (m ContactMode) Placeholder() string {
	switch m {
	case ContactModeEmail:
		return "user@example.com"
	case ContactModePhone:
		return "+1234567890"
	default:
		return `{ "slackUserId": "U123ABC" }`
	}
}
