// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"strings"
)

const (
	// NotAvailable is shown for empty optional values.
	NotAvailable = "N/A"

	maskedValue      = "********"
	maxDisplayLength = 60
)

var sensitiveKeyFragments = []string{"token", "secret", "password", "key", "json"}

// FormatConfigForDisplay renders a channel configuration on one line as
// "Label: value" pairs. Values of sensitive keys are masked.
func FormatConfigForDisplay(config map[string]any) string {
	if len(config) == 0 {
		return NotAvailable
	}

	parts := make([]string, 0, len(config))
	for _, k := range sortedKeys(config) {
		v := valueText(config[k])
		if isSensitiveKey(k) {
			v = maskedValue
		}
		parts = append(parts, FormatConfigKeyLabel(k)+": "+v)
	}
	return truncate(strings.Join(parts, ", "))
}

// FormatContactDetailsForDisplay renders contact details on one line. For
// channels with a scalar contact mode the bare e-mail or phone is shown when
// present; everything else falls back to "Label: value" pairs.
func FormatContactDetailsForDisplay(details map[string]any, channelType string) string {
	if len(details) == 0 {
		return NotAvailable
	}

	if key := ContactModeForChannel(channelType).Key(); key != "" {
		if s, ok := stringValue(details[key]); ok && s != "" {
			return s
		}
	}

	parts := make([]string, 0, len(details))
	for _, k := range sortedKeys(details) {
		parts = append(parts, FormatConfigKeyLabel(k)+": "+valueText(details[k]))
	}
	return truncate(strings.Join(parts, ", "))
}

// OrNA returns s, or [NotAvailable] when s is nil or blank.
func OrNA(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return NotAvailable
	}
	return *s
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	for _, frag := range sensitiveKeyFragments {
		if strings.Contains(k, frag) {
			return true
		}
	}
	return false
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= maxDisplayLength {
		return s
	}
	return string(r[:maxDisplayLength-3]) + "..."
}
