package forms

import (
	"errors"
	"sort"
	"strings"
)

// Form field names used as keys of [FieldErrors].
const (
	FieldName           = "name"
	FieldType           = "type"
	FieldConfig         = "config"
	FieldEmail          = "email"
	FieldUserID         = "user_id"
	FieldChannelID      = "channel_id"
	FieldContactDetails = "contact_details"
)

var (
	// ErrInvalidJSON is returned when a raw JSON field cannot be parsed.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrNotAnObject is returned when a raw JSON field holds valid JSON that
	// is not an object.
	ErrNotAnObject = errors.New("JSON value is not an object")
)

// FieldErrors maps a form field to the message shown next to it. A non-empty
// FieldErrors blocks submission.
type FieldErrors map[string]string

// Error implements error. Fields are listed in lexical order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}

// Get returns the message for field or an empty string.
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

func (fe FieldErrors) errOrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// AsFieldErrors extracts FieldErrors from err.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
