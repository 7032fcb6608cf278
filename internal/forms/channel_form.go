// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/channel-console/models"
)

// ChannelForm is the state of the create/edit channel dialog.
//
// Registered types are edited field by field; "other" and unregistered types
// are edited as raw JSON text. All values ever captured live in a stash, so
// keys hidden by a type switch come back when the operator switches back.
type ChannelForm struct {
	// ID is the channel being edited, 0 for a new channel.
	ID int64

	// Name is the channel name input.
	Name string

	channelType string
	fields      []string
	raw         bool

	// RawJSON is the textarea content while the form is in raw mode.
	RawJSON string

	stash       map[string]any
	rawSeedKeys []string
	pendingRaw  string
	notice      string
}

// NewChannelForm builds the dialog state for existing, or an empty form when
// existing is nil.
func NewChannelForm(existing *models.Channel) *ChannelForm {
	f := &ChannelForm{stash: make(map[string]any)}
	if existing == nil {
		return f
	}

	f.ID = existing.ID
	f.Name = existing.Name
	f.stash = cloneObject(existing.Config)
	f.enterType(existing.Type)

	return f
}

// Type returns the selected channel type as entered.
func (f *ChannelForm) Type() string {
	return f.channelType
}

// IsRaw reports whether the configuration is edited as raw JSON.
func (f *ChannelForm) IsRaw() bool {
	return f.raw
}

// Fields returns the structured configuration keys of the selected type.
func (f *ChannelForm) Fields() []string {
	out := make([]string, len(f.fields))
	copy(out, f.fields)
	return out
}

// FieldValue returns the text shown in the input of a structured field.
func (f *ChannelForm) FieldValue(key string) string {
	return valueText(f.stash[key])
}

// SetField stores text for a structured field. Setting the text a field
// already shows is a no-op, so values decoded from JSON keep their type.
func (f *ChannelForm) SetField(key, text string) {
	if f.FieldValue(key) == text {
		return
	}
	f.stash[key] = text
}

// Notice returns a message about the last type switch, if any.
func (f *ChannelForm) Notice() string {
	return f.notice
}

// SetType switches the selected channel type.
//
// The values of the current mode are captured into the stash first: field
// values as they are, raw text by parsing it. Entering a registered type
// shows its fields filled from matching stash keys; entering a raw type
// shows the captured object as indented JSON. Text that does not parse is
// kept verbatim and restored the next time a raw type is selected.
func (f *ChannelForm) SetType(newType string) {
	f.notice = ""
	if f.raw {
		f.captureRaw()
	}
	f.enterType(newType)
}

func (f *ChannelForm) captureRaw() {
	text := strings.TrimSpace(f.RawJSON)
	if text == "" {
		f.dropRawSeed()
		return
	}

	obj, err := ParseObject(text)
	if err != nil {
		f.pendingRaw = f.RawJSON
		f.notice = "Configuration JSON could not be parsed, it is kept for raw editing"
		return
	}

	f.dropRawSeed()
	for k, v := range obj {
		f.stash[k] = v
	}
}

// dropRawSeed forgets the keys that were shown in the textarea, so keys the
// operator deleted from the JSON stay deleted.
func (f *ChannelForm) dropRawSeed() {
	for _, k := range f.rawSeedKeys {
		delete(f.stash, k)
	}
	f.rawSeedKeys = nil
}

func (f *ChannelForm) enterType(newType string) {
	wasRaw := f.raw

	f.channelType = newType
	f.fields, f.raw = nil, false

	if keys, ok := ConfigFieldsForType(newType); ok {
		f.fields = keys
		f.RawJSON = ""
		return
	}
	if normalizeType(newType) == "" {
		return
	}

	f.raw = true
	if wasRaw && f.pendingRaw == "" {
		// raw -> raw keeps the text untouched
		f.rawSeedKeys = jsonKeys(f.RawJSON)
		return
	}
	if f.pendingRaw != "" {
		f.RawJSON = f.pendingRaw
		f.pendingRaw = ""
		f.notice = ""
		f.rawSeedKeys = jsonKeys(f.RawJSON)
		return
	}

	seed := f.rawSeed()
	f.rawSeedKeys = sortedKeys(seed)
	if len(seed) == 0 {
		f.RawJSON = ""
		return
	}
	f.RawJSON = FormatObject(seed)
}

// rawSeed returns the object a raw textarea starts with: every non-empty value
// in the stash, including keys the previous structured type did not show.
func (f *ChannelForm) rawSeed() map[string]any {
	seed := make(map[string]any, len(f.stash))
	for k, v := range f.stash {
		if !isEmptyValue(v) {
			seed[k] = v
		}
	}
	return seed
}

// StructuredConfig returns the non-empty values of the current type's fields
// in a fresh map, or nil when there are none.
func (f *ChannelForm) StructuredConfig() map[string]any {
	out := project(f.stash, f.fields)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Config returns the configuration object that would be submitted.
func (f *ChannelForm) Config() (map[string]any, error) {
	if !f.raw {
		return f.StructuredConfig(), nil
	}

	text := strings.TrimSpace(f.RawJSON)
	if text == "" {
		return nil, nil
	}
	obj, err := ParseObject(text)
	if err != nil {
		if errors.Is(err, ErrNotAnObject) {
			return nil, fmt.Errorf("Configuration for '%s' type must be a valid JSON object.", FormatChannelTypeLabel(strings.TrimSpace(f.channelType)))
		}
		return nil, errors.New("Invalid JSON: " + strings.TrimPrefix(err.Error(), ErrInvalidJSON.Error()+": "))
	}
	return obj, nil
}

// Submit validates the form and builds the request body. Validation errors
// are returned as [FieldErrors] and nothing is submitted.
func (f *ChannelForm) Submit() (models.ChannelCreate, error) {
	errs := FieldErrors{}

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs[FieldName] = "Name is required"
	}
	channelType := strings.TrimSpace(f.channelType)
	if channelType == "" {
		errs[FieldType] = "Type is required"
	}

	config, err := f.Config()
	if err != nil {
		errs[FieldConfig] = err.Error()
	}

	if err = errs.errOrNil(); err != nil {
		return models.ChannelCreate{}, err
	}

	return models.ChannelCreate{Name: name, Type: channelType, Config: config}, nil
}

func project(obj map[string]any, keys []string) map[string]any {
	out := make(map[string]any, len(keys))
	for _, k := range keys {
		if v, ok := obj[k]; ok && !isEmptyValue(v) {
			out[k] = v
		}
	}
	return out
}

func jsonKeys(text string) []string {
	obj, err := ParseObject(strings.TrimSpace(text))
	if err != nil {
		return nil
	}
	return sortedKeys(obj)
}
