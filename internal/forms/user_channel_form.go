// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"errors"
	"strings"

	"github.com/MKhiriev/channel-console/models"
)

// UserChannelForm is the state of the create/edit user-channel mapping dialog.
//
// The contact input changes with the selected channel: a single e-mail or
// phone input for channels with a known contact method, a JSON textarea for
// the rest. The contact object is accumulated in a stash while the channel
// changes, so a scalar typed in one mode reappears when its mode returns.
type UserChannelForm struct {
	// ID is the mapping being edited, 0 for a new mapping.
	ID int64

	UserID    int64
	ChannelID int64

	// Input is the contact input content: a scalar in email/phone mode,
	// JSON text in json mode.
	Input string

	IsPreferred bool

	mode       ContactMode
	stash      map[string]any
	pendingRaw string
	notice     string
}

// NewUserChannelForm builds the dialog state for existing, or an empty form
// when existing is nil. channels is used to resolve the initial contact mode.
func NewUserChannelForm(existing *models.UserChannel, channels []models.Channel) *UserChannelForm {
	f := &UserChannelForm{mode: ContactModeJSON, stash: make(map[string]any)}
	if existing == nil {
		return f
	}

	f.ID = existing.ID
	f.UserID = existing.UserID
	f.ChannelID = existing.ChannelID
	f.IsPreferred = existing.IsPreferred
	f.stash = cloneObject(existing.ContactDetails)
	f.mode = modeForChannelID(existing.ChannelID, channels)

	if f.mode.IsScalar() && len(f.stash) > 0 {
		if _, ok := stringValue(f.stash[f.mode.Key()]); !ok {
			f.notice = "Existing contact details have no " + f.mode.Key() + ", switch to a JSON channel to see them"
		}
	}
	f.unfold()

	return f
}

// Mode returns the current contact input mode.
func (f *UserChannelForm) Mode() ContactMode {
	return f.mode
}

// Notice returns a message about the last channel switch, if any.
func (f *UserChannelForm) Notice() string {
	return f.notice
}

// SelectChannel selects channelID and re-derives the contact mode from its
// type. The current input is folded into the contact object using the old
// mode (a scalar becomes {email|phone: value}, JSON text is parsed) and the
// input is rebuilt for the new mode (the matching key is extracted, or the
// whole object is shown as JSON). JSON text that does not parse is kept
// verbatim for the next json mode.
func (f *UserChannelForm) SelectChannel(channelID int64, channels []models.Channel) {
	if channelID == f.ChannelID {
		return
	}

	f.notice = ""
	f.fold()
	f.ChannelID = channelID
	f.mode = modeForChannelID(channelID, channels)
	f.unfold()
}

func (f *UserChannelForm) fold() {
	if key := f.mode.Key(); key != "" {
		if strings.TrimSpace(f.Input) == "" {
			delete(f.stash, key)
			return
		}
		f.stash[key] = f.Input
		return
	}

	text := strings.TrimSpace(f.Input)
	if text == "" {
		f.stash = make(map[string]any)
		return
	}
	obj, err := ParseObject(text)
	if err != nil {
		f.pendingRaw = f.Input
		f.notice = "Contact details JSON could not be parsed, it is kept for JSON channels"
		return
	}
	f.stash = obj
}

func (f *UserChannelForm) unfold() {
	if key := f.mode.Key(); key != "" {
		s, _ := stringValue(f.stash[key])
		f.Input = s
		return
	}

	if f.pendingRaw != "" {
		f.Input = f.pendingRaw
		f.pendingRaw = ""
		f.notice = ""
		return
	}
	if len(f.stash) == 0 {
		f.Input = ""
		return
	}
	f.Input = FormatObject(f.stash)
}

// ContactDetails returns the contact object that would be submitted.
func (f *UserChannelForm) ContactDetails() (map[string]any, error) {
	input := strings.TrimSpace(f.Input)
	if input == "" {
		return nil, errors.New("Contact details are required")
	}

	switch f.mode {
	case ContactModeEmail:
		if !isEmailAddress(input) {
			return nil, errors.New("Invalid email address")
		}
		return map[string]any{ContactKeyEmail: input}, nil
	case ContactModePhone:
		return map[string]any{ContactKeyPhone: input}, nil
	}

	obj, err := ParseObject(input)
	if err != nil {
		if errors.Is(err, ErrNotAnObject) {
			return nil, errors.New("Contact details must be a valid JSON object.")
		}
		return nil, errors.New("Invalid JSON format: " + strings.TrimPrefix(err.Error(), ErrInvalidJSON.Error()+": "))
	}
	return obj, nil
}

// Submit validates the form and builds the request body. Validation errors
// are returned as [FieldErrors] and nothing is submitted.
func (f *UserChannelForm) Submit() (models.UserChannelCreate, error) {
	errs := FieldErrors{}

	if f.UserID <= 0 {
		errs[FieldUserID] = "User ID must be a positive integer"
	}
	if f.ChannelID <= 0 {
		errs[FieldChannelID] = "Channel ID must be a positive integer"
	}

	details, err := f.ContactDetails()
	if err != nil {
		errs[FieldContactDetails] = err.Error()
	}

	if err = errs.errOrNil(); err != nil {
		return models.UserChannelCreate{}, err
	}

	return models.UserChannelCreate{
		UserID:         f.UserID,
		ChannelID:      f.ChannelID,
		ContactDetails: details,
		IsPreferred:    f.IsPreferred,
	}, nil
}

func modeForChannelID(channelID int64, channels []models.Channel) ContactMode {
	for _, c := range channels {
		if c.ID == channelID {
			return ContactModeForChannel(c.Type)
		}
	}
	return ContactModeJSON
}

func stringValue(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := scalarText(v)
	return s, ok
}
