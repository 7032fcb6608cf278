package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/channel-console/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldEmail targets the optional e-mail address of a user.
	FieldEmail = "email"

	// FieldName targets the name of a channel.
	FieldName = "name"

	// FieldType targets the type of a channel.
	FieldType = "type"

	// FieldUserID targets the user reference of a mapping.
	FieldUserID = "user_id"

	// FieldChannelID targets the channel reference of a mapping.
	FieldChannelID = "channel_id"

	// FieldContactDetails targets the contact object of a mapping.
	FieldContactDetails = "contact_details"
)

// ConsoleValidator implements [Validator] for the request bodies the console
// sends: UserCreate, ChannelCreate and UserChannelCreate, as values or
// pointers.
type ConsoleValidator struct{}

func NewConsoleValidator() Validator {
	return &ConsoleValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for any other type.
func (v *ConsoleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserCreate:
		return v.validateUser(value, fields...)
	case *models.UserCreate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(*value, fields...)
	case models.ChannelCreate:
		return v.validateChannel(value, fields...)
	case *models.ChannelCreate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateChannel(*value, fields...)
	case models.UserChannelCreate:
		return v.validateUserChannel(value, fields...)
	case *models.UserChannelCreate:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUserChannel(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ConsoleValidator) validateUser(user models.UserCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if user.Email != nil && !isEmailAddress(*user.Email) {
				return ErrInvalidEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ConsoleValidator) validateChannel(channel models.ChannelCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(channel.Name) == "" {
				return ErrEmptyName
			}
		case FieldType:
			if strings.TrimSpace(channel.Type) == "" {
				return ErrEmptyType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ConsoleValidator) validateUserChannel(mapping models.UserChannelCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldChannelID, FieldContactDetails}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if mapping.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldChannelID:
			if mapping.ChannelID <= 0 {
				return ErrInvalidChannelID
			}
		case FieldContactDetails:
			if mapping.ContactDetails == nil {
				return ErrEmptyContactDetails
			}
			if len(mapping.ContactDetails) == 0 {
				return ErrInvalidContactDetails
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isEmailAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
