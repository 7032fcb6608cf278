package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail          = errors.New("invalid email address")
	ErrEmptyName             = errors.New("name is required")
	ErrEmptyType             = errors.New("type is required")
	ErrInvalidUserID         = errors.New("user ID must be a positive integer")
	ErrInvalidChannelID      = errors.New("channel ID must be a positive integer")
	ErrEmptyContactDetails   = errors.New("contact details are required")
	ErrInvalidContactDetails = errors.New("contact details must contain at least one key")
)
