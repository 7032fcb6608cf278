package forms

import (
	"net/mail"
	"strings"

	"github.com/MKhiriev/channel-console/models"
)

// UserForm is the state of the create/edit user dialog.
type UserForm struct {
	// ID is the user being edited, 0 for a new user.
	ID int64

	Name    string
	Email   string
	Phone   string
	Persona string
}

// NewUserForm builds the dialog state for existing, or an empty form when
// existing is nil.
func NewUserForm(existing *models.User) *UserForm {
	if existing == nil {
		return &UserForm{}
	}
	return &UserForm{
		ID:      existing.ID,
		Name:    deref(existing.Name),
		Email:   deref(existing.Email),
		Phone:   deref(existing.Phone),
		Persona: deref(existing.Persona),
	}
}

// Submit validates the form and builds the request body. Blank inputs are
// sent as null.
func (f *UserForm) Submit() (models.UserCreate, error) {
	errs := FieldErrors{}

	email := optional(f.Email)
	if email != nil && !isEmailAddress(*email) {
		errs[FieldEmail] = "Invalid email address"
	}

	if err := errs.errOrNil(); err != nil {
		return models.UserCreate{}, err
	}

	return models.UserCreate{
		Name:    optional(f.Name),
		Email:   email,
		Phone:   optional(f.Phone),
		Persona: optional(f.Persona),
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// isEmailAddress accepts a bare addr-spec; display names are rejected.
func isEmailAddress(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
