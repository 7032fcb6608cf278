package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a validator error; the request was not
	// sent.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrJournalDisabled is returned by the activity service when no journal
	// could be opened.
	ErrJournalDisabled = errors.New("activity journal is disabled")
)
