// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ValidationError is one entry of the backend's request validation report.
type ValidationError struct {
	// Loc is the path to the offending value, e.g. ["body", "name"] or
	// ["body", "config", 0]. Elements are strings or numbers.
	Loc []any `json:"loc"`

	// Msg is the human readable reason.
	Msg string `json:"msg"`

	// Type is the machine readable error kind.
	Type string `json:"type"`
}

// HTTPValidationError is the body returned by the backend for 422 responses.
type HTTPValidationError struct {
	Detail []ValidationError `json:"detail"`
}
