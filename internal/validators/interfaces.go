// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies before the services send them to
// the backend.
//
// The forms in internal/forms produce field-level messages for the operator;
// validators guard the service layer itself, so a request that bypasses a
// form is still rejected without a network call. Validate accepts optional
// field names to restrict the check to a subset of fields.
package validators

import "context"

// Validator validates arbitrary input values, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
