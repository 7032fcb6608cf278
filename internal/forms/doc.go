// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forms holds the state of the console's edit dialogs independently
// of any rendering.
//
// The interesting part is the type-driven configuration engine: the
// channel-type registry decides which configuration keys a channel form
// offers, the contact-mode resolver decides whether a user-channel mapping is
// edited as an e-mail, a phone number or raw JSON, and the forms convert
// between the flat per-field UI state and the opaque JSON objects the backend
// stores. Values the user typed are kept in a per-form stash while the type
// or channel changes, so switching away and back is lossless.
package forms
