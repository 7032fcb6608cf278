// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by the in-memory directory and translated to HTTP
// statuses by writeError.
var (
	errUserNotFound        = errors.New("User not found")
	errChannelNotFound     = errors.New("Channel not found")
	errUserChannelNotFound = errors.New("User channel not found")
	errEmailTaken          = errors.New("Email already registered")
	errMappingExists       = errors.New("User is already mapped to this channel")
)
