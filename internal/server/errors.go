// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlers      = errors.New("fake backend has no HTTP handler")
	errNoListenAddress = errors.New("fake backend listen address is empty")
)
