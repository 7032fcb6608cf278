// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the console application runtime.
//
// It wires the REST adapter, the local activity journal, the services, the
// background workers and the terminal UI into a single process lifecycle.
package client
