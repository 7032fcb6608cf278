// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entity names used for cache keys and the activity journal.
const (
	EntityUsers        = "users"
	EntityChannels     = "channels"
	EntityUserChannels = "userChannels"
)

// Mutation actions recorded in the activity journal.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ActivityEntry is one mutation outcome recorded in the local journal.
type ActivityEntry struct {
	ID int64

	// Entity is one of the Entity* constants.
	Entity string

	// Action is one of the Action* constants.
	Action string

	// TargetID is the ID of the affected record, 0 for failed creates.
	TargetID int64

	// Success reports whether the backend accepted the mutation.
	Success bool

	// Message is the notification text shown to the operator.
	Message string

	CreatedAt time.Time
}
