// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserChannel maps a user to a channel with the contact details that should
// be used to reach the user on that channel.
type UserChannel struct {
	ID        int64 `json:"id"`
	UserID    int64 `json:"user_id"`
	ChannelID int64 `json:"channel_id"`

	// ContactDetails is an opaque JSON object. Its shape follows the type of
	// the referenced channel, e.g. {"email": "..."} or {"phone": "..."}.
	ContactDetails map[string]any `json:"contact_details"`

	// IsPreferred marks the channel the user should be contacted on first.
	IsPreferred bool `json:"is_preferred"`
}

// UserChannelCreate is the request body for creating or replacing a mapping.
type UserChannelCreate struct {
	UserID         int64          `json:"user_id"`
	ChannelID      int64          `json:"channel_id"`
	ContactDetails map[string]any `json:"contact_details"`
	IsPreferred    bool           `json:"is_preferred"`
}

// ToCreate returns the writable part of uc.
func (uc UserChannel) ToCreate() UserChannelCreate {
	return UserChannelCreate{
		UserID:         uc.UserID,
		ChannelID:      uc.ChannelID,
		ContactDetails: uc.ContactDetails,
		IsPreferred:    uc.IsPreferred,
	}
}
