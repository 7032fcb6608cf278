// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is a person that can be reached through one or more channels.
// Every attribute except ID is optional and travels as JSON null when unset.
type User struct {
	// ID is assigned by the backend.
	ID int64 `json:"id"`

	// Name is the display name shown in tables and selectors.
	Name *string `json:"name"`

	// Email is the primary e-mail address of the user.
	Email *string `json:"email"`

	// Phone is the primary phone number of the user.
	Phone *string `json:"phone"`

	// Persona is a free-form description used by downstream agents
	// to adjust their tone when contacting the user.
	Persona *string `json:"persona"`
}

// UserCreate is the request body for creating or replacing a user.
type UserCreate struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Persona *string `json:"persona"`
}

// ToCreate returns the writable part of u.
func (u User) ToCreate() UserCreate {
	return UserCreate{
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Persona: u.Persona,
	}
}

// DisplayName returns the name of the user or a fallback built from its ID.
func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return "User ID: " + itoa(u.ID)
}
