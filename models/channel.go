// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Channel is a communication medium (Slack workspace, SMTP relay, WhatsApp
// number, ...) together with the configuration required to use it.
type Channel struct {
	// ID is assigned by the backend.
	ID int64 `json:"id"`

	// Name is a human readable label, required.
	Name string `json:"name"`

	// Type is either one of the registered channel types or free text.
	// It decides which configuration keys the console offers.
	Type string `json:"type"`

	// Config is an opaque JSON object whose expected shape depends on Type.
	// A nil map is sent as JSON null.
	Config map[string]any `json:"config"`
}

// ChannelCreate is the request body for creating or replacing a channel.
type ChannelCreate struct {
	Name   string         `json:"name"`
	Type   string         `json:"type"`
	Config map[string]any `json:"config"`
}

// ToCreate returns the writable part of c.
func (c Channel) ToCreate() ChannelCreate {
	return ChannelCreate{Name: c.Name, Type: c.Type, Config: c.Config}
}

// Label renders the channel as "name (type)".
func (c Channel) Label() string {
	return c.Name + " (" + c.Type + ")"
}
