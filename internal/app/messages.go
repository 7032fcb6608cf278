// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the operator-facing texts shared by the services, the
// activity journal and the terminal UI.
//
// Every mutation outcome is shown as a notification with a title and a
// description. Keeping the texts in one place ensures the journal records the
// same wording the operator saw.
package app

import "github.com/MKhiriev/channel-console/models"

// MutationTexts are the notification texts of one entity/action pair.
type MutationTexts struct {
	// SuccessTitle is the notification title after a successful mutation.
	SuccessTitle string
	// SuccessDescription is the notification body after a successful mutation.
	SuccessDescription string
	// FailureTitle is the notification title of a failed mutation; the body
	// is the backend's normalized error message.
	FailureTitle string
}

var mutationTexts = map[string]map[string]MutationTexts{
	models.EntityUsers: {
		models.ActionCreate: {"User created", "The new user has been successfully created.", "Failed to create user"},
		models.ActionUpdate: {"User updated", "The user has been successfully updated.", "Failed to update user"},
		models.ActionDelete: {"User deleted", "The user has been successfully deleted.", "Failed to delete user"},
	},
	models.EntityChannels: {
		models.ActionCreate: {"Channel created", "The new channel has been successfully created.", "Failed to create channel"},
		models.ActionUpdate: {"Channel updated", "The channel has been successfully updated.", "Failed to update channel"},
		models.ActionDelete: {"Channel deleted", "The channel has been successfully deleted.", "Failed to delete channel"},
	},
	models.EntityUserChannels: {
		models.ActionCreate: {"Mapping created", "The new user-channel mapping has been successfully created.", "Failed to create mapping"},
		models.ActionUpdate: {"Mapping updated", "The user-channel mapping has been successfully updated.", "Failed to update mapping"},
		models.ActionDelete: {"Mapping deleted", "The user-channel mapping has been successfully deleted.", "Failed to delete mapping"},
	},
}

// Texts returns the notification texts for entity and action. Unknown pairs
// get generic wording.
func Texts(entity, action string) MutationTexts {
	if t, ok := mutationTexts[entity][action]; ok {
		return t
	}
	return MutationTexts{
		SuccessTitle:       "Done",
		SuccessDescription: "The operation completed successfully.",
		FailureTitle:       "Operation failed",
	}
}

// Messages shown outside of mutation notifications.
const (
	// MsgCopied is shown after JSON was copied to the clipboard.
	MsgCopied = "Copied to clipboard"

	// MsgCopyFailed is the title shown when the clipboard is unavailable.
	MsgCopyFailed = "Could not copy to clipboard"

	// MsgNothingToCopy is shown when the selected row has no JSON to copy.
	MsgNothingToCopy = "Nothing to copy"

	// MsgLoadFailed is the title shown when a list query fails.
	MsgLoadFailed = "Failed to load data"

	// MsgFormInvalid is the title shown when a form has field errors.
	MsgFormInvalid = "Please fix the highlighted fields"
)
