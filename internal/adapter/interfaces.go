// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the console and the
// backend REST API.
//
// The primary abstraction is [APIAdapter], which decouples the service layer
// from HTTP. The package ships a resty-based implementation
// ([NewHTTPAPIAdapter]).
//
// Non-2xx responses are converted by mapHTTPError into an [*APIError] whose
// message is normalized from the backend's {"detail": ...} body, and which
// wraps a status sentinel from errors.go so that callers can use [errors.Is]
// (e.g. [ErrNotFound] for 404, [ErrValidation] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/channel-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// APIAdapter defines communication with the backend's three resources.
// List methods return an empty slice rather than an error when the backend
// answers with no content.
type APIAdapter interface {
	// ListUsers fetches GET /users/ with params as the query string.
	ListUsers(ctx context.Context, params models.ListParams) ([]models.User, error)
	// GetUser fetches GET /users/{id}.
	GetUser(ctx context.Context, id int64) (models.User, error)
	// CreateUser sends POST /users/ and returns the stored user.
	CreateUser(ctx context.Context, user models.UserCreate) (models.User, error)
	// UpdateUser sends PUT /users/{id} and returns the stored user.
	UpdateUser(ctx context.Context, id int64, user models.UserCreate) (models.User, error)
	// DeleteUser sends DELETE /users/{id}.
	DeleteUser(ctx context.Context, id int64) error

	// ListChannels fetches GET /channels/ with params as the query string.
	ListChannels(ctx context.Context, params models.ListParams) ([]models.Channel, error)
	// GetChannel fetches GET /channels/{id}.
	GetChannel(ctx context.Context, id int64) (models.Channel, error)
	// CreateChannel sends POST /channels/ and returns the stored channel.
	CreateChannel(ctx context.Context, channel models.ChannelCreate) (models.Channel, error)
	// UpdateChannel sends PUT /channels/{id} and returns the stored channel.
	UpdateChannel(ctx context.Context, id int64, channel models.ChannelCreate) (models.Channel, error)
	// DeleteChannel sends DELETE /channels/{id}.
	DeleteChannel(ctx context.Context, id int64) error

	// ListUserChannels fetches GET /user-channels/ with params as the query
	// string; UserID and ChannelType filter the mappings.
	ListUserChannels(ctx context.Context, params models.ListParams) ([]models.UserChannel, error)
	// GetUserChannel fetches GET /user-channels/{id}.
	GetUserChannel(ctx context.Context, id int64) (models.UserChannel, error)
	// CreateUserChannel sends POST /user-channels/ and returns the stored mapping.
	CreateUserChannel(ctx context.Context, mapping models.UserChannelCreate) (models.UserChannel, error)
	// UpdateUserChannel sends PUT /user-channels/{id} and returns the stored mapping.
	UpdateUserChannel(ctx context.Context, id int64, mapping models.UserChannelCreate) (models.UserChannel, error)
	// DeleteUserChannel sends DELETE /user-channels/{id}.
	DeleteUserChannel(ctx context.Context, id int64) error
}
