// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/channel-console/internal/cache"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/internal/validators"
	"github.com/MKhiriev/channel-console/models"
)

// LookupLimit is the page size used to load every user or channel for
// selectors and lookup maps.
const LookupLimit = 1000

// entityAPI is the slice of the adapter serving one resource.
type entityAPI[T, C any] struct {
	list   func(context.Context, models.ListParams) ([]T, error)
	get    func(context.Context, int64) (T, error)
	create func(context.Context, C) (T, error)
	update func(context.Context, int64, C) (T, error)
	delete func(context.Context, int64) error
	id     func(T) int64
}

// entityService implements the list/mutate flow shared by all resources:
// lists go through the query cache, mutations are validated, sent, journaled
// and, on success, invalidate the resource's cached lists.
type entityService[T, C any] struct {
	entity string
	api    entityAPI[T, C]

	cache     *cache.QueryCache
	validator validators.Validator
	activity  ActivityService
	ids       *utils.UUIDGenerator

	logger *logger.Logger
}

func (s *entityService[T, C]) List(ctx context.Context, params models.ListParams) ([]T, error) {
	return cache.Fetch(s.cache, cache.NewKey(s.entity, params), func() ([]T, error) {
		return s.api.list(ctx, params)
	})
}

func (s *entityService[T, C]) Lookup(ctx context.Context) ([]T, error) {
	limit := LookupLimit
	return s.List(ctx, models.ListParams{Limit: &limit})
}

func (s *entityService[T, C]) Get(ctx context.Context, id int64) (T, error) {
	return s.api.get(ctx, id)
}

func (s *entityService[T, C]) Create(ctx context.Context, req C) (T, error) {
	ctx = s.withRequestID(ctx)

	var out T
	if err := s.validate(ctx, req); err != nil {
		s.activity.Record(ctx, s.entity, models.ActionCreate, 0, err)
		return out, err
	}

	out, err := s.api.create(ctx, req)
	s.finish(ctx, models.ActionCreate, s.api.id(out), err)
	return out, err
}

func (s *entityService[T, C]) Update(ctx context.Context, id int64, req C) (T, error) {
	ctx = s.withRequestID(ctx)

	var out T
	if err := s.validate(ctx, req); err != nil {
		s.activity.Record(ctx, s.entity, models.ActionUpdate, id, err)
		return out, err
	}

	out, err := s.api.update(ctx, id, req)
	s.finish(ctx, models.ActionUpdate, id, err)
	return out, err
}

func (s *entityService[T, C]) Delete(ctx context.Context, id int64) error {
	ctx = s.withRequestID(ctx)

	err := s.api.delete(ctx, id)
	s.finish(ctx, models.ActionDelete, id, err)
	return err
}

func (s *entityService[T, C]) validate(ctx context.Context, req C) error {
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// finish invalidates on success and journals the outcome. A failed mutation
// leaves the cache untouched.
func (s *entityService[T, C]) finish(ctx context.Context, action string, targetID int64, err error) {
	if err == nil {
		s.cache.Invalidate(s.entity)
	}
	s.activity.Record(ctx, s.entity, action, targetID, err)
}

// withRequestID makes the adapter and the journal log share one request id.
func (s *entityService[T, C]) withRequestID(ctx context.Context) context.Context {
	if _, ok := utils.GetRequestIDFromContext(ctx); ok {
		return ctx
	}
	return utils.WithRequestID(ctx, s.ids.Generate())
}
