// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds list query results keyed by entity, page and filters.
//
// Identical concurrent queries share one backend call. Invalidating an
// entity drops every cached page of that entity, and results of queries that
// were in flight during the invalidation are returned to their callers but
// never stored.
package cache

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/MKhiriev/channel-console/models"
)

// Key identifies one list query.
type Key struct {
	Entity string
	Page   int
	Limit  int

	// Filters is the canonical text of the non-paging parameters.
	Filters string
}

// NewKey builds the key of a list query for entity. Page is derived from
// params.Skip and params.Limit.
func NewKey(entity string, params models.ListParams) Key {
	k := Key{Entity: entity}
	if params.Limit != nil {
		k.Limit = *params.Limit
	}
	if params.Skip != nil && k.Limit > 0 {
		k.Page = *params.Skip / k.Limit
	}

	k.Filters = "search=" + params.Search
	if params.UserID != nil {
		k.Filters += fmt.Sprintf("&user_id=%d", *params.UserID)
	}
	if params.ChannelType != "" {
		k.Filters += "&channel_type=" + params.ChannelType
	}
	return k
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%d|%d|%s", k.Entity, k.Page, k.Limit, k.Filters)
}

// QueryCache holds list and lookup results per [Key]. Identical queries in
// flight share one call, and [QueryCache.Invalidate] drops every key of an
// entity.
type QueryCache struct {
	mu          sync.RWMutex
	entries     map[Key]any
	generations map[string]uint64

	group singleflight.Group
}

// New returns an empty cache.
func New() *QueryCache {
	return &QueryCache{
		entries:     make(map[Key]any),
		generations: make(map[string]uint64),
	}
}

// Fetch returns the cached value for key or calls fn once for all
// concurrent callers of the same key. Errors are not cached.
func Fetch[T any](c *QueryCache, key Key, fn func() (T, error)) (T, error) {
	c.mu.RLock()
	if v, ok := c.entries[key]; ok {
		c.mu.RUnlock()
		return v.(T), nil
	}
	gen := c.generations[key.Entity]
	c.mu.RUnlock()

	v, err, _ := c.group.Do(fmt.Sprintf("%s#%d", key, gen), func() (any, error) {
		res, err := fn()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generations[key.Entity] == gen {
			c.entries[key] = res
		}
		c.mu.Unlock()

		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops every cached query of entity.
func (c *QueryCache) Invalidate(entity string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generations[entity]++
	for k := range c.entries {
		if k.Entity == entity {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of cached queries.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
