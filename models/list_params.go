// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// ListParams carries the optional query parameters accepted by every list
// endpoint. Zero values are omitted from the query string.
type ListParams struct {
	// Skip is the number of records to skip (offset pagination).
	Skip *int

	// Limit caps the number of returned records.
	Limit *int

	// Search is a free-text filter applied by the backend to names.
	Search string

	// UserID restricts user-channel mappings to a single user.
	UserID *int64

	// ChannelType restricts user-channel mappings to channels of one type.
	ChannelType string
}

// Page builds ListParams for a zero-based page of the given size.
func Page(pageIndex, pageSize int) ListParams {
	skip := pageIndex * pageSize
	limit := pageSize
	return ListParams{Skip: &skip, Limit: &limit}
}

// Query returns the parameters as a flat map suitable for a query string.
func (p ListParams) Query() map[string]string {
	q := make(map[string]string)
	if p.Skip != nil {
		q["skip"] = strconv.Itoa(*p.Skip)
	}
	if p.Limit != nil {
		q["limit"] = strconv.Itoa(*p.Limit)
	}
	if p.Search != "" {
		q["search"] = p.Search
	}
	if p.UserID != nil {
		q["user_id"] = itoa(*p.UserID)
	}
	if p.ChannelType != "" {
		q["channel_type"] = p.ChannelType
	}
	return q
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
