package tui

import (
	"github.com/MKhiriev/channel-console/internal/cache"
	"github.com/MKhiriev/channel-console/models"
)

// rowsLoadedMsg carries one list page. key identifies the query, so a page
// can drop results of a query it no longer shows.
type rowsLoadedMsg[T any] struct {
	key  cache.Key
	rows []T
	err  error
}

type lookupsLoadedMsg struct {
	users    []models.User
	channels []models.Channel
	err      error
}

type activityLoadedMsg struct {
	entries []models.ActivityEntry
	err     error
}

// mutationDoneMsg reports the outcome of a create, update or delete.
type mutationDoneMsg struct {
	entity string
	action string
	err    error
}

type debounceMsg struct {
	page string
	tag  int
	term string
}

type toastMsg struct {
	kind  toastKind
	title string
	body  string
}

type toastExpiredMsg struct {
	id int
}
