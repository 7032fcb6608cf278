package store

import (
	"context"
	"time"

	"github.com/MKhiriev/channel-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ActivityRepository is the local journal of mutation outcomes.
type ActivityRepository interface {
	// Record stores entry and returns it with ID and CreatedAt set.
	Record(ctx context.Context, entry models.ActivityEntry) (models.ActivityEntry, error)
	// Recent returns at most limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]models.ActivityEntry, error)
	// Prune deletes entries created before the given time and reports how
	// many were removed.
	Prune(ctx context.Context, before time.Time) (int64, error)
}
