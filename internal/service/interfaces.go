package service

import (
	"context"
	"time"

	"github.com/MKhiriev/channel-console/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages users. List results are cached per page and filters;
// a successful mutation invalidates every cached users query.
type UserService interface {
	List(ctx context.Context, params models.ListParams) ([]models.User, error)
	// Lookup returns up to LookupLimit users for selectors and id→name maps.
	Lookup(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (models.User, error)
	Create(ctx context.Context, user models.UserCreate) (models.User, error)
	Update(ctx context.Context, id int64, user models.UserCreate) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

// ChannelService manages channels. Caching follows [UserService].
type ChannelService interface {
	List(ctx context.Context, params models.ListParams) ([]models.Channel, error)
	// Lookup returns up to LookupLimit channels for selectors, filters and
	// id→name maps.
	Lookup(ctx context.Context) ([]models.Channel, error)
	Get(ctx context.Context, id int64) (models.Channel, error)
	Create(ctx context.Context, channel models.ChannelCreate) (models.Channel, error)
	Update(ctx context.Context, id int64, channel models.ChannelCreate) (models.Channel, error)
	Delete(ctx context.Context, id int64) error
}

// UserChannelService manages user-channel mappings. Caching follows
// [UserService].
type UserChannelService interface {
	List(ctx context.Context, params models.ListParams) ([]models.UserChannel, error)
	Get(ctx context.Context, id int64) (models.UserChannel, error)
	Create(ctx context.Context, mapping models.UserChannelCreate) (models.UserChannel, error)
	Update(ctx context.Context, id int64, mapping models.UserChannelCreate) (models.UserChannel, error)
	Delete(ctx context.Context, id int64) error
}

// ActivityService is the journal of mutation outcomes.
type ActivityService interface {
	// Record journals the outcome of one mutation. A nil err is a success.
	// Journal failures are logged and never returned.
	Record(ctx context.Context, entity, action string, targetID int64, err error)

	// Recent returns the newest limit entries.
	Recent(ctx context.Context, limit int) ([]models.ActivityEntry, error)

	// Prune deletes entries older than retention.
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}
