package service

import (
	"github.com/MKhiriev/channel-console/internal/adapter"
	"github.com/MKhiriev/channel-console/internal/cache"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/store"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/internal/validators"
	"github.com/MKhiriev/channel-console/models"
)

type Services struct {
	UserService        UserService
	ChannelService     ChannelService
	UserChannelService UserChannelService
	ActivityService    ActivityService

	// Cache is shared by the three entity services.
	Cache *cache.QueryCache
}

// NewServices wires the entity services around api. activityRepo may be nil
// when the journal is unavailable.
func NewServices(api adapter.APIAdapter, activityRepo store.ActivityRepository, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	queryCache := cache.New()
	validator := validators.NewConsoleValidator()
	activity := NewActivityService(activityRepo, logger)
	ids := utils.NewUUIDGenerator()

	return &Services{
		UserService: &entityService[models.User, models.UserCreate]{
			entity: models.EntityUsers,
			api: entityAPI[models.User, models.UserCreate]{
				list:   api.ListUsers,
				get:    api.GetUser,
				create: api.CreateUser,
				update: api.UpdateUser,
				delete: api.DeleteUser,
				id:     func(u models.User) int64 { return u.ID },
			},
			cache: queryCache, validator: validator, activity: activity, ids: ids, logger: logger,
		},
		ChannelService: &entityService[models.Channel, models.ChannelCreate]{
			entity: models.EntityChannels,
			api: entityAPI[models.Channel, models.ChannelCreate]{
				list:   api.ListChannels,
				get:    api.GetChannel,
				create: api.CreateChannel,
				update: api.UpdateChannel,
				delete: api.DeleteChannel,
				id:     func(c models.Channel) int64 { return c.ID },
			},
			cache: queryCache, validator: validator, activity: activity, ids: ids, logger: logger,
		},
		UserChannelService: &entityService[models.UserChannel, models.UserChannelCreate]{
			entity: models.EntityUserChannels,
			api: entityAPI[models.UserChannel, models.UserChannelCreate]{
				list:   api.ListUserChannels,
				get:    api.GetUserChannel,
				create: api.CreateUserChannel,
				update: api.UpdateUserChannel,
				delete: api.DeleteUserChannel,
				id:     func(m models.UserChannel) int64 { return m.ID },
			},
			cache: queryCache, validator: validator, activity: activity, ids: ids, logger: logger,
		},
		ActivityService: activity,
		Cache:           queryCache,
	}
}
