package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/channel-console/internal/adapter"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/mock"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/internal/validators"
	"github.com/MKhiriev/channel-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestServices wires Services around gomock doubles.
func newTestServices(t *testing.T) (*Services, *mock.MockAPIAdapter, *mock.MockActivityRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockAPIAdapter(ctrl)
	repo := mock.NewMockActivityRepository(ctrl)

	return NewServices(api, repo, logger.Nop()), api, repo
}

// journalEntry matches a recorded entry by entity, action and outcome.
func journalEntry(entity, action string, success bool) gomock.Matcher {
	return gomock.Cond(func(e models.ActivityEntry) bool {
		return e.Entity == entity && e.Action == action && e.Success == success
	})
}

func strPtr(s string) *string { return &s }

// ── List ─────────────────────────────────────────────────────────────────────

func TestList_IsCachedPerKey(t *testing.T) {
	svcs, api, _ := newTestServices(t)
	ctx := context.Background()
	users := []models.User{{ID: 1, Name: strPtr("Ann")}}

	api.EXPECT().ListUsers(gomock.Any(), models.Page(0, 10)).Return(users, nil).Times(1)
	api.EXPECT().ListUsers(gomock.Any(), models.Page(1, 10)).Return([]models.User{}, nil).Times(1)

	for range 3 {
		got, err := svcs.UserService.List(ctx, models.Page(0, 10))
		require.NoError(t, err)
		assert.Equal(t, users, got)
	}
	_, err := svcs.UserService.List(ctx, models.Page(1, 10))
	require.NoError(t, err)
}

func TestList_ErrorIsReturnedAndNotCached(t *testing.T) {
	svcs, api, _ := newTestServices(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().ListChannels(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrServiceUnavailable),
		api.EXPECT().ListChannels(gomock.Any(), gomock.Any()).Return([]models.Channel{}, nil),
	)

	_, err := svcs.ChannelService.List(ctx, models.Page(0, 10))
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)

	got, err := svcs.ChannelService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLookup_UsesLookupLimit(t *testing.T) {
	svcs, api, _ := newTestServices(t)

	api.EXPECT().ListChannels(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.ListParams) ([]models.Channel, error) {
			require.NotNil(t, p.Limit)
			assert.Equal(t, LookupLimit, *p.Limit)
			assert.Nil(t, p.Skip)
			return []models.Channel{{ID: 1}}, nil
		},
	)

	got, err := svcs.ChannelService.Lookup(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

// ── Mutations ────────────────────────────────────────────────────────────────

func TestCreate_SuccessInvalidatesOnlyThatEntity(t *testing.T) {
	svcs, api, repo := newTestServices(t)
	ctx := context.Background()

	api.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return([]models.User{}, nil).Times(2)
	api.EXPECT().ListChannels(gomock.Any(), gomock.Any()).Return([]models.Channel{}, nil).Times(1)
	api.EXPECT().CreateUser(gomock.Any(), models.UserCreate{Name: strPtr("Ann")}).
		Return(models.User{ID: 9, Name: strPtr("Ann")}, nil)
	repo.EXPECT().Record(gomock.Any(), journalEntry(models.EntityUsers, models.ActionCreate, true)).
		DoAndReturn(func(_ context.Context, e models.ActivityEntry) (models.ActivityEntry, error) {
			assert.Equal(t, int64(9), e.TargetID)
			assert.Equal(t, "The new user has been successfully created.", e.Message)
			return e, nil
		})

	_, err := svcs.UserService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)
	_, err = svcs.ChannelService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)

	created, err := svcs.UserService.Create(ctx, models.UserCreate{Name: strPtr("Ann")})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)

	// users refetch, channels stay cached
	_, err = svcs.UserService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)
	_, err = svcs.ChannelService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)
}

func TestUpdate_FailureKeepsCacheAndJournalsMessage(t *testing.T) {
	svcs, api, repo := newTestServices(t)
	ctx := context.Background()
	apiErr := &adapter.APIError{StatusCode: 400, Message: "User is already mapped to this channel"}
	req := models.UserChannelCreate{UserID: 1, ChannelID: 2, ContactDetails: map[string]any{"email": "a@b.com"}}

	api.EXPECT().ListUserChannels(gomock.Any(), gomock.Any()).Return([]models.UserChannel{}, nil).Times(1)
	api.EXPECT().UpdateUserChannel(gomock.Any(), int64(5), req).Return(models.UserChannel{}, apiErr)
	repo.EXPECT().Record(gomock.Any(), journalEntry(models.EntityUserChannels, models.ActionUpdate, false)).
		DoAndReturn(func(_ context.Context, e models.ActivityEntry) (models.ActivityEntry, error) {
			assert.Equal(t, int64(5), e.TargetID)
			assert.Equal(t, "Failed to update mapping: User is already mapped to this channel", e.Message)
			return e, nil
		})

	_, err := svcs.UserChannelService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)

	_, err = svcs.UserChannelService.Update(ctx, 5, req)
	assert.ErrorIs(t, err, apiErr)

	_, err = svcs.UserChannelService.List(ctx, models.Page(0, 10))
	require.NoError(t, err)
}

func TestCreate_ValidationErrorSkipsBackend(t *testing.T) {
	svcs, _, repo := newTestServices(t)

	repo.EXPECT().Record(gomock.Any(), journalEntry(models.EntityChannels, models.ActionCreate, false)).
		Return(models.ActivityEntry{}, nil)

	_, err := svcs.ChannelService.Create(context.Background(), models.ChannelCreate{Name: "x"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyType)
}

func TestDelete_JournalFailureDoesNotBlock(t *testing.T) {
	svcs, api, repo := newTestServices(t)

	api.EXPECT().DeleteChannel(gomock.Any(), int64(3)).Return(nil)
	repo.EXPECT().Record(gomock.Any(), journalEntry(models.EntityChannels, models.ActionDelete, true)).
		Return(models.ActivityEntry{}, errors.New("database is locked"))

	assert.NoError(t, svcs.ChannelService.Delete(context.Background(), 3))
}

func TestMutation_SharesRequestIDWithAdapter(t *testing.T) {
	svcs, api, repo := newTestServices(t)

	var adapterID, journalID string
	api.EXPECT().DeleteUser(gomock.Any(), int64(1)).DoAndReturn(func(ctx context.Context, _ int64) error {
		adapterID, _ = utils.GetRequestIDFromContext(ctx)
		return nil
	})
	repo.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, e models.ActivityEntry) (models.ActivityEntry, error) {
			journalID, _ = utils.GetRequestIDFromContext(ctx)
			return e, nil
		})

	require.NoError(t, svcs.UserService.Delete(context.Background(), 1))
	assert.NotEmpty(t, adapterID)
	assert.Equal(t, adapterID, journalID)
}

func TestGet_PassesThrough(t *testing.T) {
	svcs, api, _ := newTestServices(t)

	api.EXPECT().GetUserChannel(gomock.Any(), int64(4)).Return(models.UserChannel{ID: 4}, nil)

	got, err := svcs.UserChannelService.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ID)
}
