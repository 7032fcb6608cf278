package service

import (
	"context"
	"time"

	"github.com/MKhiriev/channel-console/internal/adapter"
	"github.com/MKhiriev/channel-console/internal/app"
	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/internal/store"
	"github.com/MKhiriev/channel-console/internal/utils"
	"github.com/MKhiriev/channel-console/models"
)

type activityService struct {
	repo store.ActivityRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewActivityService journals into repo. A nil repo yields a service that
// only logs outcomes.
func NewActivityService(repo store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (s *activityService) Record(ctx context.Context, entity, action string, targetID int64, err error) {
	entry := models.ActivityEntry{
		Entity:   entity,
		Action:   action,
		TargetID: targetID,
		Success:  err == nil,
		Message:  OutcomeMessage(entity, action, err),
	}

	log := s.logger
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		log = log.WithRequestID(requestID)
	}
	log.Info().
		Str("entity", entity).
		Str("action", action).
		Int64("target_id", targetID).
		Bool("success", entry.Success).
		Str("message", entry.Message).
		Msg("mutation finished")

	if s.repo == nil {
		return
	}
	if _, recErr := s.repo.Record(ctx, entry); recErr != nil {
		log.Warn().Err(recErr).Msg("failed to journal mutation outcome")
	}
}

func (s *activityService) Recent(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	if s.repo == nil {
		return nil, ErrJournalDisabled
	}
	return s.repo.Recent(ctx, limit)
}

func (s *activityService) Prune(ctx context.Context, retention time.Duration) (int64, error) {
	if s.repo == nil {
		return 0, ErrJournalDisabled
	}
	return s.repo.Prune(ctx, s.now().Add(-retention))
}

// OutcomeMessage is the text journaled for a mutation: the success
// description, or the failure title followed by the backend's message.
func OutcomeMessage(entity, action string, err error) string {
	texts := app.Texts(entity, action)
	if err == nil {
		return texts.SuccessDescription
	}
	return texts.FailureTitle + ": " + adapter.Message(err)
}
