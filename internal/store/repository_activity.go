package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/channel-console/internal/logger"
	"github.com/MKhiriev/channel-console/models"
)

const activityTable = "activity"

var activityColumns = []string{"id", "entity", "action", "target_id", "success", "message", "created_at"}

type activityRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	now     func() time.Time

	logger *logger.Logger
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	return &activityRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     func() time.Time { return time.Now().UTC() },
		logger:  logger,
	}
}

func (r *activityRepository) Record(ctx context.Context, entry models.ActivityEntry) (models.ActivityEntry, error) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}

	query, args, err := r.builder.
		Insert(activityTable).
		Columns("entity", "action", "target_id", "success", "message", "created_at").
		Values(entry.Entity, entry.Action, entry.TargetID, entry.Success, entry.Message, entry.CreatedAt).
		ToSql()
	if err != nil {
		return models.ActivityEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "activityRepository.Record").
			Str("entity", entry.Entity).
			Str("action", entry.Action).
			Msg("failed to insert activity entry")
		return models.ActivityEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.ActivityEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	entry.ID = id

	return entry, nil
}

func (r *activityRepository) Recent(ctx context.Context, limit int) (_ []models.ActivityEntry, err error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	query, args, err := r.builder.
		Select(activityColumns...).
		From(activityTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "activityRepository.Recent").Msg("failed to query activity entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	entries := make([]models.ActivityEntry, 0, limit)
	for rows.Next() {
		var e models.ActivityEntry
		if err = rows.Scan(&e.ID, &e.Entity, &e.Action, &e.TargetID, &e.Success, &e.Message, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *activityRepository) Prune(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := r.builder.
		Delete(activityTable).
		Where(sq.Lt{"created_at": before.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "activityRepository.Prune").Time("before", before).Msg("failed to prune activity entries")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}
