package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/models"
)

type notificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] backed by
// the "notifications" table.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNotification inserts n in one statement guarded by NOT EXISTS, so
// concurrent duplicates of an unseen notification collapse into one row.
// The returned id is zero when nothing was inserted.
func (r *notificationRepository) CreateNotification(ctx context.Context, n models.Notification) (int64, bool, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.DB.QueryRowContext(ctx, createNotification, n.To, n.Title, n.Body, string(n.Type)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().
			Str("func", "notificationRepository.CreateNotification").
			Int64("to", n.To).
			Msg("identical unseen notification exists")
		return 0, false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.CreateNotification").
			Int64("to", n.To).
			Str("classification", r.classify(err)).
			Msg("failed to insert notification")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, true, nil
}

// ListUnseen returns the unseen notifications of query.UserID, newest first.
func (r *notificationRepository) ListUnseen(ctx context.Context, query models.NotificationQuery) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListNotificationsQuery(query)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListUnseen").
			Int64("user_id", query.UserID).
			Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListUnseen").
			Int64("user_id", query.UserID).
			Str("classification", r.classify(err)).
			Msg("failed to execute query for listing notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, 10)
	for rows.Next() {
		var n models.Notification
		var notificationType string

		if err := rows.Scan(&n.NotificationID, &n.To, &n.Title, &n.Body, &notificationType, &n.Seen, &n.CreatedAt, &n.UpdatedAt); err != nil {
			log.Err(err).
				Str("func", "notificationRepository.ListUnseen").
				Int64("user_id", query.UserID).
				Msg("failed to scan notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		n.Type = models.NotificationType(notificationType)

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListUnseen").
			Int64("user_id", query.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notifications, nil
}

// MarkSeen flags the given notifications as seen. An empty ids slice is a
// no-op.
func (r *notificationRepository) MarkSeen(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := buildMarkSeenQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "notificationRepository.MarkSeen").Msg("failed to create query")
		return err
	}

	if _, err := r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "notificationRepository.MarkSeen").
			Int("count", len(ids)).
			Str("classification", r.classify(err)).
			Msg("failed to mark notifications as seen")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
