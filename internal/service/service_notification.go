package service

import (
	"context"
	"fmt"

	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/store"
	"github.com/quickdo/market-api/models"
)

type notificationService struct {
	notificationRepository store.NotificationRepository

	logger *logger.Logger
}

func NewNotificationService(notificationRepository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		logger:                 logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, to int64, title, body string, notificationType models.NotificationType) (bool, error) {
	if !notificationType.Valid() {
		return false, ErrInvalidNotificationType
	}

	id, created, err := s.notificationRepository.CreateNotification(ctx, models.Notification{
		To:    to,
		Title: title,
		Body:  body,
		Type:  notificationType,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("to", to).Msg("notification creation failed")
		return false, fmt.Errorf("notification creation failed: %w", err)
	}

	if created {
		logger.FromContext(ctx).Debug().Int64("notification_id", id).Int64("to", to).Msg("notification created")
	}
	return created, nil
}

// List returns the unseen notifications of query.UserID, optionally marking
// them as seen. Owners and administrators only.
func (s *notificationService) List(ctx context.Context, actor models.User, query models.NotificationQuery) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	if actor.UserID != query.UserID && !actor.Admin {
		return nil, ErrNotificationsForbidden
	}
	if query.Type != "" && !query.Type.Valid() {
		return nil, ErrInvalidNotificationType
	}

	notifications, err := s.notificationRepository.ListUnseen(ctx, query)
	if err != nil {
		log.Err(err).Int64("user_id", query.UserID).Msg("notifications search failed")
		return nil, fmt.Errorf("notifications search failed: %w", err)
	}

	if query.MarkSeen && len(notifications) > 0 {
		ids := make([]int64, 0, len(notifications))
		for _, n := range notifications {
			ids = append(ids, n.NotificationID)
		}
		if err = s.notificationRepository.MarkSeen(ctx, ids); err != nil {
			log.Err(err).Int64("user_id", query.UserID).Msg("marking notifications as seen failed")
			return nil, fmt.Errorf("marking notifications as seen failed: %w", err)
		}
	}

	return notifications, nil
}
