package service

import (
	"context"
	"testing"

	"github.com/quickdo/market-api/internal/mock"
	"github.com/quickdo/market-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotificationSvc(ctrl *gomock.Controller) (NotificationService, *mock.MockNotificationRepository) {
	repo := mock.NewMockNotificationRepository(ctrl)
	return NewNotificationService(repo, nil), repo
}

func TestNotificationService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNotificationSvc(ctrl)

	repo.EXPECT().CreateNotification(gomock.Any(), models.Notification{
		To:    7,
		Title: "Welcome",
		Body:  "Hello",
		Type:  models.NotificationPush,
	}).Return(int64(1), true, nil)

	created, err := svc.Notify(context.Background(), 7, "Welcome", "Hello", models.NotificationPush)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestNotificationService_Notify_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNotificationSvc(ctrl)

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(int64(0), false, nil)

	created, err := svc.Notify(context.Background(), 7, "Welcome", "Hello", models.NotificationList)

	require.NoError(t, err)
	assert.False(t, created)
}

func TestNotificationService_Notify_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestNotificationSvc(ctrl)

	_, err := svc.Notify(context.Background(), 7, "Welcome", "Hello", "email")

	assertServiceError(t, err, ErrInvalidNotificationType, ErrValidation)
}

func TestNotificationService_Notify_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNotificationSvc(ctrl)

	repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(int64(0), false, errStore)

	_, err := svc.Notify(context.Background(), 7, "Welcome", "Hello", models.NotificationList)

	assert.ErrorIs(t, err, errStore)
}

func TestNotificationService_List(t *testing.T) {
	unseen := []models.Notification{{NotificationID: 3, To: 7}, {NotificationID: 5, To: 7}}

	tests := []struct {
		name     string
		actor    models.User
		query    models.NotificationQuery
		markSeen bool
		wantErr  error
	}{
		{name: "owner", actor: models.User{UserID: 7}, query: models.NotificationQuery{UserID: 7}},
		{name: "admin", actor: models.User{UserID: 1, Admin: true}, query: models.NotificationQuery{UserID: 7}},
		{name: "typed", actor: models.User{UserID: 7}, query: models.NotificationQuery{UserID: 7, Type: models.NotificationList}},
		{name: "mark seen", actor: models.User{UserID: 7}, query: models.NotificationQuery{UserID: 7, MarkSeen: true}, markSeen: true},
		{name: "stranger", actor: models.User{UserID: 8}, query: models.NotificationQuery{UserID: 7}, wantErr: ErrNotificationsForbidden},
		{name: "unknown type", actor: models.User{UserID: 7}, query: models.NotificationQuery{UserID: 7, Type: "sms"}, wantErr: ErrInvalidNotificationType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestNotificationSvc(ctrl)

			if tt.wantErr == nil {
				repo.EXPECT().ListUnseen(gomock.Any(), tt.query).Return(unseen, nil)
			}
			if tt.markSeen {
				repo.EXPECT().MarkSeen(gomock.Any(), []int64{3, 5}).Return(nil)
			}

			got, err := svc.List(context.Background(), tt.actor, tt.query)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, unseen, got)
		})
	}
}

func TestNotificationService_List_MarkSeenSkippedWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNotificationSvc(ctrl)
	query := models.NotificationQuery{UserID: 7, MarkSeen: true}

	repo.EXPECT().ListUnseen(gomock.Any(), query).Return([]models.Notification{}, nil)

	got, err := svc.List(context.Background(), models.User{UserID: 7}, query)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotificationService_List_MarkSeenError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestNotificationSvc(ctrl)
	query := models.NotificationQuery{UserID: 7, MarkSeen: true}

	repo.EXPECT().ListUnseen(gomock.Any(), query).Return([]models.Notification{{NotificationID: 1}}, nil)
	repo.EXPECT().MarkSeen(gomock.Any(), []int64{1}).Return(errStore)

	_, err := svc.List(context.Background(), models.User{UserID: 7}, query)

	assert.ErrorIs(t, err, errStore)
}
