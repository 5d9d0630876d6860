package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotificationRepo(t *testing.T) (NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewNotificationRepository(newDB(db, logger.Nop()), logger.Nop()), mock
}

func welcomeNotification() models.Notification {
	return models.Notification{
		To:    1,
		Title: "Welcome on Quickdo Application Market",
		Body:  "Hello Jean",
		Type:  models.NotificationList,
	}
}

func TestCreateNotification_Inserted(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	n := welcomeNotification()

	mock.ExpectQuery("WHERE NOT EXISTS").
		WithArgs(n.To, n.Title, n.Body, "list").
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}).AddRow(12))

	id, inserted, err := repo.CreateNotification(context.Background(), n)

	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, int64(12), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_Duplicate(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("WHERE NOT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}))

	id, inserted, err := repo.CreateNotification(context.Background(), welcomeNotification())

	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Zero(t, id)
}

func TestCreateNotification_DBError(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("WHERE NOT EXISTS").WillReturnError(errors.New("boom"))

	_, inserted, err := repo.CreateNotification(context.Background(), welcomeNotification())

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.False(t, inserted)
}

func TestListUnseen(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"notification_id", "recipient_id", "title", "body", "type", "seen", "created_at", "updated_at"}).
		AddRow(2, 1, "b", "body b", "push", false, now, now).
		AddRow(1, 1, "a", "body a", "push", false, now, now)

	mock.ExpectQuery("FROM notifications").
		WithArgs(int64(1), false, "push").
		WillReturnRows(rows)

	got, err := repo.ListUnseen(context.Background(), models.NotificationQuery{UserID: 1, Type: models.NotificationPush})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].NotificationID)
	assert.Equal(t, models.NotificationPush, got[1].Type)
}

func TestListUnseen_Empty(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("FROM notifications").
		WillReturnRows(sqlmock.NewRows([]string{"notification_id"}))

	got, err := repo.ListUnseen(context.Background(), models.NotificationQuery{UserID: 1})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListUnseen_QueryError(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("FROM notifications").WillReturnError(errors.New("boom"))

	_, err := repo.ListUnseen(context.Background(), models.NotificationQuery{UserID: 1})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestMarkSeen(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectExec("UPDATE notifications SET seen").
		WithArgs(true, int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.MarkSeen(context.Background(), []int64{1, 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSeen_NoIDs(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	require.NoError(t, repo.MarkSeen(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
