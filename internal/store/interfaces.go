package store

import (
	"context"

	"github.com/quickdo/market-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByPhone(ctx context.Context, phone string) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) error
	SetActive(ctx context.Context, userID int64) error
	ToggleAdmin(ctx context.Context, userID int64) (bool, error)
	LockUser(ctx context.Context, userID int64) error
	SoftDeleteUser(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

// NotificationRepository persists notifications addressed to users.
type NotificationRepository interface {
	// CreateNotification inserts n unless an unseen identical notification
	// already exists for the same recipient. It reports whether a row was
	// inserted.
	CreateNotification(ctx context.Context, n models.Notification) (int64, bool, error)
	ListUnseen(ctx context.Context, query models.NotificationQuery) ([]models.Notification, error)
	MarkSeen(ctx context.Context, ids []int64) error
}

// PropertyRepository persists property listings.
type PropertyRepository interface {
	FindActive(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]models.Property, error)
	FindByID(ctx context.Context, propertyID int64) (models.Property, error)
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	CreateProperty(ctx context.Context, property models.Property) (models.Property, error)
	UpdateProperty(ctx context.Context, propertyID int64, update models.PropertyUpdate) error
	DeleteProperty(ctx context.Context, propertyID int64) error
}

// LoginAttempts counts login attempts per phone number within a window.
type LoginAttempts interface {
	// Hit records one attempt and returns the number of attempts made in
	// the current window, this one included.
	Hit(ctx context.Context, phone string) (int64, error)
	Reset(ctx context.Context, phone string) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
