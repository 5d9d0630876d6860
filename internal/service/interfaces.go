package service

import (
	"context"

	"github.com/quickdo/market-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and checks credentials.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)
	Check(ctx context.Context, token string) (models.AuthResult, error)
	Activate(ctx context.Context, userID int64, code string) (models.AuthResult, error)
	ToggleAdmin(ctx context.Context, userID int64) (bool, error)

	// Authenticate resolves the usable user owning token. It backs the auth
	// middleware and never trusts flags carried by the token.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

// UserService lets account owners and administrators manage accounts.
type UserService interface {
	Create(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Update(ctx context.Context, actor models.User, userID int64, req models.UpdateUserRequest) error
	SoftDelete(ctx context.Context, actor models.User, userID int64) error
	Destroy(ctx context.Context, userID int64) error
}

// NotificationService enqueues and lists user notifications.
type NotificationService interface {
	// Notify reports whether a notification was created; an identical
	// unseen notification suppresses the new one.
	Notify(ctx context.Context, to int64, title, body string, notificationType models.NotificationType) (bool, error)
	List(ctx context.Context, actor models.User, query models.NotificationQuery) ([]models.Notification, error)
}

// PropertyService manages property listings.
type PropertyService interface {
	ListActive(ctx context.Context, filter models.PropertyFilter) ([]models.Property, error)
	ListByOwner(ctx context.Context, actor models.User, ownerID int64) ([]models.Property, error)
	Create(ctx context.Context, actor models.User, req models.CreatePropertyRequest) (models.Property, error)
	Update(ctx context.Context, actor models.User, propertyID int64, req models.UpdatePropertyRequest) error
	Delete(ctx context.Context, actor models.User, propertyID int64) error
}

type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
