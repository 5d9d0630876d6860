package service

import (
	"github.com/quickdo/market-api/internal/adapter"
	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/store"
	"github.com/quickdo/market-api/internal/validators"
)

type Services struct {
	AuthService         AuthService
	UserService         UserService
	NotificationService NotificationService
	PropertyService     PropertyService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, adapters *adapter.Adapters, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator(cfg.App.PhoneRegion)
	notificationService := NewNotificationService(storages.NotificationRepository, logger)

	return &Services{
		AuthService:         NewAuthService(storages, adapters, notificationService, cfg, logger),
		UserService:         NewUserService(storages.UserRepository, validator, cfg.App.PhoneRegion, logger),
		NotificationService: notificationService,
		PropertyService:     NewPropertyService(storages.PropertyRepository, validator, logger),
		AppInfoService:      appInfoService,
	}, nil
}
