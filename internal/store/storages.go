package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups every persistence component used by the services.
type Storages struct {
	UserRepository         UserRepository
	NotificationRepository NotificationRepository
	PropertyRepository     PropertyRepository
	LoginAttempts          LoginAttempts

	db    *DB
	redis *redis.Client
}

// NewStorages connects to Postgres, applies migrations and, when a redis URL
// is configured, connects the login attempt counter.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:         NewUserRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
		PropertyRepository:     NewPropertyRepository(db, log),
		LoginAttempts:          NewNoopLoginAttempts(),
		db:                     db,
	}

	if cfg.Storage.Redis.URL == "" {
		log.Warn().Str("func", "NewStorages").Msg("redis url is not set, login attempts are not limited")
		return storages, nil
	}

	client, err := NewRedisClient(ctx, cfg.Storage.Redis.URL)
	if err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error connecting redis")
		_ = db.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	storages.redis = client
	storages.LoginAttempts = NewRedisLoginAttempts(client, cfg.App.LoginAttemptsWindow, log)

	return storages, nil
}

// Close releases the database and redis connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = errors.Join(err, s.redis.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
