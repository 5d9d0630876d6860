package handler

import (
	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/handler/http"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
