package http

import (
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/service"
)

type Handler struct {
	services *service.Services

	// appKey is the value every gated request must send in the
	// application-key header.
	appKey         string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		appKey:         cfg.App.Key,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
