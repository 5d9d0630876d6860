package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/utils"
)

const (
	smsGatewayPath      = "/api/bulksms"
	cameroonCallingCode = "237"
)

type smsGateway struct {
	client   *utils.HTTPClient
	user     string
	password string
	sender   string
	logger   *logger.Logger
}

// NewSMSGateway returns an SMSSender for the bulk SMS gateway. Messages are
// sent with a GET request carrying credentials and content in the query.
func NewSMSGateway(cfg config.SMS, timeout time.Duration, logger *logger.Logger) (SMSSender, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid sms gateway address: %w", err)
	}

	logger.Info().Str("base_url", baseURL).Msg("sms gateway enabled")

	return &smsGateway{
		client:   utils.NewHTTPClient(baseURL, timeout),
		user:     cfg.User,
		password: cfg.Password,
		sender:   cfg.Sender,
		logger:   logger,
	}, nil
}

func (s *smsGateway) SendSMS(ctx context.Context, destination, message string) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"username":    s.user,
			"password":    s.password,
			"sender":      s.sender,
			"message":     message,
			"destination": gatewayDestination(destination),
		}).
		Get(smsGatewayPath)
	if err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("sms gateway: %w", err)
	}

	return nil
}

// gatewayDestination returns phone without "+" and with the Cameroonian
// calling code prepended when missing.
func gatewayDestination(phone string) string {
	phone = strings.TrimPrefix(strings.TrimSpace(phone), "+")
	if strings.HasPrefix(phone, cameroonCallingCode) {
		return phone
	}
	return cameroonCallingCode + phone
}
