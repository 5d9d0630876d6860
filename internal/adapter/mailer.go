package adapter

import (
	"context"
	"fmt"
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/utils"
)

const mailSendPath = "/v1/messages"

// mailMessage is the JSON payload accepted by the mail API.
type mailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

type mailAPI struct {
	client *utils.HTTPClient
	from   string
	logger *logger.Logger
}

// NewMailer returns a Mailer posting JSON messages to the mail API with a
// bearer API key.
func NewMailer(cfg config.Mail, timeout time.Duration, logger *logger.Logger) (Mailer, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mail api address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	if cfg.APIKey != "" {
		client.SetAuthToken(cfg.APIKey)
	}

	logger.Info().Str("base_url", baseURL).Msg("mail api enabled")

	return &mailAPI{
		client: client,
		from:   cfg.From,
		logger: logger,
	}, nil
}

func (m *mailAPI) SendMail(ctx context.Context, to, subject, body string) error {
	resp, err := m.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(mailMessage{
			From:    m.from,
			To:      to,
			Subject: subject,
			Text:    body,
		}).
		Post(mailSendPath)
	if err != nil {
		return fmt.Errorf("mail api: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("mail api: %w", err)
	}

	return nil
}
