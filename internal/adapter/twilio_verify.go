package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
	"github.com/quickdo/market-api/internal/utils"
	"github.com/quickdo/market-api/models"
)

const (
	twilioChannelSMS      = "sms"
	twilioVerifyPath      = "/v2/Services/{service}/Verifications"
	twilioVerifyCheckPath = "/v2/Services/{service}/VerificationCheck"
)

// twilioVerification is the subset of the Twilio Verify resource we read.
type twilioVerification struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

type twilioVerify struct {
	client     *utils.HTTPClient
	serviceSID string
	logger     *logger.Logger
}

// NewTwilioVerify returns an OTPProvider backed by the Twilio Verify API.
// Twilio generates and delivers the code itself.
func NewTwilioVerify(cfg config.Twilio, timeout time.Duration, logger *logger.Logger) (OTPProvider, error) {
	if !cfg.Enabled() {
		return nil, ErrNotConfigured
	}

	raw := cfg.BaseURL
	if raw == "" {
		raw = config.DefaultTwilioBaseURL
	}

	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid twilio address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, timeout)
	client.SetBasicAuth(cfg.AccountSID, cfg.AuthToken)
	client.SetHeader("Accept", "application/json")

	logger.Info().Str("base_url", baseURL).Msg("twilio verify enabled")

	return &twilioVerify{
		client:     client,
		serviceSID: cfg.ServiceSID,
		logger:     logger,
	}, nil
}

// SendCode starts an SMS verification for phone. The code argument is ignored.
func (t *twilioVerify) SendCode(ctx context.Context, phone, _ string) error {
	var result twilioVerification

	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("service", t.serviceSID).
		SetFormData(map[string]string{
			"To":      phone,
			"Channel": twilioChannelSMS,
		}).
		SetResult(&result).
		Post(twilioVerifyPath)
	if err != nil {
		return fmt.Errorf("twilio send verification: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("twilio send verification: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("verification_sid", result.SID).
		Str("status", result.Status).
		Msg("twilio verification started")

	return nil
}

// CheckCode asks Twilio to check code against the pending verification of
// user.Phone. An unknown or expired verification is reported as pending.
func (t *twilioVerify) CheckCode(ctx context.Context, user models.User, code string) (models.VerificationStatus, error) {
	var result twilioVerification

	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParam("service", t.serviceSID).
		SetFormData(map[string]string{
			"To":   user.Phone,
			"Code": code,
		}).
		SetResult(&result).
		Post(twilioVerifyCheckPath)
	if err != nil {
		return "", fmt.Errorf("twilio verification check: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrNotFound) {
			return models.VerificationPending, nil
		}
		return "", fmt.Errorf("twilio verification check: %w", err)
	}

	return parseVerificationStatus(result.Status)
}

func parseVerificationStatus(raw string) (models.VerificationStatus, error) {
	switch status := models.VerificationStatus(raw); status {
	case models.VerificationApproved, models.VerificationPending, models.VerificationCanceled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnexpectedStatus, raw)
	}
}
