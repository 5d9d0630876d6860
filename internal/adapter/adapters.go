// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package adapter

import (
	"errors"

	"github.com/quickdo/market-api/internal/config"
	"github.com/quickdo/market-api/internal/logger"
)

// Adapters aggregates the outbound providers. SMS and Mailer are nil when the
// corresponding provider is not configured.
type Adapters struct {
	OTP    OTPProvider
	SMS    SMSSender
	Mailer Mailer
}

// NewAdapters builds every configured provider. Twilio Verify is used for
// OTP when configured; otherwise codes go through the local verifier.
func NewAdapters(cfg config.Adapter, logger *logger.Logger) (*Adapters, error) {
	adapters := &Adapters{}

	sms, err := NewSMSGateway(cfg.SMS, cfg.RequestTimeout, logger)
	switch {
	case errors.Is(err, ErrNotConfigured):
		logger.Warn().Msg("sms gateway is not configured")
	case err != nil:
		return nil, err
	default:
		adapters.SMS = sms
	}

	mailer, err := NewMailer(cfg.Mail, cfg.RequestTimeout, logger)
	switch {
	case errors.Is(err, ErrNotConfigured):
		logger.Warn().Msg("mail api is not configured, welcome emails are disabled")
	case err != nil:
		return nil, err
	default:
		adapters.Mailer = mailer
	}

	otp, err := NewTwilioVerify(cfg.Twilio, cfg.RequestTimeout, logger)
	switch {
	case errors.Is(err, ErrNotConfigured):
		logger.Info().Msg("twilio verify is not configured, using local verifier")
		adapters.OTP = NewLocalVerifier(adapters.SMS)
	case err != nil:
		return nil, err
	default:
		adapters.OTP = otp
	}

	return adapters, nil
}
