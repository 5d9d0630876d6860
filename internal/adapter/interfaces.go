// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

// Package adapter provides the outbound provider integrations of the market
// API: phone verification (Twilio Verify or a local hash based verifier),
// the bulk SMS gateway and the transactional mail API.
//
// Every HTTP integration goes through [utils.HTTPClient] (resty). Error values
// defined in errors.go are mapped from HTTP status codes by mapHTTPError so
// that callers can use [errors.Is] regardless of the provider (e.g.
// [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/quickdo/market-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// OTPProvider delivers and checks one-time activation codes.
type OTPProvider interface {
	// SendCode starts a verification for phone. Providers that generate
	// their own codes ignore code.
	SendCode(ctx context.Context, phone, code string) error

	// CheckCode checks code for user and reports the verification status.
	// Only [models.VerificationApproved] activates an account.
	CheckCode(ctx context.Context, user models.User, code string) (models.VerificationStatus, error)
}

// SMSSender sends plain text SMS.
type SMSSender interface {
	SendSMS(ctx context.Context, destination, message string) error
}

// Mailer sends transactional emails.
type Mailer interface {
	SendMail(ctx context.Context, to, subject, body string) error
}
