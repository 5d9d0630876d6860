// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Key == "" {
		return fmt.Errorf("%w: application key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenSecret == "" {
		return fmt.Errorf("%w: token secret is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.LoginMaxAttempts < 0 {
		return fmt.Errorf("%w: login max attempts cannot be negative", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Twilio.partial() {
		return fmt.Errorf("%w: twilio account sid, auth token and service sid must be set together", ErrInvalidAdapterConfigs)
	}

	return nil
}
