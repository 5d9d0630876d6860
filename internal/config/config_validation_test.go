// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.Key = "app-key"
	cfg.App.TokenSecret = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/quickdo"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(cfg *StructuredConfig) {}},
		{
			name:    "missing app key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Key = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing token secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero token duration",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "negative login attempts",
			mutate:  func(cfg *StructuredConfig) { cfg.App.LoginMaxAttempts = -1 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero adapter timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "partial twilio credentials",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.Twilio.AccountSID = "AC1" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name: "complete twilio credentials",
			mutate: func(cfg *StructuredConfig) {
				cfg.Adapter.Twilio = Twilio{AccountSID: "AC1", AuthToken: "t", ServiceSID: "VA1"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
