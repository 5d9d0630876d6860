// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Quickdo

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and `envPrefix`
// tags of [StructuredConfig].
//
// The phone region is upper-cased since libphonenumber only knows upper-case
// region codes ("cm" would reject every national number).
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.App.PhoneRegion = strings.ToUpper(strings.TrimSpace(cfg.App.PhoneRegion))
	return nil
}
