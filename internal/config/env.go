// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment via caarlos0/env, following the
// `env` and `envPrefix` tags on [StructuredConfig] and its nested groups
// (APP_, STORAGE_, SERVER_, MEDIA_, UPLOADER_, WORKERS_).
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
