// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotEnvFile is loaded into the process environment before parsing, without
// overriding variables that are already set.
var dotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library, after loading ./.env if it exists. Struct fields are mapped via
// their `env` and `envPrefix` tags defined on [StructuredConfig] and its
// nested types.
//
// A missing .env file is not an error; a malformed one is.
func parseEnv(cfg any) error {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", dotEnvFile, err)
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
