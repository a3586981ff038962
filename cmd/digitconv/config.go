/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/capitalone/digitlist/numeral"
)

// Config holds the digitconv settings read from the environment.
type Config struct {
	Dir      string `env:"DIGITCONV_DIR" envDefault:"."`
	Input    string `env:"DIGITCONV_INPUT,required"`
	Output   string `env:"DIGITCONV_OUTPUT,required"`
	Divisor  string `env:"DIGITCONV_DIVISOR"`
	Base     int    `env:"DIGITCONV_BASE" envDefault:"16"`
	LogLevel string `env:"DIGITCONV_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig parses Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Base < numeral.MinRadix || cfg.Base > numeral.MaxRadix {
		return Config{}, fmt.Errorf("DIGITCONV_BASE: %d not in %d..%d", cfg.Base, numeral.MinRadix, numeral.MaxRadix)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("DIGITCONV_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}
