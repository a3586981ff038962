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

// Command digitconv reads a decimal number from a file, converts it to another
// base or divides it by a second number, and writes the result.
//
// Settings come from the environment, see Config.
package main

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"

	"github.com/capitalone/digitlist/digitio"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Str("cmd", "digitconv").Logger()

	if err := run(cfg, osfs.New(cfg.Dir), logger); err != nil {
		logger.Error().Err(err).Msg("digitconv failed")
		os.Exit(1)
	}
}

func run(cfg Config, fs billy.Filesystem, logger zerolog.Logger) error {
	l := digitio.Load(fs, cfg.Input, logger)

	if cfg.Divisor != "" {
		divisor := digitio.Load(fs, cfg.Divisor, logger)
		q, err := l.Divide(divisor)
		if err != nil {
			return fmt.Errorf("divide %s by %s: %w", cfg.Input, cfg.Divisor, err)
		}
		logger.Info().Str("quotient", q.ToDecimal()).Msg("divided")
		return digitio.Save(fs, cfg.Output, q)
	}

	res, err := l.ChangeBase(cfg.Base)
	if err != nil {
		return err
	}
	logger.Info().Int("base", res.Base()).Str("digits", res.String()).Msg("converted")
	return digitio.Write(fs, cfg.Output, res.String())
}
