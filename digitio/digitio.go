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

// Package digitio loads and saves digit lists as text files.
package digitio

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"

	"github.com/capitalone/digitlist"
)

// Load reads the whole file at path and parses its trimmed content with
// digitlist.Parse. A file that cannot be read is logged and yields an empty
// list: Load never fails.
func Load(fs billy.Filesystem, path string, logger zerolog.Logger) *digitlist.List {
	content, err := readFile(fs, path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("cannot read digit list, using an empty list")
		return digitlist.New()
	}
	l := digitlist.Parse(strings.TrimSpace(string(content)))
	if l.IsEmpty() && len(content) > 0 {
		logger.Debug().Str("path", path).Msg("content is not a decimal number")
	}
	return l
}

// Save replaces the content of the file at path with the base-10 rendering
// of l.
func Save(fs billy.Filesystem, path string, l *digitlist.List) error {
	return Write(fs, path, l.ToDecimal())
}

// Write replaces the content of the file at path with content.
func Write(fs billy.Filesystem, path string, content string) error {
	if err := util.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readFile(fs billy.Basic, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
