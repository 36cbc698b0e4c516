// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open loads settings from the given file, starting from the defaults
// so that the file only needs to contain changed values. The format is
// chosen from the extension: .toml, .yaml or .yml.
func Open(filename string) (*Settings, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s := New()
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = toml.Unmarshal(b, s)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, s)
	default:
		return nil, fmt.Errorf("settings.Open: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("settings.Open %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings.Open %s: %w", filename, err)
	}
	return s, nil
}

// Save writes the settings to the given file, in the format given by
// its extension.
func (s *Settings) Save(filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(s)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(s)
	default:
		return fmt.Errorf("settings.Save: unsupported file type %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
