// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings holds the caret settings and loads and saves them
// as TOML or YAML files.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is returned for settings with out of range values.
var ErrInvalid = errors.New("settings: invalid value")

// Settings are the caret settings.
type Settings struct {

	// BlinkInterval is the time in milliseconds between showing and
	// hiding the caret.
	BlinkInterval int `def:"500" toml:"blink-interval" yaml:"blink-interval"`

	// MarkWidth is the width of the caret in pixels.
	MarkWidth int `def:"1" toml:"mark-width" yaml:"mark-width"`

	// Color is the hex color the caret is drawn with.
	Color string `def:"#000000" toml:"color" yaml:"color"`

	// Background is the hex color used to erase the caret.
	Background string `def:"#ffffff" toml:"background" yaml:"background"`

	// Visible is whether the caret starts out blinking.
	Visible bool `def:"true" toml:"visible" yaml:"visible"`

	// ReadOnly is the initial read-only flag. It is advisory only.
	ReadOnly bool `def:"true" toml:"read-only" yaml:"read-only"`

	// Invert draws the caret by inverting pixels when the paint
	// sink supports it, ignoring Color and Background.
	Invert bool `toml:"invert" yaml:"invert"`
}

// New returns new [Settings] with all default values.
func New() *Settings {
	s := &Settings{}
	Defaults(s)
	return s
}

// Interval returns [Settings.BlinkInterval] as a duration.
func (s *Settings) Interval() time.Duration {
	return time.Duration(s.BlinkInterval) * time.Millisecond
}

// Colors returns the parsed draw and erase colors.
func (s *Settings) Colors() (fg, bg color.Color, err error) {
	f, err := colorful.Hex(s.Color)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: color %q: %w", ErrInvalid, s.Color, err)
	}
	b, err := colorful.Hex(s.Background)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: background %q: %w", ErrInvalid, s.Background, err)
	}
	return f, b, nil
}

// Validate returns an error wrapping [ErrInvalid] if any value is
// out of range.
func (s *Settings) Validate() error {
	if s.BlinkInterval <= 0 {
		return fmt.Errorf("%w: blink interval must be positive, got %d", ErrInvalid, s.BlinkInterval)
	}
	if s.MarkWidth <= 0 {
		return fmt.Errorf("%w: mark width must be positive, got %d", ErrInvalid, s.MarkWidth)
	}
	_, _, err := s.Colors()
	return err
}
