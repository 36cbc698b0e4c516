// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/caret/doc"
	"cogentcore.org/caret/docview"
	"cogentcore.org/caret/layout"
	"cogentcore.org/caret/math32"
	"cogentcore.org/caret/paint/ggpaint"
	"cogentcore.org/caret/settings"
	"github.com/gogpu/gg"
)

// Config is the command line configuration of caretdemo.
type Config struct {

	// Config is the settings file; empty means defaults.
	Config string

	// Text is the text to lay out.
	Text string

	// Offset is the caret position in Text.
	Offset int

	// Width and Height are the page size.
	Width, Height int

	// Duration is how long the caret blinks.
	Duration time.Duration

	// Out is the PNG file written at the end.
	Out string

	// Sink selects what the caret paints into: "image" paints
	// into the rendered surface, "gg" into a gg context seeded
	// with it.
	Sink string

	// Invert overrides the invert setting when set.
	Invert bool

	// Watch reloads Config when it changes.
	Watch bool

	Debug, Verbose, Quiet bool
}

// Run blinks the caret for c.Duration, tears the caret down, and
// saves the resulting frame. The saved frame never contains the caret.
func Run(ctx context.Context, c *Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	set := settings.New()
	if c.Config != "" {
		var err error
		if set, err = settings.Open(c.Config); err != nil {
			return err
		}
	}
	if c.Invert {
		set.Invert = true
	}
	if c.Watch && c.Config == "" {
		return errors.New("caretdemo: --watch needs --config")
	}
	var gs *ggpaint.Sink
	opts := docview.Options{
		Layout: layout.Options{
			Size:   math32.Vec2(float32(c.Width), float32(c.Height)),
			Margin: math32.Vec2(8, 8),
		},
	}
	switch c.Sink {
	case "", "image":
	case "gg":
		if c.Watch {
			return errors.New("caretdemo: --watch needs --sink image")
		}
		// the context is attached once the text is rendered
		gs = &ggpaint.Sink{}
		opts.Sink = gs
	default:
		return fmt.Errorf("caretdemo: unknown sink %q", c.Sink)
	}

	tx := doc.NewText(c.Text)
	d := doc.New(doc.NewElement("body", tx))
	d.Selection().Collapse(tx, c.Offset)

	v, err := docview.New(d, set, opts)
	if err != nil {
		return err
	}
	if gs != nil {
		gs.DC = gg.NewContextForImage(v.Surface)
		defer gs.DC.Close()
		if err := v.Render(); err != nil {
			v.Close()
			return err
		}
	}
	if c.Watch {
		if err := v.WatchSettings(c.Config); err != nil {
			v.Close()
			return err
		}
	}

	slog.Info("caretdemo: blinking", "duration", c.Duration, "interval", set.Interval(), "sink", c.Sink)
	rctx, cancel := context.WithTimeout(ctx, c.Duration)
	defer cancel()
	err = v.Run(rctx)
	slog.Debug("caretdemo: done", "state", v.Caret().State())
	if cerr := v.Close(); cerr != nil {
		slog.Warn("caretdemo: closing view", "err", cerr)
	}
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if gs != nil {
		return gs.DC.SavePNG(c.Out)
	}
	return save(c.Out, v)
}

func save(filename string, v *docview.View) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := png.Encode(f, v.Surface); err != nil {
		f.Close()
		return fmt.Errorf("caretdemo: encoding %s: %w", filename, err)
	}
	return f.Close()
}
