// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docview is a document view: it lays out a document, renders
// it into an image, and owns the caret that blinks in it. A [View]
// implements [caret.Host].
package docview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"unicode/utf8"

	"cogentcore.org/caret/caret"
	"cogentcore.org/caret/doc"
	"cogentcore.org/caret/layout"
	"cogentcore.org/caret/paint"
	"cogentcore.org/caret/settings"
	"cogentcore.org/caret/timer"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Options configures a [View].
type Options struct {

	// Layout configures the layout of the document.
	Layout layout.Options

	// Timers runs the caret blink timer; defaults to a new [timer.Loop].
	Timers timer.Service

	// Sink is what the caret paints into; defaults to an
	// [paint.ImageSink] over [View.Surface].
	Sink paint.Sink
}

// View is the view of one document.
type View struct {

	// Doc is the document shown.
	Doc *doc.Document

	// Tree is the layout of Doc.
	Tree *layout.Tree

	// Surface is the rendered document.
	Surface *image.RGBA

	timers  timer.Service
	sink    paint.Sink
	caret   *caret.Caret
	watcher *settings.Watcher
}

var _ caret.Host = (*View)(nil)

// New lays out and renders the given document and creates its caret.
func New(d *doc.Document, set *settings.Settings, opts Options) (*View, error) {
	if d == nil {
		return nil, errors.New("docview.New: nil document")
	}
	v := &View{Doc: d, Tree: layout.New(d, opts.Layout)}
	v.Surface = image.NewRGBA(image.Rectangle{Max: v.Tree.Size.ToPointCeil()})
	v.timers = opts.Timers
	if v.timers == nil {
		v.timers = timer.NewLoop()
	}
	v.sink = opts.Sink
	if v.sink == nil {
		v.sink = &paint.ImageSink{Image: v.Surface, Invert: set != nil && set.Invert}
	}
	if err := v.render(set); err != nil {
		return nil, fmt.Errorf("docview.New: %w", err)
	}
	c, err := caret.New(v, set)
	if err != nil {
		return nil, fmt.Errorf("docview.New: %w", err)
	}
	v.caret = c
	return v, nil
}

// Selection implements [caret.Host].
func (v *View) Selection() caret.Selection {
	return v.Doc.Selection()
}

// Layout implements [caret.Host].
func (v *View) Layout() caret.LayoutTree {
	return v.Tree
}

// Sink implements [caret.Host].
func (v *View) Sink() paint.Sink {
	return v.sink
}

// Timers implements [caret.Host].
func (v *View) Timers() timer.Service {
	return v.timers
}

// Caret returns the caret of the view.
func (v *View) Caret() *caret.Caret {
	return v.caret
}

// Render repaints the whole document. The caret is taken down first
// and put back afterwards, so that it never erases over fresh pixels.
func (v *View) Render() error {
	if v.caret == nil {
		return nil
	}
	visible := v.caret.IsVisible()
	v.caret.SetVisible(false)
	if err := v.render(v.caret.Settings()); err != nil {
		return err
	}
	if visible {
		return v.caret.SetVisible(true)
	}
	return nil
}

// render paints the background and all text frames.
func (v *View) render(set *settings.Settings) error {
	fg, bg := color.Color(color.Black), color.Color(color.White)
	if set != nil {
		var err error
		if fg, bg, err = set.Colors(); err != nil {
			return err
		}
	}
	draw.Draw(v.Surface, v.Surface.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	dr := &font.Drawer{Dst: v.Surface, Src: image.NewUniform(fg), Face: v.Tree.Face}
	ascent := v.Tree.Face.Metrics().Ascent
	for _, tx := range v.Doc.TextNodes() {
		for _, fr := range v.Tree.Frames(tx) {
			pos, view := fr.OffsetFromView()
			pos = layout.ToRoot(view, pos)
			dr.Dot = fixed.P(pos.X, pos.Y).Add(fixed.Point26_6{Y: ascent})
			dr.DrawString(string(fr.Text))
		}
	}
	return nil
}

// Relayout lays the document out again after it was edited and
// repaints it.
func (v *View) Relayout() error {
	v.Tree.Relayout(v.Doc)
	return v.Render()
}

// ScrollTo scrolls the content and repaints.
func (v *View) ScrollTo(x, y int) error {
	v.Tree.ScrollTo(x, y)
	return v.Render()
}

// Insert inserts s at the caret, which must be in a text node, and moves
// the caret past the inserted text. A range selection is collapsed at
// its focus first.
func (v *View) Insert(s string) error {
	focus := v.Doc.Selection().Focus()
	tx, ok := focus.Node.(*doc.Text)
	if !ok {
		return errors.New("docview.Insert: caret is not in a text node")
	}
	rs := []rune(tx.Content)
	off := min(focus.Offset, len(rs))
	tx.Content = string(rs[:off]) + s + string(rs[off:])
	if err := v.Relayout(); err != nil {
		return err
	}
	v.Doc.Selection().Collapse(tx, off+utf8.RuneCountInString(s))
	return nil
}

// ApplySettings switches the view to new settings. The caret is taken
// down with the old colors and drawing mode, and the document is
// repainted with the new ones.
func (v *View) ApplySettings(set *settings.Settings) error {
	if v.caret == nil {
		return nil
	}
	if set == nil {
		return fmt.Errorf("docview.ApplySettings: %w: nil settings", caret.ErrInvalidArgument)
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("docview.ApplySettings: %w: %w", caret.ErrInvalidArgument, err)
	}
	visible := v.caret.IsVisible()
	v.caret.SetVisible(false)
	if is, ok := v.sink.(*paint.ImageSink); ok {
		is.Invert = set.Invert
	}
	if err := v.caret.ApplySettings(set); err != nil {
		return fmt.Errorf("docview.ApplySettings: %w", err)
	}
	if err := v.render(set); err != nil {
		return fmt.Errorf("docview.ApplySettings: %w", err)
	}
	if visible {
		return v.caret.SetVisible(true)
	}
	return nil
}

// WatchSettings reloads the caret settings whenever the given file
// changes. The view timers must be a [timer.Loop], which is used to
// apply the new settings on the owning goroutine.
func (v *View) WatchSettings(filename string) error {
	lp, ok := v.timers.(*timer.Loop)
	if !ok {
		return errors.New("docview.WatchSettings: timers are not a timer.Loop")
	}
	if v.watcher != nil {
		v.watcher.Close()
	}
	sw, err := settings.Watch(filename, func(s *settings.Settings) {
		lp.Post(func() {
			if v.caret == nil {
				return
			}
			if err := v.ApplySettings(s); err != nil {
				slog.Error("docview: could not apply settings", "file", filename, "err", err)
				return
			}
			slog.Info("docview: settings reloaded", "file", filename, "blink-interval", s.BlinkInterval)
		})
	})
	if err != nil {
		return err
	}
	v.watcher = sw
	return nil
}

// Run runs the timers of the view until ctx is done. It only works for
// views with a [timer.Loop].
func (v *View) Run(ctx context.Context) error {
	lp, ok := v.timers.(*timer.Loop)
	if !ok {
		return errors.New("docview.Run: timers are not a timer.Loop")
	}
	return lp.Run(ctx)
}

// Close tears down the caret, erasing it, and stops watching settings.
// The view must not be used after Close.
func (v *View) Close() error {
	var err error
	if v.watcher != nil {
		err = v.watcher.Close()
		v.watcher = nil
	}
	if v.caret != nil {
		v.caret.Close()
		v.caret = nil
	}
	return err
}
