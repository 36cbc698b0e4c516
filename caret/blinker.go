// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caret

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/caret/paint"
	"cogentcore.org/caret/timer"
)

// Blinker manages the logistics of blinking the caret: it alternates
// between painting the mark and erasing it on every timer tick, and
// always erases exactly the rectangle it last painted.
type Blinker struct {

	// Timers schedules the blink ticks.
	Timers timer.Service

	// Interval is the time between ticks.
	Interval time.Duration

	// Resolve returns the rectangle to paint the caret at. It is
	// called fresh on every transition to [Shown].
	Resolve func() (image.Rectangle, error)

	// Context returns a paint context for a single paint or erase.
	Context func() (paint.Context, bool)

	// Color is used to paint and Background to erase.
	Color      color.Color
	Background color.Color

	// Invert paints and erases by inverting pixels when the
	// paint context is a [paint.Inverter].
	Invert bool

	state States
	rect  image.Rectangle
	id    timer.ID

	// stale is a painted rectangle that could not be erased when the
	// blinker stopped; it is erased with the next paint context.
	stale    image.Rectangle
	hasStale bool
}

// State returns the current state.
func (bl *Blinker) State() States {
	return bl.state
}

// Rect returns the rectangle that is currently painted, and false if
// nothing is painted.
func (bl *Blinker) Rect() (image.Rectangle, bool) {
	if bl.state != Shown {
		return image.Rectangle{}, false
	}
	return bl.rect, true
}

// Armed returns whether a blink timer is live.
func (bl *Blinker) Armed() bool {
	return bl.id != 0
}

// Start arms the blink timer and paints the caret right away, so that
// it shows without waiting for the first tick. If the timer cannot be
// allocated the error is returned and nothing is painted. A position
// that does not resolve is not an error: the blinker stays [Hidden]
// and tries again on the next tick. Start on a running blinker restarts
// it at the [Shown] phase.
func (bl *Blinker) Start() error {
	if bl.state != Stopped {
		bl.Stop()
	}
	id, err := bl.Timers.Schedule(bl.Interval, bl.tick)
	if err != nil {
		return err
	}
	bl.id = id
	bl.state = Hidden
	bl.show()
	return nil
}

// Stop erases the caret if it is painted and releases the blink timer.
// No tick happens after Stop returns. Stop on a stopped blinker does
// nothing. If there is no paint context to erase with, the painted
// rectangle is kept and erased before anything is painted next.
func (bl *Blinker) Stop() {
	if bl.state == Shown && !bl.hide() {
		slog.Warn("caret: no paint context to erase with, erase deferred", "rect", bl.rect)
		bl.stale = bl.rect
		bl.hasStale = true
	}
	if bl.id != 0 {
		bl.Timers.Cancel(bl.id)
		bl.id = 0
	}
	bl.state = Stopped
	bl.rect = image.Rectangle{}
}

// tick is the timer callback.
func (bl *Blinker) tick() {
	bl.id = 0 // fired, so no longer live
	if bl.state == Stopped {
		return
	}
	if bl.state == Shown {
		bl.hide() // retried on the next tick if it fails
	} else {
		bl.show()
	}
	id, err := bl.Timers.Schedule(bl.Interval, bl.tick)
	if err != nil {
		slog.Error("caret: could not re-arm blink timer, stopping", "err", err)
		bl.Stop()
		return
	}
	bl.id = id
}

// Stale returns a rectangle left painted by a [Blinker.Stop] that had
// no paint context, and false if there is none.
func (bl *Blinker) Stale() (image.Rectangle, bool) {
	return bl.stale, bl.hasStale
}

// show resolves the current position and paints the caret there.
// A stale rectangle is erased first.
func (bl *Blinker) show() bool {
	ctx, ok := bl.Context()
	if !ok {
		slog.Debug("caret: not shown", "err", unresolved("no paint context"))
		return false
	}
	if bl.hasStale {
		bl.paint(ctx, bl.stale, false)
		bl.stale = image.Rectangle{}
		bl.hasStale = false
	}
	r, err := bl.Resolve()
	if err != nil {
		slog.Debug("caret: not shown", "err", err)
		return false
	}
	bl.paint(ctx, r, true)
	bl.rect = r
	bl.state = Shown
	return true
}

// hide erases the last painted rectangle.
func (bl *Blinker) hide() bool {
	ctx, ok := bl.Context()
	if !ok {
		return false
	}
	bl.paint(ctx, bl.rect, false)
	bl.rect = image.Rectangle{}
	bl.state = Hidden
	return true
}

func (bl *Blinker) paint(ctx paint.Context, r image.Rectangle, on bool) {
	if iv, ok := ctx.(paint.Inverter); ok && bl.Invert {
		iv.InvertRect(r)
		return
	}
	if on {
		ctx.SetColor(bl.Color)
	} else {
		ctx.SetColor(bl.Background)
	}
	ctx.FillRect(r)
}
