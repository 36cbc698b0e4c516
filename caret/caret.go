// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package caret provides the blinking text insertion caret of a
// document view. A [Caret] follows the collapsed selection of its
// [Host], resolving the selection focus to a rectangle through the
// layout boxes and views (see [Resolve]), and blinks it with a [Blinker].
//
// All methods must be called on the goroutine that owns the host,
// which is also where the host's [timer.Service] runs callbacks.
package caret

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/caret/doc"
	"cogentcore.org/caret/layout"
	"cogentcore.org/caret/paint"
	"cogentcore.org/caret/settings"
	"cogentcore.org/caret/timer"
)

// Selection is the selection a caret follows.
type Selection interface {
	IsCollapsed() bool
	Focus() doc.Anchor
	AddListener(l doc.Listener)
	RemoveListener(l doc.Listener)
}

// LayoutTree maps content to its layout boxes.
type LayoutTree interface {

	// RootBox returns the box of the whole page.
	RootBox() (layout.Box, bool)

	// PrimaryBoxFor returns the first box of the given content,
	// and false if the content is not laid out.
	PrimaryBoxFor(n doc.Node) (layout.Box, bool)
}

// Host is the presentation surface that owns a caret. It is borrowed:
// the caret never keeps anything it returns across calls, and the host
// must call [Caret.Close] before it goes away.
type Host interface {
	Selection() Selection
	Layout() LayoutTree
	Sink() paint.Sink
	Timers() timer.Service
}

// Caret is the blinking insertion point of one document view.
type Caret struct {

	// host is not owned; nil after Close
	host Host

	settings *settings.Settings
	visible  bool
	readOnly bool

	// selection we are registered with
	selection Selection

	blinker Blinker
}

// New returns a new caret for the given host. It registers with the
// host selection and, if the settings say the caret is visible, starts
// blinking with the caret already painted. New returns an error
// wrapping [ErrInvalidArgument] for a nil host or nil or invalid
// settings, and the error from the timer service if blinking cannot
// start.
func New(host Host, set *settings.Settings) (*Caret, error) {
	if host == nil {
		return nil, fmt.Errorf("caret.New: %w: nil host", ErrInvalidArgument)
	}
	if set == nil {
		return nil, fmt.Errorf("caret.New: %w: nil settings", ErrInvalidArgument)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("caret.New: %w: %w", ErrInvalidArgument, err)
	}
	c := &Caret{host: host, visible: set.Visible, readOnly: set.ReadOnly}
	c.configure(set)
	if sel := host.Selection(); sel != nil {
		sel.AddListener(c)
		c.selection = sel
	}
	if c.visible {
		if err := c.blinker.Start(); err != nil {
			c.visible = false
			c.Close()
			return nil, fmt.Errorf("caret.New: %w", err)
		}
	}
	return c, nil
}

// configure sets up the blinker from the given validated settings.
func (c *Caret) configure(set *settings.Settings) {
	c.settings = set
	fg, bg, _ := set.Colors()
	bl := &c.blinker
	bl.Timers = c.host.Timers()
	bl.Interval = set.Interval()
	bl.Color = fg
	bl.Background = bg
	bl.Invert = set.Invert
	bl.Resolve = c.resolve
	bl.Context = c.context
}

func (c *Caret) resolve() (image.Rectangle, error) {
	return Resolve(c.host.Selection(), c.host.Layout(), c.settings.MarkWidth)
}

func (c *Caret) context() (paint.Context, bool) {
	tree := c.host.Layout()
	sink := c.host.Sink()
	if tree == nil || sink == nil {
		return nil, false
	}
	root, ok := tree.RootBox()
	if !ok {
		return nil, false
	}
	return sink.CreateContext(root)
}

// IsVisible returns whether the caret is blinking.
func (c *Caret) IsVisible() bool {
	return c.visible
}

// IsReadOnly returns the read-only flag.
func (c *Caret) IsReadOnly() bool {
	return c.readOnly
}

// State returns the state of the blinker.
func (c *Caret) State() States {
	return c.blinker.State()
}

// Rect returns the rectangle the caret is painted at, and false if it
// is not painted.
func (c *Caret) Rect() (image.Rectangle, bool) {
	return c.blinker.Rect()
}

// Armed returns whether the blink timer is live.
func (c *Caret) Armed() bool {
	return c.blinker.Armed()
}

// Settings returns the current settings.
func (c *Caret) Settings() *settings.Settings {
	return c.settings
}

// SetVisible starts or stops blinking. Making a visible caret visible
// again restarts the blink phase with the caret painted. Hiding a
// caret erases it if it is painted. If blinking cannot start the error
// is returned and the caret stays hidden.
func (c *Caret) SetVisible(visible bool) error {
	if c.host == nil {
		return nil
	}
	if !visible {
		c.visible = false
		c.blinker.Stop()
		return nil
	}
	if err := c.blinker.Start(); err != nil {
		c.visible = false
		return fmt.Errorf("caret.SetVisible: %w", err)
	}
	c.visible = true
	return nil
}

// SetReadOnly sets the read-only flag. It has no effect on drawing;
// it is up to the host to decide what a read-only caret means.
func (c *Caret) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
}

// SelectionChanged implements [doc.Listener]. Any change restarts
// blinking, erasing the caret at its old position and painting it at
// the new one.
func (c *Caret) SelectionChanged() {
	if c.host == nil {
		return
	}
	c.blinker.Stop()
	if !c.visible {
		return
	}
	if err := c.blinker.Start(); err != nil {
		slog.Error("caret: could not restart blinking after selection change", "err", err)
		c.visible = false
	}
}

// ApplySettings replaces the settings, restarting blinking so that the
// new values take effect. The visible and read-only flags are kept;
// those in the settings only apply to [New].
func (c *Caret) ApplySettings(set *settings.Settings) error {
	if c.host == nil {
		return nil
	}
	if set == nil {
		return fmt.Errorf("caret.ApplySettings: %w: nil settings", ErrInvalidArgument)
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("caret.ApplySettings: %w: %w", ErrInvalidArgument, err)
	}
	c.blinker.Stop()
	c.configure(set)
	if !c.visible {
		return nil
	}
	if err := c.blinker.Start(); err != nil {
		c.visible = false
		return fmt.Errorf("caret.ApplySettings: %w", err)
	}
	return nil
}

// Close erases the caret if it is painted, releases the blink timer
// and unregisters from the selection. The caret does nothing after
// Close; calling Close again is fine.
func (c *Caret) Close() {
	if c.host == nil {
		return
	}
	c.blinker.Stop()
	if c.selection != nil {
		c.selection.RemoveListener(c)
		c.selection = nil
	}
	c.host = nil
}
