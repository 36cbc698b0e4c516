// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides the rendering sinks that a caret paints into.
// A [Sink] hands out a short-lived [Context] per draw, borrowed for a
// single paint or erase and never held across calls.
package paint

import (
	"image"
	"image/color"

	"cogentcore.org/caret/layout"
)

// Context paints solid rectangles in root view coordinates.
type Context interface {
	SetColor(c color.Color)
	FillRect(r image.Rectangle)
}

// Inverter is implemented by a [Context] that can invert the pixels of a
// rectangle (XOR composite). Inverting twice restores the original pixels,
// so the same call both draws and erases.
type Inverter interface {
	InvertRect(r image.Rectangle)
}

// Sink creates paint contexts for a layout tree rooted at the given box.
type Sink interface {
	CreateContext(root layout.Box) (Context, bool)
}
