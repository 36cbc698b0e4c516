// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ggpaint provides a [paint.Sink] that draws with a
// github.com/gogpu/gg 2D context.
package ggpaint

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/caret/layout"
	"cogentcore.org/caret/paint"
	"github.com/gogpu/gg"
)

// Sink paints into a gg context, clipped to the root box.
type Sink struct {
	DC *gg.Context
}

// CreateContext implements [paint.Sink].
func (sk *Sink) CreateContext(root layout.Box) (paint.Context, bool) {
	if sk.DC == nil || root == nil {
		return nil, false
	}
	clip := root.Rect().Intersect(image.Rect(0, 0, sk.DC.Width(), sk.DC.Height()))
	if clip.Empty() {
		return nil, false
	}
	return &context{dc: sk.DC, clip: clip}, true
}

type context struct {
	dc   *gg.Context
	clip image.Rectangle
}

func (ctx *context) SetColor(c color.Color) {
	ctx.dc.SetColor(c)
}

func (ctx *context) FillRect(r image.Rectangle) {
	b := r.Intersect(ctx.clip)
	if b.Empty() {
		return
	}
	ctx.dc.DrawRectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
	if err := ctx.dc.Fill(); err != nil {
		slog.Error("ggpaint: fill failed", "rect", b, "err", err)
	}
}
