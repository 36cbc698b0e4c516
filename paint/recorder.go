// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/caret/layout"
)

// OpKinds are the kinds of recorded paint operations.
type OpKinds int32

const (
	// Fill is a [Context.FillRect].
	Fill OpKinds = iota

	// Invert is an [Inverter.InvertRect].
	Invert
)

// Op is one recorded paint operation.
type Op struct {
	Kind  OpKinds
	Color color.Color
	Rect  image.Rectangle
}

func (op Op) String() string {
	if op.Kind == Invert {
		return fmt.Sprintf("invert %v", op.Rect)
	}
	return fmt.Sprintf("fill %v %v", op.Rect, op.Color)
}

// Recorder is a [Sink] that records operations instead of painting,
// for tests and for tracing what a caret draws.
type Recorder struct {

	// Ops are the recorded operations, in order.
	Ops []Op

	// Invert makes contexts implement [Inverter].
	Invert bool

	// Unavailable makes CreateContext fail.
	Unavailable bool
}

// CreateContext implements [Sink].
func (rc *Recorder) CreateContext(root layout.Box) (Context, bool) {
	if rc.Unavailable || root == nil {
		return nil, false
	}
	ctx := &recordContext{rec: rc, color: color.Black}
	if rc.Invert {
		return &recordInvertContext{ctx}, true
	}
	return ctx, true
}

// Reset clears the recorded operations.
func (rc *Recorder) Reset() {
	rc.Ops = nil
}

type recordContext struct {
	rec   *Recorder
	color color.Color
}

func (ctx *recordContext) SetColor(c color.Color) {
	ctx.color = c
}

func (ctx *recordContext) FillRect(r image.Rectangle) {
	ctx.rec.Ops = append(ctx.rec.Ops, Op{Kind: Fill, Color: ctx.color, Rect: r})
}

type recordInvertContext struct {
	*recordContext
}

func (ctx *recordInvertContext) InvertRect(r image.Rectangle) {
	ctx.rec.Ops = append(ctx.rec.Ops, Op{Kind: Invert, Rect: r})
}
