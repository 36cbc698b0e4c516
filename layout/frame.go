// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"image"

	"cogentcore.org/caret/doc"
	"cogentcore.org/caret/math32"
	"golang.org/x/image/font"
)

// Frame is one laid out line of a text node, or the root frame of a
// page when Content is nil. Frames for the same text node are linked
// through Next in content order.
type Frame struct {

	// Content is the text node this frame displays.
	Content doc.Node

	// Start and End are the character range of Content in this frame.
	Start, End int

	// Text holds the characters of this frame.
	Text []rune

	// Bounds is the frame box in view coordinates.
	Bounds math32.Box2

	// View is the view the frame is positioned in.
	View *ViewNode

	// Next is the continuation frame for the following line, if any.
	Next *Frame

	// Face measures the text.
	Face font.Face
}

var _ Box = (*Frame)(nil)

// ChildBoxContainingOffset implements [Box]. An offset at a line break
// belongs to the start of the following line; the last frame also
// accepts its end offset.
func (fr *Frame) ChildBoxContainingOffset(offset int) (Box, int, bool) {
	for f := fr; f != nil; f = f.Next {
		if offset < f.Start {
			return nil, 0, false
		}
		if offset < f.End || (f.Next == nil && offset == f.End) {
			return f, offset - f.Start, true
		}
	}
	return nil, 0, false
}

// Rect implements [Box].
func (fr *Frame) Rect() image.Rectangle {
	return fr.Bounds.ToRect()
}

// OffsetFromView implements [Box].
func (fr *Frame) OffsetFromView() (image.Point, View) {
	if fr.View == nil {
		return image.Point{}, nil
	}
	return fr.Rect().Min, fr.View
}

// PointFromOffset implements [Box], measuring the text before the offset.
func (fr *Frame) PointFromOffset(offset int) (image.Point, bool) {
	if offset < 0 || offset > len(fr.Text) {
		return image.Point{}, false
	}
	if offset == 0 || fr.Face == nil {
		return image.Point{}, true
	}
	adv := font.MeasureString(fr.Face, string(fr.Text[:offset]))
	return math32.Vec2(math32.FromFixed(adv), 0).ToPoint(), true
}
