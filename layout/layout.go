// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout is a simple layout tree for a document: every text node
// is flowed into one or more line [Frame]s, positioned inside a chain of
// [ViewNode]s that carry the margin and scroll offsets.
package layout

import "image"

// Box is a laid out rectangle of content.
type Box interface {

	// ChildBoxContainingOffset returns the box (this one or a continuation)
	// that contains the given character offset of the content, along with
	// the offset local to that box.
	ChildBoxContainingOffset(offset int) (Box, int, bool)

	// Rect returns the box rectangle.
	Rect() image.Rectangle

	// OffsetFromView returns the position of the box within its view,
	// and the view. The view is nil if the box is not in a view.
	OffsetFromView() (image.Point, View)

	// PointFromOffset returns the position of the given local character
	// offset relative to the box origin.
	PointFromOffset(offset int) (image.Point, bool)
}

// View is a positioned coordinate space; nested views add up their
// positions to get to root view coordinates.
type View interface {

	// Position returns the view origin in its parent's coordinates.
	Position() image.Point

	// Parent returns the parent view, or nil for the root view.
	Parent() View
}

// ViewNode is the standard [View].
type ViewNode struct {

	// Pos is the position of the view in its parent.
	Pos image.Point

	// Scroll is subtracted from Pos, so scrolling down moves
	// the view contents up.
	Scroll image.Point

	// Par is the parent view, nil for the root.
	Par *ViewNode
}

func (v *ViewNode) Position() image.Point {
	return v.Pos.Sub(v.Scroll)
}

func (v *ViewNode) Parent() View {
	if v.Par == nil {
		return nil
	}
	return v.Par
}

// ToRoot returns the given point in the view converted to root view
// coordinates.
func ToRoot(v View, pt image.Point) image.Point {
	for v != nil {
		pt = pt.Add(v.Position())
		v = v.Parent()
	}
	return pt
}
