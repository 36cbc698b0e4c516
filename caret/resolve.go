// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caret

import (
	"fmt"
	"image"

	"cogentcore.org/caret/layout"
)

// Resolve returns the rectangle, in root view coordinates, at which the
// caret for the given selection is drawn: markWidth wide and as tall as
// the line box containing the focus. Only collapsed selections in text
// nodes resolve; everything else returns an error wrapping
// [ErrUnresolvedPosition]. Resolve has no state, so the same inputs
// always give the same rectangle.
func Resolve(sel Selection, tree LayoutTree, markWidth int) (image.Rectangle, error) {
	if sel == nil {
		return image.Rectangle{}, unresolved("no selection")
	}
	if tree == nil {
		return image.Rectangle{}, unresolved("no layout")
	}
	if !sel.IsCollapsed() {
		return image.Rectangle{}, unresolved("selection is not collapsed")
	}
	focus := sel.Focus()
	if focus.Node == nil || !focus.Node.IsText() {
		return image.Rectangle{}, unresolved("focus is not in a text node")
	}
	box, ok := tree.PrimaryBoxFor(focus.Node)
	if !ok {
		return image.Rectangle{}, unresolved("focus node has no box")
	}
	// the offset may be in a continuation box, e.g. on a wrapped line
	box, offset, ok := box.ChildBoxContainingOffset(focus.Offset)
	if !ok {
		return image.Rectangle{}, unresolved(fmt.Sprintf("no box contains offset %d", focus.Offset))
	}
	height := box.Rect().Dy()
	pos, view := box.OffsetFromView()
	if view == nil {
		return image.Rectangle{}, unresolved("box is not in a view")
	}
	pos = layout.ToRoot(view, pos)
	pt, ok := box.PointFromOffset(offset)
	if !ok {
		return image.Rectangle{}, unresolved(fmt.Sprintf("no point for local offset %d", offset))
	}
	pos = pos.Add(pt)
	return image.Rect(pos.X, pos.Y, pos.X+markWidth, pos.Y+height), nil
}

func unresolved(reason string) error {
	return fmt.Errorf("%w: %s", ErrUnresolvedPosition, reason)
}
