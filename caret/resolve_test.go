// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caret

import (
	"image"
	"testing"

	"cogentcore.org/caret/doc"
	"cogentcore.org/caret/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNode struct {
	text bool
}

func (n *fakeNode) IsText() bool { return n.text }

type fakeSelection struct {
	focus     doc.Anchor
	collapsed bool
}

func (s *fakeSelection) IsCollapsed() bool { return s.collapsed }
func (s *fakeSelection) Focus() doc.Anchor { return s.focus }
func (s *fakeSelection) AddListener(l doc.Listener) {}
func (s *fakeSelection) RemoveListener(l doc.Listener) {}

type fakeView struct {
	pos    image.Point
	parent *fakeView
}

func (v *fakeView) Position() image.Point { return v.pos }

func (v *fakeView) Parent() layout.View {
	if v.parent == nil {
		return nil
	}
	return v.parent
}

// fakeBox contains offsets below childStart itself and hands the
// rest to child.
type fakeBox struct {
	rect       image.Rectangle
	view       *fakeView
	points     map[int]image.Point
	child      *fakeBox
	childStart int
}

func (b *fakeBox) ChildBoxContainingOffset(offset int) (layout.Box, int, bool) {
	if b.child != nil && offset >= b.childStart {
		return b.child.ChildBoxContainingOffset(offset - b.childStart)
	}
	if offset < 0 {
		return nil, 0, false
	}
	return b, offset, true
}

func (b *fakeBox) Rect() image.Rectangle { return b.rect }

func (b *fakeBox) OffsetFromView() (image.Point, layout.View) {
	if b.view == nil {
		return image.Point{}, nil
	}
	return b.rect.Min, b.view
}

func (b *fakeBox) PointFromOffset(offset int) (image.Point, bool) {
	pt, ok := b.points[offset]
	return pt, ok
}

type fakeTree struct {
	boxes map[doc.Node]layout.Box
}

func (t *fakeTree) RootBox() (layout.Box, bool) {
	return &fakeBox{rect: image.Rect(0, 0, 1000, 1000)}, true
}

func (t *fakeTree) PrimaryBoxFor(n doc.Node) (layout.Box, bool) {
	b, ok := t.boxes[n]
	return b, ok
}

func TestResolveScenario(t *testing.T) {
	node := &fakeNode{text: true}
	box := &fakeBox{
		rect:   image.Rect(10, 20, 110, 36),
		view:   &fakeView{},
		points: map[int]image.Point{3: {24, 0}},
	}
	tree := &fakeTree{boxes: map[doc.Node]layout.Box{node: box}}
	sel := &fakeSelection{focus: doc.Anchor{Node: node, Offset: 3}, collapsed: true}

	r, err := Resolve(sel, tree, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(34, 20, 35, 36), r)

	// no hidden state: same inputs, same answer
	r2, err := Resolve(sel, tree, 1)
	require.NoError(t, err)
	assert.Equal(t, r, r2)
}

func TestResolveViewChain(t *testing.T) {
	node := &fakeNode{text: true}
	root := &fakeView{pos: image.Pt(100, 200)}
	scroll := &fakeView{pos: image.Pt(5, -40), parent: root}
	box := &fakeBox{
		rect:   image.Rect(10, 20, 110, 36),
		view:   scroll,
		points: map[int]image.Point{0: {}},
	}
	tree := &fakeTree{boxes: map[doc.Node]layout.Box{node: box}}
	sel := &fakeSelection{focus: doc.Anchor{Node: node}, collapsed: true}

	r, err := Resolve(sel, tree, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(115, 180, 117, 196), r)
}

func TestResolveContinuation(t *testing.T) {
	node := &fakeNode{text: true}
	view := &fakeView{}
	second := &fakeBox{
		rect:   image.Rect(0, 16, 80, 32),
		view:   view,
		points: map[int]image.Point{2: {14, 0}},
	}
	first := &fakeBox{
		rect:       image.Rect(0, 0, 100, 16),
		view:       view,
		points:     map[int]image.Point{2: {999, 999}},
		child:      second,
		childStart: 10,
	}
	tree := &fakeTree{boxes: map[doc.Node]layout.Box{node: first}}
	sel := &fakeSelection{focus: doc.Anchor{Node: node, Offset: 12}, collapsed: true}

	r, err := Resolve(sel, tree, 1)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(14, 16, 15, 32), r)
}

func TestResolveUnresolved(t *testing.T) {
	text := &fakeNode{text: true}
	elem := &fakeNode{}
	noView := &fakeNode{text: true}
	noPoint := &fakeNode{text: true}
	noChild := &fakeNode{text: true}
	unlaid := &fakeNode{text: true}
	view := &fakeView{}
	tree := &fakeTree{boxes: map[doc.Node]layout.Box{
		text:    &fakeBox{view: view, points: map[int]image.Point{0: {}}},
		elem:    &fakeBox{view: view, points: map[int]image.Point{0: {}}},
		noView:  &fakeBox{points: map[int]image.Point{0: {}}},
		noPoint: &fakeBox{view: view},
		noChild: &fakeBox{view: view, points: map[int]image.Point{0: {}}},
	}}

	collapsed := func(n doc.Node, off int) *fakeSelection {
		return &fakeSelection{focus: doc.Anchor{Node: n, Offset: off}, collapsed: true}
	}
	tests := []struct {
		name string
		sel  Selection
		tree LayoutTree
	}{
		{"nil selection", nil, tree},
		{"nil tree", collapsed(text, 0), nil},
		{"range", &fakeSelection{focus: doc.Anchor{Node: text}}, tree},
		{"nil node", collapsed(nil, 0), tree},
		{"element", collapsed(elem, 0), tree},
		{"not laid out", collapsed(unlaid, 0), tree},
		{"no child box", collapsed(noChild, -1), tree},
		{"no view", collapsed(noView, 0), tree},
		{"no point", collapsed(noPoint, 0), tree},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Resolve(test.sel, test.tree, 1)
			assert.ErrorIs(t, err, ErrUnresolvedPosition)
		})
	}
}
