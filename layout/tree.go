// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"unicode"

	"cogentcore.org/caret/doc"
	"cogentcore.org/caret/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Options configures how a document is laid out.
type Options struct {

	// Size is the page size in pixels.
	Size math32.Vector2

	// Margin is the offset of the content view inside the page.
	Margin math32.Vector2

	// ParagraphSpacing is the extra space between text nodes.
	ParagraphSpacing float32

	// Face is the font used to measure text; defaults to [basicfont.Face7x13].
	Face font.Face
}

// Tree is the laid out form of a document.
type Tree struct {
	Options

	// RootView is the page view; ContentView is its child holding all
	// text frames, offset by the margin and scrolled by [Tree.ScrollTo].
	RootView    *ViewNode
	ContentView *ViewNode

	root    *Frame
	primary map[doc.Node]*Frame
}

// New lays out the given document.
func New(d *doc.Document, opts Options) *Tree {
	if opts.Face == nil {
		opts.Face = basicfont.Face7x13
	}
	t := &Tree{Options: opts}
	t.RootView = &ViewNode{}
	t.ContentView = &ViewNode{Pos: opts.Margin.ToPoint(), Par: t.RootView}
	t.Relayout(d)
	return t
}

// Relayout reflows all text nodes of the document, replacing all frames.
// Views and their scroll offsets are kept.
func (t *Tree) Relayout(d *doc.Document) {
	t.root = &Frame{Bounds: math32.Box2{Max: t.Size}, View: t.RootView, Face: t.Face}
	t.primary = map[doc.Node]*Frame{}
	lineHeight := math32.FromFixed(t.Face.Metrics().Height)
	width := t.Size.X - 2*t.Margin.X
	y := float32(0)
	for _, tx := range d.TextNodes() {
		var first, prev *Frame
		for _, ln := range wrapLines(t.Face, []rune(tx.Content), width) {
			fr := &Frame{
				Content: tx,
				Start:   ln.start,
				End:     ln.end,
				Text:    ln.text,
				Bounds:  math32.B2(0, y, ln.width, y+lineHeight),
				View:    t.ContentView,
				Face:    t.Face,
			}
			if prev == nil {
				first = fr
			} else {
				prev.Next = fr
			}
			prev = fr
			y += lineHeight
		}
		t.primary[tx] = first
		y += t.ParagraphSpacing
	}
}

// ScrollTo scrolls the content view so that the given content position
// is at the top left of the content area.
func (t *Tree) ScrollTo(x, y int) {
	t.ContentView.Scroll.X = x
	t.ContentView.Scroll.Y = y
}

// RootBox returns the page frame.
func (t *Tree) RootBox() (Box, bool) {
	if t.root == nil {
		return nil, false
	}
	return t.root, true
}

// PrimaryBoxFor returns the first frame of the given content node.
// It returns false for content that is not laid out.
func (t *Tree) PrimaryBoxFor(n doc.Node) (Box, bool) {
	fr, ok := t.primary[n]
	if !ok {
		return nil, false
	}
	return fr, true
}

// Frames returns all frames of the given content node, in order.
func (t *Tree) Frames(n doc.Node) []*Frame {
	var frs []*Frame
	for fr := t.primary[n]; fr != nil; fr = fr.Next {
		frs = append(frs, fr)
	}
	return frs
}

type line struct {
	start, end int
	text       []rune
	width      float32
}

// wrapLines breaks text into lines no wider than width, breaking after
// runs of spaces. A single word wider than width gets a line of its own.
// Empty text yields one empty line so that a caret can still be placed.
func wrapLines(face font.Face, text []rune, width float32) []line {
	measure := func(rs []rune) float32 {
		return math32.FromFixed(font.MeasureString(face, string(rs)))
	}
	var lines []line
	cur := line{}
	for _, seg := range segments(text) {
		segText := text[seg[0]:seg[1]]
		sw := measure(segText)
		if cur.end > cur.start && cur.width+sw > width {
			lines = append(lines, cur)
			cur = line{start: seg[0], end: seg[0]}
		}
		cur.end = seg[1]
		cur.text = text[cur.start:cur.end]
		cur.width = measure(cur.text)
	}
	return append(lines, cur)
}

// segments splits text into [start, end) ranges of a word followed
// by its trailing spaces.
func segments(text []rune) [][2]int {
	var segs [][2]int
	start := 0
	inSpace := false
	for i, r := range text {
		sp := unicode.IsSpace(r)
		if inSpace && !sp {
			segs = append(segs, [2]int{start, i})
			start = i
		}
		inSpace = sp
	}
	if start < len(text) {
		segs = append(segs, [2]int{start, len(text)})
	}
	return segs
}
