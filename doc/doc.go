// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package doc is a minimal document model: a tree of element and text
// nodes, plus a single [Selection] that notifies listeners whenever it
// changes.
package doc

import "unicode/utf8"

// Node is a node in a document tree.
type Node interface {

	// IsText returns true for text-bearing leaf nodes.
	IsText() bool
}

// Element is a container node with an optional tag name.
type Element struct {
	Tag      string
	Children []Node
}

// NewElement returns a new [Element] with the given children.
func NewElement(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

func (el *Element) IsText() bool { return false }

// Text is a leaf node holding character data.
type Text struct {
	Content string
}

// NewText returns a new [Text] node.
func NewText(s string) *Text {
	return &Text{Content: s}
}

func (tx *Text) IsText() bool { return true }

// Len returns the number of characters (runes) in the text.
func (tx *Text) Len() int {
	return utf8.RuneCountInString(tx.Content)
}

// Document is a root element with its selection.
type Document struct {
	Root *Element

	selection Selection
}

// New returns a new [Document] for the given root.
func New(root *Element) *Document {
	return &Document{Root: root}
}

// Selection returns the document selection.
func (d *Document) Selection() *Selection {
	return &d.selection
}

// TextNodes returns all text nodes in document order.
func (d *Document) TextNodes() []*Text {
	var txts []*Text
	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Text:
			txts = append(txts, n)
		case *Element:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	if d.Root != nil {
		walk(d.Root)
	}
	return txts
}
