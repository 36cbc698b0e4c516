// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package doc

import "slices"

// Anchor is a position in the document: a node and a character offset
// within it.
type Anchor struct {
	Node   Node
	Offset int
}

// Listener is notified after every selection change.
type Listener interface {
	SelectionChanged()
}

// Selection is a range between an anchor and a focus position.
// It is collapsed when both are the same, which is the only case in
// which an insertion caret is shown.
type Selection struct {
	anchor    Anchor
	focus     Anchor
	listeners []Listener
}

// Anchor returns the position where the selection started.
func (s *Selection) Anchor() Anchor {
	return s.anchor
}

// Focus returns the position where the selection ends, which is where
// the caret is drawn.
func (s *Selection) Focus() Anchor {
	return s.focus
}

// IsCollapsed returns true if the anchor and focus are the same.
func (s *Selection) IsCollapsed() bool {
	return s.anchor == s.focus
}

// Collapse places both ends of the selection at the given position.
func (s *Selection) Collapse(n Node, offset int) {
	a := Anchor{n, clampOffset(n, offset)}
	s.anchor = a
	s.focus = a
	s.notify()
}

// Extend moves the focus to the given position, leaving the anchor.
func (s *Selection) Extend(n Node, offset int) {
	s.focus = Anchor{n, clampOffset(n, offset)}
	s.notify()
}

// Move collapses the selection at the focus moved by delta characters
// within the focus node.
func (s *Selection) Move(delta int) {
	s.Collapse(s.focus.Node, s.focus.Offset+delta)
}

// AddListener adds l to the listeners; adding the same listener
// twice has no effect.
func (s *Selection) AddListener(l Listener) {
	if slices.Contains(s.listeners, l) {
		return
	}
	s.listeners = append(s.listeners, l)
}

// RemoveListener removes l from the listeners.
func (s *Selection) RemoveListener(l Listener) {
	s.listeners = slices.DeleteFunc(s.listeners, func(o Listener) bool {
		return o == l
	})
}

// NumListeners returns the number of registered listeners.
func (s *Selection) NumListeners() int {
	return len(s.listeners)
}

func (s *Selection) notify() {
	// listeners may remove themselves while being notified
	for _, l := range slices.Clone(s.listeners) {
		l.SelectionChanged()
	}
}

func clampOffset(n Node, offset int) int {
	if offset < 0 {
		return 0
	}
	if tx, ok := n.(*Text); ok {
		return min(offset, tx.Len())
	}
	return offset
}
