// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caret

// States are the states of a [Blinker].
type States int32

const (
	// Stopped is when no blink timer is armed and nothing is drawn.
	Stopped States = iota

	// Shown is when the caret is painted at [Blinker.Rect].
	Shown

	// Hidden is when the blink timer is armed but nothing is painted,
	// either in the off phase or because the position did not resolve.
	Hidden
)

func (st States) String() string {
	switch st {
	case Stopped:
		return "Stopped"
	case Shown:
		return "Shown"
	case Hidden:
		return "Hidden"
	}
	return "States(?)"
}
