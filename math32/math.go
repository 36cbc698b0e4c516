// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a small float32 geometry package used for text layout,
// where glyph advances are fractional and have to be snapped to whole
// pixels before anything is painted.
package math32

import "github.com/chewxy/math32"

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 {
	return math32.Round(x)
}
