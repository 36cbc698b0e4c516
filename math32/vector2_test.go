// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, float32(8), FromFixed(fixed.I(8)))
	assert.Equal(t, float32(2.5), FromFixed(fixed.Int26_6(160)))
	assert.Equal(t, float32(13), FromFixed(basicfont.Face7x13.Metrics().Height))
}

func TestVector2ToPoint(t *testing.T) {
	v := Vec2(2.4, 7.6)
	assert.Equal(t, image.Pt(2, 7), v.ToPointFloor())
	assert.Equal(t, image.Pt(3, 8), v.ToPointCeil())
	assert.Equal(t, image.Pt(2, 8), v.ToPoint())
	assert.Equal(t, Vec2(2, 7), v.Floor())
	assert.Equal(t, Vec2(3, 8), v.Ceil())

	n := Vec2(-2.5, -0.4)
	assert.Equal(t, image.Pt(-3, 0), n.ToPoint())
	assert.Equal(t, image.Pt(-3, -1), n.ToPointFloor())
}

func TestBox2ToRect(t *testing.T) {
	b := B2(1.5, 2.25, 10.5, 18)
	assert.False(t, b.IsEmpty())
	assert.Equal(t, image.Rect(1, 2, 11, 18), b.ToRect())

	e := B2(3, 4, 1, 9)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, image.Rectangle{}, e.ToRect())
}
