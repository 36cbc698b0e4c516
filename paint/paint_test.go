// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/caret/layout"
	"cogentcore.org/caret/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageBox(w, h float32) layout.Box {
	return &layout.Frame{Bounds: math32.B2(0, 0, w, h)}
}

func TestImageSinkFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	is := NewImageSink(img)
	ctx, ok := is.CreateContext(pageBox(10, 10))
	require.True(t, ok)
	_, inv := ctx.(Inverter)
	assert.False(t, inv)

	red := color.RGBA{255, 0, 0, 255}
	ctx.SetColor(red)
	ctx.FillRect(image.Rect(8, 2, 12, 4))
	assert.Equal(t, red, img.RGBAAt(8, 2))
	assert.Equal(t, red, img.RGBAAt(9, 3))
	// clipped to the root box
	assert.Equal(t, color.RGBA{}, img.RGBAAt(10, 2))
}

func TestImageSinkInvert(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	white := color.RGBA{255, 255, 255, 255}
	for y := range 4 {
		for x := range 4 {
			img.SetRGBA(x, y, white)
		}
	}
	is := &ImageSink{Image: img, Invert: true}
	ctx, ok := is.CreateContext(pageBox(4, 4))
	require.True(t, ok)
	iv, ok := ctx.(Inverter)
	require.True(t, ok)

	iv.InvertRect(image.Rect(1, 0, 2, 4))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(1, 1))
	assert.Equal(t, white, img.RGBAAt(0, 1))
	iv.InvertRect(image.Rect(1, 0, 2, 4))
	assert.Equal(t, white, img.RGBAAt(1, 1))
}

func TestImageSinkUnavailable(t *testing.T) {
	is := &ImageSink{}
	_, ok := is.CreateContext(pageBox(4, 4))
	assert.False(t, ok)

	is.Image = image.NewRGBA(image.Rect(0, 0, 4, 4))
	_, ok = is.CreateContext(nil)
	assert.False(t, ok)
	_, ok = is.CreateContext(&layout.Frame{Bounds: math32.B2(10, 10, 20, 20)})
	assert.False(t, ok)
}

func TestRecorder(t *testing.T) {
	rc := &Recorder{}
	ctx, ok := rc.CreateContext(pageBox(4, 4))
	require.True(t, ok)
	ctx.SetColor(color.White)
	ctx.FillRect(image.Rect(0, 0, 1, 1))
	assert.Equal(t, []Op{{Kind: Fill, Color: color.White, Rect: image.Rect(0, 0, 1, 1)}}, rc.Ops)

	rc.Reset()
	rc.Invert = true
	ctx, _ = rc.CreateContext(pageBox(4, 4))
	ctx.(Inverter).InvertRect(image.Rect(0, 0, 1, 1))
	assert.Equal(t, "invert (0,0)-(1,1)", rc.Ops[0].String())

	rc.Unavailable = true
	_, ok = rc.CreateContext(pageBox(4, 4))
	assert.False(t, ok)
}
