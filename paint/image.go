// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"

	"cogentcore.org/caret/layout"
	"golang.org/x/image/draw"
)

// ImageSink paints into a [draw.Image], clipped to the root box.
type ImageSink struct {

	// Image is the render target.
	Image draw.Image

	// Invert makes contexts implement [Inverter].
	Invert bool
}

// NewImageSink returns a new [ImageSink] for the given image.
func NewImageSink(img draw.Image) *ImageSink {
	return &ImageSink{Image: img}
}

// CreateContext implements [Sink].
func (is *ImageSink) CreateContext(root layout.Box) (Context, bool) {
	if is.Image == nil || root == nil {
		return nil, false
	}
	clip := root.Rect().Intersect(is.Image.Bounds())
	if clip.Empty() {
		return nil, false
	}
	ic := &imageContext{img: is.Image, clip: clip, color: color.Black}
	if is.Invert {
		return &invertContext{ic}, true
	}
	return ic, true
}

type imageContext struct {
	img   draw.Image
	clip  image.Rectangle
	color color.Color
}

func (ic *imageContext) SetColor(c color.Color) {
	ic.color = c
}

// FillRect performs an overwriting fill (blit) of the clipped region.
func (ic *imageContext) FillRect(r image.Rectangle) {
	b := r.Intersect(ic.clip)
	if b.Empty() {
		return
	}
	draw.Draw(ic.img, b, image.NewUniform(ic.color), image.Point{}, draw.Src)
}

type invertContext struct {
	*imageContext
}

// InvertRect inverts the color channels of every pixel in the clipped
// region, leaving alpha alone.
func (ic *invertContext) InvertRect(r image.Rectangle) {
	b := r.Intersect(ic.clip)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBA64Model.Convert(ic.img.At(x, y)).(color.RGBA64)
			c.R = c.A - c.R
			c.G = c.A - c.G
			c.B = c.A - c.B
			ic.img.Set(x, y, c)
		}
	}
}
