// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caret

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"cogentcore.org/caret/paint"
	"cogentcore.org/caret/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlinker(rec *paint.Recorder, mt *timer.Manual, rects ...image.Rectangle) *Blinker {
	n := 0
	return &Blinker{
		Timers:   mt,
		Interval: 100 * time.Millisecond,
		Resolve: func() (image.Rectangle, error) {
			if n >= len(rects) {
				return image.Rectangle{}, errors.New("out of rects")
			}
			n++
			return rects[n-1], nil
		},
		Context: func() (paint.Context, bool) {
			return rec.CreateContext(&fakeBox{})
		},
		Color:      color.Black,
		Background: color.White,
	}
}

func TestBlinkerStopIdempotent(t *testing.T) {
	rec := &paint.Recorder{}
	mt := &timer.Manual{}
	bl := newTestBlinker(rec, mt, image.Rect(1, 1, 2, 10))

	bl.Stop()
	assert.Empty(t, rec.Ops)
	assert.Equal(t, Stopped, bl.State())

	require.NoError(t, bl.Start())
	bl.Stop()
	once := append([]paint.Op{}, rec.Ops...)
	bl.Stop()
	assert.Equal(t, once, rec.Ops)
	assert.Len(t, rec.Ops, 2)
	assert.Equal(t, 0, mt.Live())
}

func TestBlinkerFreshRectEveryShow(t *testing.T) {
	rec := &paint.Recorder{}
	mt := &timer.Manual{}
	a, b, c := image.Rect(0, 0, 1, 10), image.Rect(5, 0, 6, 10), image.Rect(9, 0, 10, 10)
	bl := newTestBlinker(rec, mt, a, b, c)
	require.NoError(t, bl.Start())
	mt.Advance(400 * time.Millisecond)

	assert.Equal(t, []paint.Op{
		{Kind: paint.Fill, Color: color.Black, Rect: a},
		{Kind: paint.Fill, Color: color.White, Rect: a},
		{Kind: paint.Fill, Color: color.Black, Rect: b},
		{Kind: paint.Fill, Color: color.White, Rect: b},
		{Kind: paint.Fill, Color: color.Black, Rect: c},
	}, rec.Ops)
	r, ok := bl.Rect()
	assert.True(t, ok)
	assert.Equal(t, c, r)
}

func TestBlinkerRestart(t *testing.T) {
	rec := &paint.Recorder{}
	mt := &timer.Manual{}
	a, b := image.Rect(0, 0, 1, 10), image.Rect(5, 0, 6, 10)
	bl := newTestBlinker(rec, mt, a, b)
	require.NoError(t, bl.Start())
	require.NoError(t, bl.Start())
	assert.Equal(t, []paint.Op{
		{Kind: paint.Fill, Color: color.Black, Rect: a},
		{Kind: paint.Fill, Color: color.White, Rect: a},
		{Kind: paint.Fill, Color: color.Black, Rect: b},
	}, rec.Ops)
	assert.Equal(t, 1, mt.Live())
}

func TestStatesString(t *testing.T) {
	assert.Equal(t, "Stopped", Stopped.String())
	assert.Equal(t, "Shown", Shown.String())
	assert.Equal(t, "Hidden", Hidden.String())
}
