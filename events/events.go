// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the event queue that carries work from
// timer goroutines and file watchers back onto the single goroutine
// that owns a document view.
package events

import (
	"fmt"
	"time"
)

// Types is the kind of an [Event].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Timer is sent when a scheduled timer expires.
	// [Event.ID] is the id the timer was scheduled under.
	Timer

	// Custom carries an arbitrary function to run on the owning goroutine,
	// for example a settings reload.
	Custom
)

func (tp Types) String() string {
	switch tp {
	case Timer:
		return "Timer"
	case Custom:
		return "Custom"
	}
	return "UnknownType"
}

// Event is one unit of work delivered through a [Queue].
type Event struct {
	Type Types

	// ID identifies the source of the event; for [Timer] events
	// it is the timer id.
	ID uint64

	// Time is when the event was generated.
	Time time.Time

	// Func is run by the receiver when the event is handled.
	Func func()
}

// NewTimer returns a new [Timer] event for the given id.
func NewTimer(id uint64, fun func()) Event {
	return Event{Type: Timer, ID: id, Time: time.Now(), Func: fun}
}

// NewCustom returns a new [Custom] event that runs the given function.
func NewCustom(fun func()) Event {
	return Event{Type: Custom, Time: time.Now(), Func: fun}
}

func (ev Event) String() string {
	return fmt.Sprintf("%v{ID: %d, Time: %v}", ev.Type, ev.ID, ev.Time.Format(time.StampMilli))
}
