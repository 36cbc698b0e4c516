// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timer

import (
	"context"
	"time"

	"cogentcore.org/caret/events"
)

// Loop is a [Service] backed by real time. Expired timers are sent
// through an [events.Queue] and their callbacks run only when the owner
// calls [Loop.Drain] or [Loop.Run]. All methods except [Loop.Post] must
// be called from the owning goroutine.
type Loop struct {

	// MaxTimers is the maximum number of live timers; 0 means no limit.
	MaxTimers int

	queue  events.Queue
	nextID ID
	live   map[ID]*time.Timer
}

// NewLoop returns a new, empty [Loop].
func NewLoop() *Loop {
	lp := &Loop{live: map[ID]*time.Timer{}}
	lp.queue.Init()
	return lp
}

// Schedule implements [Service].
func (lp *Loop) Schedule(d time.Duration, fun func()) (ID, error) {
	if lp.MaxTimers > 0 && len(lp.live) >= lp.MaxTimers {
		return 0, ErrResourceUnavailable
	}
	lp.nextID++
	id := lp.nextID
	lp.live[id] = time.AfterFunc(d, func() {
		lp.queue.Send(events.NewTimer(uint64(id), fun))
	})
	return id, nil
}

// Cancel implements [Service]. A timer that already expired but has not
// been drained yet is dropped when it reaches the front of the queue.
func (lp *Loop) Cancel(id ID) {
	tm, ok := lp.live[id]
	if !ok {
		return
	}
	tm.Stop()
	delete(lp.live, id)
}

// Live returns the number of timers that are scheduled and not yet
// fired or canceled.
func (lp *Loop) Live() int {
	return len(lp.live)
}

// Post sends fun to be run on the owning goroutine. It is safe to call
// from any goroutine.
func (lp *Loop) Post(fun func()) {
	lp.queue.Send(events.NewCustom(fun))
}

// Drain runs all pending events and returns how many callbacks were run.
func (lp *Loop) Drain() int {
	n := 0
	for {
		ev, ok := lp.queue.NextEvent()
		if !ok {
			return n
		}
		if lp.handle(ev) {
			n++
		}
	}
}

func (lp *Loop) handle(ev events.Event) bool {
	switch ev.Type {
	case events.Timer:
		id := ID(ev.ID)
		if _, ok := lp.live[id]; !ok {
			return false // canceled after it expired
		}
		delete(lp.live, id)
	case events.Custom:
	default:
		return false
	}
	if ev.Func != nil {
		ev.Func()
	}
	return true
}

// Run drains events as they arrive until ctx is done.
func (lp *Loop) Run(ctx context.Context) error {
	for {
		lp.Drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-lp.queue.Ready():
		}
	}
}
