// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timer

import "time"

// Manual is a [Service] driven by a virtual clock that only moves when
// [Manual.Advance] is called. Callbacks run synchronously inside Advance,
// in deadline order.
type Manual struct {

	// Exhausted makes every Schedule fail with [ErrResourceUnavailable].
	Exhausted bool

	now     time.Duration
	nextID  ID
	pending map[ID]time.Duration
	funcs   map[ID]func()
}

// Schedule implements [Service].
func (mt *Manual) Schedule(d time.Duration, fun func()) (ID, error) {
	if mt.Exhausted {
		return 0, ErrResourceUnavailable
	}
	if mt.pending == nil {
		mt.pending = map[ID]time.Duration{}
		mt.funcs = map[ID]func(){}
	}
	mt.nextID++
	id := mt.nextID
	mt.pending[id] = mt.now + d
	mt.funcs[id] = fun
	return id, nil
}

// Cancel implements [Service].
func (mt *Manual) Cancel(id ID) {
	delete(mt.pending, id)
	delete(mt.funcs, id)
}

// Now returns the virtual time elapsed since the clock was created.
func (mt *Manual) Now() time.Duration {
	return mt.now
}

// Live returns the number of pending timers.
func (mt *Manual) Live() int {
	return len(mt.pending)
}

// Advance moves the clock forward by d, firing every timer whose
// deadline is reached, including timers scheduled by those callbacks.
func (mt *Manual) Advance(d time.Duration) {
	target := mt.now + d
	for {
		id, ok := mt.next(target)
		if !ok {
			break
		}
		mt.now = mt.pending[id]
		fun := mt.funcs[id]
		mt.Cancel(id)
		if fun != nil {
			fun()
		}
	}
	mt.now = target
}

// next returns the earliest pending timer due at or before target,
// breaking ties by scheduling order.
func (mt *Manual) next(target time.Duration) (ID, bool) {
	var best ID
	found := false
	for id, at := range mt.pending {
		if at > target {
			continue
		}
		if !found || at < mt.pending[best] || (at == mt.pending[best] && id < best) {
			best = id
			found = true
		}
	}
	return best, found
}
