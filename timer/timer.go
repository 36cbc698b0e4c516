// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timer provides one-shot timers whose callbacks are always run
// on the goroutine that owns them: [Loop] for real time and [Manual]
// for a virtual clock that is advanced explicitly.
package timer

import (
	"errors"
	"time"
)

// ErrResourceUnavailable is returned by [Service.Schedule] when no
// more timers can be allocated.
var ErrResourceUnavailable = errors.New("timer: resource unavailable")

// ID identifies a scheduled timer. The zero ID is never issued.
type ID uint64

// Service schedules one-shot callbacks. Callbacks are invoked on the
// goroutine that owns the service, serialized with all other work on it.
// After Cancel returns, the callback for that id is never invoked.
type Service interface {

	// Schedule arranges for fun to be called once after d.
	Schedule(d time.Duration, fun func()) (ID, error)

	// Cancel releases the timer; canceling an unknown or already
	// fired id does nothing.
	Cancel(id ID)
}
