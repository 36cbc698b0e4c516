// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package caret

import (
	"errors"

	"cogentcore.org/caret/timer"
)

var (
	// ErrInvalidArgument is returned by [New] for a missing host or
	// missing or invalid settings.
	ErrInvalidArgument = errors.New("caret: invalid argument")

	// ErrResourceUnavailable is returned when the blink timer cannot be
	// allocated. It is the same error as [timer.ErrResourceUnavailable].
	ErrResourceUnavailable = timer.ErrResourceUnavailable

	// ErrUnresolvedPosition is returned by [Resolve] when the selection
	// cannot be mapped to a rectangle. It is never returned from the
	// [Caret] methods: the caret is simply not drawn for that cycle.
	ErrUnresolvedPosition = errors.New("caret: unresolved position")
)
