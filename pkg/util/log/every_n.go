// Copyright 2017 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"time"

	"github.com/cockroachdb/ringlist/pkg/util/syncutil"
)

// EveryN provides a way to rate limit spammy log messages. It tracks how
// recently a given log message has been emitted so that it can determine
// whether it's worth logging again.
//
// The zero value for EveryN is usable and is equivalent to Every(0), meaning
// that all calls to ShouldLog will return true.
type EveryN struct {
	// N is the minimum duration of time between log messages.
	N time.Duration

	mu struct {
		syncutil.Mutex
		lastLog time.Time
	}
}

// Every is a convenience constructor for an EveryN object that allows a log
// message every n duration.
func Every(n time.Duration) *EveryN {
	return &EveryN{N: n}
}

// ShouldLog returns whether it's been more than N time since the last event.
func (e *EveryN) ShouldLog() bool {
	return e.shouldLog(time.Now())
}

func (e *EveryN) shouldLog(now time.Time) bool {
	if V(2) {
		// Always log when high verbosity is desired.
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if now.Sub(e.mu.lastLog) >= e.N {
		e.mu.lastLog = now
		return true
	}
	return false
}
