// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

//go:build !deadlock

package syncutil

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/buildutil"
)

// DeadlockEnabled is true if the deadlock detector is enabled.
const DeadlockEnabled = false

// A Mutex is a mutual exclusion lock.
type Mutex struct {
	sync.Mutex
}

// AssertHeld panics in invariants builds if the mutex is not locked. It
// cannot tell which goroutine holds the lock, only that someone does.
func (m *Mutex) AssertHeld() {
	if buildutil.Invariants && m.TryLock() {
		m.Unlock()
		panic(errors.AssertionFailedf("mutex is not held"))
	}
}

// An RWMutex is a reader/writer mutual exclusion lock.
type RWMutex struct {
	sync.RWMutex
}

// AssertHeld panics in invariants builds if the mutex is not write locked.
func (rw *RWMutex) AssertHeld() {
	if buildutil.Invariants && rw.TryLock() {
		rw.Unlock()
		panic(errors.AssertionFailedf("mutex is not write locked"))
	}
}

// AssertRHeld panics in invariants builds if the mutex is not locked at all.
// A write lock counts as a read lock.
func (rw *RWMutex) AssertRHeld() {
	if buildutil.Invariants && rw.TryLock() {
		rw.Unlock()
		panic(errors.AssertionFailedf("mutex is not read locked"))
	}
}
