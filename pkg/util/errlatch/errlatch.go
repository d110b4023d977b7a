// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package errlatch provides a single-slot record of the most recent failure.
//
// A Latch is meant for diagnostic reporting by code that does not want to
// inspect every returned error: operations that fail record their error in
// the latch, and the caller later asks whether anything failed and what the
// last failure was. Only the most recent unread failure is kept.
package errlatch

import (
	"unicode/utf8"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/ringlist/pkg/util/syncutil"
)

// MaxMessageLen is the maximum length in bytes of a latched message.
const MaxMessageLen = 128

// NoErrorMessage is returned by ConsumeLastError when no failure is pending.
const NoErrorMessage = "No errors occurred yet"

// Latch records the last error reported to it. The zero value is ready to
// use. A Latch can be shared by multiple goroutines.
type Latch struct {
	mu struct {
		syncutil.Mutex
		failed  bool
		message string
		err     error
	}
}

// Record overwrites the latched failure with err. A nil err is ignored.
func (l *Latch) Record(err error) {
	if err == nil {
		return
	}
	// The message is rendered without redaction markers, since the latch is
	// read by the local caller.
	msg := truncate(redact.Sprint(err).StripMarkers(), MaxMessageLen)
	l.mu.Lock()
	defer l.mu.Unlock()
	l.setLocked(msg, err)
}

func (l *Latch) setLocked(msg string, err error) {
	l.mu.AssertHeld()
	l.mu.failed = true
	l.mu.message = msg
	l.mu.err = err
}

// HasFailed returns whether an unread failure is pending. It does not clear
// the flag.
func (l *Latch) HasFailed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mu.failed
}

// ConsumeLastError returns the message of the pending failure and clears the
// flag. If no failure is pending it returns NoErrorMessage.
func (l *Latch) ConsumeLastError() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.mu.failed {
		return NoErrorMessage
	}
	l.mu.failed = false
	return l.mu.message
}

// LastError returns the most recently recorded error, whether or not it has
// been consumed, or nil if nothing was ever recorded.
func (l *Latch) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.mu.err
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	s = s[:n]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
