// Copyright 2019 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import "github.com/cockroachdb/ringlist/pkg/cli/exit"

// SetExitFunc allows setting a function that will be called to exit
// the process when a Fatal message is generated. The supplied bool,
// if true, suppresses the stack trace, which is useful for test
// callers wishing to keep the logs reasonably clean.
//
// Use ResetExitFunc() to reset.
func SetExitFunc(hideStack bool, f func(exit.Code)) {
	if f == nil {
		panic("nil exit func invalid")
	}
	setExitErrFunc(hideStack, f)
}

// setExitErrFunc is like SetExitFunc but the function can also
// be nil, in which case the process exits for real.
func setExitErrFunc(hideStack bool, f func(exit.Code)) {
	logging.mu.Lock()
	defer logging.mu.Unlock()

	logging.mu.exitOverride.f = f
	logging.mu.exitOverride.hideStack = hideStack
}

// ResetExitFunc undoes any prior call to SetExitFunc.
func ResetExitFunc() {
	setExitErrFunc(false /* hideStack */, nil)
}
