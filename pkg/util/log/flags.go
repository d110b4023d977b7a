// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package log

import (
	"context"
	"sync/atomic"
)

// verbosity is the global V() threshold.
var verbosity atomic.Int32

// SetVerbosity sets the global verbosity level and returns the previous one.
func SetVerbosity(level int32) int32 {
	return verbosity.Swap(level)
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level int32) bool {
	return verbosity.Load() >= level
}

// VEventf logs to the INFO log if the verbosity is at or above level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		logDepth(ctx, 1, Severity_INFO, format, args)
	}
}
