// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package exit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodesAreDistinct(t *testing.T) {
	codes := []Code{
		Success(),
		UnspecifiedError(),
		UnspecifiedGoPanic(),
		CommandLineFlagError(),
		LoggingStderrUnavailable(),
		FatalError(),
		DemoScriptFailed(),
	}
	seen := make(map[int]bool)
	for _, c := range codes {
		require.False(t, seen[c.Int()], "duplicate exit code %s", c)
		seen[c.Int()] = true
	}
	require.Equal(t, "7", FatalError().String())
}
