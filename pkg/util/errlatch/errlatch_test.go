// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package errlatch

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// TestLatchDataDriven runs the scripts under testdata/. Commands:
//
//	record
//	<message>
//	----
//
//	has-failed | consume | last-error
//	----
//	<result>
func TestLatchDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var l Latch
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			switch d.Cmd {
			case "record":
				l.Record(errors.New(strings.TrimSpace(d.Input)))
				return ""
			case "has-failed":
				return strconv.FormatBool(l.HasFailed())
			case "consume":
				return l.ConsumeLastError()
			case "last-error":
				if err := l.LastError(); err != nil {
					return err.Error()
				}
				return "<nil>"
			default:
				d.Fatalf(t, "unknown command %s", d.Cmd)
				return ""
			}
		})
	})
}

func TestLatchOverwrite(t *testing.T) {
	var l Latch
	require.False(t, l.HasFailed())
	require.Equal(t, NoErrorMessage, l.ConsumeLastError())

	first := errors.New("index out of bounds")
	second := errors.New("list was already empty")
	l.Record(first)
	l.Record(second)
	require.True(t, l.HasFailed())
	require.True(t, l.HasFailed(), "HasFailed must not clear the flag")
	require.Equal(t, "list was already empty", l.ConsumeLastError())
	require.False(t, l.HasFailed())
	require.Equal(t, NoErrorMessage, l.ConsumeLastError())
	require.True(t, errors.Is(l.LastError(), second))
}

func TestLatchIgnoresNil(t *testing.T) {
	var l Latch
	l.Record(nil)
	require.False(t, l.HasFailed())
	require.NoError(t, l.LastError())
}

func TestLatchTruncatesMessage(t *testing.T) {
	var l Latch
	l.Record(errors.New(strings.Repeat("x", 3*MaxMessageLen)))
	require.Len(t, l.ConsumeLastError(), MaxMessageLen)

	// A multi-byte rune straddling the limit is dropped whole.
	l.Record(errors.New(strings.Repeat("a", MaxMessageLen-1) + "é"))
	msg := l.ConsumeLastError()
	require.Equal(t, strings.Repeat("a", MaxMessageLen-1), msg)
}

func TestLatchConcurrentRecord(t *testing.T) {
	var l Latch
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Record(fmt.Errorf("failure %d", i))
		}(i)
	}
	wg.Wait()
	require.True(t, l.HasFailed())
	require.True(t, strings.HasPrefix(l.ConsumeLastError(), "failure "))
}

func TestNoErrorMessageText(t *testing.T) {
	var l Latch
	require.Equal(t, "No errors occurred yet", l.ConsumeLastError())
}
