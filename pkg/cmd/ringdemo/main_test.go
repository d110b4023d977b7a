// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/cli/exit"
	"github.com/cockroachdb/ringlist/pkg/util/container/ringlist"
	"github.com/cockroachdb/ringlist/pkg/util/log"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := makeRingdemoCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDemo(t *testing.T) {
	out, err := execute(t, "demo")
	require.NoError(t, err)
	require.Equal(t, `[0] = 3
[1] = 2
[2] = 1
3
Len: 2
[0] = 2
[1] = 1
2
Len: 1
[0] = 1
1
Len: 0
[0] = 1
[1] = 2
[2] = 3
1
Len: 2
[0] = 2
[1] = 3
2
Len: 1
[0] = 3
3
Len: 0
`, out)
}

func TestRun(t *testing.T) {
	var logBuf bytes.Buffer
	defer log.SetOutput(&logBuf)()
	out, err := execute(t, "run", "push:4", "enqueue:5", "insert:1:9", "set:0:7", "get:2", "print",
		"remove:1", "cut:0:1", "print", "clear", "dequeue")
	require.True(t, errors.Is(err, errScriptFailed))
	require.Equal(t, exit.DemoScriptFailed(), exitCode(err))
	require.Equal(t, `5
[0] = 7
[1] = 9
[2] = 5
9
Len: 2
[0] = 5
error: list was already empty
last error: list was already empty
`, out)
	require.Equal(t, byte('W'), logBuf.Bytes()[0])
	require.Contains(t, logBuf.String(), "  1 of 11 operations failed\n")
}

func TestRunMaxLenAndMetrics(t *testing.T) {
	out, err := execute(t, "run", "--max-len=1", "--metrics", "push:1", "push:2", "cut:0:1")
	require.Error(t, err)
	require.Contains(t, out, "error: list is at its maximum length 1: node allocation failed\n")
	require.Contains(t, out, "# TYPE ringlist_push_count counter\nringlist_push_count 1\n")
	require.Contains(t, out, "ringlist_failure_count 1\n")
	require.Contains(t, out, "ringlist_range_removal_count 1\n")
	require.Contains(t, out, "# TYPE ringlist_nodes gauge\nringlist_nodes 0\n")
}

func TestRunPanicPolicy(t *testing.T) {
	require.Panics(t, func() {
		_, _ = execute(t, "run", "--on-error=panic", "pop")
	})
}

func TestBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"run", "bogus"},
		{"run", "push"},
		{"run", "push:x"},
		{"run", "--on-error=sometimes", "pop"},
		{"run", "--max-len=-1", "pop"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err, "%v", args)
		require.Equal(t, exit.CommandLineFlagError(), exitCode(err), "%v: %v", args, err)
	}
}

func TestPolicyValue(t *testing.T) {
	var p ringlist.ErrorPolicy
	v := policyValue{&p}
	require.Equal(t, "return", v.String())
	require.NoError(t, v.Set("exit"))
	require.Equal(t, ringlist.ExitOnError, p)
	require.Equal(t, "exit", v.String())
	require.Error(t, v.Set("abort"))
}

func TestDemoLogsNothing(t *testing.T) {
	var logBuf bytes.Buffer
	defer log.SetOutput(&logBuf)()
	_, err := execute(t, "demo")
	require.NoError(t, err)
	require.Zero(t, logBuf.Len())
}
