// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package log is a small leveled logger. Entries are written in a crdb-v1
// style single-line format:
//
//	I261018 14:03:12.000125 ringlist/list.go:212  [ringlist=jobs] ‹index out of bounds›
//
// Context tags attached with github.com/cockroachdb/logtags are rendered in
// brackets before the message.
package log

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/ringlist/pkg/cli/exit"
	"github.com/cockroachdb/ringlist/pkg/util/syncutil"
)

var logging struct {
	mu struct {
		syncutil.Mutex

		out io.Writer

		// redactable, when set, keeps the redaction markers around unsafe
		// arguments in the output.
		redactable bool

		// colors is the color profile of the terminal on stderr, if any. It is
		// only applied while out is os.Stderr.
		colors  *colorProfile
		noColor bool

		exitOverride struct {
			f         func(exit.Code)
			hideStack bool
		}
	}
}

func init() {
	logging.mu.out = os.Stderr
	logging.mu.colors = stderrColorProfile()
}

// SetOutput redirects the log output to w. The returned function restores
// the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.mu.out
	logging.mu.out = w
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.mu.out = prev
	}
}

// SetRedactable configures whether redaction markers are kept in the output.
func SetRedactable(redactable bool) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	logging.mu.redactable = redactable
}

// Infof logs to the INFO log.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_INFO, format, args)
}

// Warningf logs to the WARNING and INFO logs.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_WARNING, format, args)
}

// Errorf logs to the ERROR, WARNING, and INFO logs.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logDepth(ctx, 1, Severity_ERROR, format, args)
}

// Fatalf logs to the FATAL log, including a stack trace, and then
// terminates the process with exit.FatalError() unless an exit override
// is installed with SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	FatalfDepth(ctx, 1, format, args...)
}

// FatalfDepth is like Fatalf but skips depth additional stack frames when
// determining the caller.
func FatalfDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	logDepth(ctx, depth+1, Severity_FATAL, format, args)

	logging.mu.Lock()
	f := logging.mu.exitOverride.f
	hideStack := logging.mu.exitOverride.hideStack
	out := logging.mu.out
	logging.mu.Unlock()

	if !hideStack {
		_, _ = out.Write(debug.Stack())
	}
	if f != nil {
		f(exit.FatalError())
		return
	}
	exit.WithCode(exit.FatalError())
}

// InfofDepth logs to the INFO log, offsetting the caller's stack frame by
// 'depth'.
func InfofDepth(ctx context.Context, depth int, format string, args ...interface{}) {
	logDepth(ctx, depth+1, Severity_INFO, format, args)
}

func logDepth(ctx context.Context, depth int, sev Severity, format string, args []interface{}) {
	file, line := caller(depth + 1)
	msg := redact.Sprintf(format, args...)

	logging.mu.Lock()
	defer logging.mu.Unlock()
	var cp *colorProfile
	if logging.mu.out == os.Stderr && !logging.mu.noColor {
		cp = logging.mu.colors
	}
	buf := formatEntry(ctx, sev, time.Now(), file, line, msg, logging.mu.redactable, cp)
	_, _ = logging.mu.out.Write(buf)
}

func caller(depth int) (string, int) {
	_, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return "???", 1
	}
	return filepath.Join(filepath.Base(filepath.Dir(file)), filepath.Base(file)), line
}

// formatEntry renders one log line. The timestamp format is the crdb-v1
// "yymmdd hh:mm:ss.uuuuuu".
func formatEntry(
	ctx context.Context,
	sev Severity,
	now time.Time,
	file string,
	line int,
	msg redact.RedactableString,
	redactable bool,
	cp *colorProfile,
) []byte {
	var buf bytes.Buffer
	if cp != nil {
		buf.Write(cp.severityPrefix(sev))
	}
	buf.WriteByte(sev.char())
	if cp != nil {
		buf.Write(cp.timePrefix)
	}
	buf.WriteString(now.UTC().Format("060102 15:04:05.000000"))
	if cp != nil {
		buf.Write(colorReset)
	}
	buf.WriteByte(' ')
	buf.WriteString(file)
	buf.WriteByte(':')
	buf.WriteString(strconv.Itoa(line))
	buf.WriteString("  ")
	if formatTags(ctx, true /* brackets */, &buf) {
		buf.WriteByte(' ')
	}
	if redactable {
		buf.WriteString(string(msg))
	} else {
		buf.WriteString(msg.StripMarkers())
	}
	if buf.Len() == 0 || buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
