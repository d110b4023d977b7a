// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/ringlist/pkg/util/errlatch"
	"github.com/stretchr/testify/require"
)

// TestDataDriven runs the scripts under testdata/ against a List[string].
//
// Mutating commands print the list and its length afterwards. Commands:
//
//	new [max-len=<n>]
//	push-front <v>...          push-back <v>...
//	pop-front                  dequeue
//	get i=<i>                  set i=<i> v=<v>
//	insert i=<i> v=<v>         remove i=<i>
//	remove-range start=<i> count=<n>
//	clear                      destroy
//	reset-cursor               advance
//	current                    index
//	iterate                    latch
func TestDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var l *List[string]
		var latch errlatch.Latch
		datadriven.RunTest(t, path, func(t *testing.T, d *datadriven.TestData) string {
			var out strings.Builder
			writeErr := func(err error) {
				if err != nil {
					fmt.Fprintf(&out, "error: %v\n", err)
				}
			}
			writeValue := func(v string, err error) {
				if err != nil {
					writeErr(err)
					return
				}
				fmt.Fprintln(&out, v)
			}
			scanInt := func(key string) int {
				var i int
				d.ScanArgs(t, key, &i)
				return i
			}

			mutation := true
			switch d.Cmd {
			case "new":
				opts := []Option{WithLatch(&latch)}
				if d.HasArg("max-len") {
					opts = append(opts, WithMaxLen(scanInt("max-len")))
				}
				var err error
				l, err = New[string](opts...)
				require.NoError(t, err)

			case "push-front", "push-back":
				for _, arg := range d.CmdArgs {
					if d.Cmd == "push-front" {
						writeErr(l.PushFront(arg.Key))
					} else {
						writeErr(l.PushBack(arg.Key))
					}
				}

			case "pop-front":
				writeValue(l.PopFront())

			case "dequeue":
				writeValue(l.Dequeue())

			case "set":
				var v string
				d.ScanArgs(t, "v", &v)
				writeErr(l.Set(scanInt("i"), v))

			case "insert":
				var v string
				d.ScanArgs(t, "v", &v)
				writeErr(l.Insert(scanInt("i"), v))

			case "remove":
				writeValue(l.Remove(scanInt("i")))

			case "remove-range":
				writeErr(l.RemoveRange(scanInt("start"), scanInt("count")))

			case "clear":
				l.Clear()

			case "destroy":
				l.Destroy()

			default:
				mutation = false
			}
			if mutation {
				fmt.Fprintf(&out, "%s len=%d\n", l, l.Len())
				require.NoError(t, l.checkInvariants())
				return out.String()
			}

			switch d.Cmd {
			case "get":
				writeValue(l.Get(scanInt("i")))

			case "reset-cursor":
				l.ResetCursor()

			case "advance":
				ok := l.AdvanceCursor()
				fmt.Fprintf(&out, "%t index=%d\n", ok, l.CurrentIndex())

			case "current":
				writeValue(l.Current())

			case "index":
				fmt.Fprintln(&out, l.CurrentIndex())

			case "iterate":
				l.ResetCursor()
				for l.AdvanceCursor() {
					v, err := l.Current()
					require.NoError(t, err)
					fmt.Fprintf(&out, "[%d] = %s\n", l.CurrentIndex(), v)
				}

			case "latch":
				fmt.Fprintf(&out, "failed=%t\n%s\n", latch.HasFailed(), latch.ConsumeLastError())

			default:
				d.Fatalf(t, "unknown command %s", d.Cmd)
			}
			return out.String()
		})
	})
}
