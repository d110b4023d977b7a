// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import "github.com/cockroachdb/redact"

var _ redact.SafeFormatter = (*List[int])(nil)

// SafeFormat implements redact.SafeFormatter. The structure of the list is
// safe; its elements are not.
func (l *List[T]) SafeFormat(w redact.SafePrinter, _ rune) {
	if l == nil {
		w.SafeString("<nil>")
		return
	}
	if l.destroyed {
		w.SafeString("<destroyed>")
		return
	}
	w.SafeRune('[')
	for i, v := range l.Values() {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Print(v)
	}
	w.SafeRune(']')
}

// String implements fmt.Stringer.
func (l *List[T]) String() string {
	return redact.StringWithoutMarkers(l)
}
