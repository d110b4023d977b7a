// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import "github.com/cockroachdb/errors"

// resolve returns the node at the logical position index mod l.length. It
// walks forward from the head for indices in the first half of the list and
// backward from the head otherwise, so it never takes more than
// ceil(length/2) hops.
//
// The list must not be empty and index must be non-negative.
func (l *List[T]) resolve(index int) nodeID {
	if l.length == 0 {
		panic(errors.Mark(
			errors.AssertionFailedf("resolving index %d in an empty list", index),
			ErrInvalidCursorState))
	}
	index %= l.length
	nodes := l.arena.nodes
	id := l.head
	if index < l.length/2 {
		for i := 0; i < index; i++ {
			id = nodes[id].next
		}
	} else {
		for i := l.length - index; i > 0; i-- {
			id = nodes[id].prev
		}
	}
	return id
}
