// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import "github.com/cockroachdb/errors"

// checkInvariants walks the ring and verifies that it is consistent with the
// list's bookkeeping. It runs after every mutation in invariants builds.
func (l *List[T]) checkInvariants() error {
	if l.length == 0 {
		if l.head != noNode {
			return errors.AssertionFailedf("empty list has head %d", l.head)
		}
		return nil
	}
	if l.head == noNode {
		return errors.AssertionFailedf("list of length %d has no head", l.length)
	}
	if l.arena.live < l.length {
		return errors.AssertionFailedf("%d live nodes for a list of length %d", l.arena.live, l.length)
	}
	nodes := l.arena.nodes
	id := l.head
	for i := 0; i < l.length; i++ {
		n := nodes[id]
		if nodes[n.next].prev != id {
			return errors.AssertionFailedf("node %d at index %d: next.prev = %d", id, i, nodes[n.next].prev)
		}
		if nodes[n.prev].next != id {
			return errors.AssertionFailedf("node %d at index %d: prev.next = %d", id, i, nodes[n.prev].next)
		}
		id = n.next
	}
	if id != l.head {
		return errors.AssertionFailedf("ring does not close after %d nodes", l.length)
	}
	return nil
}
