// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/buildutil"
)

// This file holds the ring engine: structural mutations of the chain. The
// callers in list.go validate indices; everything here assumes valid input.

// allocNode allocates a detached node for v.
func (l *List[T]) allocNode(v T) (nodeID, error) {
	id, ok := l.arena.alloc(v)
	if !ok {
		return noNode, errAllocationFailure(l.opts.maxLen)
	}
	if m := l.opts.metrics; m != nil {
		m.Nodes.Inc(1)
	}
	return id, nil
}

// releaseNode frees a detached node and returns its value.
func (l *List[T]) releaseNode(id nodeID) T {
	if m := l.opts.metrics; m != nil {
		m.Nodes.Dec(1)
	}
	return l.arena.release(id)
}

// spliceBefore links the detached node id into the ring immediately before
// at. Splicing before the head appends at the tail.
func (l *List[T]) spliceBefore(id, at nodeID) {
	nodes := l.arena.nodes
	prev := nodes[at].prev
	nodes[id].next = at
	nodes[id].prev = prev
	nodes[prev].next = id
	nodes[at].prev = id
}

// unlink removes id from the ring, linking its neighbors to each other, and
// leaves id self-linked.
func (l *List[T]) unlink(id nodeID) {
	nodes := l.arena.nodes
	prev, next := nodes[id].prev, nodes[id].next
	nodes[prev].next = next
	nodes[next].prev = prev
	nodes[id].next = id
	nodes[id].prev = id
}

// mutated records a structural change: every cursor started before it
// becomes stale.
func (l *List[T]) mutated() {
	l.gen++
	if buildutil.Invariants {
		if err := l.checkInvariants(); err != nil {
			panic(err)
		}
	}
}

func (l *List[T]) insertAtHead(v T) error {
	id, err := l.allocNode(v)
	if err != nil {
		return err
	}
	if l.length == 0 {
		l.head = id
		l.length = 1
	} else {
		l.spliceBefore(id, l.head)
		l.head = id
		l.length++
	}
	l.mutated()
	return nil
}

// insertAtTail appends v. When the list was empty, the embedded cursor is
// left positioned on the new element instead of being reset.
func (l *List[T]) insertAtTail(v T) error {
	id, err := l.allocNode(v)
	if err != nil {
		return err
	}
	if l.length == 0 {
		l.head = id
		l.length = 1
		l.mutated()
		l.cursor.position(0, id)
		return nil
	}
	l.spliceBefore(id, l.head)
	l.length++
	l.mutated()
	return nil
}

// insertAt inserts v so that it ends up at position index, for
// 0 <= index <= length.
func (l *List[T]) insertAt(v T, index int) error {
	switch index {
	case 0:
		return l.insertAtHead(v)
	case l.length:
		return l.insertAtTail(v)
	}
	id, err := l.allocNode(v)
	if err != nil {
		return err
	}
	l.spliceBefore(id, l.resolve(index))
	l.length++
	l.mutated()
	return nil
}

// removeHead detaches the first node and returns it self-linked; the caller
// releases it.
func (l *List[T]) removeHead() (nodeID, error) {
	if l.length == 0 {
		l.cursor.Reset()
		return noNode, errors.WithStack(ErrUnderflow)
	}
	id := l.head
	if l.length == 1 {
		l.head = noNode
		l.length = 0
	} else {
		l.head = l.arena.nodes[id].next
		l.unlink(id)
		l.length--
	}
	l.mutated()
	return id, nil
}

// removeAt removes the element at position index, for 0 <= index < length,
// and returns its value.
func (l *List[T]) removeAt(index int) (T, error) {
	if index == 0 {
		id, err := l.removeHead()
		if err != nil {
			var zero T
			return zero, err
		}
		return l.releaseNode(id), nil
	}
	id := l.resolve(index)
	l.unlink(id)
	l.length--
	l.mutated()
	return l.releaseNode(id), nil
}

// removeRange removes count consecutive elements starting at start, wrapping
// past the tail back to the head if the run crosses it. It requires
// 0 <= start < length and 0 <= count <= length. Removing length elements
// empties the list.
func (l *List[T]) removeRange(start, count int) {
	if count == 0 {
		return
	}
	if count == l.length {
		l.clear()
		return
	}
	nodes := l.arena.nodes
	first := l.resolve(start)
	before := nodes[first].prev
	after := l.resolve(start + count)
	for id := first; id != after; {
		next := nodes[id].next
		l.releaseNode(id)
		id = next
	}
	nodes[before].next = after
	nodes[after].prev = before
	if start == 0 || start+count > l.length {
		// The run covered the head.
		l.head = after
	}
	l.length -= count
	l.mutated()
}

// clear releases every node.
func (l *List[T]) clear() {
	if m := l.opts.metrics; m != nil {
		m.Nodes.Dec(int64(l.length))
	}
	l.arena.reset()
	l.head = noNode
	l.length = 0
	l.mutated()
	l.cursor.Reset()
}
