// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import "math"

// nodeID addresses a node in an arena.
type nodeID int32

// noNode is the nil nodeID.
const noNode nodeID = -1

// node is one element of the ring. Links are arena indices rather than
// pointers, so the ring's reference cycle lives entirely inside one slice.
type node[T any] struct {
	value T
	next  nodeID
	prev  nodeID
}

// arena owns the storage for every node of a list. Released slots are
// threaded onto a free list through their next field and reused.
type arena[T any] struct {
	nodes []node[T]
	free  nodeID
	live  int
	// limit bounds live. Zero means unbounded.
	limit int
}

func (a *arena[T]) init(limit int) {
	a.free = noNode
	a.limit = limit
}

// alloc returns a detached, self-linked node holding v. It returns false if
// the arena is full.
func (a *arena[T]) alloc(v T) (nodeID, bool) {
	if a.limit > 0 && a.live >= a.limit {
		return noNode, false
	}
	var id nodeID
	if a.free != noNode {
		id = a.free
		a.free = a.nodes[id].next
	} else {
		if len(a.nodes) >= math.MaxInt32 {
			return noNode, false
		}
		id = nodeID(len(a.nodes))
		a.nodes = append(a.nodes, node[T]{})
	}
	a.nodes[id] = node[T]{value: v, next: id, prev: id}
	a.live++
	return id, true
}

// release returns id to the free list and hands back its value. The slot's
// value is zeroed so the arena does not keep the caller's data reachable.
func (a *arena[T]) release(id nodeID) T {
	n := &a.nodes[id]
	v := n.value
	var zero T
	n.value = zero
	n.prev = noNode
	n.next = a.free
	a.free = id
	a.live--
	return v
}

// reset releases every node at once.
func (a *arena[T]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.free = noNode
	a.live = 0
}
