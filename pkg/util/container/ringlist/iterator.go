// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import "github.com/cockroachdb/errors"

// Iterator is a forward cursor over a List. It visits each element once,
// from the head to the tail, and does not wrap around.
//
// An Iterator is bound to the generation of its list at the time it was
// created or last Reset. Any structural mutation of the list (an insertion
// or removal, but not Set) makes the iterator stale: Next returns false and
// Err returns an error satisfying errors.Is(err, ErrStaleIterator).
//
// Typical use:
//
//	it := l.NewIterator()
//	for it.Next() {
//		v, _ := it.Value()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[T any] struct {
	list *List[T]
	gen  uint64
	// index is -1 before the first call to Next, in [0, length) while
	// positioned on an element and length once exhausted.
	index int
	cur   nodeID
	err   error
}

// NewIterator returns an iterator positioned before the first element of
// the list.
func (l *List[T]) NewIterator() *Iterator[T] {
	it := &Iterator[T]{list: l}
	it.Reset()
	return it
}

// Reset rewinds the iterator to before the first element and binds it to
// the list's current generation, clearing any error.
func (it *Iterator[T]) Reset() {
	if it.list != nil {
		it.gen = it.list.gen
	}
	it.index = -1
	it.cur = noNode
	it.err = nil
}

// position places the iterator on the element at index.
func (it *Iterator[T]) position(index int, id nodeID) {
	it.gen = it.list.gen
	it.index = index
	it.cur = id
	it.err = nil
}

func (it *Iterator[T]) stale() bool {
	return it.gen != it.list.gen
}

// Next advances the iterator and reports whether it is positioned on an
// element.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.list == nil || it.list.destroyed {
		it.err = errNullContainer()
		return false
	}
	if it.stale() {
		it.err = errors.WithStack(ErrStaleIterator)
		return false
	}
	return it.advance()
}

// advance implements the cursor state machine. It assumes the iterator is
// not stale.
func (it *Iterator[T]) advance() bool {
	l := it.list
	if l.length == 0 {
		it.index = -1
		it.cur = noNode
		return false
	}
	switch {
	case it.index == -1:
		it.index = 0
		it.cur = l.head
		return true
	case it.index >= 0 && it.index < l.length-1:
		it.index++
		it.cur = l.arena.nodes[it.cur].next
		return true
	case it.index == l.length-1:
		it.index = l.length
		it.cur = noNode
		return false
	case it.index == l.length:
		return false
	default:
		it.err = errors.Mark(
			errors.AssertionFailedf("unexpected cursor index %d for list of length %d", it.index, l.length),
			ErrInvalidCursorState)
		return false
	}
}

// Value returns the element the iterator is positioned on. It returns an
// error if Next has not returned true since the last Reset, if the
// iterator is exhausted, or if it is stale.
func (it *Iterator[T]) Value() (T, error) {
	var zero T
	if it.list == nil || it.list.destroyed {
		return zero, errNullContainer()
	}
	if it.stale() {
		return zero, errors.WithStack(ErrStaleIterator)
	}
	if it.index < 0 || it.index >= it.list.length {
		return zero, errors.Wrapf(ErrInvalidCursorState, "cursor at index %d is not on an element", it.index)
	}
	return it.list.arena.nodes[it.cur].value, nil
}

// Index returns the logical index of the iterator: -1 before the first
// element and the list length once exhausted.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}
