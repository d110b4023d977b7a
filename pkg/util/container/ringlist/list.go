// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package ringlist implements an index-addressable circular doubly linked
// list.
//
// A List supports stack and queue operations at both ends in O(1) and
// positional access, insertion and removal in O(min(i, n-i)), since an
// index is resolved by walking from whichever end of the ring is nearer.
// Nodes live in an arena owned by the list and are linked by slot index.
//
// Every failing operation returns an error wrapping one of the package's
// sentinel errors. A list can additionally record failures in an
// errlatch.Latch, count them in Metrics, and panic or exit the process
// instead of returning, depending on its ErrorPolicy.
//
// A List is not safe for concurrent use.
package ringlist

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/logtags"
	"github.com/cockroachdb/ringlist/pkg/util/log"
)

// List is a circular doubly linked list of values of type T. Use New to
// construct one.
//
// Besides external Iterators, a List embeds a single cursor driven by
// ResetCursor, AdvanceCursor, Current and CurrentIndex. Any structural
// mutation implicitly resets that cursor, with one exception: pushing onto
// the back of an empty list leaves the cursor on the new element.
type List[T any] struct {
	arena  arena[T]
	head   nodeID
	length int
	// gen is bumped by every structural mutation.
	gen       uint64
	cursor    Iterator[T]
	destroyed bool

	opts     options
	ctx      context.Context
	logEvery *log.EveryN
}

// New returns an empty list.
func New[T any](opts ...Option) (*List[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	l := &List[T]{
		head:     noNode,
		opts:     o,
		ctx:      context.Background(),
		logEvery: log.Every(time.Second),
	}
	if o.name != "" {
		l.ctx = logtags.AddTag(l.ctx, "ringlist", o.name)
	}
	l.arena.init(o.maxLen)
	l.cursor.list = l
	l.cursor.Reset()
	return l, nil
}

// check returns an error if the list cannot be operated on.
func (l *List[T]) check() error {
	if l == nil || l.destroyed {
		return errNullContainer()
	}
	return nil
}

// Len returns the number of elements in the list. It returns 0 for a nil or
// destroyed list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) error {
	if err := l.check(); err != nil {
		return l.fail(err)
	}
	if err := l.insertAtHead(v); err != nil {
		return l.fail(err)
	}
	l.countPush()
	return nil
}

// Push is PushFront, for stack-style use.
func (l *List[T]) Push(v T) error {
	return l.PushFront(v)
}

// PushBack inserts v at the back of the list.
func (l *List[T]) PushBack(v T) error {
	if err := l.check(); err != nil {
		return l.fail(err)
	}
	if err := l.insertAtTail(v); err != nil {
		return l.fail(err)
	}
	l.countPush()
	return nil
}

// Enqueue is PushBack, for queue-style use.
func (l *List[T]) Enqueue(v T) error {
	return l.PushBack(v)
}

// PopFront removes and returns the element at the front of the list.
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if err := l.check(); err != nil {
		return zero, l.fail(err)
	}
	id, err := l.removeHead()
	if err != nil {
		return zero, l.fail(err)
	}
	l.countPop()
	return l.releaseNode(id), nil
}

// Pop is PopFront, for stack-style use.
func (l *List[T]) Pop() (T, error) {
	return l.PopFront()
}

// Dequeue is PopFront, for queue-style use: combined with PushBack it
// yields elements in insertion order.
func (l *List[T]) Dequeue() (T, error) {
	return l.PopFront()
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if err := l.check(); err != nil {
		return zero, l.fail(err)
	}
	if index < 0 || index >= l.length {
		return zero, l.fail(errIndexOutOfBounds("get", index, l.length))
	}
	return l.arena.nodes[l.resolve(index)].value, nil
}

// Set replaces the element at index. The element must already exist. Set is
// not a structural mutation and does not invalidate cursors.
func (l *List[T]) Set(index int, v T) error {
	if err := l.check(); err != nil {
		return l.fail(err)
	}
	if index < 0 || index >= l.length {
		return l.fail(errIndexOutOfBounds("set", index, l.length))
	}
	l.arena.nodes[l.resolve(index)].value = v
	return nil
}

// Insert inserts v so that it ends up at position index, shifting the
// elements at and after index back by one. Inserting at Len() appends.
func (l *List[T]) Insert(index int, v T) error {
	if err := l.check(); err != nil {
		return l.fail(err)
	}
	if index < 0 || index > l.length {
		return l.fail(errIndexOutOfBounds("insert", index, l.length))
	}
	if err := l.insertAt(v, index); err != nil {
		return l.fail(err)
	}
	l.countPush()
	return nil
}

// Remove removes and returns the element at index.
func (l *List[T]) Remove(index int) (T, error) {
	var zero T
	if err := l.check(); err != nil {
		return zero, l.fail(err)
	}
	if index < 0 || index >= l.length {
		return zero, l.fail(errIndexOutOfBounds("remove", index, l.length))
	}
	v, err := l.removeAt(index)
	if err != nil {
		return zero, l.fail(err)
	}
	l.countPop()
	return v, nil
}

// RemoveRange removes count consecutive elements starting at start. The run
// wraps around from the tail to the head: on [a b c d e], RemoveRange(3, 3)
// removes d, e and a. start must be in [0, Len()) and count in [0, Len()];
// removing Len() elements empties the list. On invalid bounds the list is
// left unchanged.
func (l *List[T]) RemoveRange(start, count int) error {
	if err := l.check(); err != nil {
		return l.fail(err)
	}
	if start < 0 || start >= l.length {
		return l.fail(errors.Wrapf(ErrIndexOutOfBounds, "start index %d, list length %d", start, l.length))
	}
	if count < 0 || count > l.length {
		return l.fail(errors.Wrapf(ErrIndexOutOfBounds, "range length %d, list length %d", count, l.length))
	}
	l.removeRange(start, count)
	if m := l.opts.metrics; m != nil {
		m.RangeRemovals.Inc(int64(count))
	}
	return nil
}

// Clear removes every element. Clearing an empty list is a no-op.
func (l *List[T]) Clear() {
	if l.check() != nil {
		return
	}
	if l.length == 0 {
		l.cursor.Reset()
		return
	}
	l.clear()
}

// Destroy clears the list and releases its storage. Every later operation
// on the list, other than Len, fails with ErrNullContainer.
func (l *List[T]) Destroy() {
	if l.check() != nil {
		return
	}
	l.Clear()
	l.arena = arena[T]{}
	l.destroyed = true
}

// ResetCursor rewinds the embedded cursor to before the first element.
func (l *List[T]) ResetCursor() {
	if l == nil {
		return
	}
	l.cursor.Reset()
}

// AdvanceCursor moves the embedded cursor to the next element and reports
// whether there is one. Once the last element has been passed it keeps
// returning false until the cursor is reset or the list is mutated.
func (l *List[T]) AdvanceCursor() bool {
	if l.check() != nil {
		return false
	}
	if l.cursor.stale() {
		l.cursor.Reset()
	}
	ok := l.cursor.advance()
	if err := l.cursor.err; err != nil {
		l.cursor.Reset()
		_ = l.fail(err)
	}
	return ok
}

// Current returns the element under the embedded cursor. It fails with
// ErrInvalidCursorState unless the last call to AdvanceCursor returned
// true and the list has not been mutated since.
func (l *List[T]) Current() (T, error) {
	var zero T
	if err := l.check(); err != nil {
		return zero, l.fail(err)
	}
	if l.cursor.stale() {
		return zero, l.fail(errors.Wrap(ErrInvalidCursorState, "cursor reset by a mutation"))
	}
	v, err := l.cursor.Value()
	if err != nil {
		return zero, l.fail(err)
	}
	return v, nil
}

// CurrentIndex returns the logical index of the embedded cursor, or -1 if
// iteration has not started.
func (l *List[T]) CurrentIndex() int {
	if l.check() != nil || l.cursor.stale() {
		return -1
	}
	return l.cursor.index
}

// Values returns the elements of the list in order.
func (l *List[T]) Values() []T {
	if l.check() != nil || l.length == 0 {
		return nil
	}
	values := make([]T, 0, l.length)
	id := l.head
	for i := 0; i < l.length; i++ {
		values = append(values, l.arena.nodes[id].value)
		id = l.arena.nodes[id].next
	}
	return values
}

func (l *List[T]) countPush() {
	if m := l.opts.metrics; m != nil {
		m.Pushes.Inc(1)
	}
}

func (l *List[T]) countPop() {
	if m := l.opts.metrics; m != nil {
		m.Pops.Inc(1)
	}
}
