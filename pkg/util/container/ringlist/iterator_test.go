// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func collect[T any](t *testing.T, it *Iterator[T]) []T {
	t.Helper()
	var res []T
	for it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		res = append(res, v)
	}
	require.NoError(t, it.Err())
	return res
}

func TestIterator(t *testing.T) {
	l := newTestList[int](t)
	it := l.NewIterator()
	require.False(t, it.Next())
	require.NoError(t, it.Err())
	require.Equal(t, -1, it.Index())

	for i := 0; i < 5; i++ {
		require.NoError(t, l.PushBack(i))
	}
	it = l.NewIterator()
	_, err := it.Value()
	require.True(t, errors.Is(err, ErrInvalidCursorState))

	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(t, it))
	require.Equal(t, 5, it.Index())
	// An exhausted iterator stays exhausted.
	require.False(t, it.Next())
	_, err = it.Value()
	require.True(t, errors.Is(err, ErrInvalidCursorState))

	it.Reset()
	require.Equal(t, []int{0, 1, 2, 3, 4}, collect(t, it))
}

func TestIteratorIndependentOfCursor(t *testing.T) {
	l := newTestList[string](t)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, l.PushBack(s))
	}
	require.True(t, l.AdvanceCursor())
	a, b := l.NewIterator(), l.NewIterator()
	require.True(t, a.Next())
	require.True(t, a.Next())
	require.True(t, b.Next())

	va, err := a.Value()
	require.NoError(t, err)
	vb, err := b.Value()
	require.NoError(t, err)
	require.Equal(t, "b", va)
	require.Equal(t, "a", vb)
	require.Equal(t, 0, l.CurrentIndex())
}

func TestIteratorStale(t *testing.T) {
	l := newTestList[int](t)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.PushBack(i))
	}

	it := l.NewIterator()
	require.True(t, it.Next())
	// Set does not invalidate iterators.
	require.NoError(t, l.Set(0, 10))
	v, err := it.Value()
	require.NoError(t, err)
	require.Equal(t, 10, v)

	require.NoError(t, l.PushFront(-1))
	_, err = it.Value()
	require.True(t, errors.Is(err, ErrStaleIterator))
	require.True(t, errors.Is(err, ErrInvalidCursorState))
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), ErrStaleIterator))
	// The error sticks until Reset.
	require.False(t, it.Next())

	it.Reset()
	require.NoError(t, it.Err())
	require.Equal(t, []int{-1, 10, 1, 2}, collect(t, it))

	// A failed mutation is not a mutation.
	it.Reset()
	require.True(t, it.Next())
	_, err = l.Remove(10)
	require.Error(t, err)
	require.True(t, it.Next())
	require.NoError(t, it.Err())
}

func TestIteratorDestroyedList(t *testing.T) {
	l := newTestList[int](t)
	require.NoError(t, l.PushBack(1))
	it := l.NewIterator()
	l.Destroy()
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), ErrNullContainer))

	var nilList *List[int]
	it = nilList.NewIterator()
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), ErrNullContainer))
	_, err := it.Value()
	require.True(t, errors.Is(err, ErrNullContainer))
}

func TestIteratorInconsistentState(t *testing.T) {
	l := newTestList[int](t)
	require.NoError(t, l.PushBack(1))
	it := l.NewIterator()
	it.index = 7
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), ErrInvalidCursorState))
	require.True(t, errors.HasAssertionFailure(it.Err()))
}

func TestCursorRecoversFromInconsistentState(t *testing.T) {
	l := newTestList[int](t)
	require.NoError(t, l.PushFront(1))
	require.NoError(t, l.PushFront(0))
	l.ResetCursor()
	l.cursor.index = -5
	require.False(t, l.AdvanceCursor())
	require.Equal(t, -1, l.CurrentIndex())
	require.True(t, l.AdvanceCursor())
	v, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, 0, v)
}

func TestCursorAfterPopAndRemove(t *testing.T) {
	l := newTestList[int](t)
	for i := 0; i < 3; i++ {
		require.NoError(t, l.PushBack(i))
	}
	l.ResetCursor()
	require.True(t, l.AdvanceCursor())
	_, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, -1, l.CurrentIndex())

	// Popping from an empty list resets the cursor too.
	l.Clear()
	require.NoError(t, l.PushBack(5))
	require.Equal(t, 0, l.CurrentIndex())
	_, err = l.PopFront()
	require.NoError(t, err)
	_, err = l.PopFront()
	require.Error(t, err)
	require.Equal(t, -1, l.CurrentIndex())
	require.False(t, l.AdvanceCursor())
}
