// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist_test

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/container/ringlist"
	"github.com/cockroachdb/ringlist/pkg/util/errlatch"
)

func Example() {
	l, _ := ringlist.New[int]()
	for i := 1; i <= 3; i++ {
		_ = l.Push(i)
	}
	fmt.Println(l)
	for l.Len() > 0 {
		v, _ := l.Pop()
		fmt.Println(v)
	}

	// Output:
	// [3 2 1]
	// 3
	// 2
	// 1
}

func ExampleList_RemoveRange() {
	l, _ := ringlist.New[string]()
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		_ = l.Enqueue(s)
	}
	_ = l.RemoveRange(3, 3)
	fmt.Println(l)

	// Output:
	// [b c]
}

func ExampleList_AdvanceCursor() {
	l, _ := ringlist.New[string]()
	_ = l.PushBack("x")
	_ = l.PushBack("y")
	for l.AdvanceCursor() {
		v, _ := l.Current()
		fmt.Println(l.CurrentIndex(), v)
	}

	// Output:
	// 0 x
	// 1 y
}

func ExampleWithLatch() {
	var latch errlatch.Latch
	l, _ := ringlist.New[int](ringlist.WithLatch(&latch))
	_, err := l.Dequeue()
	fmt.Println(errors.Is(err, ringlist.ErrUnderflow))
	fmt.Println(latch.HasFailed(), latch.ConsumeLastError())
	fmt.Println(latch.HasFailed(), latch.ConsumeLastError())

	// Output:
	// true
	// true list was already empty
	// false No errors occurred yet
}
