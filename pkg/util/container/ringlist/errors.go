// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/log"
)

// Sentinel errors. Errors returned by List operations wrap one of these and
// should be tested with errors.Is.
var (
	// ErrNullContainer is returned by operations on a nil or destroyed List.
	ErrNullContainer = errors.New("list was a nil pointer")
	// ErrIndexOutOfBounds is returned when an index or count falls outside
	// the range valid for the operation.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrAllocationFailure is returned when a node cannot be allocated
	// because the list is at its configured maximum length.
	ErrAllocationFailure = errors.New("node allocation failed")
	// ErrUnderflow is returned when removing from an empty list.
	ErrUnderflow = errors.New("list was already empty")
	// ErrInvalidCursorState is returned when a cursor is read while it is not
	// positioned on an element, or when its state is inconsistent.
	ErrInvalidCursorState = errors.New("unexpected cursor state")
	// ErrStaleIterator is returned by an Iterator whose list was structurally
	// modified after the iterator was started. It is marked as
	// ErrInvalidCursorState.
	ErrStaleIterator = errors.Mark(
		errors.New("iterator invalidated by a structural mutation"), ErrInvalidCursorState)
)

// ErrorPolicy controls what a List does after a failed operation has been
// recorded.
type ErrorPolicy int

const (
	// ReturnErrors returns the error to the caller. This is the default.
	ReturnErrors ErrorPolicy = iota
	// PanicOnError panics with the error.
	PanicOnError
	// ExitOnError logs the error at FATAL severity, which terminates the
	// process with exit.FatalError().
	ExitOnError

	numErrorPolicies
)

var errorPolicyNames = [...]string{
	ReturnErrors: "return",
	PanicOnError: "panic",
	ExitOnError:  "exit",
}

func (p ErrorPolicy) String() string {
	if p < 0 || p >= numErrorPolicies {
		return "unknown"
	}
	return errorPolicyNames[p]
}

// ParseErrorPolicy parses the String() form of an ErrorPolicy.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	for i, n := range errorPolicyNames {
		if n == s {
			return ErrorPolicy(i), nil
		}
	}
	return 0, errors.Newf("unknown error policy %q", s)
}

// fail reports err through the list's failure path: the latch, the failure
// counter, the log and finally the error policy. It returns err so callers
// can write `return l.fail(err)`.
func (l *List[T]) fail(err error) error {
	if l == nil {
		return err
	}
	if l.opts.latch != nil {
		l.opts.latch.Record(err)
	}
	if l.opts.metrics != nil {
		l.opts.metrics.Failures.Inc(1)
	}
	if log.V(1) && l.logEvery.ShouldLog() {
		log.InfofDepth(l.ctx, 1, "%v", err)
	}
	switch l.opts.policy {
	case PanicOnError:
		panic(err)
	case ExitOnError:
		log.FatalfDepth(l.ctx, 1, "%v", err)
	}
	return err
}

func errNullContainer() error {
	return errors.WithStack(ErrNullContainer)
}

func errIndexOutOfBounds(op string, index, length int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "%s(%d) on list of length %d", op, index, length)
}

func errAllocationFailure(maxLen int) error {
	return errors.Wrapf(ErrAllocationFailure, "list is at its maximum length %d", maxLen)
}
