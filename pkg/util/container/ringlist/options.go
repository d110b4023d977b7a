// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/errlatch"
)

type options struct {
	maxLen  int
	policy  ErrorPolicy
	latch   *errlatch.Latch
	metrics *Metrics
	name    string
}

func (o *options) validate() error {
	if o.maxLen < 0 {
		return errors.Newf("max length must be non-negative, got %d", o.maxLen)
	}
	if o.policy < 0 || o.policy >= numErrorPolicies {
		return errors.Newf("invalid error policy %d", o.policy)
	}
	return nil
}

// Option configures a List.
type Option func(*options)

// WithMaxLen limits the number of elements the list can hold. Insertions
// beyond the limit fail with ErrAllocationFailure. Zero means unlimited.
func WithMaxLen(n int) Option {
	return func(o *options) {
		o.maxLen = n
	}
}

// WithErrorPolicy sets what the list does after a failure is recorded.
func WithErrorPolicy(p ErrorPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLatch records every failure of the list in l. A latch may be shared
// by several lists.
func WithLatch(l *errlatch.Latch) Option {
	return func(o *options) {
		o.latch = l
	}
}

// WithMetrics reports the list's activity to m. Metrics may be shared by
// several lists.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithName attaches a name to the list. It is added as a log tag to
// messages about the list.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}
