// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/container/ringlist"
)

var errScriptFailed = errors.New("script failed")

type opKind int

const (
	opPush opKind = iota
	opEnqueue
	opInsert
	opSet
	opGet
	opRemove
	opCut
	opPop
	opDequeue
	opClear
	opPrint
)

var opDescs = map[string]struct {
	kind  opKind
	nargs int
}{
	"push":    {opPush, 1},
	"enqueue": {opEnqueue, 1},
	"insert":  {opInsert, 2},
	"set":     {opSet, 2},
	"get":     {opGet, 1},
	"remove":  {opRemove, 1},
	"cut":     {opCut, 2},
	"pop":     {opPop, 0},
	"dequeue": {opDequeue, 0},
	"clear":   {opClear, 0},
	"print":   {opPrint, 0},
}

// op is one parsed script step, such as "insert:1:9".
type op struct {
	kind opKind
	args []int
}

func parseOp(s string) (op, error) {
	parts := strings.Split(s, ":")
	desc, ok := opDescs[parts[0]]
	if !ok {
		return op{}, errors.Newf("unknown operation %q", parts[0])
	}
	if len(parts)-1 != desc.nargs {
		return op{}, errors.Newf("operation %q takes %d arguments, got %d", parts[0], desc.nargs, len(parts)-1)
	}
	o := op{kind: desc.kind, args: make([]int, desc.nargs)}
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return op{}, errors.Wrapf(err, "operation %q", s)
		}
		o.args[i] = n
	}
	return o, nil
}

func parseScript(script []string) ([]op, error) {
	ops := make([]op, 0, len(script))
	for _, s := range script {
		o, err := parseOp(s)
		if err != nil {
			return nil, err
		}
		ops = append(ops, o)
	}
	return ops, nil
}

// runner applies ops to a list and prints their results. Failed operations
// are printed and counted; the script carries on.
type runner struct {
	out      io.Writer
	list     *ringlist.List[int]
	failures int
}

func (r *runner) apply(o op) {
	l := r.list
	var err error
	switch o.kind {
	case opPush:
		err = l.Push(o.args[0])
	case opEnqueue:
		err = l.Enqueue(o.args[0])
	case opInsert:
		err = l.Insert(o.args[0], o.args[1])
	case opSet:
		err = l.Set(o.args[0], o.args[1])
	case opCut:
		err = l.RemoveRange(o.args[0], o.args[1])
	case opGet:
		var v int
		if v, err = l.Get(o.args[0]); err == nil {
			fmt.Fprintln(r.out, v)
		}
	case opRemove, opPop, opDequeue:
		var v int
		switch o.kind {
		case opRemove:
			v, err = l.Remove(o.args[0])
		case opPop:
			v, err = l.Pop()
		default:
			v, err = l.Dequeue()
		}
		if err == nil {
			fmt.Fprintf(r.out, "%d\nLen: %d\n", v, l.Len())
		}
	case opClear:
		l.Clear()
	case opPrint:
		l.ResetCursor()
		for l.AdvanceCursor() {
			v, err := l.Current()
			if err != nil {
				break
			}
			fmt.Fprintf(r.out, "[%d] = %d\n", l.CurrentIndex(), v)
		}
	}
	if err != nil {
		r.failures++
		fmt.Fprintf(r.out, "error: %v\n", err)
	}
}
