// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// ringdemo exercises a ring list of integers from the command line.
package main

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/cli/exit"
	"github.com/cockroachdb/ringlist/pkg/util/container/ringlist"
	"github.com/cockroachdb/ringlist/pkg/util/errlatch"
	"github.com/cockroachdb/ringlist/pkg/util/log"
	"github.com/cockroachdb/ringlist/pkg/util/metric"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// demoScript replays the classic stack-then-queue walkthrough.
var demoScript = []string{
	"push:1", "push:2", "push:3", "print",
	"pop", "print", "pop", "print", "pop", "print",
	"enqueue:1", "enqueue:2", "enqueue:3", "print",
	"dequeue", "print", "dequeue", "print", "dequeue", "print",
}

type config struct {
	policy    ringlist.ErrorPolicy
	maxLen    int
	metrics   bool
	verbosity int32
	noColor   bool
}

// policyValue adapts an ErrorPolicy to pflag.Value.
type policyValue struct {
	p *ringlist.ErrorPolicy
}

var _ pflag.Value = policyValue{}

func (v policyValue) String() string { return v.p.String() }

func (v policyValue) Set(s string) error {
	p, err := ringlist.ParseErrorPolicy(s)
	if err != nil {
		return err
	}
	*v.p = p
	return nil
}

func (v policyValue) Type() string { return "policy" }

// errFlag marks errors caused by bad command-line input.
var errFlag = errors.New("invalid command line")

func makeRingdemoCommand() *cobra.Command {
	var cfg config
	command := &cobra.Command{
		Use:   "ringdemo [command] (flags)",
		Short: "ringdemo runs scripts of operations against a ring list of integers.",
		Long: `ringdemo runs scripts of operations against a ring list of integers.

Typical usage:
    ringdemo demo
        Push 1, 2 and 3, pop them back, then enqueue and dequeue them,
        printing the list after every step.

    ringdemo run push:1 enqueue:2 insert:1:9 print cut:0:2 print
        Run the given operations in order.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbosity(cfg.verbosity)
			log.SetNoColor(cfg.noColor)
		},
	}
	command.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Mark(err, errFlag)
	})
	flags := command.PersistentFlags()
	flags.Var(policyValue{&cfg.policy}, "on-error", "what to do when an operation fails: return, panic or exit")
	flags.IntVar(&cfg.maxLen, "max-len", 0, "maximum number of elements in the list, 0 for no limit")
	flags.BoolVar(&cfg.metrics, "metrics", false, "print the list metrics in Prometheus text format when done")
	flags.Int32VarP(&cfg.verbosity, "verbosity", "v", 0, "log verbosity; failed operations are logged at 1")
	flags.BoolVar(&cfg.noColor, "no-color", false, "disable colors in log output")

	command.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the stack and queue walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScript(cmd, cfg, demoScript)
		},
	})
	command.AddCommand(&cobra.Command{
		Use:   "run <op>...",
		Short: "Run the given operations",
		Long: `Run the given operations in order. Operations are:

    push:<v>  enqueue:<v>  insert:<i>:<v>  set:<i>:<v>
    get:<i>   remove:<i>   cut:<start>:<count>
    pop       dequeue      clear           print
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, cfg, args)
		},
	})
	return command
}

func runScript(cmd *cobra.Command, cfg config, script []string) error {
	ops, err := parseScript(script)
	if err != nil {
		return errors.Mark(err, errFlag)
	}
	var latch errlatch.Latch
	m := ringlist.MakeMetrics()
	l, err := ringlist.New[int](
		ringlist.WithErrorPolicy(cfg.policy),
		ringlist.WithMaxLen(cfg.maxLen),
		ringlist.WithLatch(&latch),
		ringlist.WithMetrics(&m),
		ringlist.WithName(cmd.Name()),
	)
	if err != nil {
		return errors.Mark(err, errFlag)
	}

	out := cmd.OutOrStdout()
	r := runner{out: out, list: l}
	for _, o := range ops {
		r.apply(o)
	}
	if latch.HasFailed() {
		fmt.Fprintf(out, "last error: %s\n", latch.ConsumeLastError())
	}
	if r.failures > 0 {
		log.Warningf(cmd.Context(), "%d of %d operations failed", r.failures, len(ops))
	}

	if cfg.metrics {
		registry := metric.NewRegistry()
		if err := registry.AddMetricStruct(m); err != nil {
			return err
		}
		exporter := metric.MakePrometheusExporter()
		exporter.ScrapeRegistry(registry)
		if err := exporter.PrintAsText(out); err != nil {
			return err
		}
	}
	if r.failures > 0 {
		return errors.Wrapf(errScriptFailed, "%d of %d operations failed", r.failures, len(ops))
	}
	return nil
}

func exitCode(err error) exit.Code {
	switch {
	case err == nil:
		return exit.Success()
	case errors.Is(err, errFlag):
		return exit.CommandLineFlagError()
	case errors.Is(err, errScriptFailed):
		return exit.DemoScriptFailed()
	default:
		return exit.UnspecifiedError()
	}
}

func main() {
	if err := makeRingdemoCommand().Execute(); err != nil {
		log.Errorf(context.Background(), "%v", err)
		exit.WithCode(exitCode(err))
	}
}
