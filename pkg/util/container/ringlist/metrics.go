// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package ringlist

import "github.com/cockroachdb/ringlist/pkg/util/metric"

var (
	metaPushes = metric.Metadata{
		Name:        "ringlist.push.count",
		Help:        "Number of elements inserted into ring lists",
		Measurement: "Elements",
		Unit:        metric.Unit_COUNT,
	}
	metaPops = metric.Metadata{
		Name:        "ringlist.pop.count",
		Help:        "Number of elements removed one at a time from ring lists",
		Measurement: "Elements",
		Unit:        metric.Unit_COUNT,
	}
	metaRangeRemovals = metric.Metadata{
		Name:        "ringlist.range_removal.count",
		Help:        "Number of elements removed by range removals",
		Measurement: "Elements",
		Unit:        metric.Unit_COUNT,
	}
	metaFailures = metric.Metadata{
		Name:        "ringlist.failure.count",
		Help:        "Number of failed ring list operations",
		Measurement: "Operations",
		Unit:        metric.Unit_COUNT,
	}
	metaNodes = metric.Metadata{
		Name:        "ringlist.nodes",
		Help:        "Number of live ring list nodes",
		Measurement: "Nodes",
		Unit:        metric.Unit_COUNT,
	}
)

// Metrics counts the activity of one or more lists.
type Metrics struct {
	Pushes        *metric.Counter
	Pops          *metric.Counter
	RangeRemovals *metric.Counter
	Failures      *metric.Counter
	Nodes         *metric.Gauge
}

// MetricStruct implements the metric.Struct interface.
func (Metrics) MetricStruct() {}

var _ metric.Struct = Metrics{}

// MakeMetrics instantiates the metrics for ring lists.
func MakeMetrics() Metrics {
	return Metrics{
		Pushes:        metric.NewCounter(metaPushes),
		Pops:          metric.NewCounter(metaPops),
		RangeRemovals: metric.NewCounter(metaRangeRemovals),
		Failures:      metric.NewCounter(metaFailures),
		Nodes:         metric.NewGauge(metaNodes),
	}
}
