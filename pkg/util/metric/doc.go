// Copyright 2016 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

/*
Package metric provides in-process metrics (a.k.a. transient stats) that can
be exported in the Prometheus text format.

# Adding a new metric

First, define the metric's metadata and construct it:

	var metaPushes = metric.Metadata{
		Name:        "ringlist.push.count",
		Help:        "Number of elements pushed onto ring lists",
		Measurement: "Elements",
		Unit:        metric.Unit_COUNT,
	}

	m := Metrics{Pushes: metric.NewCounter(metaPushes)}

Next, add the metrics to a Registry, either one at a time with AddMetric or
all exported fields of a struct at once with AddMetricStruct:

	registry := metric.NewRegistry()
	registry.AddMetricStruct(m)

# Exporting

A PrometheusExporter scrapes one or more registries and implements
prometheus.Gatherer, so it can be handed to promhttp or printed with
PrintAsText. Metric names are exported with every character that is not
valid in a Prometheus name replaced by an underscore, so
"ringlist.push.count" becomes "ringlist_push_count".
*/
package metric
