// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/syncutil"
	"github.com/prometheus/client_golang/prometheus"
	prometheusgo "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// PrometheusExporter contains a map of metric families (a metric with
// multiple labels). It initializes each metric family once and reuses it
// for each prometheus scrape.
type PrometheusExporter struct {
	mu struct {
		syncutil.Mutex
		families map[string]*prometheusgo.MetricFamily
	}
}

var _ prometheus.Gatherer = (*PrometheusExporter)(nil)

// MakePrometheusExporter returns an initialized prometheus exporter.
func MakePrometheusExporter() *PrometheusExporter {
	pm := &PrometheusExporter{}
	pm.mu.families = make(map[string]*prometheusgo.MetricFamily)
	return pm
}

// exportedName converts a metric name to a valid prometheus name.
func exportedName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == ':':
			return r
		default:
			return '_'
		}
	}, name)
}

// ScrapeRegistry scrapes all metrics contained in the registry to the metric
// family map, replacing any previously scraped values for the same names.
// Metrics that are not PrometheusExportable are ignored.
func (pm *PrometheusExporter) ScrapeRegistry(registry *Registry) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	registry.Each(func(_ string, v interface{}) {
		prom, ok := v.(PrometheusExportable)
		if !ok {
			return
		}
		name := exportedName(prom.GetName())
		help := prom.GetHelp()
		pm.mu.families[name] = &prometheusgo.MetricFamily{
			Name:   &name,
			Help:   &help,
			Type:   prom.GetType(),
			Metric: []*prometheusgo.Metric{prom.ToPrometheusMetric()},
		}
	})
}

// Gather implements prometheus.Gatherer.
func (pm *PrometheusExporter) Gather() ([]*prometheusgo.MetricFamily, error) {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	families := make([]*prometheusgo.MetricFamily, 0, len(pm.mu.families))
	for _, f := range pm.mu.families {
		families = append(families, f)
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	return families, nil
}

// PrintAsText writes all metrics in the families map to the io.Writer in
// prometheus' text format.
func (pm *PrometheusExporter) PrintAsText(w io.Writer) error {
	families, err := pm.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return errors.Wrapf(err, "writing metric family %s", family.GetName())
		}
	}
	return nil
}
