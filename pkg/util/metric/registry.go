// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package metric

import (
	"reflect"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/ringlist/pkg/util/syncutil"
)

// A Registry is a list of metrics. It provides a simple way of iterating over
// them.
//
// A Registry can be safely used from multiple goroutines.
type Registry struct {
	mu struct {
		syncutil.Mutex
		tracked map[string]Iterable
	}
}

// NewRegistry creates a new Registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.mu.tracked = make(map[string]Iterable)
	return r
}

// AddMetric adds the passed-in metric to the registry. Adding a second
// metric with the same name replaces the first.
func (r *Registry) AddMetric(metric Iterable) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mu.tracked[metric.GetName()] = metric
}

// AddMetricStruct examines all fields of metricStruct and adds all Iterable
// or Struct objects to the registry. Nil pointer fields are skipped.
func (r *Registry) AddMetricStruct(metricStruct interface{}) error {
	v := reflect.ValueOf(metricStruct)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.AssertionFailedf("expected a struct of metrics, found %T", metricStruct)
	}
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		vfield, tfield := v.Field(i), t.Field(i)
		if !tfield.IsExported() {
			continue
		}
		if vfield.Kind() == reflect.Ptr && vfield.IsNil() {
			continue
		}
		val := vfield.Interface()
		switch typ := val.(type) {
		case Iterable:
			r.AddMetric(typ)
		case Struct:
			if err := r.AddMetricStruct(typ); err != nil {
				return errors.Wrapf(err, "field %s", tfield.Name)
			}
		}
	}
	return nil
}

// Each calls the given closure for all metrics, in name order.
func (r *Registry) Each(f func(name string, val interface{})) {
	for _, m := range r.sorted() {
		m.Inspect(func(v interface{}) {
			f(m.GetName(), v)
		})
	}
}

// Contains returns whether a metric with the given name is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.mu.tracked[name]
	return ok
}

func (r *Registry) sorted() []Iterable {
	r.mu.Lock()
	defer r.mu.Unlock()
	metrics := make([]Iterable, 0, len(r.mu.tracked))
	for _, m := range r.mu.tracked {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].GetName() < metrics[j].GetName()
	})
	return metrics
}
