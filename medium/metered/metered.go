/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metered wraps a storage medium with call, error and latency metrics.
package metered

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/suparena/recordkv/medium"
)

// Medium forwards every call to the wrapped medium and records
//
//	recordkv_medium_calls_total{medium,op}
//	recordkv_medium_errors_total{medium,op}
//	recordkv_medium_call_duration_seconds{medium,op}
type Medium struct {
	next medium.Medium
	name string
	set  *metrics.Set
}

// New wraps next. Metrics are labelled with name and registered in set;
// a nil set gets a fresh one.
func New(next medium.Medium, name string, set *metrics.Set) *Medium {
	if set == nil {
		set = metrics.NewSet()
	}
	return &Medium{next: next, name: name, set: set}
}

// Unwrap returns the wrapped medium.
func (m *Medium) Unwrap() medium.Medium {
	return m.next
}

// Set returns the metrics set the medium records into.
func (m *Medium) Set() *metrics.Set {
	return m.set
}

// WritePrometheus writes the recorded metrics in Prometheus text format.
func (m *Medium) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}

// Available defers to the wrapped medium.
func (m *Medium) Available() bool {
	return medium.Available(m.next)
}

func (m *Medium) GetItem(ctx context.Context, key string) (string, bool, error) {
	start := time.Now()
	v, ok, err := m.next.GetItem(ctx, key)
	m.observe("get", start, err)
	return v, ok, err
}

func (m *Medium) SetItem(ctx context.Context, key, value string) error {
	start := time.Now()
	err := m.next.SetItem(ctx, key, value)
	m.observe("set", start, err)
	return err
}

func (m *Medium) RemoveItem(ctx context.Context, key string) error {
	start := time.Now()
	err := m.next.RemoveItem(ctx, key)
	m.observe("remove", start, err)
	return err
}

func (m *Medium) Keys(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := m.next.Keys(ctx)
	m.observe("keys", start, err)
	return keys, err
}

// Calls returns how many times op ("get", "set", "remove", "keys") was called.
func (m *Medium) Calls(op string) uint64 {
	return m.set.GetOrCreateCounter(m.metricName("recordkv_medium_calls_total", op)).Get()
}

// Errors returns how many calls of op failed.
func (m *Medium) Errors(op string) uint64 {
	return m.set.GetOrCreateCounter(m.metricName("recordkv_medium_errors_total", op)).Get()
}

func (m *Medium) observe(op string, start time.Time, err error) {
	m.set.GetOrCreateCounter(m.metricName("recordkv_medium_calls_total", op)).Inc()
	m.set.GetOrCreateHistogram(m.metricName("recordkv_medium_call_duration_seconds", op)).UpdateDuration(start)
	if err != nil {
		m.set.GetOrCreateCounter(m.metricName("recordkv_medium_errors_total", op)).Inc()
	}
}

func (m *Medium) metricName(base, op string) string {
	return fmt.Sprintf(`%s{medium=%q,op=%q}`, base, m.name, op)
}
