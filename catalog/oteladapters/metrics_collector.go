// Package oteladapters provides OpenTelemetry adapters for the catalog
// observability interfaces, for users who want plug-and-play observability
// without implementing the interfaces themselves.
package oteladapters

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/catalogkit/layered-catalog-go/catalog"
)

// MetricsCollector implements catalog.MetricsCollector using the
// OpenTelemetry metrics API, mapping the interface to instruments:
//   - RecordDuration -> Histogram
//   - IncrementCounter -> Counter
//   - RecordValue -> Gauge
type MetricsCollector struct {
	meter      metric.Meter
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

// NewMetricsCollector creates a new OpenTelemetry metrics collector.
// Instruments are created on demand as metrics are recorded. The meter
// should come from your OpenTelemetry MeterProvider.
func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

// RecordDuration records a duration measurement using a histogram, in
// seconds per OpenTelemetry convention.
func (m *MetricsCollector) RecordDuration(metricName string, duration time.Duration, labels map[string]string) {
	histogram := m.getOrCreateHistogram(metricName)
	if histogram == nil {
		return
	}

	histogram.Record(context.TODO(), duration.Seconds(), metric.WithAttributes(toAttributes(labels)...))
}

// IncrementCounter increments a monotonic counter.
func (m *MetricsCollector) IncrementCounter(metricName string, labels map[string]string) {
	counter := m.getOrCreateCounter(metricName)
	if counter == nil {
		return
	}

	counter.Add(context.TODO(), 1, metric.WithAttributes(toAttributes(labels)...))
}

// RecordValue records a current value using a gauge.
func (m *MetricsCollector) RecordValue(metricName string, value float64, labels map[string]string) {
	gauge := m.getOrCreateGauge(metricName)
	if gauge == nil {
		return
	}

	gauge.Record(context.TODO(), value, metric.WithAttributes(toAttributes(labels)...))
}

func (m *MetricsCollector) getOrCreateHistogram(metricName string) metric.Float64Histogram {
	if histogram, exists := m.histograms[metricName]; exists {
		return histogram
	}

	histogram, err := m.meter.Float64Histogram(metricName)
	if err != nil {
		return nil
	}

	m.histograms[metricName] = histogram

	return histogram
}

func (m *MetricsCollector) getOrCreateCounter(metricName string) metric.Int64Counter {
	if counter, exists := m.counters[metricName]; exists {
		return counter
	}

	counter, err := m.meter.Int64Counter(metricName)
	if err != nil {
		return nil
	}

	m.counters[metricName] = counter

	return counter
}

func (m *MetricsCollector) getOrCreateGauge(metricName string) metric.Float64Gauge {
	if gauge, exists := m.gauges[metricName]; exists {
		return gauge
	}

	gauge, err := m.meter.Float64Gauge(metricName)
	if err != nil {
		return nil
	}

	m.gauges[metricName] = gauge

	return gauge
}

// toAttributes converts a labels map to OpenTelemetry attributes.
func toAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}

// Ensure MetricsCollector implements catalog.MetricsCollector.
var _ catalog.MetricsCollector = (*MetricsCollector)(nil)
