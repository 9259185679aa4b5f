package telemetry

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Int64Counter creates a counter on meter, if that fails the error is logged
// and a no-op counter is returned so callers never hold a nil instrument.
func Int64Counter(meter metric.Meter, name string, opts ...metric.Int64CounterOption) metric.Int64Counter {
	counter, err := meter.Int64Counter(name, opts...)
	if err != nil {
		slog.Warn("failed to create counter", "name", name, "err", err)
		return noop.Int64Counter{}
	}
	return counter
}

func Int64Gauge(meter metric.Meter, name string, opts ...metric.Int64GaugeOption) metric.Int64Gauge {
	gauge, err := meter.Int64Gauge(name, opts...)
	if err != nil {
		slog.Warn("failed to create gauge", "name", name, "err", err)
		return noop.Int64Gauge{}
	}
	return gauge
}

func Float64Gauge(meter metric.Meter, name string, opts ...metric.Float64GaugeOption) metric.Float64Gauge {
	gauge, err := meter.Float64Gauge(name, opts...)
	if err != nil {
		slog.Warn("failed to create gauge", "name", name, "err", err)
		return noop.Float64Gauge{}
	}
	return gauge
}
