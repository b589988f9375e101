// Package metrics exposes service metrics in the Prometheus text format.
//
// Instruments are created through an OpenTelemetry MeterProvider whose reader
// is the Prometheus exporter, so database statistics recorded by otelsql and Go
// runtime statistics end up on the same /metrics endpoint as the order counters.
// All recording methods are safe on a nil *Metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprometheus "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const meterName = "fooddelivery"

// Metrics owns the meter provider and the order service instruments.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	registry *prometheus.Registry

	requests         metric.Int64Counter
	requestDuration  metric.Float64Histogram
	ordersCreated    metric.Int64Counter
	statusUpdates    metric.Int64Counter
	riderAssignments metric.Int64Counter
	ordersCompleted  metric.Int64Counter
	ordersExpired    metric.Int64Counter
}

// New builds the provider on a private registry and installs it as the global
// MeterProvider so instrumented libraries report through it.
func New(serviceName, serviceVersion string) (*Metrics, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprometheus.New(otelprometheus.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
	)

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	m := &Metrics{provider: provider, registry: registry}
	if err = m.createInstruments(provider.Meter(meterName)); err != nil {
		return nil, errors.Join(err, provider.Shutdown(context.Background()))
	}

	if err = runtime.Start(runtime.WithMeterProvider(provider)); err != nil {
		return nil, errors.Join(err, provider.Shutdown(context.Background()))
	}

	otel.SetMeterProvider(provider)

	return m, nil
}

func (m *Metrics) createInstruments(meter metric.Meter) error {
	var errs [7]error

	m.requests, errs[0] = meter.Int64Counter("http.server.requests",
		metric.WithDescription("HTTP requests served"))
	m.requestDuration, errs[1] = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"))
	m.ordersCreated, errs[2] = meter.Int64Counter("orders.created",
		metric.WithDescription("Orders persisted"))
	m.statusUpdates, errs[3] = meter.Int64Counter("orders.status.updates",
		metric.WithDescription("Order status updates by requested status"))
	m.riderAssignments, errs[4] = meter.Int64Counter("orders.rider.assignments",
		metric.WithDescription("Orders accepted by a rider"))
	m.ordersCompleted, errs[5] = meter.Int64Counter("orders.completed",
		metric.WithDescription("Orders marked completed"))
	m.ordersExpired, errs[6] = meter.Int64Counter("orders.expired",
		metric.WithDescription("Stale pending orders canceled by the expiry job"))

	return errors.Join(errs[:]...)
}

// Handler serves the Prometheus exposition of the private registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	return m.provider.Shutdown(ctx)
}

// ObserveRequest records one served HTTP request. route is the matched route
// pattern, not the raw path, to keep cardinality bounded.
func (m *Metrics) ObserveRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.response.status_code", status),
	)
	m.requests.Add(ctx, 1, attrs)
	m.requestDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func (m *Metrics) OrderCreated(ctx context.Context) {
	if m == nil {
		return
	}
	m.ordersCreated.Add(ctx, 1)
}

func (m *Metrics) StatusUpdated(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.statusUpdates.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (m *Metrics) RiderAssigned(ctx context.Context) {
	if m == nil {
		return
	}
	m.riderAssignments.Add(ctx, 1)
}

func (m *Metrics) OrderCompleted(ctx context.Context) {
	if m == nil {
		return
	}
	m.ordersCompleted.Add(ctx, 1)
}

func (m *Metrics) OrdersExpired(ctx context.Context, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.ordersExpired.Add(ctx, n)
}
