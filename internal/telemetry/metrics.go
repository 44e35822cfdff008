package telemetry

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"

	"github.com/nic1611/furnctl/internal/models"
	"github.com/nic1611/furnctl/pkg/furniture"
)

const (
	namespace   = "furnctl"
	meterName   = "github.com/nic1611/furnctl"
	counterName = "products_created"
)

// Metrics counts products created through instrumented factories. The
// counters live in a private Prometheus registry and are read back with
// Snapshot; nothing is served over the network.
type Metrics struct {
	registry *prometheus.Registry
	created  metric.Int64Counter
}

// InitMetrics sets up the meter provider and returns a shutdown function
// that flushes and releases it.
func InitMetrics(version string) (func(context.Context) error, *Metrics, error) {
	registry := prometheus.NewRegistry()

	exporter, err := otelprom.New(
		otelprom.WithRegisterer(registry),
		otelprom.WithNamespace(namespace),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", namespace),
		attribute.String("service.version", version),
	)
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)

	created, err := provider.Meter(meterName).Int64Counter(
		counterName,
		metric.WithDescription("Number of products created by furniture factories"),
	)
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return provider.Shutdown, &Metrics{registry: registry, created: created}, nil
}

func (m *Metrics) RecordCreation(ctx context.Context, variant furniture.Variant, product string) {
	m.created.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", string(variant)),
		attribute.String("product", product),
	))
}

// Snapshot returns the current counters sorted by variant and product.
func (m *Metrics) Snapshot() ([]models.CreationStat, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	var stats []models.CreationStat
	for _, mf := range families {
		if !strings.Contains(mf.GetName(), counterName) {
			continue
		}
		for _, sample := range mf.GetMetric() {
			stat := models.CreationStat{Count: int64(sample.GetCounter().GetValue())}
			for _, lp := range sample.GetLabel() {
				switch lp.GetName() {
				case "variant":
					stat.Variant = lp.GetValue()
				case "product":
					stat.Product = lp.GetValue()
				}
			}
			stats = append(stats, stat)
		}
	}

	slices.SortFunc(stats, func(a, b models.CreationStat) int {
		if c := cmp.Compare(a.Variant, b.Variant); c != 0 {
			return c
		}
		return cmp.Compare(a.Product, b.Product)
	})
	return stats, nil
}
