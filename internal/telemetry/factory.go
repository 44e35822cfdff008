package telemetry

import (
	"context"

	"github.com/nic1611/furnctl/pkg/furniture"
)

type instrumentedFactory struct {
	furniture.Factory
	variant furniture.Variant
	metrics *Metrics
}

var _ furniture.Styled = instrumentedFactory{}

// Instrument wraps f so that every chair and table it creates is counted.
// A nil Metrics returns f unchanged.
func Instrument(f furniture.Factory, v furniture.Variant, m *Metrics) furniture.Factory {
	if m == nil {
		return f
	}
	return instrumentedFactory{Factory: f, variant: v, metrics: m}
}

func (f instrumentedFactory) CreateChair() furniture.Chair {
	chair := f.Factory.CreateChair()
	f.metrics.RecordCreation(context.Background(), f.variant, "chair")
	return chair
}

func (f instrumentedFactory) CreateTable() furniture.Table {
	table := f.Factory.CreateTable()
	f.metrics.RecordCreation(context.Background(), f.variant, "table")
	return table
}

func (f instrumentedFactory) Variant() furniture.Variant {
	return f.variant
}
