package seqology

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/viant/seqology"

	// containerTypeKey associates each record with container type
	containerTypeKey = "container.type"
)

// telemetry groups registry and cursor instruments
type telemetry struct {
	// registrations counts tables inserted into the registry
	registrations metric.Int64Counter
	// misses counts lookups of unregistered types
	misses metric.Int64Counter
	// states measures live shared cursor states
	states metric.Int64UpDownCounter
	// destroyed counts destroyed cursor states
	destroyed metric.Int64Counter
}

func newTelemetry(provider metric.MeterProvider) *telemetry {
	meter := provider.Meter(meterName)
	ret := &telemetry{}
	var err error
	if ret.registrations, err = meter.Int64Counter(
		"seqology.registry.registrations",
		metric.WithDescription("The number of container tables inserted into the registry."),
	); err != nil {
		panic("seqology: failed to init 'seqology.registry.registrations' instrument")
	}
	if ret.misses, err = meter.Int64Counter(
		"seqology.registry.misses",
		metric.WithDescription("The number of lookups for container types that were never registered."),
	); err != nil {
		panic("seqology: failed to init 'seqology.registry.misses' instrument")
	}
	if ret.states, err = meter.Int64UpDownCounter(
		"seqology.cursor.states",
		metric.WithDescription("The number of live cursor traversal states."),
	); err != nil {
		panic("seqology: failed to init 'seqology.cursor.states' instrument")
	}
	if ret.destroyed, err = meter.Int64Counter(
		"seqology.cursor.destroyed",
		metric.WithDescription("The number of cursor traversal states destroyed after the last release."),
	); err != nil {
		panic("seqology: failed to init 'seqology.cursor.destroyed' instrument")
	}
	return ret
}

func typeAttributes(id TypeID) metric.MeasurementOption {
	return metric.WithAttributeSet(attribute.NewSet(attribute.String(containerTypeKey, id.String())))
}

func (t *telemetry) registered(id TypeID) {
	t.registrations.Add(context.Background(), 1, typeAttributes(id))
}

func (t *telemetry) missed(id TypeID) {
	t.misses.Add(context.Background(), 1, typeAttributes(id))
}

func (t *telemetry) stateCreated(id TypeID) {
	t.states.Add(context.Background(), 1, typeAttributes(id))
}

func (t *telemetry) stateDestroyed(id TypeID) {
	ctx := context.Background()
	attrs := typeAttributes(id)
	t.states.Add(ctx, -1, attrs)
	t.destroyed.Add(ctx, 1, attrs)
}
