package seqology

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
)

//Option registry option
type Option func(r *Registry)

//Options represents registry options
type Options []Option

//Apply applies options
func (o Options) Apply(r *Registry) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(r)
	}
}

//WithLogger sets registry logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

//WithMeterProvider sets meter provider used for registry and cursor instruments
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(r *Registry) {
		r.meterProvider = provider
	}
}
