package seqology

import (
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"unsafe"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Registry maps container type identity to its operation table.
// Entries are never removed and the first registration of a type wins.
// Registry is safe for concurrent use; a table generated concurrently for the same type is discarded
// by the later insert.
type Registry struct {
	tables        map[TypeID]Table
	mux           sync.RWMutex
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	telemetry     *telemetry
}

// Register inserts table for the supplied type identity, it returns false and keeps existing entry
// if type was already registered
func (r *Registry) Register(id TypeID, table Table) bool {
	r.mux.Lock()
	if _, ok := r.tables[id]; ok {
		r.mux.Unlock()
		r.logger.Debug("container type already registered, table discarded", slog.String("type", id.String()))
		return false
	}
	r.tables[id] = table
	r.mux.Unlock()
	r.telemetry.registered(id)
	r.logger.Debug("registered container type",
		slog.String("type", id.String()),
		slog.String("elem", table.ElemType().String()),
		slog.String("capability", table.Capability().String()),
		slog.String("shape", table.Shape().String()),
	)
	return true
}

// Lookup returns table registered for the supplied type identity
func (r *Registry) Lookup(id TypeID) (Table, error) {
	table, ok := r.get(id)
	if !ok {
		r.telemetry.missed(id)
		return nil, &NotRegisteredError{Type: id}
	}
	return table, nil
}

// Has returns true if type identity was registered
func (r *Registry) Has(id TypeID) bool {
	_, ok := r.get(id)
	return ok
}

// Len returns number of registered types
func (r *Registry) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.tables)
}

// Types returns registered type identities ordered by name
func (r *Registry) Types() []TypeID {
	r.mux.RLock()
	result := make([]TypeID, 0, len(r.tables))
	for id := range r.tables {
		result = append(result, id)
	}
	r.mux.RUnlock()
	sort.Slice(result, func(i, j int) bool {
		return result[i].String() < result[j].String()
	})
	return result
}

// Ensure generates and registers table for the supplied container type, if needed
func (r *Registry) Ensure(rType reflect.Type) (Table, error) {
	return r.ensure(rType, nil)
}

func (r *Registry) ensure(rType reflect.Type, sample unsafe.Pointer) (Table, error) {
	id := TypeIDOf(rType)
	if table, ok := r.get(id); ok {
		return table, nil
	}
	table, err := newTable(rType, sample)
	if err != nil {
		return nil, err
	}
	if !r.Register(id, table) {
		table, _ = r.get(id)
	}
	return table, nil
}

func (r *Registry) get(id TypeID) (Table, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	table, ok := r.tables[id]
	return table, ok
}

// NewRegistry creates a registry
func NewRegistry(opts ...Option) *Registry {
	ret := &Registry{tables: make(map[TypeID]Table)}
	Options(opts).Apply(ret)
	if ret.logger == nil {
		ret.logger = slog.Default()
	}
	if ret.meterProvider == nil {
		ret.meterProvider = otel.GetMeterProvider()
	}
	ret.telemetry = newTelemetry(ret.meterProvider)
	return ret
}
