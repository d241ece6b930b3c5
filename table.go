package seqology

import (
	"fmt"
	"reflect"
	"unsafe"
)

type (
	// Table represents type erased operations of one concrete container type.
	// The container is always passed as a borrowed pointer; tables never own it.
	Table interface {
		// Type returns container type
		Type() TypeID
		// ElemType returns container element type
		ElemType() TypeID
		// Capability returns cumulative cursor capability
		Capability() Capability
		// Shape returns cursor state representation
		Shape() Shape
		// Size returns number of elements
		Size(container unsafe.Pointer) int
		// At returns pointer to element at index
		At(container unsafe.Pointer, index int) unsafe.Pointer
		// Begin returns state positioned at the first element
		Begin(container unsafe.Pointer) State
		// End returns state positioned one past the last element
		End(container unsafe.Pointer) State
		// Advance moves state by step, negative step requires Bidirectional capability
		Advance(state *State, step int)
		// Pointer returns pointer to the element referenced by state
		Pointer(state State) unsafe.Pointer
		// Destroy releases state resources
		Destroy(state *State)
		// Equal returns true if both states reference the same position
		Equal(state, other State) bool
		// Copy returns an independent copy of state
		Copy(state State) State
	}

	// State represents an opaque traversal position produced by a Table
	State struct {
		owner unsafe.Pointer
		index int
		ref   unsafe.Pointer
		iter  Iterator
	}
)

// NewTable generates operation table for the supplied container type
func NewTable(rType reflect.Type) (Table, error) {
	return newTable(rType, nil)
}

// newTable picks table implementation, sample, if not nil, points to a container instance used to probe native iterators
func newTable(rType reflect.Type, sample unsafe.Pointer) (Table, error) {
	if rType == nil {
		return nil, fmt.Errorf("%w: <nil>", ErrNotContainer)
	}
	if rType.Kind() == reflect.Interface {
		return nil, fmt.Errorf("%w: interface %s", ErrNotContainer, rType.String())
	}
	if implementsSequence(rType) {
		return newSequenceTable(rType, sample), nil
	}
	switch rType.Kind() {
	case reflect.Slice:
		return newSliceTable(rType), nil
	case reflect.Array:
		return newArrayTable(rType), nil
	case reflect.Struct:
		if rType == stdListType {
			return newListTable(), nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotContainer, rType.String())
}

// checkStep panics when step requires capability missing in table
func checkStep(table Table, step int) {
	if step >= 0 || table.Capability().CanReverse() {
		return
	}
	panic(&CapabilityError{Type: table.Type(), Have: table.Capability(), Required: Bidirectional})
}
