package seqology

import (
	"iter"
	"unsafe"
)

// View represents iteration view binding one table with one container instance
type View struct {
	table     Table
	container unsafe.Pointer
	registry  *Registry
}

// Type returns container type
func (v View) Type() TypeID {
	return v.table.Type()
}

// ElemType returns container element type
func (v View) ElemType() TypeID {
	return v.table.ElemType()
}

// Capability returns container cursor capability
func (v View) Capability() Capability {
	return v.table.Capability()
}

// Size returns number of elements
func (v View) Size() int {
	return v.table.Size(v.container)
}

// CanReverseIterate returns true if cursors can move backward
func (v View) CanReverseIterate() bool {
	return v.table.Capability().CanReverse()
}

// Begin returns cursor at the first element
func (v View) Begin() *Cursor {
	return v.cursor(v.table.Begin(v.container))
}

// End returns cursor one past the last element
func (v View) End() *Cursor {
	return v.cursor(v.table.End(v.container))
}

func (v View) cursor(state State) *Cursor {
	return newCursor(v.table, newSharedState(v.table, state, v.registry), v.registry)
}

// At returns element at index, it panics with *RangeError if index is out of range
func (v View) At(index int) Value {
	return elementValue(v.table.ElemType(), v.table.At(v.container, index), v.registry)
}

// Equal returns true if both views bind the same table, capability and container
func (v View) Equal(other View) bool {
	return v.table == other.table && v.container == other.container &&
		v.table.Capability() == other.table.Capability()
}

// All returns forward iterator over (index, element) pairs
func (v View) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		it, end := v.Begin(), v.End()
		defer it.Release()
		defer end.Release()
		for i := 0; !it.Equal(end); i++ {
			if !yield(i, it.Value()) {
				return
			}
			it.Next()
		}
	}
}

// Backward returns backward iterator over (index, element) pairs, it panics with *CapabilityError
// if container can not be reverse iterated
func (v View) Backward() iter.Seq2[int, Value] {
	checkStep(v.table, -1)
	return func(yield func(int, Value) bool) {
		begin, it := v.Begin(), v.End()
		defer begin.Release()
		defer it.Release()
		i := v.Size()
		for !it.Equal(begin) {
			it.Prev()
			i--
			if !yield(i, it.Value()) {
				return
			}
		}
	}
}
