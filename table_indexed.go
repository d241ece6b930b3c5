package seqology

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// indexedTable handles contiguous containers, state is an element index
type indexedTable struct {
	id        TypeID
	elem      TypeID
	length    func(container unsafe.Pointer) int
	pointerAt func(container unsafe.Pointer, index int) unsafe.Pointer
}

func newSliceTable(rType reflect.Type) *indexedTable {
	xSlice := xunsafe.NewSlice(rType)
	return &indexedTable{
		id:     TypeIDOf(rType),
		elem:   TypeIDOf(rType.Elem()),
		length: xSlice.Len,
		pointerAt: func(container unsafe.Pointer, index int) unsafe.Pointer {
			return xSlice.PointerAt(container, uintptr(index))
		},
	}
}

func newArrayTable(rType reflect.Type) *indexedTable {
	arrayLen := rType.Len()
	elemSize := rType.Elem().Size()
	return &indexedTable{
		id:   TypeIDOf(rType),
		elem: TypeIDOf(rType.Elem()),
		length: func(container unsafe.Pointer) int {
			return arrayLen
		},
		pointerAt: func(container unsafe.Pointer, index int) unsafe.Pointer {
			return unsafe.Add(container, uintptr(index)*elemSize)
		},
	}
}

func (t *indexedTable) Type() TypeID {
	return t.id
}

func (t *indexedTable) ElemType() TypeID {
	return t.elem
}

func (t *indexedTable) Capability() Capability {
	return Capabilities(RandomAccess)
}

func (t *indexedTable) Shape() Shape {
	return ShapeReference
}

func (t *indexedTable) Size(container unsafe.Pointer) int {
	return t.length(container)
}

func (t *indexedTable) At(container unsafe.Pointer, index int) unsafe.Pointer {
	if length := t.length(container); index < 0 || index >= length {
		panic(newRangeError(t.id, index, length))
	}
	return t.pointerAt(container, index)
}

func (t *indexedTable) Begin(container unsafe.Pointer) State {
	return State{owner: container}
}

func (t *indexedTable) End(container unsafe.Pointer) State {
	return State{owner: container, index: t.length(container)}
}

func (t *indexedTable) Advance(state *State, step int) {
	index := state.index + step
	if length := t.length(state.owner); index < 0 || index > length {
		panic(newRangeError(t.id, index, length))
	}
	state.index = index
}

func (t *indexedTable) Pointer(state State) unsafe.Pointer {
	return t.At(state.owner, state.index)
}

func (t *indexedTable) Destroy(state *State) {}

func (t *indexedTable) Equal(state, other State) bool {
	return state.owner == other.owner && state.index == other.index
}

func (t *indexedTable) Copy(state State) State {
	return state
}
