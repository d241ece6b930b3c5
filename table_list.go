package seqology

import (
	"container/list"
	"unsafe"
)

// listTable handles container/list.List, state references *list.Element, nil element is the end position
type listTable struct {
	id   TypeID
	elem TypeID
}

func newListTable() *listTable {
	return &listTable{id: TypeIDOf(stdListType), elem: TypeOf[interface{}]()}
}

func (t *listTable) Type() TypeID {
	return t.id
}

func (t *listTable) ElemType() TypeID {
	return t.elem
}

func (t *listTable) Capability() Capability {
	return Capabilities(Bidirectional)
}

func (t *listTable) Shape() Shape {
	return ShapeReference
}

func (t *listTable) Size(container unsafe.Pointer) int {
	return (*list.List)(container).Len()
}

func (t *listTable) At(container unsafe.Pointer, index int) unsafe.Pointer {
	aList := (*list.List)(container)
	if index < 0 || index >= aList.Len() {
		panic(newRangeError(t.id, index, aList.Len()))
	}
	element := aList.Front()
	for i := 0; i < index; i++ {
		element = element.Next()
	}
	return unsafe.Pointer(&element.Value)
}

func (t *listTable) Begin(container unsafe.Pointer) State {
	return State{owner: container, ref: unsafe.Pointer((*list.List)(container).Front())}
}

func (t *listTable) End(container unsafe.Pointer) State {
	return State{owner: container}
}

func (t *listTable) Advance(state *State, step int) {
	aList := (*list.List)(state.owner)
	element := (*list.Element)(state.ref)
	for ; step > 0; step-- {
		if element == nil {
			panic(newRangeError(t.id, aList.Len(), aList.Len()))
		}
		element = element.Next()
	}
	for ; step < 0; step++ {
		if element == nil {
			element = aList.Back()
		} else {
			element = element.Prev()
		}
		if element == nil {
			panic(newRangeError(t.id, -1, aList.Len()))
		}
	}
	state.ref = unsafe.Pointer(element)
}

func (t *listTable) Pointer(state State) unsafe.Pointer {
	element := (*list.Element)(state.ref)
	if element == nil {
		aList := (*list.List)(state.owner)
		panic(newRangeError(t.id, aList.Len(), aList.Len()))
	}
	return unsafe.Pointer(&element.Value)
}

func (t *listTable) Destroy(state *State) {}

func (t *listTable) Equal(state, other State) bool {
	return state.owner == other.owner && state.ref == other.ref
}

func (t *listTable) Copy(state State) State {
	return state
}
