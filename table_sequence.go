package seqology

import (
	"reflect"
	"unsafe"
)

// sequenceTable handles containers implementing Sequence, state holds native Iterator
type sequenceTable struct {
	id         TypeID
	elem       TypeID
	rType      reflect.Type
	byValue    bool
	sized      bool
	capability Capability
}

func newSequenceTable(rType reflect.Type, sample unsafe.Pointer) *sequenceTable {
	ret := &sequenceTable{id: TypeIDOf(rType), rType: rType}
	ret.byValue = !reflect.PointerTo(rType).Implements(sequenceType)
	aSequence := ret.sequence(probeSample(rType, sample))
	ret.elem = TypeIDOf(aSequence.ElemType())
	_, ret.sized = aSequence.(Sizer)
	probe := aSequence.Begin()
	ret.capability = iteratorCapability(probe)
	release(probe)
	return ret
}

// probeSample returns sample or, when sample is nil or holds nil pointer, a zero container
func probeSample(rType reflect.Type, sample unsafe.Pointer) unsafe.Pointer {
	if sample != nil && (rType.Kind() != reflect.Ptr || *(*unsafe.Pointer)(sample) != nil) {
		return sample
	}
	holder := reflect.New(rType)
	if rType.Kind() == reflect.Ptr {
		holder.Elem().Set(reflect.New(rType.Elem()))
	}
	return holder.UnsafePointer()
}

func (t *sequenceTable) sequence(container unsafe.Pointer) Sequence {
	holder := reflect.NewAt(t.rType, container)
	if t.byValue {
		return holder.Elem().Interface().(Sequence)
	}
	return holder.Interface().(Sequence)
}

func (t *sequenceTable) Type() TypeID {
	return t.id
}

func (t *sequenceTable) ElemType() TypeID {
	return t.elem
}

func (t *sequenceTable) Capability() Capability {
	return t.capability
}

func (t *sequenceTable) Shape() Shape {
	return ShapeObject
}

func (t *sequenceTable) Size(container unsafe.Pointer) int {
	aSequence := t.sequence(container)
	if t.sized {
		return aSequence.(Sizer).Len()
	}
	it, end := aSequence.Begin(), aSequence.End()
	defer release(it)
	defer release(end)
	count := 0
	for ; !it.Equal(end); it.Next() {
		count++
	}
	return count
}

func (t *sequenceTable) At(container unsafe.Pointer, index int) unsafe.Pointer {
	if index < 0 {
		panic(newRangeError(t.id, index, t.Size(container)))
	}
	aSequence := t.sequence(container)
	it := aSequence.Begin()
	defer release(it)
	if randomAccess, ok := it.(RandomAccessIterator); ok {
		if size := t.Size(container); index >= size {
			panic(newRangeError(t.id, index, size))
		}
		randomAccess.Advance(index)
		return it.Pointer()
	}
	end := aSequence.End()
	defer release(end)
	for i := 0; i < index; i++ {
		if it.Equal(end) {
			panic(newRangeError(t.id, index, i))
		}
		it.Next()
	}
	if it.Equal(end) {
		panic(newRangeError(t.id, index, index))
	}
	return it.Pointer()
}

func (t *sequenceTable) Begin(container unsafe.Pointer) State {
	return State{owner: container, iter: t.sequence(container).Begin()}
}

func (t *sequenceTable) End(container unsafe.Pointer) State {
	return State{owner: container, iter: t.sequence(container).End()}
}

func (t *sequenceTable) Advance(state *State, step int) {
	if randomAccess, ok := state.iter.(RandomAccessIterator); ok {
		randomAccess.Advance(step)
		return
	}
	for ; step > 0; step-- {
		state.iter.Next()
	}
	if step == 0 {
		return
	}
	bidirectional := state.iter.(BidirectionalIterator)
	for ; step < 0; step++ {
		bidirectional.Prev()
	}
}

func (t *sequenceTable) Pointer(state State) unsafe.Pointer {
	return state.iter.Pointer()
}

func (t *sequenceTable) Destroy(state *State) {
	if state.iter == nil {
		return
	}
	release(state.iter)
	state.iter = nil
}

func (t *sequenceTable) Equal(state, other State) bool {
	if state.iter == nil || other.iter == nil {
		return state.iter == other.iter
	}
	return state.iter.Equal(other.iter)
}

func (t *sequenceTable) Copy(state State) State {
	if state.iter != nil {
		state.iter = state.iter.Clone()
	}
	return state
}
