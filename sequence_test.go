package seqology

import (
	"reflect"
	"sync/atomic"
	"unsafe"
)

// trackedSequence is a forward only sequence counting created and released iterators
type trackedSequence struct {
	values   []int
	created  atomic.Int32
	released atomic.Int32
}

type trackedIterator struct {
	sequence *trackedSequence
	index    int
	released atomic.Bool
}

func newTrackedSequence(values ...int) *trackedSequence {
	return &trackedSequence{values: values}
}

func (s *trackedSequence) ElemType() reflect.Type {
	return reflect.TypeOf(0)
}

func (s *trackedSequence) Begin() Iterator {
	return s.iterator(0)
}

func (s *trackedSequence) End() Iterator {
	return s.iterator(len(s.values))
}

func (s *trackedSequence) iterator(index int) *trackedIterator {
	s.created.Add(1)
	return &trackedIterator{sequence: s, index: index}
}

// live returns number of created but not released iterators
func (s *trackedSequence) live() int {
	return int(s.created.Load() - s.released.Load())
}

func (i *trackedIterator) Next() {
	i.index++
}

func (i *trackedIterator) Pointer() unsafe.Pointer {
	return unsafe.Pointer(&i.sequence.values[i.index])
}

func (i *trackedIterator) Equal(other Iterator) bool {
	candidate, ok := other.(*trackedIterator)
	return ok && candidate.sequence == i.sequence && candidate.index == i.index
}

func (i *trackedIterator) Clone() Iterator {
	return i.sequence.iterator(i.index)
}

func (i *trackedIterator) Release() {
	if !i.released.CompareAndSwap(false, true) {
		panic("trackedIterator released twice")
	}
	i.sequence.released.Add(1)
}
