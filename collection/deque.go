package collection

import (
	"reflect"
	"unsafe"

	"github.com/viant/seqology"
)

const minDequeCapacity = 8

type (
	// Deque represents double ended queue backed by a growable ring buffer
	Deque[E any] struct {
		buf  []E
		head int
		len  int
	}

	// DequeIterator represents random access Deque iterator
	DequeIterator[E any] struct {
		deque *Deque[E]
		index int
	}
)

// NewDeque creates a deque with supplied values
func NewDeque[E any](values ...E) *Deque[E] {
	ret := &Deque[E]{}
	for _, value := range values {
		ret.PushBack(value)
	}
	return ret
}

func (d *Deque[E]) grow() {
	if d.len < len(d.buf) {
		return
	}
	capacity := 2 * len(d.buf)
	if capacity < minDequeCapacity {
		capacity = minDequeCapacity
	}
	buf := make([]E, capacity)
	for i := 0; i < d.len; i++ {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = buf
	d.head = 0
}

// PushBack appends value
func (d *Deque[E]) PushBack(value E) {
	d.grow()
	d.buf[(d.head+d.len)%len(d.buf)] = value
	d.len++
}

// PushFront prepends value
func (d *Deque[E]) PushFront(value E) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = value
	d.len++
}

// PopFront removes and returns the first value
func (d *Deque[E]) PopFront() (E, bool) {
	var zero E
	if d.len == 0 {
		return zero, false
	}
	value := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.len--
	return value, true
}

// PopBack removes and returns the last value
func (d *Deque[E]) PopBack() (E, bool) {
	var zero E
	if d.len == 0 {
		return zero, false
	}
	index := (d.head + d.len - 1) % len(d.buf)
	value := d.buf[index]
	d.buf[index] = zero
	d.len--
	return value, true
}

// At returns value at index
func (d *Deque[E]) At(index int) E {
	return *d.pointerAt(index)
}

func (d *Deque[E]) pointerAt(index int) *E {
	if index < 0 || index >= d.len {
		panic("collection: deque index out of range")
	}
	return &d.buf[(d.head+index)%len(d.buf)]
}

// Len returns number of elements
func (d *Deque[E]) Len() int {
	if d == nil {
		return 0
	}
	return d.len
}

func (d *Deque[E]) ElemType() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

func (d *Deque[E]) Begin() seqology.Iterator {
	return &DequeIterator[E]{deque: d}
}

func (d *Deque[E]) End() seqology.Iterator {
	return &DequeIterator[E]{deque: d, index: d.Len()}
}

func (i *DequeIterator[E]) Next() {
	i.Advance(1)
}

func (i *DequeIterator[E]) Prev() {
	i.Advance(-1)
}

func (i *DequeIterator[E]) Advance(step int) {
	index := i.index + step
	if index < 0 || index > i.deque.Len() {
		panic("collection: deque iterator moved out of range")
	}
	i.index = index
}

func (i *DequeIterator[E]) Pointer() unsafe.Pointer {
	return unsafe.Pointer(i.deque.pointerAt(i.index))
}

func (i *DequeIterator[E]) Equal(other seqology.Iterator) bool {
	candidate, ok := other.(*DequeIterator[E])
	return ok && candidate.deque == i.deque && candidate.index == i.index
}

func (i *DequeIterator[E]) Clone() seqology.Iterator {
	return &DequeIterator[E]{deque: i.deque, index: i.index}
}
