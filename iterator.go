package seqology

import (
	"reflect"
	"unsafe"
)

type (
	// Iterator is a native forward cursor of a Sequence.
	// Iterators produced by Begin and End of the same container must be comparable with Equal.
	Iterator interface {
		// Next moves iterator to the next element
		Next()
		// Pointer returns pointer to the current element
		Pointer() unsafe.Pointer
		// Equal returns true if both iterators point at the same position
		Equal(other Iterator) bool
		// Clone returns an independent iterator at the same position
		Clone() Iterator
	}

	// BidirectionalIterator is an Iterator that can move backward
	BidirectionalIterator interface {
		Iterator
		Prev()
	}

	// RandomAccessIterator is an Iterator that can move by any offset in constant time
	RandomAccessIterator interface {
		BidirectionalIterator
		Advance(step int)
	}

	// Sequence is implemented by containers exposing native iterators.
	// Begin on a zero value container has to be valid.
	Sequence interface {
		ElemType() reflect.Type
		Begin() Iterator
		End() Iterator
	}

	// Sizer is implemented by sequences that know their length
	Sizer interface {
		Len() int
	}

	// Releaser is implemented by iterators holding resources
	Releaser interface {
		Release()
	}
)

// iteratorCapability classifies native iterator
func iteratorCapability(it Iterator) Capability {
	switch it.(type) {
	case RandomAccessIterator:
		return Capabilities(RandomAccess)
	case BidirectionalIterator:
		return Capabilities(Bidirectional)
	}
	return Capabilities(Forward)
}

func release(it Iterator) {
	if releaser, ok := it.(Releaser); ok {
		releaser.Release()
	}
}
