package collection

import (
	"reflect"
	"unsafe"

	"github.com/viant/seqology"
)

type (
	// ForwardList represents singly linked list
	ForwardList[E any] struct {
		head *forwardNode[E]
	}

	forwardNode[E any] struct {
		value E
		next  *forwardNode[E]
	}

	// ForwardIterator represents forward only ForwardList iterator
	ForwardIterator[E any] struct {
		node *forwardNode[E]
	}
)

// NewForwardList creates a list, elements are prepended in supplied order
func NewForwardList[E any](values ...E) *ForwardList[E] {
	ret := &ForwardList[E]{}
	for _, value := range values {
		ret.PushFront(value)
	}
	return ret
}

// PushFront prepends value
func (l *ForwardList[E]) PushFront(value E) {
	l.head = &forwardNode[E]{value: value, next: l.head}
}

// PopFront removes and returns the first value
func (l *ForwardList[E]) PopFront() (E, bool) {
	if l.head == nil {
		var zero E
		return zero, false
	}
	node := l.head
	l.head = node.next
	return node.value, true
}

// Front returns the first value
func (l *ForwardList[E]) Front() (E, bool) {
	if l == nil || l.head == nil {
		var zero E
		return zero, false
	}
	return l.head.value, true
}

// Empty returns true if list has no elements
func (l *ForwardList[E]) Empty() bool {
	return l == nil || l.head == nil
}

func (l *ForwardList[E]) ElemType() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

func (l *ForwardList[E]) Begin() seqology.Iterator {
	if l == nil {
		return &ForwardIterator[E]{}
	}
	return &ForwardIterator[E]{node: l.head}
}

func (l *ForwardList[E]) End() seqology.Iterator {
	return &ForwardIterator[E]{}
}

func (i *ForwardIterator[E]) Next() {
	if i.node == nil {
		panic("collection: forward iterator advanced past the end")
	}
	i.node = i.node.next
}

func (i *ForwardIterator[E]) Pointer() unsafe.Pointer {
	if i.node == nil {
		panic("collection: forward iterator dereferenced at the end")
	}
	return unsafe.Pointer(&i.node.value)
}

func (i *ForwardIterator[E]) Equal(other seqology.Iterator) bool {
	candidate, ok := other.(*ForwardIterator[E])
	return ok && candidate.node == i.node
}

func (i *ForwardIterator[E]) Clone() seqology.Iterator {
	return &ForwardIterator[E]{node: i.node}
}
