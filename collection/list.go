package collection

import (
	"reflect"
	"unsafe"

	"github.com/viant/seqology"
)

type (
	// List represents doubly linked list, copies of a List value share its nodes
	List[E any] struct {
		root *listNode[E]
		len  int
	}

	listNode[E any] struct {
		value      E
		next, prev *listNode[E]
	}

	// ListIterator represents bidirectional List iterator, the end position references list root
	ListIterator[E any] struct {
		root *listNode[E]
		node *listNode[E]
	}
)

// NewList creates a list with supplied values
func NewList[E any](values ...E) *List[E] {
	ret := &List[E]{}
	for _, value := range values {
		ret.PushBack(value)
	}
	return ret
}

func (l *List[E]) lazyInit() {
	if l.root == nil {
		l.root = &listNode[E]{}
		l.root.next = l.root
		l.root.prev = l.root
	}
}

func (l *List[E]) insert(value E, at *listNode[E]) {
	l.lazyInit()
	node := &listNode[E]{value: value, prev: at, next: at.next}
	at.next.prev = node
	at.next = node
	l.len++
}

// PushBack appends value
func (l *List[E]) PushBack(value E) {
	l.lazyInit()
	l.insert(value, l.root.prev)
}

// PushFront prepends value
func (l *List[E]) PushFront(value E) {
	l.lazyInit()
	l.insert(value, l.root)
}

// Len returns number of elements
func (l *List[E]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
}

// Front returns the first value
func (l *List[E]) Front() (E, bool) {
	if l.Len() == 0 {
		var zero E
		return zero, false
	}
	return l.root.next.value, true
}

// Back returns the last value
func (l *List[E]) Back() (E, bool) {
	if l.Len() == 0 {
		var zero E
		return zero, false
	}
	return l.root.prev.value, true
}

func (l *List[E]) ElemType() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

func (l *List[E]) Begin() seqology.Iterator {
	if l == nil {
		return &ListIterator[E]{}
	}
	l.lazyInit()
	return &ListIterator[E]{root: l.root, node: l.root.next}
}

func (l *List[E]) End() seqology.Iterator {
	if l == nil {
		return &ListIterator[E]{}
	}
	l.lazyInit()
	return &ListIterator[E]{root: l.root, node: l.root}
}

func (i *ListIterator[E]) atEnd() bool {
	return i.root == nil || i.node == i.root
}

func (i *ListIterator[E]) Next() {
	if i.atEnd() {
		panic("collection: list iterator advanced past the end")
	}
	i.node = i.node.next
}

func (i *ListIterator[E]) Prev() {
	if i.root == nil || i.node.prev == i.root {
		panic("collection: list iterator moved before the beginning")
	}
	i.node = i.node.prev
}

func (i *ListIterator[E]) Pointer() unsafe.Pointer {
	if i.atEnd() {
		panic("collection: list iterator dereferenced at the end")
	}
	return unsafe.Pointer(&i.node.value)
}

func (i *ListIterator[E]) Equal(other seqology.Iterator) bool {
	candidate, ok := other.(*ListIterator[E])
	return ok && candidate.node == i.node
}

func (i *ListIterator[E]) Clone() seqology.Iterator {
	return &ListIterator[E]{root: i.root, node: i.node}
}
