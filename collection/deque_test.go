package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/seqology"
)

func dequeValues[E any](d *Deque[E]) []E {
	var result []E
	for it, end := d.Begin(), d.End(); !it.Equal(end); it.Next() {
		result = append(result, *(*E)(it.Pointer()))
	}
	return result
}

func TestDeque(t *testing.T) {
	var testCases = []struct {
		description string
		init        func() *Deque[int]
		expect      []int
	}{
		{
			description: "push back",
			init:        func() *Deque[int] { return NewDeque(1, 2, 3) },
			expect:      []int{1, 2, 3},
		},
		{
			description: "push front",
			init: func() *Deque[int] {
				d := NewDeque[int]()
				d.PushFront(1)
				d.PushFront(2)
				return d
			},
			expect: []int{2, 1},
		},
		{
			description: "wrap around and grow",
			init: func() *Deque[int] {
				d := NewDeque(3, 4, 5, 6, 7, 8)
				d.PushFront(2)
				d.PushFront(1)
				d.PushFront(0)
				d.PushBack(9)
				return d
			},
			expect: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			description: "pop",
			init: func() *Deque[int] {
				d := NewDeque(1, 2, 3, 4)
				d.PopFront()
				d.PopBack()
				return d
			},
			expect: []int{2, 3},
		},
		{
			description: "empty",
			init:        func() *Deque[int] { return NewDeque[int]() },
		},
	}
	for _, testCase := range testCases {
		d := testCase.init()
		assert.Equal(t, testCase.expect, dequeValues(d), testCase.description)
		assert.Equal(t, len(testCase.expect), d.Len(), testCase.description)
		for i, expect := range testCase.expect {
			assert.Equal(t, expect, d.At(i), testCase.description)
		}
	}
}

func TestDeque_Pop(t *testing.T) {
	d := NewDeque("a", "b")
	value, ok := d.PopBack()
	assert.True(t, ok)
	assert.Equal(t, "b", value)
	value, ok = d.PopFront()
	assert.True(t, ok)
	assert.Equal(t, "a", value)
	_, ok = d.PopFront()
	assert.False(t, ok)
	_, ok = d.PopBack()
	assert.False(t, ok)
	assert.Panics(t, func() { d.At(0) })
}

func TestDequeIterator(t *testing.T) {
	d := NewDeque(10, 20, 30)
	it := d.Begin().(*DequeIterator[int])
	it.Advance(2)
	assert.Equal(t, 30, *(*int)(it.Pointer()))
	it.Prev()
	assert.Equal(t, 20, *(*int)(it.Pointer()))
	clone := it.Clone()
	it.Next()
	assert.False(t, it.Equal(clone))
	assert.Equal(t, 20, *(*int)(clone.Pointer()))
	it.Next()
	assert.True(t, it.Equal(d.End()))
	assert.Panics(t, func() { it.Next() })
	assert.False(t, it.Equal(NewDeque(10, 20, 30).End()), "iterators of other deque are not equal")

	var _ seqology.RandomAccessIterator = it
	var _ seqology.Sizer = d
}
