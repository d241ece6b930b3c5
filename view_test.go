package seqology_test

import (
	"container/list"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/seqology"
	"github.com/viant/seqology/collection"
)

func forward(view seqology.View) []interface{} {
	var result []interface{}
	it, end := view.Begin(), view.End()
	defer it.Release()
	defer end.Release()
	for ; !it.Equal(end); it.Next() {
		result = append(result, it.Value().Interface())
	}
	return result
}

func backward(view seqology.View) []interface{} {
	var result []interface{}
	begin, it := view.Begin(), view.End()
	defer begin.Release()
	defer it.Release()
	for !it.Equal(begin) {
		it.Prev()
		result = append(result, it.Value().Interface())
	}
	return result
}

func TestView_Traversal(t *testing.T) {
	registry := seqology.NewRegistry()
	stdList := list.New()
	for _, v := range []int{42, 57, 47, 15} {
		stdList.PushBack(v)
	}
	forwardList := collection.NewForwardList[float64]()
	forwardList.PushFront(3.14)
	forwardList.PushFront(9.8)
	emptyDeque := collection.NewDeque[string]()

	var testCases = []struct {
		description string
		value       seqology.Value
		elemType    seqology.TypeID
		capability  seqology.Capability
		expect      []interface{}
		reverse     []interface{}
	}{
		{
			description: "slice",
			value:       registry.ValueOf(&[]int{4, 7, 4, 1}),
			elemType:    seqology.TypeOf[int](),
			capability:  seqology.Capabilities(seqology.RandomAccess),
			expect:      []interface{}{4, 7, 4, 1},
			reverse:     []interface{}{1, 4, 7, 4},
		},
		{
			description: "array",
			value:       registry.ValueOf([3]string{"a", "b", "c"}),
			elemType:    seqology.TypeOf[string](),
			capability:  seqology.Capabilities(seqology.RandomAccess),
			expect:      []interface{}{"a", "b", "c"},
			reverse:     []interface{}{"c", "b", "a"},
		},
		{
			description: "doubly linked list",
			value:       registry.ValueOf(collection.NewList(42, 57, 47, 15)),
			elemType:    seqology.TypeOf[int](),
			capability:  seqology.Capabilities(seqology.Bidirectional),
			expect:      []interface{}{42, 57, 47, 15},
			reverse:     []interface{}{15, 47, 57, 42},
		},
		{
			description: "container/list",
			value:       registry.ValueOf(stdList),
			elemType:    seqology.TypeOf[interface{}](),
			capability:  seqology.Capabilities(seqology.Bidirectional),
			expect:      []interface{}{42, 57, 47, 15},
			reverse:     []interface{}{15, 47, 57, 42},
		},
		{
			description: "deque",
			value:       registry.ValueOf(collection.NewDeque(true, false, true)),
			elemType:    seqology.TypeOf[bool](),
			capability:  seqology.Capabilities(seqology.RandomAccess),
			expect:      []interface{}{true, false, true},
			reverse:     []interface{}{true, false, true},
		},
		{
			description: "forward list",
			value:       registry.ValueOf(forwardList),
			elemType:    seqology.TypeOf[float64](),
			capability:  seqology.Capabilities(seqology.Forward),
			expect:      []interface{}{9.8, 3.14},
		},
		{
			description: "empty deque",
			value:       registry.ValueOf(emptyDeque),
			elemType:    seqology.TypeOf[string](),
			capability:  seqology.Capabilities(seqology.RandomAccess),
		},
	}

	for _, testCase := range testCases {
		view, err := testCase.value.Iterable()
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.elemType, view.ElemType(), testCase.description)
		assert.Equal(t, testCase.capability, view.Capability(), testCase.description)
		assert.Equal(t, testCase.value.Type(), view.Type(), testCase.description)
		actual := forward(view)
		if diff := cmp.Diff(testCase.expect, actual); diff != "" {
			t.Errorf("%s: forward mismatch (-expect +actual):\n%s", testCase.description, diff)
		}
		assert.Equal(t, len(actual), view.Size(), testCase.description)
		for i, expect := range testCase.expect {
			assert.Equal(t, expect, view.At(i).Interface(), testCase.description)
		}
		if !view.CanReverseIterate() {
			continue
		}
		if diff := cmp.Diff(testCase.reverse, backward(view)); diff != "" {
			t.Errorf("%s: backward mismatch (-expect +actual):\n%s", testCase.description, diff)
		}
	}
}

func TestView_CanReverseIterate(t *testing.T) {
	registry := seqology.NewRegistry()
	var testCases = []struct {
		description string
		value       interface{}
		expect      bool
	}{
		{description: "slice", value: []int{1}, expect: true},
		{description: "list", value: collection.NewList("a"), expect: true},
		{description: "deque", value: collection.NewDeque(1.5), expect: true},
		{description: "forward list", value: collection.NewForwardList(1), expect: false},
	}
	for _, testCase := range testCases {
		view, err := registry.ValueOf(testCase.value).Iterable()
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, view.CanReverseIterate(), testCase.description)
	}
}

func TestView_All(t *testing.T) {
	registry := seqology.NewRegistry()
	deque := collection.NewDeque(1, 2, 3, 4)
	deque.PushFront(0)
	view, err := seqology.Of(registry, deque).Iterable()
	require.NoError(t, err)

	var indexes, values []int
	for i, value := range view.All() {
		indexes = append(indexes, i)
		values = append(values, seqology.As[int](value))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, indexes)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, values)

	indexes, values = nil, nil
	for i, value := range view.Backward() {
		indexes = append(indexes, i)
		values = append(values, seqology.As[int](value))
		if len(values) == 2 {
			break
		}
	}
	assert.Equal(t, []int{4, 3}, indexes)
	assert.Equal(t, []int{4, 3}, values)
}

func TestView_At(t *testing.T) {
	registry := seqology.NewRegistry()
	var testCases = []struct {
		description string
		value       interface{}
		index       int
		expect      interface{}
		expectErr   bool
	}{
		{description: "slice", value: []int{4, 7}, index: 1, expect: 7},
		{description: "slice out of range", value: []int{4, 7}, index: 2, expectErr: true},
		{description: "negative", value: []int{4, 7}, index: -1, expectErr: true},
		{description: "array", value: [2]bool{false, true}, index: 1, expect: true},
		{description: "list", value: collection.NewList("x", "y"), index: 1, expect: "y"},
		{description: "list out of range", value: collection.NewList("x", "y"), index: 2, expectErr: true},
		{description: "forward list", value: collection.NewForwardList(3, 2, 1), index: 2, expect: 3},
		{description: "deque out of range", value: collection.NewDeque(1), index: 1, expectErr: true},
	}
	for _, testCase := range testCases {
		view, err := registry.ValueOf(testCase.value).Iterable()
		require.NoError(t, err, testCase.description)
		if testCase.expectErr {
			func() {
				defer func() {
					err, _ := recover().(error)
					assert.True(t, errors.Is(err, seqology.ErrOutOfRange), testCase.description)
				}()
				view.At(testCase.index)
			}()
			continue
		}
		assert.Equal(t, testCase.expect, view.At(testCase.index).Interface(), testCase.description)
	}
}

func TestView_Equal(t *testing.T) {
	registry := seqology.NewRegistry()
	items := []int{1, 2}
	value := seqology.Of(registry, &items)
	first, err := value.Iterable()
	require.NoError(t, err)
	second, err := value.Iterable()
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	other := []int{1, 2}
	third, err := seqology.Of(registry, &other).Iterable()
	require.NoError(t, err)
	assert.False(t, first.Equal(third))
}

func TestView_CopiedList(t *testing.T) {
	registry := seqology.NewRegistry()
	view, err := registry.ValueOf(*collection.NewList(1, 2)).Iterable()
	require.NoError(t, err)
	var actual []int
	for _, value := range view.All() {
		actual = append(actual, seqology.As[int](value))
		require.LessOrEqual(t, len(actual), 2)
	}
	assert.Equal(t, []int{1, 2}, actual)
	assert.Equal(t, len(actual), view.Size())
}

func TestView_InterfaceContainer(t *testing.T) {
	registry := seqology.NewRegistry()
	var testCases = []struct {
		description string
		sequence    seqology.Sequence
		expectType  seqology.TypeID
		canReverse  bool
		expect      []int
	}{
		{description: "list", sequence: collection.NewList(1, 2), expectType: seqology.TypeOf[collection.List[int]](), canReverse: true, expect: []int{1, 2}},
		{description: "forward list", sequence: collection.NewForwardList(2, 1), expectType: seqology.TypeOf[collection.ForwardList[int]](), canReverse: false, expect: []int{1, 2}},
	}
	for _, testCase := range testCases {
		for _, value := range []seqology.Value{
			seqology.Of(registry, &testCase.sequence),
			registry.ValueOf(&testCase.sequence),
		} {
			assert.Equal(t, testCase.expectType, value.Type(), testCase.description)
			view, err := value.Iterable()
			require.NoError(t, err, testCase.description)
			assert.Equal(t, testCase.canReverse, view.CanReverseIterate(), testCase.description)
			var actual []int
			for _, element := range view.All() {
				actual = append(actual, seqology.As[int](element))
			}
			assert.Equal(t, testCase.expect, actual, testCase.description)
			if !testCase.canReverse {
				end := view.End()
				func() {
					defer func() {
						err, _ := recover().(error)
						assert.True(t, errors.Is(err, seqology.ErrCapability), testCase.description)
					}()
					end.Prev()
				}()
				end.Release()
			}
		}
	}
	assert.False(t, registry.Has(seqology.TypeOf[seqology.Sequence]()))

	var nilSequence seqology.Sequence
	_, err := seqology.Of(registry, &nilSequence).Iterable()
	assert.True(t, errors.Is(err, seqology.ErrNotRegistered))
}
