package visitor

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/viant/seqology"
)

// Forward creates a visitor over view elements keyed by position, from the first element
func Forward(view seqology.View) Visitor[int, seqology.Value] {
	return func(f func(key int, element seqology.Value) (bool, error)) error {
		return visit(view.All(), f)
	}
}

// Backward creates a visitor over view elements keyed by position, from the last element.
// It returns an error if the view can not be reverse iterated.
func Backward(view seqology.View) (Visitor[int, seqology.Value], error) {
	if !view.CanReverseIterate() {
		return nil, fmt.Errorf("%s: %w", view.Type(), &seqology.CapabilityError{
			Type: view.Type(), Have: view.Capability(), Required: seqology.Bidirectional,
		})
	}
	return func(f func(key int, element seqology.Value) (bool, error)) error {
		return visit(view.Backward(), f)
	}, nil
}

// Typed creates a forward visitor reading elements as E.
// Interface E accepts any element assignable to it, otherwise view element type has to be E.
func Typed[E any](view seqology.View) (Visitor[int, E], error) {
	want := seqology.TypeOf[E]()
	isInterface := want.Type().Kind() == reflect.Interface
	if !isInterface && view.ElemType() != want {
		return nil, &seqology.TypeMismatchError{Have: view.ElemType(), Want: want}
	}
	return func(f func(key int, element E) (bool, error)) error {
		return visit(view.All(), func(key int, value seqology.Value) (bool, error) {
			element, ok := seqology.TryAs[E](value)
			if !ok && isInterface {
				element, ok = value.Interface().(E)
			}
			if !ok {
				return false, fmt.Errorf("element %v: %w", key, &seqology.TypeMismatchError{Have: value.Type(), Want: want})
			}
			return f(key, element)
		})
	}, nil
}

// Of creates a forward visitor over any container value, elements are visited as interface{}
func Of(registry *seqology.Registry, value interface{}) (Visitor[int, any], error) {
	view, err := registry.ValueOf(value).Iterable()
	if err != nil {
		return nil, fmt.Errorf("failed to create visitor for %T: %w", value, err)
	}
	return Typed[any](view)
}

func visit[E any](seq iter.Seq2[int, E], f func(key int, element E) (bool, error)) error {
	for key, element := range seq {
		continueVisit, err := f(key, element)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
