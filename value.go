package seqology

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// Value represents a type erased reference to a value of any type.
// Value does not own nor copy referenced value.
type Value struct {
	typeID   TypeID
	ptr      unsafe.Pointer
	registry *Registry
}

// Of creates a value referencing supplied pointer target; if T is a container type,
// its table gets generated and registered. Interface T holding a value is unwrapped with ValueOf.
func Of[T any](r *Registry, value *T) Value {
	id := TypeOf[T]()
	if id.rType.Kind() == reflect.Interface && value != nil {
		if dynamic := any(*value); dynamic != nil {
			return r.ValueOf(dynamic)
		}
	}
	ptr := unsafe.Pointer(value)
	if value != nil {
		r.register(id.rType, ptr)
	}
	return Value{typeID: id, ptr: ptr, registry: r}
}

// ValueOf creates a value, non nil pointer target is referenced, any other value is copied into a new holder.
// If value is a container, its table gets generated and registered
func (r *Registry) ValueOf(value interface{}) Value {
	switch actual := value.(type) {
	case nil:
		return Value{registry: r}
	case Value:
		return actual
	}
	rType := reflect.TypeOf(value)
	var ptr unsafe.Pointer
	if rType.Kind() == reflect.Ptr && !reflect.ValueOf(value).IsNil() {
		rType = rType.Elem()
		ptr = xunsafe.AsPointer(value)
		if rType.Kind() == reflect.Interface {
			if iface := reflect.NewAt(rType, ptr).Elem(); !iface.IsNil() {
				return r.ValueOf(iface.Interface())
			}
		}
	} else {
		holder := reflect.New(rType)
		holder.Elem().Set(reflect.ValueOf(value))
		ptr = holder.UnsafePointer()
	}
	r.register(rType, ptr)
	return Value{typeID: TypeIDOf(rType), ptr: ptr, registry: r}
}

func (r *Registry) register(rType reflect.Type, ptr unsafe.Pointer) {
	if r == nil || !IsContainerType(rType) {
		return
	}
	_, _ = r.ensure(rType, ptr)
}

// elementValue creates element value, elements of Value type are returned as is,
// interface elements are unwrapped to their dynamic type
func elementValue(elem TypeID, ptr unsafe.Pointer, r *Registry) Value {
	switch {
	case elem.rType == valueType:
		return *(*Value)(ptr)
	case elem.rType.Kind() == reflect.Interface:
		iface := reflect.NewAt(elem.rType, ptr).Elem()
		if iface.IsNil() {
			return Value{typeID: elem, ptr: ptr, registry: r}
		}
		dynamic := iface.Elem()
		holder := reflect.New(dynamic.Type())
		holder.Elem().Set(dynamic)
		return Value{typeID: TypeIDOf(dynamic.Type()), ptr: holder.UnsafePointer(), registry: r}
	}
	return Value{typeID: elem, ptr: ptr, registry: r}
}

// Type returns value type identity
func (v Value) Type() TypeID {
	return v.typeID
}

// Pointer returns pointer to referenced value
func (v Value) Pointer() unsafe.Pointer {
	return v.ptr
}

// IsValid returns true if value references anything
func (v Value) IsValid() bool {
	return v.ptr != nil && !v.typeID.IsZero()
}

// Interface returns referenced value as interface{}
func (v Value) Interface() interface{} {
	if !v.IsValid() {
		return nil
	}
	return reflect.NewAt(v.typeID.rType, v.ptr).Elem().Interface()
}

// Iterable returns iteration view, ErrNotRegistered is returned when value type was never registered as container
func (v Value) Iterable() (View, error) {
	if v.registry == nil || !v.IsValid() {
		return View{}, &NotRegisteredError{Type: v.typeID}
	}
	table, err := v.registry.Lookup(v.typeID)
	if err != nil {
		return View{}, err
	}
	return View{table: table, container: v.ptr, registry: v.registry}, nil
}

// IsIterable returns true if value type was registered as container
func (v Value) IsIterable() bool {
	return v.registry != nil && v.IsValid() && v.registry.Has(v.typeID)
}

func (v Value) String() string {
	if !v.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("%v(%v)", v.typeID, v.Interface())
}

// As returns referenced value as X, it panics with *TypeMismatchError if value is not X
func As[X any](v Value) X {
	ret, ok := TryAs[X](v)
	if !ok {
		panic(&TypeMismatchError{Have: v.typeID, Want: TypeOf[X]()})
	}
	return ret
}

// TryAs returns referenced value as X and true, or zero X and false if value is not X
func TryAs[X any](v Value) (X, bool) {
	var zero X
	if v.ptr == nil || v.typeID != TypeOf[X]() {
		return zero, false
	}
	return *(*X)(v.ptr), true
}
