package seqology

import (
	"container/list"
	"reflect"
)

// TypeID identifies a concrete Go type at runtime.
// It is comparable and can be used as a map key.
type TypeID struct {
	rType reflect.Type
}

var (
	valueType    = reflect.TypeOf(Value{})
	stdListType  = reflect.TypeOf(list.List{})
	sequenceType = reflect.TypeOf((*Sequence)(nil)).Elem()
)

// TypeOf returns type identity of T
func TypeOf[T any]() TypeID {
	return TypeID{rType: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeIDOf returns type identity of supplied reflect type
func TypeIDOf(rType reflect.Type) TypeID {
	return TypeID{rType: rType}
}

// Type returns underlying reflect type
func (t TypeID) Type() reflect.Type {
	return t.rType
}

// IsZero returns true if type identity is undefined
func (t TypeID) IsZero() bool {
	return t.rType == nil
}

func (t TypeID) String() string {
	if t.rType == nil {
		return "<nil>"
	}
	return t.rType.String()
}

// IsContainerType returns true when values of rType can be enumerated by a Table.
// Interface types are never container types, their dynamic values are.
func IsContainerType(rType reflect.Type) bool {
	if rType == nil || rType.Kind() == reflect.Interface {
		return false
	}
	if implementsSequence(rType) {
		return true
	}
	switch rType.Kind() {
	case reflect.Slice, reflect.Array:
		return true
	case reflect.Struct:
		return rType == stdListType
	}
	return false
}

func implementsSequence(rType reflect.Type) bool {
	return reflect.PointerTo(rType).Implements(sequenceType) || rType.Implements(sequenceType)
}
