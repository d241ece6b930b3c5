package seqology

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is returned when no table was registered for a type
	ErrNotRegistered = errors.New("type not registered as container")

	// ErrNotContainer is returned when a table can not be generated for a type
	ErrNotContainer = errors.New("type is not a sequential container")

	// ErrCapability signals cursor movement not supported by the container
	ErrCapability = errors.New("unsupported cursor movement")

	// ErrTypeMismatch signals read-out with a type other than the value type
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrOutOfRange signals access outside of container bounds
	ErrOutOfRange = errors.New("index out of range")

	// ErrCursorReleased signals use of a released cursor
	ErrCursorReleased = errors.New("cursor was released")
)

// NotRegisteredError represents a lookup for a type without registered table
type NotRegisteredError struct {
	Type TypeID
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotRegistered, e.Type)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// CapabilityError represents cursor movement that requires a missing capability
type CapabilityError struct {
	Type     TypeID
	Have     Capability
	Required Capability
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%v: %s requires %s, has %s", ErrCapability, e.Type, e.Required, e.Have)
}

func (e *CapabilityError) Is(target error) bool {
	return target == ErrCapability
}

// TypeMismatchError represents checked read-out failure
type TypeMismatchError struct {
	Have TypeID
	Want TypeID
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: value is %s, not %s", ErrTypeMismatch, e.Have, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// RangeError represents access outside of container bounds
type RangeError struct {
	Type  TypeID
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %v, len: %v (%s)", ErrOutOfRange, e.Index, e.Len, e.Type)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func newRangeError(id TypeID, index, length int) error {
	return &RangeError{Type: id, Index: index, Len: length}
}
