package seqology

import (
	"sync/atomic"
)

type (
	// Cursor represents a traversal position over an iterable view.
	// Cursors created with Share reference the same traversal state, the state is destroyed
	// when the last referencing cursor is released. A zero Cursor holds no state, it can only be assigned to.
	Cursor struct {
		table    Table
		shared   *sharedState
		registry *Registry
		released atomic.Bool
	}

	// sharedState represents reference counted traversal state
	sharedState struct {
		state     State
		refs      atomic.Int32
		table     Table
		telemetry *telemetry
	}
)

func newSharedState(table Table, state State, registry *Registry) *sharedState {
	ret := &sharedState{state: state, table: table}
	if registry != nil {
		ret.telemetry = registry.telemetry
		ret.telemetry.stateCreated(table.Type())
	}
	return ret
}

func (s *sharedState) retain() {
	s.refs.Add(1)
}

// release decrements reference count and destroys state when no reference is left after the decrement
func (s *sharedState) release() bool {
	refs := s.refs.Add(-1)
	if refs > 0 {
		return false
	}
	if refs < 0 {
		panic("seqology: cursor state released more times than retained")
	}
	s.table.Destroy(&s.state)
	if s.telemetry != nil {
		s.telemetry.stateDestroyed(s.table.Type())
	}
	return true
}

func newCursor(table Table, shared *sharedState, registry *Registry) *Cursor {
	shared.retain()
	return &Cursor{table: table, shared: shared, registry: registry}
}

func (c *Cursor) live() *sharedState {
	if c.released.Load() || c.shared == nil {
		panic(ErrCursorReleased)
	}
	return c.shared
}

// Type returns container type
func (c *Cursor) Type() TypeID {
	return c.table.Type()
}

// Capability returns cursor capability
func (c *Cursor) Capability() Capability {
	return c.table.Capability()
}

// Value returns current element
func (c *Cursor) Value() Value {
	shared := c.live()
	return elementValue(c.table.ElemType(), c.table.Pointer(shared.state), c.registry)
}

// Equal returns true if both cursors reference the same position
func (c *Cursor) Equal(other *Cursor) bool {
	shared, otherShared := c.live(), other.live()
	if c.table.Type() != other.table.Type() {
		return false
	}
	return c.table.Equal(shared.state, otherShared.state)
}

// Next moves cursor to the next element
func (c *Cursor) Next() *Cursor {
	return c.move(1)
}

// Prev moves cursor to the previous element, it panics with *CapabilityError if container is forward only
func (c *Cursor) Prev() *Cursor {
	return c.move(-1)
}

// Advance moves cursor by step in place
func (c *Cursor) Advance(step int) *Cursor {
	return c.move(step)
}

// Retreat moves cursor back by step in place
func (c *Cursor) Retreat(step int) *Cursor {
	return c.move(-step)
}

// PostNext moves cursor to the next element and returns a new cursor at the previous position
func (c *Cursor) PostNext() *Cursor {
	ret := c.Clone()
	c.move(1)
	return ret
}

// PostPrev moves cursor to the previous element and returns a new cursor at the previous position
func (c *Cursor) PostPrev() *Cursor {
	checkStep(c.table, -1)
	ret := c.Clone()
	c.move(-1)
	return ret
}

// Plus returns a new cursor moved by step, receiver position does not change
func (c *Cursor) Plus(step int) *Cursor {
	checkStep(c.table, step)
	return c.Clone().move(step)
}

// Minus returns a new cursor moved back by step, receiver position does not change
func (c *Cursor) Minus(step int) *Cursor {
	return c.Plus(-step)
}

func (c *Cursor) move(step int) *Cursor {
	shared := c.live()
	checkStep(c.table, step)
	if step != 0 {
		c.table.Advance(&shared.state, step)
	}
	return c
}

// Share returns a cursor referencing the same traversal state
func (c *Cursor) Share() *Cursor {
	return newCursor(c.table, c.live(), c.registry)
}

// Clone returns a cursor with an independent copy of traversal state
func (c *Cursor) Clone() *Cursor {
	shared := c.live()
	return newCursor(c.table, newSharedState(c.table, c.table.Copy(shared.state), c.registry), c.registry)
}

// Assign rebinds cursor to other's traversal state, previously referenced state is released
func (c *Cursor) Assign(other *Cursor) *Cursor {
	otherShared := other.live()
	otherShared.retain()
	previous := c.shared
	wasReleased := c.released.Swap(false)
	c.table, c.shared, c.registry = other.table, otherShared, other.registry
	if previous != nil && !wasReleased {
		previous.release()
	}
	return c
}

// Release releases cursor reference to traversal state, subsequent calls are no-op
func (c *Cursor) Release() {
	if c.released.CompareAndSwap(false, true) && c.shared != nil {
		c.shared.release()
	}
}

// Refs returns number of cursors referencing traversal state
func (c *Cursor) Refs() int {
	if c.shared == nil {
		return 0
	}
	return int(c.shared.refs.Load())
}
