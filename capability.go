package seqology

import "strings"

// Capability represents traversal operations supported by a container cursor
type Capability uint8

const (
	//Forward cursor can move toward the end
	Forward Capability = 1 << iota
	//Bidirectional cursor can also move toward the beginning
	Bidirectional
	//RandomAccess cursor can move by an arbitrary offset in constant time
	RandomAccess
)

// Capabilities returns cumulative capability set for the supplied traversal level
func Capabilities(level Capability) Capability {
	switch {
	case level&RandomAccess != 0:
		return Forward | Bidirectional | RandomAccess
	case level&Bidirectional != 0:
		return Forward | Bidirectional
	case level&Forward != 0:
		return Forward
	}
	return 0
}

// Has returns true if all supplied capabilities are set
func (c Capability) Has(capability Capability) bool {
	return c&capability == capability
}

// CanReverse returns true if cursor can move backward
func (c Capability) CanReverse() bool {
	return c&Bidirectional != 0
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	if c&Forward != 0 {
		names = append(names, "forward")
	}
	if c&Bidirectional != 0 {
		names = append(names, "bidirectional")
	}
	if c&RandomAccess != 0 {
		names = append(names, "randomAccess")
	}
	return strings.Join(names, "|")
}

// Shape describes how a table represents cursor state
type Shape uint8

const (
	//ShapeReference state is a position or element reference; copy is a value copy, destroy is a no-op
	ShapeReference Shape = iota + 1
	//ShapeObject state is a native Iterator object; copy clones it, destroy releases it
	ShapeObject
)

func (s Shape) String() string {
	switch s {
	case ShapeReference:
		return "reference"
	case ShapeObject:
		return "object"
	}
	return "undefined"
}
