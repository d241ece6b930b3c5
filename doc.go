// Package seqology provides type erased enumeration of sequential containers.
//
// A Value references a value of any type. When the value is a container (slice, array,
// container/list.List or a Sequence implementation), wrapping it generates an operation Table
// for its concrete type and registers it in the Registry. Value.Iterable then returns a View that
// reports size and capability and produces reference counted Cursors:
//
//	registry := seqology.NewRegistry()
//	items := []int{4, 7, 4, 1}
//	view, err := seqology.Of(registry, &items).Iterable()
//	if err != nil {
//		return err
//	}
//	for it, end := view.Begin(), view.End(); !it.Equal(end); it.Next() {
//		fmt.Println(seqology.As[int](it.Value()))
//	}
//
// Cursor movement is gated by Capability: moving backward on a forward only container panics
// with *CapabilityError. Cursors should be released once no longer needed, the traversal state
// is destroyed when its last cursor is released.
package seqology
