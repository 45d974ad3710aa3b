package fibheap

import (
	"fmt"

	"github.com/segmentio/ksuid"
)

// Handle is the opaque reference to a node returned by Insert, consumed by
// DecreaseKey and Delete, and handed back by ExtractMin/Delete once the
// node has left the heap. Its fields are only ever mutated by the Heap
// that currently holds it (the one that created it, or a heap that has
// absorbed that one via Merge); callers outside this package see it only
// through Element, String, Degree and Children.
type Handle[E any] struct {
	element E

	parent *Handle[E]
	child  *Handle[E]
	left   *Handle[E]
	right  *Handle[E]

	degree int
	marked bool

	heapID ksuid.KSUID
}

// Element returns the value carried by this node. Valid for the lifetime
// of the handle, including after it has been extracted.
func (h *Handle[E]) Element() E {
	return h.element
}

// String renders the advisory representation used by the display
// collaborator: "<element> | [* ]↓<degree>". The leading "* " appears only
// when the node is marked. This is advisory only; callers must not parse it.
func (h *Handle[E]) String() string {
	mark := ""
	if h.marked {
		mark = "* "
	}
	return fmt.Sprintf("%v | %s↓%d", h.element, mark, h.degree)
}

// Degree returns the number of direct children this node currently has.
// Exposed for the display collaborator (spec §6), which reads a handle
// only through this accessor, Children and String.
func (h *Handle[E]) Degree() int {
	return h.degree
}

// Children returns a snapshot slice of this node's direct children, in
// sibling-list order. It walks the forest but never mutates it; safe for
// a display collaborator to call at any time between public operations.
func (h *Handle[E]) Children() []*Handle[E] {
	if h.child == nil {
		return nil
	}
	out := make([]*Handle[E], 0, h.degree)
	c := h.child
	for {
		out = append(out, c)
		c = c.right
		if c == h.child {
			break
		}
	}
	return out
}

func newHandle[E any](element E, heapID ksuid.KSUID) *Handle[E] {
	h := &Handle[E]{element: element, heapID: heapID}
	h.left = h
	h.right = h
	return h
}
