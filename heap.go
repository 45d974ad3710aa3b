// Package fibheap implements a generic Fibonacci heap: a mergeable
// priority queue backed by an intrusive forest of heap-ordered trees
// linked through circular doubly linked sibling lists, with amortized
// O(1) insert/minimum/merge/decrease-key and O(log n) extract-min/delete.
package fibheap

import (
	"cmp"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/segmentio/ksuid"
)

// Heap is a Fibonacci heap over elements of type E, ordered by a
// caller-supplied or natural comparator. The zero value is not usable;
// construct with New or NewOrdered. A Heap must be used from a single
// logical owner at a time — it has no internal synchronization.
type Heap[E any] struct {
	id       ksuid.KSUID
	absorbed mapset.Set[ksuid.KSUID]
	cmpTag   uintptr
	cmp      func(a, b E) int

	min   *Handle[E]
	size  int
	roots int
}

// New constructs an empty heap ordered by cmp, which must return a
// negative number when a < b, zero when equal, and a positive number
// when a > b — the same contract as cmp.Compare.
func New[E any](cmp func(a, b E) int) *Heap[E] {
	return &Heap[E]{
		id:       ksuid.New(),
		absorbed: mapset.NewThreadUnsafeSet[ksuid.KSUID](),
		cmpTag:   reflect.ValueOf(cmp).Pointer(),
		cmp:      cmp,
	}
}

// NewOrdered constructs an empty heap using E's natural order.
func NewOrdered[E cmp.Ordered]() *Heap[E] {
	return New[E](cmp.Compare[E])
}

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[E]) IsEmpty() bool {
	return h.min == nil
}

// Size returns the total number of nodes currently in the heap.
func (h *Heap[E]) Size() int {
	return h.size
}

// RootCount returns the number of trees currently in the root list.
func (h *Heap[E]) RootCount() int {
	return h.roots
}

// Minimum returns the handle holding the smallest element under the
// heap's comparator, or (nil, false) if the heap is empty or nil.
func (h *Heap[E]) Minimum() (*Handle[E], bool) {
	if h == nil || h.min == nil {
		return nil, false
	}
	return h.min, true
}

// Roots returns a snapshot slice of the current root handles, in root-list
// order. Exposed for the display collaborator (spec §6); it never mutates
// the heap.
func (h *Heap[E]) Roots() []*Handle[E] {
	if h.min == nil {
		return nil
	}
	out := make([]*Handle[E], 0, h.roots)
	n := h.min
	for {
		out = append(out, n)
		n = n.right
		if n == h.min {
			break
		}
	}
	return out
}

// Clear drops every node. From the heap's perspective this is O(1); the
// detached forest becomes ordinary garbage for the runtime to reclaim.
func (h *Heap[E]) Clear() {
	h.min = nil
	h.size = 0
	h.roots = 0
}

// owns reports whether handle was created by this heap or by a heap this
// one has since absorbed via Merge. O(1): it never walks the forest.
func (h *Heap[E]) owns(handle *Handle[E]) bool {
	if handle == nil {
		return false
	}
	if handle.heapID == h.id {
		return true
	}
	return h.absorbed.Contains(handle.heapID)
}

// Insert creates a node holding element and adds it to the heap,
// returning its handle. Amortized O(1).
func (h *Heap[E]) Insert(element E) *Handle[E] {
	node := newHandle[E](element, h.id)

	h.size++
	h.roots++

	if h.min == nil {
		h.min = node
	} else {
		spliceAfter(h.min, node)
		if h.cmp(node.element, h.min.element) < 0 {
			h.min = node
		}
	}

	return node
}

// Merge absorbs other's forest into h in amortized O(1): other's root
// list is spliced into h's, sizes and root counts are added, and min is
// updated if other's minimum is smaller. other is left empty. A nil or
// already-empty other is a no-op. Merge rejects other if it was built
// with a comparator it cannot detect as equivalent to h's.
func (h *Heap[E]) Merge(other *Heap[E]) error {
	if other == nil || other.IsEmpty() {
		return nil
	}
	if h.cmpTag != other.cmpTag {
		return ErrWrongHeapKind
	}

	h.size += other.size
	h.roots += other.roots

	if h.min == nil {
		h.min = other.min
	} else {
		spliceAfter(h.min, other.min)
		if h.cmp(other.min.element, h.min.element) < 0 {
			h.min = other.min
		}
	}

	// Small-to-large union of absorbed ids keeps the amortized cost of
	// this bookkeeping proportional to the number of heaps ever merged,
	// not to the number of elements they held.
	larger, smaller := h.absorbed, other.absorbed
	if smaller.Cardinality() > larger.Cardinality() {
		larger, smaller = smaller, larger
	}
	larger.Add(other.id)
	for _, id := range smaller.ToSlice() {
		larger.Add(id)
	}
	h.absorbed = larger

	other.id = ksuid.New() // other's old id is now owned by h; give it a fresh one
	other.absorbed = mapset.NewThreadUnsafeSet[ksuid.KSUID]()
	other.Clear()

	return nil
}
