package fibheap

import "errors"

// Caller-facing error conditions. All three are programming errors: once a
// call returns one of these, the heap's state is unchanged and the
// operation did not partially apply.
var (
	// ErrWrongHandleKind is returned when a handle passed to DecreaseKey or
	// Delete was not produced by this heap (or one it absorbed via Merge).
	ErrWrongHandleKind = errors.New("fibheap: handle does not belong to this heap")

	// ErrKeyNotDecreased is returned when DecreaseKey's replacement element
	// compares strictly greater than the node's current element.
	ErrKeyNotDecreased = errors.New("fibheap: replacement element is not less than or equal to the current element")

	// ErrWrongHeapKind is returned when Merge's argument uses an
	// incompatible comparator lineage.
	ErrWrongHeapKind = errors.New("fibheap: argument heap is not compatible with the receiver")
)
