package fibheap

// rearrange is shared by DecreaseKey and Delete. When force is true it
// treats node as though its element were -infinity: the comparator is
// bypassed entirely, node is cut to the root list unconditionally (if it
// has a parent) and always becomes the new minimum, guaranteeing the
// following ExtractMin removes exactly this node.
func (h *Heap[E]) rearrange(node *Handle[E], force bool) {
	parent := node.parent
	if parent != nil && (force || h.cmp(node.element, parent.element) < 0) {
		h.cut(node, parent)
		h.cascadingCut(parent)
	}

	if force || h.cmp(node.element, h.min.element) < 0 {
		h.min = node
	}
}

// DecreaseKey replaces handle's element with a value no greater than its
// current one under the heap's comparator, then rearranges the forest so
// the heap-order invariant holds again. Amortized O(1).
//
// It returns ErrWrongHandleKind if handle was not produced by this heap
// (or a heap it has since absorbed via Merge), and ErrKeyNotDecreased if
// element compares strictly greater than handle's current element.
func (h *Heap[E]) DecreaseKey(handle *Handle[E], element E) error {
	if !h.owns(handle) {
		return ErrWrongHandleKind
	}
	if h.cmp(element, handle.element) > 0 {
		return ErrKeyNotDecreased
	}

	handle.element = element
	h.rearrange(handle, false)
	return nil
}
