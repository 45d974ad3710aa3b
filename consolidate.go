package fibheap

import "math"

var phi = (1 + math.Sqrt(5)) / 2

// degreeTableSize returns ⌈log_φ(n)⌉ + 1, the standard upper bound on the
// degree of any node in an n-node Fibonacci heap. n is always ≥ 1 here:
// consolidate is only invoked when ExtractMin has just confirmed the
// heap is non-empty.
func degreeTableSize(n int) int {
	return int(math.Ceil(math.Log(float64(n))/math.Log(phi))) + 1
}

// link makes child a direct child of parent: it leaves whichever sibling
// list child is currently in, joins parent's child list, and parent's
// degree grows by one. child always arrives unmarked — it just became a
// child of a new parent, so it has not yet lost a child under this
// parentage.
func (h *Heap[E]) link(child, parent *Handle[E]) {
	unsplice(child)
	isolate(child)

	if parent.child == nil {
		parent.child = child
	} else {
		spliceAfter(parent.child, child)
	}

	child.parent = parent
	child.marked = false
	parent.degree++
}

// consolidate merges root trees of equal degree, using a degree-indexed
// table, until at most one root of each degree remains. It runs only at
// the end of ExtractMin, once the old minimum has already left the root
// list. Afterwards the root list and min are rebuilt from the table.
func (h *Heap[E]) consolidate() {
	table := make([]*Handle[E], degreeTableSize(h.size))

	r := h.min
	for remaining := h.roots; remaining > 0; remaining-- {
		next := r.right // captured before linking disturbs the ring

		d := r.degree
		for table[d] != nil {
			s := table[d]
			if h.cmp(s.element, r.element) < 0 {
				r, s = s, r
			}
			h.link(s, r)
			table[d] = nil
			d++
		}
		table[d] = r

		r = next
	}

	h.min = nil
	h.roots = 0
	for _, node := range table {
		if node == nil {
			continue
		}
		isolate(node)
		if h.min == nil {
			h.min = node
		} else {
			spliceAfter(h.min, node)
			if h.cmp(node.element, h.min.element) < 0 {
				h.min = node
			}
		}
		h.roots++
	}
}
