package main

import (
	"fmt"
	"io"

	"github.com/google/btree"
	fibheap "github.com/klaidoshka/fibonacci-heap"
)

// rankedRoot pairs a root handle with the information a btree needs to
// produce a stable, degree-ordered walk: ties on degree keep their
// original root-list position instead of being reshuffled.
type rankedRoot[E any] struct {
	degree int
	order  int
	handle *fibheap.Handle[E]
}

func rootsByDegree[E any](h *fibheap.Heap[E]) []*fibheap.Handle[E] {
	roots := h.Roots()

	tree := btree.NewG(2, func(a, b rankedRoot[E]) bool {
		if a.degree != b.degree {
			return a.degree < b.degree
		}
		return a.order < b.order
	})
	for i, r := range roots {
		tree.ReplaceOrInsert(rankedRoot[E]{degree: r.Degree(), order: i, handle: r})
	}

	ordered := make([]*fibheap.Handle[E], 0, len(roots))
	tree.Ascend(func(item rankedRoot[E]) bool {
		ordered = append(ordered, item.handle)
		return true
	})
	return ordered
}

// display walks the forest in degree order and prints each node's
// advisory representation indented by its depth in the tree. It reads
// heap state only through IsEmpty, Roots, Degree, Children, and String and never mutates
// anything — the contract spec.md §6 grants the display collaborator.
func display[E any](w io.Writer, h *fibheap.Heap[E]) {
	if h.IsEmpty() {
		fmt.Fprintln(w, "  -> HEAP IS EMPTY")
		return
	}

	for _, root := range rootsByDegree(h) {
		displayNode(w, root, " ")
	}
}

func displayNode[E any](w io.Writer, node *fibheap.Handle[E], prefix string) {
	fmt.Fprintf(w, "%s -> %s\n", prefix, node.String())
	for _, child := range node.Children() {
		displayNode(w, child, prefix+"   ")
	}
}
