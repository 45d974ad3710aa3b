package fibheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/oleiade/lane/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// subtreeSize counts node and all of its descendants.
func subtreeSize[E any](node *Handle[E]) int {
	if node == nil {
		return 0
	}
	count := 1
	if node.child != nil {
		c := node.child
		for {
			count += subtreeSize(c)
			c = c.right
			if c == node.child {
				break
			}
		}
	}
	return count
}

func fibonacci(n int) int {
	a, b := 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

// checkInvariants walks the whole forest and asserts invariants (1)-(7)
// of the heap's specification, plus the degree bound of invariant (8).
func checkInvariants[E any](t *testing.T, h *Heap[E]) {
	t.Helper()

	if h.size == 0 || h.roots == 0 || h.min == nil {
		require.Zero(t, h.size)
		require.Zero(t, h.roots)
		require.Nil(t, h.min)
		return
	}

	seenNodes := 0
	seenRoots := 0

	var walkRing func(head, parent *Handle[E])
	walkRing = func(head, parent *Handle[E]) {
		n := head
		for {
			require.True(t, n.left.right == n, "left.right must equal self")
			require.True(t, n.right.left == n, "right.left must equal self")

			if parent == nil {
				require.Nil(t, n.parent, "root must have no parent")
				seenRoots++
			} else {
				require.Same(t, parent, n.parent)
				require.LessOrEqual(t, h.cmp(parent.element, n.element), 0, "heap order violated")
			}

			if n.marked {
				require.NotNil(t, n.parent, "only non-root nodes may be marked")
			}

			require.GreaterOrEqual(t, subtreeSize[E](n), fibonacci(n.degree+2), "degree bound violated")

			seenNodes++

			if n.child != nil {
				walkRing(n.child, n)
			}

			n = n.right
			if n == head {
				break
			}
		}
	}
	walkRing(h.min, nil)

	assert.Equal(t, h.size, seenNodes)
	assert.Equal(t, h.roots, seenRoots)

	n := h.min
	for {
		require.LessOrEqual(t, h.cmp(h.min.element, n.element), 0, "min must be <= every root")
		n = n.right
		if n == h.min {
			break
		}
	}
}

func TestProperty_RandomOperationSequenceMaintainsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(20260806))
	h := NewOrdered[int]()
	var live []*Handle[int]

	for i := 0; i < 400; i++ {
		switch rng.Intn(4) {
		case 0:
			live = append(live, h.Insert(rng.Intn(10000)))
		case 1:
			if len(live) > 0 {
				idx := rng.Intn(len(live))
				delta := rng.Intn(50) + 1
				require.NoError(t, h.DecreaseKey(live[idx], live[idx].Element()-delta))
			}
		case 2:
			if !h.IsEmpty() {
				handle, ok := h.ExtractMin()
				require.True(t, ok)
				for j, candidate := range live {
					if candidate == handle {
						live = append(live[:j], live[j+1:]...)
						break
					}
				}
			}
		case 3:
			if len(live) > 0 {
				idx := rng.Intn(len(live))
				_, err := h.Delete(live[idx])
				require.NoError(t, err)
				live = append(live[:idx], live[idx+1:]...)
			}
		}

		checkInvariants(t, h)
	}
}

func TestProperty_SortOrderMatchesReferencePriorityQueue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const count = 5000

	h := NewOrdered[int64]()
	reference := lane.NewMinPriorityQueue[int64, int64]()

	var want []int64
	for i := 0; i < count; i++ {
		n := rng.Int63n(1_000_000)
		want = append(want, n)
		h.Insert(n)
		reference.Push(n, n)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	got := drain(h)
	require.Len(t, got, count)
	assert.Equal(t, want, got)

	var fromReference []int64
	for {
		value, _, ok := reference.Pop()
		if !ok {
			break
		}
		fromReference = append(fromReference, value)
	}
	assert.Equal(t, want, fromReference)
}

func TestProperty_MergeEquivalentToSequentialDrain(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	aValues := make([]int, 30)
	bValues := make([]int, 45)
	for i := range aValues {
		aValues[i] = rng.Intn(1000)
	}
	for i := range bValues {
		bValues[i] = rng.Intn(1000)
	}

	a := NewOrdered[int]()
	for _, v := range aValues {
		a.Insert(v)
	}
	b := NewOrdered[int]()
	for _, v := range bValues {
		b.Insert(v)
	}
	require.NoError(t, a.Merge(b))

	merged := drain(a)

	want := append(append([]int{}, aValues...), bValues...)
	sort.Ints(want)

	assert.Equal(t, want, merged)
}

func TestProperty_DecreaseKeyToSameValueIsNoop(t *testing.T) {
	h := NewOrdered[int]()
	for _, v := range []int{9, 4, 17, 2, 11} {
		h.Insert(v)
	}
	withSameKey := drain(h)

	h2 := NewOrdered[int]()
	handles := make(map[int]*Handle[int])
	for _, v := range []int{9, 4, 17, 2, 11} {
		handles[v] = h2.Insert(v)
	}
	require.NoError(t, h2.DecreaseKey(handles[17], 17))
	assert.Equal(t, withSameKey, drain(h2))
}

func TestProperty_DeleteEquivalentToSkippingElementWhileDraining(t *testing.T) {
	values := []int{30, 10, 50, 20, 40, 60, 5}

	h := NewOrdered[int]()
	handles := make([]*Handle[int], len(values))
	for i, v := range values {
		handles[i] = h.Insert(v)
	}
	_, err := h.Delete(handles[2]) // the element holding 50
	require.NoError(t, err)

	got := drain(h)

	var want []int
	for i, v := range values {
		if i == 2 {
			continue
		}
		want = append(want, v)
	}
	sort.Ints(want)

	assert.Equal(t, want, got)
}
