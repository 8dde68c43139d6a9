package datastructure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMinHeapExtractsInRankOrder(t *testing.T) {
	rd := rand.New(rand.NewSource(42))
	for _, d := range []int{2, 4} {
		h := NewdAryHeap[int](d)
		ranks := make([]float64, 0, 500)
		for i := 0; i < 500; i++ {
			r := rd.Float64() * 100
			ranks = append(ranks, r)
			h.Insert(NewPriorityQueueNode(r, i))
		}
		sort.Float64s(ranks)

		for _, want := range ranks {
			node, err := h.ExtractMin()
			require.NoError(t, err)
			assert.Equal(t, want, node.GetRank())
		}
		assert.True(t, h.IsEmpty())
		_, err := h.ExtractMin()
		assert.ErrorIs(t, err, ErrHeapEmpty)
	}
}

func TestMinHeapTieBreakIsInsertionOrder(t *testing.T) {
	h := NewFourAryHeap[string]()
	for _, item := range []string{"a", "b", "c", "d", "e", "f"} {
		h.Insert(NewPriorityQueueNode(1.0, item))
	}
	h.Insert(NewPriorityQueueNode(0.5, "first"))

	got := make([]string, 0, 7)
	for !h.IsEmpty() {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		got = append(got, node.GetItem())
	}
	assert.Equal(t, []string{"first", "a", "b", "c", "d", "e", "f"}, got)
}

func TestMinHeapDecreaseKey(t *testing.T) {
	h := NewBinaryHeap[string]()
	a := NewPriorityQueueNode(5.0, "a")
	b := NewPriorityQueueNode(3.0, "b")
	c := NewPriorityQueueNode(4.0, "c")
	h.Insert(a)
	h.Insert(b)
	h.Insert(c)

	require.NoError(t, h.DecreaseKey(a, 1.0))
	assert.Error(t, h.DecreaseKey(c, 10.0))

	top, err := h.GetMin()
	require.NoError(t, err)
	assert.Equal(t, "a", top.GetItem())
	assert.Equal(t, 1.0, h.GetMinRank())

	_, _ = h.ExtractMin()
	assert.Error(t, h.DecreaseKey(a, 0.5), "extracted node can not be decreased")
	assert.Equal(t, 2, h.Size())
}
