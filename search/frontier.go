package search

import (
	"container/heap"

	"github.com/katalvlaran/searchkit/core"
)

// frontierItem pairs a node with its priority and a monotone insertion
// counter. The counter is compared after the priority so that among
// equal-priority entries the earliest-inserted is popped first (stable FIFO
// tie-break).
type frontierItem[S comparable, A comparable] struct {
	node     *core.Node[S, A]
	priority float64
	order    uint64
}

// frontierHeap is the container/heap backing store. We use the same "lazy
// decrease-key" discipline as a classic shortest-path heap: improvements
// push duplicates and stale entries are discarded by the caller at pop time.
type frontierHeap[S comparable, A comparable] []*frontierItem[S, A]

func (h frontierHeap[S, A]) Len() int { return len(h) }

// Less orders by priority ascending, then by insertion order ascending.
func (h frontierHeap[S, A]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].order < h[j].order
}

func (h frontierHeap[S, A]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push, x must be *frontierItem.
func (h *frontierHeap[S, A]) Push(x any) { *h = append(*h, x.(*frontierItem[S, A])) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *frontierHeap[S, A]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// frontier is the ordered set of not-yet-expanded nodes. It owns the
// insertion counter, so every push is totally ordered.
type frontier[S comparable, A comparable] struct {
	heap    frontierHeap[S, A]
	counter uint64
}

// newFrontier returns an empty frontier with the given capacity hint.
func newFrontier[S comparable, A comparable](capacity int) *frontier[S, A] {
	f := &frontier[S, A]{heap: make(frontierHeap[S, A], 0, capacity)}
	heap.Init(&f.heap)

	return f
}

// push inserts n with the given priority, stamping the insertion counter.
//
// Complexity: O(log n).
func (f *frontier[S, A]) push(n *core.Node[S, A], priority float64) {
	f.counter++
	heap.Push(&f.heap, &frontierItem[S, A]{node: n, priority: priority, order: f.counter})
}

// pop removes and returns the minimum-priority node.
//
// Complexity: O(log n).
func (f *frontier[S, A]) pop() *core.Node[S, A] {
	return heap.Pop(&f.heap).(*frontierItem[S, A]).node
}

// empty reports whether no entries remain.
func (f *frontier[S, A]) empty() bool { return f.heap.Len() == 0 }
