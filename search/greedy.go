package search

import (
	"time"

	"github.com/katalvlaran/searchkit/core"
)

// Greedy is greedy best-first search: the frontier is ordered purely by
// h(state) with insertion-order tie-breaking, and a hard visited set over
// Problem.Key guarantees each key is expanded at most once.
//
// No reopening: once a key is popped it stays visited even if a cheaper
// path to it is discovered later, so the returned solution is generally not
// cost-optimal. The goal test happens at pop time, after the visited check,
// so a goal reached via a worse path than an earlier visit is never
// re-reported.
//
// Complexity: O(n log n) frontier operations over n generated nodes.
type Greedy[S comparable, A comparable] struct {
	heuristic core.Heuristic[S]
}

// NewGreedy builds greedy best-first search over h.
func NewGreedy[S comparable, A comparable](h core.Heuristic[S]) *Greedy[S, A] {
	return &Greedy[S, A]{heuristic: h}
}

// Search runs greedy best-first search on p until a goal is popped or the
// frontier is exhausted.
func (gr *Greedy[S, A]) Search(p core.Problem[S, A]) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if gr.heuristic == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	start := time.Now()
	root := core.NewRoot[S, A](p.InitialState())

	front := newFrontier[S, A](64)
	front.push(root, gr.heuristic(root.State))

	visited := make(map[S]struct{})
	expanded := 0

	var (
		node     *core.Node[S, A]
		children []*core.Node[S, A]
		child    *core.Node[S, A]
		err      error
	)
	for !front.empty() {
		// 1) Pop the minimum-h node (earliest-inserted among equals).
		node = front.pop()
		key := p.Key(node.State)

		// 2) Hard dedup: a key is expanded at most once, ever.
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = struct{}{}

		// 3) Goal test after the visited check.
		if p.IsGoal(node.State) {
			return core.Result[S, A]{
				Solution:      node,
				Success:       true,
				NodesExpanded: expanded,
				Runtime:       time.Since(start),
			}, nil
		}

		expanded++

		children, err = node.Expand(p)
		if err != nil {
			return core.Result[S, A]{}, err
		}

		// 4) Push unvisited children ordered by h alone.
		for _, child = range children {
			if _, seen := visited[p.Key(child.State)]; !seen {
				front.push(child, gr.heuristic(child.State))
			}
		}
	}

	return core.Result[S, A]{
		Success:       false,
		NodesExpanded: expanded,
		Runtime:       time.Since(start),
	}, nil
}
