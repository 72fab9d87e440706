package search

import (
	"math"
	"time"

	"github.com/katalvlaran/searchkit/core"
)

// IDAStar is iterative-deepening A*: repeated depth-first passes bounded by
// an f-cost threshold that starts at h(root) and grows to the minimum f
// value that exceeded the previous bound.
//
// Cycle avoidance is single-move only: a child that reproduces the parent's
// state is skipped, but no full path deduplication is performed. A found
// solution propagates immediately without exploring siblings.
//
// NodesExpanded increments once per non-pruned internal expansion, so the
// count is comparable with AStar's on the same problem. For the same
// admissible heuristic, IDAStar and AStar return equal solution costs.
//
// Memory: O(d) for solution depth d - the depth-first recursion stack plus
// the single current path, which is what makes IDA* attractive when A*'s
// frontier does not fit in memory.
type IDAStar[S comparable, A comparable] struct {
	heuristic core.Heuristic[S]
}

// NewIDAStar builds iterative-deepening A* over h.
func NewIDAStar[S comparable, A comparable](h core.Heuristic[S]) *IDAStar[S, A] {
	return &IDAStar[S, A]{heuristic: h}
}

// Search runs bounded depth-first passes with a growing f bound until a
// goal is found or no finite next bound remains.
func (ida *IDAStar[S, A]) Search(p core.Problem[S, A]) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if ida.heuristic == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	start := time.Now()
	root := core.NewRoot[S, A](p.InitialState())
	bound := ida.heuristic(root.State)
	expanded := 0

	// dfs returns the minimum f value that exceeded the bound (the next
	// bound candidate) and, when a goal is reached, the solution node.
	var dfs func(node *core.Node[S, A], g, bound float64) (float64, *core.Node[S, A], error)
	dfs = func(node *core.Node[S, A], g, bound float64) (float64, *core.Node[S, A], error) {
		// 1) Prune: report this branch's f as a candidate for the next bound.
		f := g + ida.heuristic(node.State)
		if f > bound {
			return f, nil, nil
		}

		// 2) Goal reached: signal solution found.
		if p.IsGoal(node.State) {
			return 0, node, nil
		}

		minNext := math.Inf(1)
		expanded++

		var (
			action   A
			next     S
			stepCost float64
			err      error
		)
		for _, action = range p.Actions(node.State) {
			next, err = p.Result(node.State, action)
			if err != nil {
				return 0, nil, err
			}

			// 3) Skip the action that would immediately undo the parent's
			//    move. Single-move cycle avoidance only.
			if node.Parent != nil && node.Parent.State == next {
				continue
			}

			stepCost = p.StepCost(node.State, action, next)
			child := &core.Node[S, A]{
				State:    next,
				Parent:   node,
				Action:   action,
				PathCost: g + stepCost,
				Depth:    node.Depth + 1,
			}

			t, solution, derr := dfs(child, g+stepCost, bound)
			if derr != nil {
				return 0, nil, derr
			}

			// 4) A found solution propagates immediately.
			if solution != nil {
				return 0, solution, nil
			}

			if t < minNext {
				minNext = t
			}
		}

		return minNext, nil, nil
	}

	for {
		t, solution, err := dfs(root, 0, bound)
		if err != nil {
			return core.Result[S, A]{}, err
		}

		if solution != nil {
			return core.Result[S, A]{
				Solution:      solution,
				Success:       true,
				NodesExpanded: expanded,
				Runtime:       time.Since(start),
			}, nil
		}

		// No finite candidate means a dead end with no further bound to try.
		if math.IsInf(t, 1) {
			return core.Result[S, A]{
				Success:       false,
				NodesExpanded: expanded,
				Runtime:       time.Since(start),
			}, nil
		}

		bound = t
	}
}
