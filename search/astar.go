package search

import (
	"time"

	"github.com/katalvlaran/searchkit/core"
)

// AStar is weighted A* graph search: a priority frontier ordered by
// f(n) = g(n) + w·h(n) with a stable FIFO tie-break, plus a best-known-cost
// map over Problem.Key for duplicate elimination.
//
// Reopening policy: a child is pushed whenever no better-or-equal cost is
// known for its key, and a popped node is discarded only if its cost is
// already beaten. This tolerates inconsistent heuristics by re-expanding a
// key when a strictly cheaper path to it is found; it is deliberately NOT
// pure closed-list A*, because the expansion counts feed cross-algorithm
// comparisons.
//
// Optimality: for an admissible, consistent heuristic and Weight==1 the
// returned cost equals the true shortest-path cost.
//
// Complexity: O(b^d) time/space worst case for branching factor b and
// solution depth d; each frontier operation is O(log n).
type AStar[S comparable, A comparable] struct {
	heuristic core.Heuristic[S]
	weight    float64
}

// NewAStar builds weighted A* over h. weight must be ≥ 0; weight 1 is the
// admissible-optimal setting, larger values trade optimality for speed.
func NewAStar[S comparable, A comparable](h core.Heuristic[S], weight float64) *AStar[S, A] {
	return &AStar[S, A]{heuristic: h, weight: weight}
}

// Search runs weighted A* on p until a goal is popped or the frontier is
// exhausted.
func (a *AStar[S, A]) Search(p core.Problem[S, A]) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if a.heuristic == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	start := time.Now()
	root := core.NewRoot[S, A](p.InitialState())

	// f(n) = g(n) + w·h(n).
	f := func(n *core.Node[S, A]) float64 {
		return n.PathCost + a.weight*a.heuristic(n.State)
	}

	front := newFrontier[S, A](64)
	front.push(root, f(root))

	// bestG maps a state key to the best path cost recorded at expansion.
	bestG := make(map[S]float64)
	expanded := 0

	var (
		node     *core.Node[S, A]
		children []*core.Node[S, A]
		child    *core.Node[S, A]
		err      error
	)
	for !front.empty() {
		// 1) Pop the minimum-f node (earliest-inserted among equals).
		node = front.pop()

		// 2) Goal test at pop time: the first goal popped is the answer.
		if p.IsGoal(node.State) {
			return core.Result[S, A]{
				Solution:      node,
				Success:       true,
				NodesExpanded: expanded,
				Runtime:       time.Since(start),
			}, nil
		}

		// 3) Lazy deletion: skip stale entries already beaten by a
		//    better-or-equal recorded cost for the same key.
		key := p.Key(node.State)
		if g, ok := bestG[key]; ok && g <= node.PathCost {
			continue
		}

		// 4) Record this cost as best for the key and expand.
		bestG[key] = node.PathCost
		expanded++

		children, err = node.Expand(p)
		if err != nil {
			return core.Result[S, A]{}, err
		}

		// 5) Push each child unless a better-or-equal cost is already known
		//    for its key. A strictly cheaper path re-opens the key.
		for _, child = range children {
			ck := p.Key(child.State)
			if g, ok := bestG[ck]; !ok || child.PathCost < g {
				front.push(child, f(child))
			}
		}
	}

	// Frontier exhausted without reaching a goal.
	return core.Result[S, A]{
		Success:       false,
		NodesExpanded: expanded,
		Runtime:       time.Since(start),
	}, nil
}
