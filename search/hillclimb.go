package search

import (
	"time"

	"github.com/katalvlaran/searchkit/core"
)

// HillClimbing is steepest-descent local search: at every step it fully
// materializes all neighbors, moves to the one with the smallest heuristic
// value, and stops as soon as that best neighbor is not strictly better
// than the current state (local optimum) or the step budget runs out.
//
// NodesExpanded counts every neighbor generated; Iterations counts outer
// loop passes taken. Success is decided by whether the final state is the
// goal, so a run that stalls on a plateau reports failure with a nil
// solution node.
//
// Complexity: O(maxSteps · b) node generations for branching factor b.
type HillClimbing[S comparable, A comparable] struct {
	heuristic core.Heuristic[S]
	maxSteps  int
}

// NewHillClimbing builds steepest-descent hill climbing over h with the
// given step budget.
func NewHillClimbing[S comparable, A comparable](h core.Heuristic[S], maxSteps int) *HillClimbing[S, A] {
	return &HillClimbing[S, A]{heuristic: h, maxSteps: maxSteps}
}

// Search climbs from the initial state until the goal, a local optimum, a
// dead end, or the step budget.
func (hc *HillClimbing[S, A]) Search(p core.Problem[S, A]) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if hc.heuristic == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	start := time.Now()
	current := core.NewRoot[S, A](p.InitialState())
	currentH := hc.heuristic(current.State)

	expanded := 0
	iterations := 0

	var (
		neighbors []*core.Node[S, A]
		err       error
	)
	for step := 0; step < hc.maxSteps; step++ {
		iterations++

		// 1) Goal check first: an already-solved state costs no expansions.
		if p.IsGoal(current.State) {
			return core.Result[S, A]{
				Solution:      current,
				Success:       true,
				NodesExpanded: expanded,
				Runtime:       time.Since(start),
				Iterations:    iterations,
			}, nil
		}

		// 2) Materialize every neighbor; each one counts as an expansion.
		neighbors, err = current.Expand(p)
		if err != nil {
			return core.Result[S, A]{}, err
		}
		expanded += len(neighbors)

		if len(neighbors) == 0 {
			break
		}

		// 3) Steepest descent: pick the globally best neighbor among the
		//    options (first wins on ties via the strict '<').
		best := neighbors[0]
		bestH := hc.heuristic(best.State)
		for _, nb := range neighbors[1:] {
			if nh := hc.heuristic(nb.State); nh < bestH {
				best, bestH = nb, nh
			}
		}

		// 4) Stop at a local optimum: the move must strictly improve h.
		if bestH >= currentH {
			break
		}

		current = best
		currentH = bestH
	}

	// Improvement stall or budget exhaustion: success iff we happen to
	// stand on the goal.
	success := p.IsGoal(current.State)
	res := core.Result[S, A]{
		Success:       success,
		NodesExpanded: expanded,
		Runtime:       time.Since(start),
		Iterations:    iterations,
	}
	if success {
		res.Solution = current
	}

	return res, nil
}
