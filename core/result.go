package core

import (
	"math"
	"time"
)

// Result is the uniform outcome record produced by every search strategy.
// It is constructed once per Search call and immutable afterwards.
//
// Iterations counts outer-loop passes for iterative strategies (hill
// climbing, annealing, genetic generations); it stays zero for frontier
// based tree searches.
type Result[S comparable, A comparable] struct {
	// Solution is the node that reached the goal, or nil if none was found.
	Solution *Node[S, A]

	// Success reports whether a goal state was reached.
	Success bool

	// NodesExpanded counts node expansions (strategy-specific semantics;
	// see the individual strategy docs).
	NodesExpanded int

	// Runtime is the wall-clock duration of the Search call, sampled from
	// the monotonic clock at entry and exit.
	Runtime time.Duration

	// Iterations counts outer-loop passes for iterative strategies.
	Iterations int
}

// Path returns the root-to-goal node sequence, or an empty slice when no
// solution was found.
func (r Result[S, A]) Path() []*Node[S, A] {
	if r.Solution == nil {
		return []*Node[S, A]{}
	}

	return r.Solution.Path()
}

// Cost returns the path cost of the solution, or +Inf when no solution was
// found.
func (r Result[S, A]) Cost() float64 {
	if r.Solution == nil {
		return math.Inf(1)
	}

	return r.Solution.PathCost
}
