package search

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/searchkit/core"
)

// temperatureFloor is the near-zero temperature below which annealing stops:
// acceptance probabilities underflow to zero there anyway.
const temperatureFloor = 1e-8

// Annealing is simulated annealing: a random walk over single actions with
// Metropolis acceptance. An improving move (Δh < 0) is always taken; a
// worsening one is taken with probability exp(-Δh/T) decided by a single
// draw. The temperature cools geometrically (T *= alpha) every iteration
// whether or not the move was taken.
//
// Every attempted transition counts toward NodesExpanded. On failure the
// explored trajectory is discarded: the Result carries a nil solution node.
//
// The RNG is an explicit dependency injected at construction; there is no
// global random state, so a fixed seed reproduces the run exactly.
type Annealing[S comparable, A comparable] struct {
	heuristic core.Heuristic[S]
	initTemp  float64
	cooling   float64
	maxSteps  int
	rng       *rand.Rand
}

// NewAnnealing builds simulated annealing over h.
//
// initTemp must be > 0 and cooling in (0, 1); both are assumed valid on
// entry. A nil rng selects the deterministic default stream (seed-0 policy).
func NewAnnealing[S comparable, A comparable](h core.Heuristic[S], initTemp, cooling float64, maxSteps int, rng *rand.Rand) *Annealing[S, A] {
	r := rng
	if r == nil {
		r = rngFromSeed(0)
	}

	return &Annealing[S, A]{
		heuristic: h,
		initTemp:  initTemp,
		cooling:   cooling,
		maxSteps:  maxSteps,
		rng:       r,
	}
}

// Search anneals from the initial state until the goal, the temperature
// floor, a dead end, or the step budget.
func (an *Annealing[S, A]) Search(p core.Problem[S, A]) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if an.heuristic == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	start := time.Now()
	current := core.NewRoot[S, A](p.InitialState())
	currentH := an.heuristic(current.State)

	temperature := an.initTemp
	expanded := 0
	iterations := 0

	var (
		actions []A
		action  A
		next    S
		child   *core.Node[S, A]
		err     error
	)
	for step := 0; step < an.maxSteps; step++ {
		iterations++

		// 1) Goal check before any move.
		if p.IsGoal(current.State) {
			return core.Result[S, A]{
				Solution:      current,
				Success:       true,
				NodesExpanded: expanded,
				Runtime:       time.Since(start),
				Iterations:    iterations,
			}, nil
		}

		// 2) Frozen system: acceptance probabilities vanish below the floor.
		if temperature <= temperatureFloor {
			break
		}

		actions = p.Actions(current.State)
		if len(actions) == 0 {
			break
		}

		// 3) Propose one uniformly random action.
		action = actions[an.rng.Intn(len(actions))]
		next, err = p.Result(current.State, action)
		if err != nil {
			return core.Result[S, A]{}, err
		}
		expanded++

		nextH := an.heuristic(next)
		delta := nextH - currentH

		// 4) Metropolis acceptance: always take an improvement, otherwise a
		//    single draw against exp(-Δ/T).
		if delta < 0 || an.rng.Float64() < math.Exp(-delta/temperature) {
			child = &core.Node[S, A]{
				State:    next,
				Parent:   current,
				Action:   action,
				PathCost: current.PathCost + p.StepCost(current.State, action, next),
				Depth:    current.Depth + 1,
			}
			current = child
			currentH = nextH
		}

		// 5) Cool every iteration, move taken or not.
		temperature *= an.cooling
	}

	// Failure discards the trajectory: no solution node is reported even
	// though a path was explored.
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
