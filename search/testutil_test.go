// Package search_test exercises the six strategies through the public API.
// Shared fixtures: the sliding puzzle (realistic informed-search workload)
// and a tiny corridor domain whose landscape is easy to reason about.
package search_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/searchkit/core"
	"github.com/katalvlaran/searchkit/puzzle"
)

// corridor is a line of cells 0..length; the walker starts at start and
// wants to reach goal. "RIGHT" increments, "LEFT" decrements, both bounded
// by the ends. Deliberately minimal: every strategy's control flow is
// observable without puzzle-sized state spaces.
type corridor struct {
	length int
	start  int
	goal   int
}

func (c corridor) InitialState() int { return c.start }

func (c corridor) Actions(s int) []string {
	acts := make([]string, 0, 2)
	if s > 0 {
		acts = append(acts, "LEFT")
	}
	if s < c.length {
		acts = append(acts, "RIGHT")
	}

	return acts
}

func (c corridor) Result(s int, a string) (int, error) {
	switch a {
	case "LEFT":
		if s == 0 {
			return 0, fmt.Errorf("%w: LEFT at 0", core.ErrInvalidAction)
		}

		return s - 1, nil
	case "RIGHT":
		if s == c.length {
			return 0, fmt.Errorf("%w: RIGHT at %d", core.ErrInvalidAction, s)
		}

		return s + 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", core.ErrInvalidAction, a)
	}
}

func (c corridor) StepCost(int, string, int) float64 { return 1.0 }

func (c corridor) IsGoal(s int) bool { return s == c.goal }

func (c corridor) Key(s int) int { return s }

func (c corridor) Display(s int) string { return fmt.Sprintf("cell %d", s) }

// corridorAlpha adds the complete action alphabet for the genetic strategy.
type corridorAlpha struct{ corridor }

func (corridorAlpha) Alphabet() []string { return []string{"LEFT", "RIGHT"} }

// corridorDistance is the exact remaining distance, admissible and
// consistent on the corridor.
func corridorDistance(goal int) core.Heuristic[int] {
	return func(s int) float64 { return math.Abs(float64(goal - s)) }
}

// deadEndCorridor has no goal cell at all: IsGoal is always false. Local
// strategies must report normal failure on it, never an error.
type deadEndCorridor struct{ corridor }

func (deadEndCorridor) IsGoal(int) bool { return false }

// bfsOptimalCost is the brute-force shortest unit-cost distance from the
// initial state to the nearest goal, used as ground truth for optimality
// checks on small instances. Returns +Inf when unreachable.
func bfsOptimalCost(p core.Problem[puzzle.State, puzzle.Action]) float64 {
	type entry struct {
		state puzzle.State
		depth int
	}

	start := p.InitialState()
	if p.IsGoal(start) {
		return 0
	}

	visited := map[puzzle.State]struct{}{start: {}}
	queue := []entry{{state: start, depth: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range p.Actions(cur.state) {
			next, err := p.Result(cur.state, a)
			if err != nil {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			if p.IsGoal(next) {
				return float64(cur.depth + 1)
			}
			visited[next] = struct{}{}
			queue = append(queue, entry{state: next, depth: cur.depth + 1})
		}
	}

	return math.Inf(1)
}

// oneLeftScramble builds the 3×3 instance whose initial state is the goal
// with a single LEFT blank move applied: solvable in exactly one RIGHT.
func oneLeftScramble() *puzzle.Problem {
	goal := puzzle.Goal(3)
	base, err := puzzle.New(3, "", "")
	if err != nil {
		panic(err)
	}

	scrambled, err := base.Result(goal, puzzle.Left)
	if err != nil {
		panic(err)
	}

	p, err := puzzle.New(3, scrambled, "")
	if err != nil {
		panic(err)
	}

	return p
}

// actionsOf renders a solution's action sequence for equality checks.
func actionsOf[S comparable, A comparable](res core.Result[S, A]) []A {
	if res.Solution == nil {
		return nil
	}

	return res.Solution.Actions()
}
