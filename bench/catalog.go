package bench

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/searchkit/core"
	"github.com/katalvlaran/searchkit/puzzle"
	"github.com/katalvlaran/searchkit/search"
)

// ErrUnknownPreset indicates that a preset name is not in the catalog.
var ErrUnknownPreset = errors.New("bench: unknown algorithm preset")

// Presets returns the catalog names in canonical order.
func Presets() []string {
	return []string{
		"astar_misplaced",
		"astar_manhattan",
		"astar_weighted",
		"astar_linear",
		"idastar_manhattan",
		"idastar_linear",
		"greedy_manhattan",
		"hill_climbing_manhattan",
		"sa_manhattan",
		"genetic_manhattan",
	}
}

// Build resolves a preset name into a ready-to-run algorithm for p. The
// seed feeds the stochastic presets; deterministic presets ignore it.
//
// Errors: ErrUnknownPreset (wrapped with the offending name).
func Build(name string, p *puzzle.Problem, seed int64) (core.Algorithm[puzzle.State, puzzle.Action], error) {
	goal, size := p.GoalState(), p.Size()
	opts := search.DefaultOptions()

	switch name {
	case "astar_misplaced":
		return search.NewAStar[puzzle.State, puzzle.Action](puzzle.MisplacedTiles(goal), 1.0), nil

	case "astar_manhattan":
		return search.NewAStar[puzzle.State, puzzle.Action](puzzle.ManhattanDistance(goal, size), 1.0), nil

	case "astar_weighted":
		return search.NewAStar[puzzle.State, puzzle.Action](puzzle.ManhattanDistance(goal, size), 1.5), nil

	case "astar_linear":
		return search.NewAStar[puzzle.State, puzzle.Action](puzzle.LinearConflict(goal, size), 1.0), nil

	case "idastar_manhattan":
		return search.NewIDAStar[puzzle.State, puzzle.Action](puzzle.ManhattanDistance(goal, size)), nil

	case "idastar_linear":
		return search.NewIDAStar[puzzle.State, puzzle.Action](puzzle.LinearConflict(goal, size)), nil

	case "greedy_manhattan":
		return search.NewGreedy[puzzle.State, puzzle.Action](puzzle.ManhattanDistance(goal, size)), nil

	case "hill_climbing_manhattan":
		return search.NewHillClimbing[puzzle.State, puzzle.Action](puzzle.ManhattanDistance(goal, size), 2000), nil

	case "sa_manhattan":
		return search.NewAnnealing[puzzle.State, puzzle.Action](
			puzzle.ManhattanDistance(goal, size),
			opts.InitialTemp, opts.Cooling, opts.AnnealSteps,
			seededRNG(seed),
		), nil

	case "genetic_manhattan":
		return search.NewGenetic[puzzle.State, puzzle.Action](
			puzzle.ManhattanDistance(goal, size),
			search.DefaultGeneticConfig(),
			seededRNG(seed),
		), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// seededRNG mirrors the search package's seed policy: 0 selects a fixed
// default stream so unseeded runs stay reproducible.
func seededRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}

	return rand.New(rand.NewSource(seed))
}
