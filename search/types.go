package search

import "errors"

// Sentinel errors returned by the strategy constructors and the dispatcher.
var (
	// ErrNilProblem indicates that a nil Problem was passed to Search/Solve.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilHeuristic indicates that a strategy was built without a heuristic.
	ErrNilHeuristic = errors.New("search: heuristic is nil")

	// ErrUnknownAlgorithm indicates that Options.Algo does not name a
	// supported strategy.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrNoAlphabet indicates that the genetic strategy was given a Problem
	// that does not expose a complete action alphabet (core.Alphabet).
	ErrNoAlphabet = errors.New("search: problem exposes no action alphabet")
)

// Algo selects a strategy for the Solve dispatcher.
type Algo int

const (
	// AlgoAStar routes to weighted A* (default).
	AlgoAStar Algo = iota

	// AlgoGreedy routes to greedy best-first search.
	AlgoGreedy

	// AlgoHillClimbing routes to steepest-descent hill climbing.
	AlgoHillClimbing

	// AlgoAnnealing routes to simulated annealing.
	AlgoAnnealing

	// AlgoIDAStar routes to iterative-deepening A*.
	AlgoIDAStar

	// AlgoGenetic routes to the genetic algorithm.
	AlgoGenetic
)

// String returns the canonical lower-case name of the strategy.
func (a Algo) String() string {
	switch a {
	case AlgoAStar:
		return "astar"
	case AlgoGreedy:
		return "greedy"
	case AlgoHillClimbing:
		return "hill_climbing"
	case AlgoAnnealing:
		return "annealing"
	case AlgoIDAStar:
		return "idastar"
	case AlgoGenetic:
		return "genetic"
	default:
		return "unknown"
	}
}

// Options configures the Solve dispatcher. Each strategy reads only the
// fields it documents; numeric parameters are assumed valid on entry
// (out-of-range values are a caller contract violation, not defended
// against inside the strategies).
//
// Seed feeds the stochastic strategies (Annealing, Genetic); seed 0 selects
// a fixed default stream so results stay reproducible by default.
type Options struct {
	Algo Algo // strategy selector

	Weight float64 // AStar: heuristic weight w in f = g + w·h (≥ 0)

	MaxSteps int // HillClimbing: outer-loop step budget

	InitialTemp float64 // Annealing: starting temperature T0 (> 0)
	Cooling     float64 // Annealing: geometric cooling factor alpha (0 < alpha < 1)
	AnnealSteps int     // Annealing: outer-loop step budget

	PopulationSize   int     // Genetic: individuals per generation (> 1)
	MutationRate     float64 // Genetic: per-child point-mutation probability
	MaxGenerations   int     // Genetic: generation budget
	ChromosomeLength int     // Genetic: genes per chromosome (≥ 2)

	Seed int64 // RNG seed for stochastic strategies (0 ⇒ fixed default)
}

// DefaultOptions returns the canonical configuration: A* with weight 1 and
// the historical defaults for every local/evolutionary strategy.
func DefaultOptions() Options {
	return Options{
		Algo:             AlgoAStar,
		Weight:           1.0,
		MaxSteps:         1000,
		InitialTemp:      10.0,
		Cooling:          0.99,
		AnnealSteps:      5000,
		PopulationSize:   50,
		MutationRate:     0.1,
		MaxGenerations:   100,
		ChromosomeLength: 30,
		Seed:             0,
	}
}
