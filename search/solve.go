// Package search - unified dispatcher for the search strategies.
//
// Solve is the canonical configuration-driven entry point: it validates the
// shared inputs, routes Options.Algo to the matching strategy, and threads a
// deterministic RNG (derived from Options.Seed) into the stochastic ones.
// Callers that prefer direct construction use the New* constructors and the
// core.Algorithm contract instead; both paths produce identical results.
package search

import "github.com/katalvlaran/searchkit/core"

// Solve routes p and h to the strategy selected by opts.Algo.
//
// Contracts:
//   - p and h must be non-nil.
//   - Numeric fields of opts are assumed valid per the Options docs.
//   - AlgoGenetic additionally requires p to implement core.Alphabet.
//
// Errors: ErrNilProblem, ErrNilHeuristic, ErrUnknownAlgorithm, ErrNoAlphabet
// and any Problem error surfaced during the run.
func Solve[S comparable, A comparable](p core.Problem[S, A], h core.Heuristic[S], opts Options) (core.Result[S, A], error) {
	if p == nil {
		return core.Result[S, A]{}, ErrNilProblem
	}
	if h == nil {
		return core.Result[S, A]{}, ErrNilHeuristic
	}

	switch opts.Algo {
	case AlgoAStar:
		return NewAStar[S, A](h, opts.Weight).Search(p)

	case AlgoGreedy:
		return NewGreedy[S, A](h).Search(p)

	case AlgoHillClimbing:
		return NewHillClimbing[S, A](h, opts.MaxSteps).Search(p)

	case AlgoAnnealing:
		return NewAnnealing[S, A](h, opts.InitialTemp, opts.Cooling, opts.AnnealSteps, rngFromSeed(opts.Seed)).Search(p)

	case AlgoIDAStar:
		return NewIDAStar[S, A](h).Search(p)

	case AlgoGenetic:
		cfg := GeneticConfig{
			PopulationSize:   opts.PopulationSize,
			MutationRate:     opts.MutationRate,
			MaxGenerations:   opts.MaxGenerations,
			ChromosomeLength: opts.ChromosomeLength,
		}

		return NewGenetic[S, A](h, cfg, rngFromSeed(opts.Seed)).Search(p)

	default:
		return core.Result[S, A]{}, ErrUnknownAlgorithm
	}
}
