// Package search implements six interchangeable state-space search
// strategies behind the core.Algorithm contract:
//
//   - AStar:        best-first search on f = g + w·h with a stable FIFO
//     tie-break and graph-search duplicate elimination that
//     permits reopening on cost improvement.
//   - Greedy:       best-first search on h alone with a hard visited set
//     (no reopening; fast, not cost-optimal).
//   - HillClimbing: steepest-descent local search that stops at the first
//     local optimum or after a step budget.
//   - Annealing:    simulated annealing with Metropolis acceptance and a
//     geometric cooling schedule.
//   - IDAStar:      iterative deepening over an f-cost bound with
//     single-move cycle avoidance.
//   - Genetic:      a generational GA over fixed-length action chromosomes
//     with elitism, tournament selection, single-point
//     crossover and point mutation.
//
// Termination, tie-breaking, duplicate-detection and stochastic-acceptance
// semantics differ deliberately between strategies; they are part of each
// strategy's contract because downstream experiments compare expansion
// counts across algorithms. Do not "fix" them to textbook variants.
//
// Determinism:
//
//   - AStar, Greedy, HillClimbing and IDAStar are fully deterministic for a
//     deterministic Problem.
//   - Annealing and Genetic consume an explicit *rand.Rand injected at
//     construction; the same seed yields byte-identical results. There is no
//     hidden time-based randomness anywhere in this package.
//
// Resource model: every Search call is single-threaded and synchronous, runs
// to completion before returning, and shares no mutable state with other
// calls. Exhausting a resource bound (frontier, steps, generations,
// temperature floor) is a normal failure Result, never an error.
//
// The Solve dispatcher routes an Options value to the matching strategy for
// callers that prefer configuration over direct construction.
package search
