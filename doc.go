// Package searchkit is a generic heuristic state-space search toolkit:
// plug in a transition problem and a heuristic, pick a strategy, and get
// back a minimum-cost (or best-effort) action sequence.
//
// 🚀 What is searchkit?
//
//	A small, strongly-typed library that brings together:
//		• Core contracts: Problem, Node, Result, Agent - one surface for every domain
//		• Informed search: A* (weighted, with reopening), Greedy Best-First, IDA*
//		• Local search: steepest-descent Hill Climbing, Simulated Annealing
//		• Evolutionary search: a Genetic Algorithm over action chromosomes
//		• A sliding-tile puzzle domain with Misplaced-Tiles, Manhattan and
//		  Linear-Conflict heuristics
//		• Batch experiment orchestration with CSV reporting and an HTTP endpoint
//
// ✨ Why choose searchkit?
//
//   - Deterministic - stochastic strategies take an explicit seedable RNG
//   - Comparable - every strategy reports the same Result record
//     (expansions, runtime, iterations, solution cost)
//   - Extensible - any domain implementing core.Problem plugs into all
//     six strategies uninvasively
//   - Pure Go core - no cgo; third-party deps only at the tool boundary
//
// Everything is organized under focused subpackages:
//
//	core/    — Problem, Node, Result, Agent and Heuristic contracts
//	search/  — the six search strategies plus a unified Solve dispatcher
//	puzzle/  — the sliding-tile domain and its heuristics
//	bench/   — batch experiments, algorithm catalog, CSV reports
//	httpapi/ — a minimal solve-over-HTTP surface
//	cmd/     — the searchkit command-line runner
//
// Quick example:
//
//	p, _ := puzzle.NewScrambled(3, 20, nil)
//	h := puzzle.ManhattanDistance(p.GoalState(), p.Size())
//	res, err := search.Solve[puzzle.State, puzzle.Action](p, h, search.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Success, res.Cost(), res.NodesExpanded)
//
// See each subpackage's doc.go for contracts, complexity notes and examples.
package searchkit
