// Package core defines the shared contracts every search strategy operates on:
//
//   - Problem:   the abstract transition system (initial state, action
//     enumeration, transition function, step costs, goal test).
//   - Heuristic: a pure State → float64 estimate of remaining cost.
//   - Node:      an append-only, backward-linked path element carrying the
//     accumulated path cost and depth.
//   - Result:    the uniform outcome record (solution node, success flag,
//     expansion count, wall-clock runtime, iteration count).
//   - Algorithm: the single-operation strategy contract, Search(Problem) → Result.
//   - Agent:     a thin orchestrator binding one Problem to one Algorithm.
//
// Contracts:
//
//   - Problem.Result is deterministic and total for every action yielded by
//     Problem.Actions; an action that is not valid in the given state yields
//     an error wrapping ErrInvalidAction.
//   - Problem.Actions returns a finite slice whose order is stable; depth-first
//     and greedy strategies use that order for tie-breaking.
//   - Heuristics are non-negative and side-effect-free; any precomputed tables
//     are built once at construction and treated as read-only, so a single
//     heuristic value is safe to share across concurrent Search calls on
//     independent problem instances.
//   - Nodes form a backward tree: each non-root node holds exactly one parent
//     reference and parents are never mutated after a child is created.
//
// States and actions are type parameters constrained to comparable so that
// duplicate detection can key maps directly on Problem.Key values.
package core
