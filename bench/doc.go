// Package bench orchestrates batch experiments over the puzzle domain: it
// scrambles reproducible problem instances, runs a configured set of
// algorithm presets against them, and reports one CSV row per run.
//
// The preset catalog (Build) names algorithm+heuristic pairings such as
// "astar_manhattan" or "sa_manhattan"; the same catalog backs the CLI and
// the HTTP surface so every entry point agrees on what a name means.
//
// Independent runs execute concurrently on a worker pool. This is safe by
// the core's resource model: a Search call shares nothing mutable, and the
// heuristic tables are read-only. Output ordering is deterministic (rows
// are indexed by job, not by completion order), so two Run calls with the
// same Config produce identical CSV files modulo the runtime column.
package bench
