// Package astar provides a generic A* search over implicit state graphs.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The library is generic over node type. Nodes must be comparable: they are
// used directly as map keys, so two different move sequences that reach the
// same node are deduplicated. A single orchestrator owns the frontier while a
// small worker pool evaluates the heuristic for freshly generated neighbors.
//
// Costs are integers so that totals are exact. Ties on estimated total cost are
// broken by insertion order, which keeps results reproducible for any number of
// workers.
package astar
