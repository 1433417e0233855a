package burrow

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdrpinto/amphipod/astar"
)

// Solution is the cheapest way found to organize a burrow.
type Solution struct {
	// Path runs from the start state to the solved state, both included.
	Path []Burrow
	// Moves is the number of moves, len(Path)-1.
	Moves int
	// Cost is the total energy spent.
	Cost int
	// Expanded is the number of states the search expanded.
	Expanded int
}

// Graph exposes Burrow successors to the astar package.
var Graph = astar.GraphFunc[Burrow](func(b Burrow) []astar.Neighbor[Burrow] {
	successors := b.Successors()
	neighbors := make([]astar.Neighbor[Burrow], len(successors))
	for i, s := range successors {
		neighbors[i] = astar.Neighbor[Burrow]{ID: s.Burrow, Cost: s.Cost}
	}
	return neighbors
})

// Solve finds the cheapest sequence of moves organizing start. An exhausted
// search is reported as ErrNoSolution; it only happens for layouts that are
// not valid puzzles.
func Solve(ctx context.Context, start Burrow, opts ...astar.Option) (Solution, error) {
	res, err := astar.Search(ctx, Graph, start, Burrow.EstimatedCost, Burrow.IsSolved, opts...)
	if errors.Is(err, astar.ErrNoPath) {
		return Solution{Expanded: res.ExpandedNodes}, fmt.Errorf("%w after %d states: %w", ErrNoSolution, res.ExpandedNodes, err)
	}
	if err != nil {
		return Solution{Expanded: res.ExpandedNodes}, err
	}
	return Solution{
		Path:     res.Path,
		Moves:    len(res.Path) - 1,
		Cost:     res.TotalCost,
		Expanded: res.ExpandedNodes,
	}, nil
}

// MoveCosts returns the energy of each move along path.
func MoveCosts(path []Burrow) ([]int, error) {
	costs := make([]int, 0, len(path))
	for i := 1; i < len(path); i++ {
		cost, ok := moveCost(path[i-1], path[i])
		if !ok {
			return nil, fmt.Errorf("%w: states %d and %d", ErrNotAdjacent, i-1, i)
		}
		costs = append(costs, cost)
	}
	return costs, nil
}

func moveCost(from, to Burrow) (int, bool) {
	for _, s := range from.Successors() {
		if s.Burrow == to {
			return s.Cost, true
		}
	}
	return 0, false
}
