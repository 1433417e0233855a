package burrow

import "errors"

var (
	// ErrMalformedLayout indicates the textual layout does not describe a burrow.
	ErrMalformedLayout = errors.New("burrow: malformed layout")
	// ErrUnknownAmphipod indicates a cell holds something other than A, B, C, D or '.'.
	ErrUnknownAmphipod = errors.New("burrow: unknown amphipod")
	// ErrUnsupportedDepth indicates rooms are neither 2 nor 4 cells deep.
	ErrUnsupportedDepth = errors.New("burrow: unsupported room depth")
	// ErrNotUnfoldable indicates Unfold was called on something other than a fresh depth-2 burrow.
	ErrNotUnfoldable = errors.New("burrow: only a full depth-2 burrow with an empty hallway can be unfolded")
	// ErrNotAdjacent indicates two states of a path are not one legal move apart.
	ErrNotAdjacent = errors.New("burrow: states are not one move apart")
	// ErrNoSolution indicates the search exhausted every reachable state.
	ErrNoSolution = errors.New("burrow: no solution found")
)
