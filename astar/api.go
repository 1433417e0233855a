package astar

import (
	"context"
	"errors"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
)

// ErrNoPath is returned when the frontier is exhausted without reaching a goal.
var ErrNoPath = errors.New("astar: no path found")

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) []Neighbor[NodeType]
}

// GraphFunc adapts a plain successor function to Graph.
type GraphFunc[NodeType comparable] func(node NodeType) []Neighbor[NodeType]

// Neighbors calls f(node).
func (f GraphFunc[NodeType]) Neighbors(node NodeType) []Neighbor[NodeType] { return f(node) }

// Neighbor represents a reachable node with the cost of the move leading to it.
type Neighbor[NodeType comparable] struct {
	ID   NodeType
	Cost int
}

// Heuristic returns a lower bound of the remaining cost from node to any goal.
type Heuristic[NodeType comparable] func(node NodeType) int

// Goal reports whether node ends the search.
type Goal[NodeType comparable] func(node NodeType) bool

// Result contains the outcome of a search
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers  int
	Logger           logrus.FieldLogger
	ProgressInterval int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many worker goroutines evaluate the heuristic of
// expanded neighbors. Values below 2 evaluate inline on the orchestrator.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithLogger routes progress and completion messages to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(options *Options) { options.Logger = logger }
}

// WithProgressInterval logs a progress line at debug level every n expansions.
// Zero disables progress lines.
func WithProgressInterval(n int) Option {
	return func(options *Options) { options.ProgressInterval = n }
}

func defaultOptions() Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return Options{
		NumberOfWorkers:  runtime.NumCPU(),
		Logger:           discard,
		ProgressInterval: 10000,
	}
}

func buildOptions(options []Option) Options {
	searchOptions := defaultOptions()
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = defaultOptions().Logger
	}
	return searchOptions
}

// Search runs A* from startNode until goal accepts a popped node.
//
// heuristic must never overestimate the remaining cost for the returned total
// to be minimal. On an exhausted frontier the error is ErrNoPath and Found is
// false; on cancellation it is ctx.Err().
func Search[NodeType comparable](
	contextObject context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	heuristic Heuristic[NodeType],
	goal Goal[NodeType],
	options ...Option,
) (Result[NodeType], error) {
	searchOptions := buildOptions(options)
	stepper := NewStepper(contextObject, graph, startNode, heuristic, goal, options...)
	defer stepper.Close()

	for {
		snapshot, err := stepper.Step()
		if err != nil {
			return Result[NodeType]{ExpandedNodes: snapshot.StepIndex}, err
		}
		if !snapshot.Done {
			continue
		}

		logger := searchOptions.Logger.WithField("expanded", snapshot.StepIndex)
		if !snapshot.Found {
			logger.Debug("frontier exhausted")
			return Result[NodeType]{
				Path:          nil,
				TotalCost:     0,
				ExpandedNodes: snapshot.StepIndex,
				Found:         false,
			}, ErrNoPath
		}

		logger.WithField("cost", snapshot.GScore).Debug("goal reached")
		return Result[NodeType]{
			Path:          snapshot.Path,
			TotalCost:     snapshot.GScore,
			ExpandedNodes: snapshot.StepIndex,
			Found:         true,
		}, nil
	}
}
