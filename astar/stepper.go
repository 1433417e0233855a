package astar

import (
	"container/heap"
	"context"

	"github.com/pdrpinto/amphipod/internal"
	"github.com/sirupsen/logrus"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[NodeType comparable] struct {
	Current     NodeType
	GScore      int
	FCost       int
	OpenCount   int
	ClosedCount int
	Done        bool
	Found       bool
	Path        []NodeType
	StepIndex   int
}

// Stepper provides a step-by-step orchestrator over the heuristic workers
type Stepper[NodeType comparable] struct {
	ctx       context.Context
	cancel    context.CancelFunc
	graph     Graph[NodeType]
	start     NodeType
	heuristic Heuristic[NodeType]
	goal      Goal[NodeType]
	workers   int
	logger    logrus.FieldLogger
	progress  int

	openSet    PriorityQueue[NodeType]
	openSetMap map[NodeType]*PriorityQueueItem[NodeType]
	closedSet  map[NodeType]bool
	cameFrom   map[NodeType]NodeType
	gScore     map[NodeType]int

	expandCh chan ExpandTask[NodeType]
	relaxCh  chan RelaxProposal[NodeType]

	sequence  int
	stepCount int
	done      bool
	final     StepSnapshot[NodeType]
}

// NewStepper creates a new stepper. Close must be called to release its workers.
func NewStepper[NodeType comparable](
	parent context.Context,
	graph Graph[NodeType],
	startNode NodeType,
	heuristic Heuristic[NodeType],
	goal Goal[NodeType],
	options ...Option,
) *Stepper[NodeType] {
	opts := buildOptions(options)

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper[NodeType]{
		ctx: ctx, cancel: cancel,
		graph: graph, start: startNode, heuristic: heuristic, goal: goal,
		workers:    opts.NumberOfWorkers,
		logger:     opts.Logger,
		progress:   opts.ProgressInterval,
		openSet:    make(PriorityQueue[NodeType], 0),
		openSetMap: make(map[NodeType]*PriorityQueueItem[NodeType]),
		closedSet:  make(map[NodeType]bool),
		cameFrom:   make(map[NodeType]NodeType),
		gScore:     map[NodeType]int{startNode: 0},
	}

	heap.Init(&s.openSet)
	s.push(startNode, 0, heuristic(startNode))

	if s.workers > 1 {
		s.expandCh = make(chan ExpandTask[NodeType])
		s.relaxCh = make(chan RelaxProposal[NodeType])
		startWorkers[NodeType](ctx, s.workers, s.expandCh, s.relaxCh)
	}

	return s
}

// Close stops the workers
func (s *Stepper[NodeType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one node expansion and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper[NodeType]) Step() (StepSnapshot[NodeType], error) {
	if s.done {
		return s.final, nil
	}
	if err := s.ctx.Err(); err != nil {
		return s.finish(StepSnapshot[NodeType]{}), err
	}

	var currentItem *PriorityQueueItem[NodeType]
	for currentItem == nil {
		if s.openSet.Len() == 0 {
			return s.finish(StepSnapshot[NodeType]{}), nil
		}
		item := heap.Pop(&s.openSet).(*PriorityQueueItem[NodeType])
		delete(s.openSetMap, item.Node)
		if s.closedSet[item.Node] {
			continue
		}
		currentItem = item
	}

	s.stepCount++
	current := currentItem.Node
	s.closedSet[current] = true

	if s.goal(current) {
		return s.finish(StepSnapshot[NodeType]{
			Current: current,
			GScore:  currentItem.GScore,
			FCost:   currentItem.FCost,
			Found:   true,
			Path:    internal.ReconstructPath(s.cameFrom, current, s.start),
		}), nil
	}

	proposals, err := s.expand(current, currentItem.GScore)
	if err != nil {
		return s.finish(StepSnapshot[NodeType]{Current: current}), err
	}
	for _, p := range proposals {
		s.relax(p)
	}

	if s.progress > 0 && s.stepCount%s.progress == 0 {
		s.logger.WithFields(logrus.Fields{
			"expanded": s.stepCount,
			"open":     len(s.openSetMap),
			"g":        currentItem.GScore,
			"f":        currentItem.FCost,
		}).Debug("search progress")
	}

	return StepSnapshot[NodeType]{
		Current:     current,
		GScore:      currentItem.GScore,
		FCost:       currentItem.FCost,
		OpenCount:   len(s.openSetMap),
		ClosedCount: len(s.closedSet),
		StepIndex:   s.stepCount,
	}, nil
}

// expand evaluates every neighbor of current and returns the proposals in
// neighbor order, whatever order the workers finish in.
func (s *Stepper[NodeType]) expand(current NodeType, gScore int) ([]RelaxProposal[NodeType], error) {
	neighbors := s.graph.Neighbors(current)
	proposals := make([]RelaxProposal[NodeType], len(neighbors))

	if s.workers <= 1 {
		for i, nb := range neighbors {
			proposals[i] = evaluate(ExpandTask[NodeType]{
				Index:         i,
				FromNode:      current,
				Neighbor:      nb,
				CurrentGScore: gScore,
				HeuristicFunc: s.heuristic,
			})
		}
		return proposals, nil
	}

	go func() {
		for i, nb := range neighbors {
			task := ExpandTask[NodeType]{
				Index:         i,
				FromNode:      current,
				Neighbor:      nb,
				CurrentGScore: gScore,
				HeuristicFunc: s.heuristic,
			}
			select {
			case <-s.ctx.Done():
				return
			case s.expandCh <- task:
			}
		}
	}()

	for i := 0; i < len(neighbors); i++ {
		select {
		case <-s.ctx.Done():
			return nil, s.ctx.Err()
		case p := <-s.relaxCh:
			proposals[p.Index] = p
		}
	}
	return proposals, nil
}

// relax records p if it improves the best known cost of its target. A closed
// node reached more cheaply is reopened, which keeps results optimal for
// admissible heuristics that are not consistent.
func (s *Stepper[NodeType]) relax(p RelaxProposal[NodeType]) {
	if gPrev, ok := s.gScore[p.ToNode]; ok && p.GScore >= gPrev {
		return
	}
	s.gScore[p.ToNode] = p.GScore
	s.cameFrom[p.ToNode] = p.FromNode
	delete(s.closedSet, p.ToNode)

	if it, inOpen := s.openSetMap[p.ToNode]; inOpen {
		it.GScore = p.GScore
		it.FCost = p.FCost
		heap.Fix(&s.openSet, it.IndexInQueue)
		return
	}
	s.push(p.ToNode, p.GScore, p.FCost)
}

func (s *Stepper[NodeType]) push(node NodeType, gScore, fCost int) {
	item := &PriorityQueueItem[NodeType]{
		Node:     node,
		GScore:   gScore,
		FCost:    fCost,
		Sequence: s.sequence,
	}
	s.sequence++
	heap.Push(&s.openSet, item)
	s.openSetMap[node] = item
}

// finish marks the search as done and fills in the bookkeeping fields of
// the final snapshot.
func (s *Stepper[NodeType]) finish(snapshot StepSnapshot[NodeType]) StepSnapshot[NodeType] {
	s.done = true
	snapshot.Done = true
	snapshot.OpenCount = len(s.openSetMap)
	snapshot.ClosedCount = len(s.closedSet)
	snapshot.StepIndex = s.stepCount
	s.final = snapshot
	return snapshot
}
