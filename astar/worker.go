package astar

import "context"

// ExpandTask represents a request from the orchestrator to the workers.
type ExpandTask[NodeType comparable] struct {
	Index         int
	FromNode      NodeType
	Neighbor      Neighbor[NodeType]
	CurrentGScore int
	HeuristicFunc Heuristic[NodeType]
}

// RelaxProposal is the worker's suggestion for updating a path
type RelaxProposal[NodeType comparable] struct {
	Index    int
	FromNode NodeType
	ToNode   NodeType
	GScore   int
	FCost    int
}

// startWorkers launches numberOfWorkers goroutines that turn tasks into
// proposals until ctx is done.
func startWorkers[NodeType comparable](
	ctx context.Context,
	numberOfWorkers int,
	tasks <-chan ExpandTask[NodeType],
	proposals chan<- RelaxProposal[NodeType],
) {
	for i := 0; i < numberOfWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-tasks:
					proposal := evaluate(task)
					select {
					case <-ctx.Done():
						return
					case proposals <- proposal:
					}
				}
			}
		}()
	}
}

func evaluate[NodeType comparable](task ExpandTask[NodeType]) RelaxProposal[NodeType] {
	tentativeG := task.CurrentGScore + task.Neighbor.Cost
	return RelaxProposal[NodeType]{
		Index:    task.Index,
		FromNode: task.FromNode,
		ToNode:   task.Neighbor.ID,
		GScore:   tentativeG,
		FCost:    tentativeG + task.HeuristicFunc(task.Neighbor.ID),
	}
}
