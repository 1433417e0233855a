package internal

// ReconstructPath rebuilds the path from the cameFrom map.
// The walk stops at start, at a node without predecessor, or after visiting
// every recorded edge once, whichever comes first.
func ReconstructPath[NodeType comparable](
	cameFrom map[NodeType]NodeType,
	current NodeType,
	start NodeType,
) []NodeType {
	path := make([]NodeType, 0, 16)
	path = append(path, current)
	for current != start && len(path) <= len(cameFrom) {
		previousNode, exists := cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// AbsDiff returns |a - b|.
func AbsDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
