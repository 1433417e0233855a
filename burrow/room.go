package burrow

import "fmt"

const (
	// RoomCount is the number of rooms, one per amphipod kind.
	RoomCount = 4
	// MaxDepth is the deepest supported room.
	MaxDepth = 4
)

// Room is a stack of cells reachable only from its open end. Index 0 is the
// closed end and depth-1 the cell next to the hallway.
type Room struct {
	cells [MaxDepth]Amphipod
	depth uint8
}

// NewRoom returns an empty room of the given depth.
func NewRoom(depth int) Room {
	if depth < 1 || depth > MaxDepth {
		panic(fmt.Sprintf("burrow: room depth %d out of range", depth))
	}
	return Room{depth: uint8(depth)}
}

// Depth is the number of cells of r.
func (r Room) Depth() int { return int(r.depth) }

// Len is the number of amphipods in r.
func (r Room) Len() int {
	n := 0
	for _, a := range r.cells[:r.depth] {
		if a != None {
			n++
		}
	}
	return n
}

// Cells returns the cells of r from the closed end to the open end.
func (r Room) Cells() []Amphipod {
	cells := make([]Amphipod, r.depth)
	copy(cells, r.cells[:r.depth])
	return cells
}

// IsSettled reports whether every amphipod in r is of kind a. Empty rooms are settled.
func (r Room) IsSettled(a Amphipod) bool {
	for _, c := range r.cells[:r.depth] {
		if c != None && c != a {
			return false
		}
	}
	return true
}

// Leave removes the amphipod closest to the hallway and returns it with the
// steps needed to reach the hallway. ok is false when r is empty.
func (r *Room) Leave() (a Amphipod, steps Steps, ok bool) {
	for i := int(r.depth) - 1; i >= 0; i-- {
		if r.cells[i] != None {
			a = r.cells[i]
			r.cells[i] = None
			return a, Steps(int(r.depth) - i), true
		}
	}
	return None, 0, false
}

// Occupy puts a in the deepest free cell and returns the steps from the
// hallway to that cell. Occupying a full room is a programming error.
func (r *Room) Occupy(a Amphipod) Steps {
	for i := 0; i < int(r.depth); i++ {
		if r.cells[i] == None {
			r.cells[i] = a
			return Steps(int(r.depth) - i)
		}
	}
	panic("burrow: room full")
}
