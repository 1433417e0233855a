package burrow

// HallwayLength is the number of hallway cells.
const HallwayLength = 11

// RoomEntrances holds the hallway position above each room. Amphipods may
// pass these cells but never stop on them.
var RoomEntrances = [RoomCount]int{2, 4, 6, 8}

// IsEntrance reports whether position is directly above a room.
func IsEntrance(position int) bool {
	for _, entrance := range RoomEntrances {
		if entrance == position {
			return true
		}
	}
	return false
}

// Hallway is the corridor connecting the rooms.
type Hallway [HallwayLength]Amphipod

// Unit is an amphipod standing at a hallway position.
type Unit struct {
	Position int
	Amphipod Amphipod
}

// Walk is a hallway position reachable without passing anyone, and the
// number of steps it takes to get there.
type Walk struct {
	Position int
	Steps    Steps
}

// Occupy places a at position. The cell must be empty.
func (h *Hallway) Occupy(position int, a Amphipod) {
	h[position] = a
}

// Leave empties position and returns whoever stood there.
func (h *Hallway) Leave(position int) Amphipod {
	a := h[position]
	h[position] = None
	return a
}

// Occupied lists the amphipods in the hallway by ascending position.
func (h *Hallway) Occupied() []Unit {
	var units []Unit
	for position, a := range h {
		if a != None {
			units = append(units, Unit{Position: position, Amphipod: a})
		}
	}
	return units
}

// ReachableFrom lists every empty cell reachable from start, walking left
// first and then right. Each direction stops at the first occupied cell or
// at the end of the hallway. start itself is never listed.
func (h *Hallway) ReachableFrom(start int) []Walk {
	walks := make([]Walk, 0, HallwayLength-1)
	for position := start - 1; position >= 0 && h[position] == None; position-- {
		walks = append(walks, Walk{Position: position, Steps: Steps(start - position)})
	}
	for position := start + 1; position < HallwayLength && h[position] == None; position++ {
		walks = append(walks, Walk{Position: position, Steps: Steps(position - start)})
	}
	return walks
}

// walkTo returns the walk from start to target, if nobody is in the way.
func (h *Hallway) walkTo(start, target int) (Walk, bool) {
	for _, walk := range h.ReachableFrom(start) {
		if walk.Position == target {
			return walk, true
		}
	}
	return Walk{}, false
}
