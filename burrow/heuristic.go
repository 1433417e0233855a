package burrow

import "github.com/pdrpinto/amphipod/internal"

// outAndBackIn is the detour of an amphipod that must leave its own room to
// let others out: one step aside, one back, one into the room.
const outAndBackIn = 3

// EstimatedCost is a lower bound of the energy still needed to solve b. It
// ignores blocking entirely:
//
//   - every amphipod that has to leave an unsettled room pays for stepping
//     out, walking straight to its home entrance and one step in; amphipods
//     already in their own room pay outAndBackIn instead of the walk;
//   - every hallway amphipod pays the walk to its home entrance and one step in.
//
// The result is zero exactly when b is solved.
func (b Burrow) EstimatedCost() int {
	cost := 0
	for i := range b.rooms {
		if b.needsEviction(i) {
			cost += b.evictionEstimate(i)
		}
	}
	for _, unit := range b.hallway.Occupied() {
		walk := internal.AbsDiff(unit.Position, unit.Amphipod.Entrance())
		cost += unit.Amphipod.StepCost(Steps(walk + 1))
	}
	return cost
}

func (b Burrow) evictionEstimate(i int) int {
	room := b.rooms[i]
	kind := Kinds[i]
	cost := 0
	for !room.IsSettled(kind) {
		a, steps, ok := room.Leave()
		if !ok {
			panic("burrow: unsettled room is empty")
		}
		if a == kind {
			steps += outAndBackIn
		} else {
			steps += Steps(internal.AbsDiff(RoomEntrances[i], a.Entrance()) + 1)
		}
		cost += a.StepCost(steps)
	}
	return cost
}
