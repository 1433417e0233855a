package burrow

// Burrow is a complete puzzle state. It is a comparable value: == compares
// states structurally and a Burrow can be used as a map key.
type Burrow struct {
	hallway Hallway
	rooms   [RoomCount]Room
}

// Successor is a state one move away and the energy that move takes.
type Successor struct {
	Burrow Burrow
	Cost   int
}

// New returns an empty burrow whose rooms are depth cells deep.
func New(depth int) Burrow {
	var b Burrow
	for i := range b.rooms {
		b.rooms[i] = NewRoom(depth)
	}
	return b
}

// Depth is the depth of every room of b.
func (b Burrow) Depth() int { return b.rooms[0].Depth() }

// Hallway returns a copy of the hallway.
func (b Burrow) Hallway() Hallway { return b.hallway }

// Room returns a copy of room i.
func (b Burrow) Room(i int) Room { return b.rooms[i] }

// Census counts the amphipods of each kind across hallway and rooms.
func (b Burrow) Census() map[Amphipod]int {
	census := make(map[Amphipod]int, RoomCount)
	for _, unit := range b.hallway.Occupied() {
		census[unit.Amphipod]++
	}
	for _, room := range b.rooms {
		for _, a := range room.Cells() {
			if a != None {
				census[a]++
			}
		}
	}
	return census
}

// needsEviction reports whether room i still holds amphipods of another kind.
func (b *Burrow) needsEviction(i int) bool {
	return !b.rooms[i].IsSettled(Kinds[i])
}

// Successors lists every state reachable with one legal move: the top
// amphipod of an unsettled room stepping out to a hallway cell, or a hallway
// amphipod walking into its settled home room. Evictions come first, by room
// then by walk order, followed by homecomings by hallway position.
func (b Burrow) Successors() []Successor {
	var successors []Successor

	for i := range b.rooms {
		if !b.needsEviction(i) {
			continue
		}
		for _, walk := range b.hallway.ReachableFrom(RoomEntrances[i]) {
			if IsEntrance(walk.Position) {
				continue
			}
			successors = append(successors, b.moveToHallway(i, walk))
		}
	}

	for _, unit := range b.hallway.Occupied() {
		if !b.rooms[unit.Amphipod.RoomIndex()].IsSettled(unit.Amphipod) {
			continue
		}
		walk, ok := b.hallway.walkTo(unit.Position, unit.Amphipod.Entrance())
		if !ok {
			continue
		}
		successors = append(successors, b.moveToRoom(unit.Position, walk))
	}

	return successors
}

// moveToHallway evicts the top amphipod of room i and walks it along walk.
func (b Burrow) moveToHallway(i int, walk Walk) Successor {
	next := b
	a, leaveSteps, ok := next.rooms[i].Leave()
	if !ok {
		panic("burrow: evicting from an empty room")
	}
	next.hallway.Occupy(walk.Position, a)
	return Successor{Burrow: next, Cost: a.StepCost(leaveSteps + walk.Steps)}
}

// moveToRoom walks the amphipod at start along walk and into its home room.
func (b Burrow) moveToRoom(start int, walk Walk) Successor {
	next := b
	a := next.hallway.Leave(start)
	if a == None {
		panic("burrow: no amphipod to move home")
	}
	enterSteps := next.rooms[a.RoomIndex()].Occupy(a)
	return Successor{Burrow: next, Cost: a.StepCost(walk.Steps + enterSteps)}
}

// IsSolved reports whether every amphipod is home.
func (b Burrow) IsSolved() bool {
	return b.EstimatedCost() == 0
}
