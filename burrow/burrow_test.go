package burrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleLayout = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

func mustParse(t *testing.T, layout string) Burrow {
	t.Helper()
	b, err := Parse(layout)
	require.NoError(t, err)
	return b
}

func evict(b Burrow, room, position int, steps Steps) Burrow {
	return b.moveToHallway(room, Walk{Position: position, Steps: steps}).Burrow
}

func home(b Burrow, start int, a Amphipod, steps Steps) Burrow {
	return b.moveToRoom(start, Walk{Position: a.Entrance(), Steps: steps}).Burrow
}

// sampleBurrow generates:
//
//	#############
//	#AA...D...DA#
//	###A#B#.#.###
//	  #D#B#C#.#
//	  #C#B#C#.#
//	  #D#B#C#.#
//	  #########
func sampleBurrow(t *testing.T) Burrow {
	b := mustParse(t, `#############
#...........#
###A#B#D#A###
  #D#B#C#D#
  #C#B#C#A#
  #D#B#C#A#
  #########`)

	b = evict(b, 3, 10, 2)
	b = evict(b, 3, 9, 1)
	b = evict(b, 3, 0, 8)
	b = evict(b, 3, 1, 7)
	b = evict(b, 2, 5, 1)
	return b
}

func TestBurrow_SampleMatchesLayout(t *testing.T) {
	expected := mustParse(t, `#############
#AA...D...DA#
###A#B#.#.###
  #D#B#C#.#
  #C#B#C#.#
  #D#B#C#.#
  #########`)
	assert.Equal(t, expected, sampleBurrow(t))
}

func TestBurrow_ParsedRooms(t *testing.T) {
	b := mustParse(t, `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #A#B#C#D#
  #A#B#C#D#
  #########`)

	expected := New(4)
	for i, cells := range [RoomCount][]Amphipod{
		{Amber, Amber, Amber, Bronze},
		{Bronze, Bronze, Desert, Copper},
		{Copper, Copper, Copper, Bronze},
		{Desert, Desert, Amber, Desert},
	} {
		for _, a := range cells {
			expected.rooms[i].Occupy(a)
		}
	}
	assert.Equal(t, expected, b)
}

func TestBurrow_RoomsNeedingEviction(t *testing.T) {
	b := sampleBurrow(t)
	var rooms []int
	for i := range b.rooms {
		if b.needsEviction(i) {
			rooms = append(rooms, i)
		}
	}
	assert.Equal(t, []int{0}, rooms)
}

func TestBurrow_Successors(t *testing.T) {
	b := sampleBurrow(t)

	assert.Equal(t, []Successor{
		{Burrow: evict(sampleBurrow(t), 0, 3, 1), Cost: 2},
		{Burrow: home(sampleBurrow(t), 5, Desert, 3), Cost: 7000},
		{Burrow: home(sampleBurrow(t), 9, Desert, 1), Cost: 5000},
	}, b.Successors())
}

func TestBurrow_SuccessorsNeverStopAboveRooms(t *testing.T) {
	for _, s := range mustParse(t, exampleLayout).Successors() {
		for _, unit := range s.Burrow.hallway.Occupied() {
			assert.False(t, IsEntrance(unit.Position), "stopped at %d", unit.Position)
		}
	}
}

func TestBurrow_InitialSuccessorCount(t *testing.T) {
	// Each of the four rooms can send its top amphipod to any of the 7 resting cells.
	assert.Len(t, mustParse(t, exampleLayout).Successors(), 4*7)
}

func TestBurrow_MoveCostAccounting(t *testing.T) {
	b := mustParse(t, `#############
#...........#
###A#C#B#D###
  #A#B#C#D#
  #########`)

	// The Bronze on top of Copper's room steps out (1) and walks to 7 (1).
	out := b.moveToHallway(2, Walk{Position: 7, Steps: 1})
	assert.Equal(t, Bronze.StepCost(1+1), out.Cost)

	// The Copper on top of Bronze's room steps out (1) and walks to 5 (1),
	// then home: walk to 6 (1) and drop to the bottom of its room (1).
	var moves []Successor
	for _, s := range out.Burrow.Successors() {
		if s.Burrow.hallway[5] == Copper {
			moves = append(moves, s)
		}
	}
	require.Len(t, moves, 1)
	assert.Equal(t, Copper.StepCost(1+1), moves[0].Cost)

	var homecomings []Successor
	for _, s := range moves[0].Burrow.Successors() {
		if s.Burrow.hallway[5] == None {
			homecomings = append(homecomings, s)
		}
	}
	require.Len(t, homecomings, 1)
	assert.Equal(t, Copper.StepCost(1+1), homecomings[0].Cost)

	// Bronze walks 3 columns from 7 to its entrance at 4 and 1 step down.
	var last []Successor
	for _, s := range homecomings[0].Burrow.Successors() {
		if s.Burrow.hallway[7] == None {
			last = append(last, s)
		}
	}
	require.Len(t, last, 1)
	assert.Equal(t, Bronze.StepCost(3+1), last[0].Cost)
	assert.True(t, last[0].Burrow.IsSolved())
}

func TestBurrow_HomecomingBlocked(t *testing.T) {
	b := New(2)
	b.hallway.Occupy(1, Desert)
	b.hallway.Occupy(3, Amber)
	b.rooms[0].Occupy(Amber)
	b.rooms[1].Occupy(Bronze)
	b.rooms[1].Occupy(Bronze)
	b.rooms[2].Occupy(Copper)
	b.rooms[2].Occupy(Copper)
	b.rooms[3].Occupy(Desert)

	// Desert at 1 is walled in by Amber at 3 until Amber goes home.
	successors := b.Successors()
	require.Len(t, successors, 1)
	assert.Equal(t, Amber.StepCost(1+1), successors[0].Cost)

	successors = successors[0].Burrow.Successors()
	require.Len(t, successors, 1)
	assert.Equal(t, Desert.StepCost(7+1), successors[0].Cost)
	assert.True(t, successors[0].Burrow.IsSolved())
}

func TestBurrow_HomecomingWaitsForSettledRoom(t *testing.T) {
	b := New(2)
	b.hallway.Occupy(10, Amber)
	b.rooms[0].Occupy(Bronze)
	b.rooms[1].Occupy(Bronze)
	b.rooms[1].Occupy(Amber)
	for _, kind := range []Amphipod{Copper, Copper, Desert, Desert} {
		b.rooms[kind.RoomIndex()].Occupy(kind)
	}

	for _, s := range b.Successors() {
		assert.Equal(t, Amber, s.Burrow.hallway[10], "Amber entered an unsettled room")
	}
}

// explore walks the state graph breadth first, visiting at most limit states.
func explore(start Burrow, limit int, visit func(Burrow)) {
	seen := map[Burrow]bool{start: true}
	queue := []Burrow{start}
	for len(queue) > 0 && len(seen) < limit {
		b := queue[0]
		queue = queue[1:]
		visit(b)
		for _, s := range b.Successors() {
			if !seen[s.Burrow] {
				seen[s.Burrow] = true
				queue = append(queue, s.Burrow)
			}
		}
	}
}

func TestBurrow_Conservation(t *testing.T) {
	for _, layout := range []string{exampleLayout, `#############
#...........#
###B#C#B#D###
  #D#C#B#A#
  #D#B#A#C#
  #A#D#C#A#
  #########`} {
		start := mustParse(t, layout)
		census := start.Census()
		visited := 0
		explore(start, 5000, func(b Burrow) {
			visited++
			assert.Equal(t, census, b.Census())
			for i, room := range b.rooms {
				assertNoGaps(t, room, i)
			}
			for _, s := range b.Successors() {
				assert.Positive(t, s.Cost)
				assert.NotEqual(t, b, s.Burrow)
			}
		})
		assert.Greater(t, visited, 100)
	}
}

func assertNoGaps(t *testing.T, room Room, i int) {
	t.Helper()
	empty := false
	for _, a := range room.Cells() {
		if a == None {
			empty = true
		} else {
			assert.False(t, empty, "room %d has a gap", i)
		}
	}
}

func TestBurrow_SnapshotsAreValues(t *testing.T) {
	start := mustParse(t, exampleLayout)
	before := start
	_ = start.Successors()
	assert.Equal(t, before, start)

	seen := map[Burrow]int{}
	for _, s := range start.Successors() {
		seen[s.Burrow]++
	}
	assert.Len(t, seen, 28)
}

func TestBurrow_MoveInvariantsPanic(t *testing.T) {
	b := New(2)
	assert.Panics(t, func() { b.moveToHallway(0, Walk{Position: 0, Steps: 2}) })
	assert.Panics(t, func() { b.moveToRoom(0, Walk{Position: 2, Steps: 2}) })
}
