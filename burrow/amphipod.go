package burrow

import "fmt"

// Amphipod is one of the four amphipod kinds. The zero value None marks an
// empty cell.
type Amphipod uint8

const (
	None Amphipod = iota
	Amber
	Bronze
	Copper
	Desert
)

// Kinds lists every amphipod kind in room order.
var Kinds = [RoomCount]Amphipod{Amber, Bronze, Copper, Desert}

// Steps counts single-cell movements.
type Steps int

// UnitCost is the energy one step of a takes.
func (a Amphipod) UnitCost() int {
	switch a {
	case Amber:
		return 1
	case Bronze:
		return 10
	case Copper:
		return 100
	case Desert:
		return 1000
	default:
		panic(fmt.Sprintf("burrow: no unit cost for %v", a))
	}
}

// StepCost is the energy a spends walking steps cells.
func (a Amphipod) StepCost(steps Steps) int {
	return int(steps) * a.UnitCost()
}

// RoomIndex is the index of a's home room.
func (a Amphipod) RoomIndex() int {
	switch a {
	case Amber, Bronze, Copper, Desert:
		return int(a - Amber)
	default:
		panic(fmt.Sprintf("burrow: %v has no room", a))
	}
}

// Entrance is the hallway position right above a's home room.
func (a Amphipod) Entrance() int {
	return RoomEntrances[a.RoomIndex()]
}

// String renders a the way layouts do: A, B, C, D, or '.' for None.
func (a Amphipod) String() string {
	switch a {
	case None:
		return "."
	case Amber:
		return "A"
	case Bronze:
		return "B"
	case Copper:
		return "C"
	case Desert:
		return "D"
	default:
		return fmt.Sprintf("Amphipod(%d)", uint8(a))
	}
}

// ParseAmphipod reads a layout cell. '.' yields None.
func ParseAmphipod(r rune) (Amphipod, error) {
	switch r {
	case '.':
		return None, nil
	case 'A':
		return Amber, nil
	case 'B':
		return Bronze, nil
	case 'C':
		return Copper, nil
	case 'D':
		return Desert, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownAmphipod, r)
	}
}
