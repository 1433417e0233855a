package burrow

import (
	"fmt"
	"strings"
)

// unfoldedRows are the rows inserted between the top and bottom rows of a
// depth-2 burrow when it is unfolded, listed from the hallway down.
var unfoldedRows = [2][RoomCount]Amphipod{
	{Desert, Copper, Bronze, Amber},
	{Desert, Bronze, Amber, Copper},
}

// Parse reads a burrow drawn as:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Rooms may be 2 or 4 rows deep. The hallway may hold amphipods, except on
// the cells above the rooms. Each kind must appear once per room row in total.
func Parse(s string) (Burrow, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, "\r \t")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 4 {
		return Burrow{}, fmt.Errorf("%w: expected at least 4 lines, got %d", ErrMalformedLayout, len(lines))
	}

	roomRows := lines[2 : len(lines)-1]
	depth := len(roomRows)
	if depth != 2 && depth != 4 {
		return Burrow{}, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
	}
	b := New(depth)

	if err := b.parseHallway(lines[1]); err != nil {
		return Burrow{}, err
	}
	if err := b.parseRooms(roomRows); err != nil {
		return Burrow{}, err
	}

	census := b.Census()
	for _, kind := range Kinds {
		if census[kind] != depth {
			return Burrow{}, fmt.Errorf("%w: %d amphipods of kind %v, want %d", ErrMalformedLayout, census[kind], kind, depth)
		}
	}
	return b, nil
}

func (b *Burrow) parseHallway(line string) error {
	line = strings.TrimSpace(line)
	if len(line) != HallwayLength+2 || line[0] != '#' || line[len(line)-1] != '#' {
		return fmt.Errorf("%w: hallway line %q", ErrMalformedLayout, line)
	}
	for position, r := range line[1 : len(line)-1] {
		a, err := ParseAmphipod(r)
		if err != nil {
			return err
		}
		if a == None {
			continue
		}
		if IsEntrance(position) {
			return fmt.Errorf("%w: %v stands above a room at %d", ErrMalformedLayout, a, position)
		}
		b.hallway.Occupy(position, a)
	}
	return nil
}

func (b *Burrow) parseRooms(rows []string) error {
	grid := make([][RoomCount]Amphipod, len(rows))
	for y, row := range rows {
		var cells []Amphipod
		for _, r := range row {
			if r == '#' || r == ' ' {
				continue
			}
			a, err := ParseAmphipod(r)
			if err != nil {
				return err
			}
			cells = append(cells, a)
		}
		if len(cells) != RoomCount {
			return fmt.Errorf("%w: room row %q has %d cells", ErrMalformedLayout, row, len(cells))
		}
		copy(grid[y][:], cells)
	}

	// Fill from the bottom row up; an amphipod above an empty cell is floating.
	for i := range b.rooms {
		empty := false
		for y := len(grid) - 1; y >= 0; y-- {
			a := grid[y][i]
			if a == None {
				empty = true
				continue
			}
			if empty {
				return fmt.Errorf("%w: room %d has a gap below %v", ErrMalformedLayout, i, a)
			}
			b.rooms[i].Occupy(a)
		}
	}
	return nil
}

// String draws b in the format Parse reads.
func (b Burrow) String() string {
	var sb strings.Builder
	sb.WriteString("#############\n#")
	for _, a := range b.hallway {
		sb.WriteString(a.String())
	}
	sb.WriteString("#\n")

	for y := b.Depth() - 1; y >= 0; y-- {
		if y == b.Depth()-1 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for _, room := range b.rooms {
			sb.WriteString(room.cells[y].String())
			sb.WriteString("#")
		}
		if y == b.Depth()-1 {
			sb.WriteString("##")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  #########")
	return sb.String()
}

// Unfold inserts the two hidden rows DCBA and DBAC between the rows of a
// fresh depth-2 burrow, producing its depth-4 variant.
func (b Burrow) Unfold() (Burrow, error) {
	if b.Depth() != 2 || len(b.hallway.Occupied()) != 0 {
		return Burrow{}, ErrNotUnfoldable
	}
	unfolded := New(4)
	for i, room := range b.rooms {
		if room.Len() != 2 {
			return Burrow{}, ErrNotUnfoldable
		}
		unfolded.rooms[i].Occupy(room.cells[0])
		unfolded.rooms[i].Occupy(unfoldedRows[1][i])
		unfolded.rooms[i].Occupy(unfoldedRows[0][i])
		unfolded.rooms[i].Occupy(room.cells[1])
	}
	return unfolded, nil
}
