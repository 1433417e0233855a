// Package burrow models the amphipod burrow puzzle: four kinds of amphipods
// must be moved out of an 11-cell hallway into their own rooms at minimum
// total energy.
//
// A Burrow is a small comparable value. Successors returns every state one
// legal move away together with the energy of that move, EstimatedCost is an
// admissible lower bound of the remaining energy, and Solve feeds all of it to
// the astar package.
//
// Layout of the hallway positions and room entrances:
//
//	#############
//	#01234567890#   hallway positions 0..10
//	###A#B#C#D###   rooms 0..3 below positions 2, 4, 6, 8
//	  #A#B#C#D#
//	  #########
package burrow
