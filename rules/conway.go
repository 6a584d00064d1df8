package rules

const (
	// birthCount is the exact number of live neighbors that brings a dead cell to life.
	birthCount = 3
	// minSurvive and maxSurvive bound the neighbor counts that keep a live cell alive.
	minSurvive = 2
	maxSurvive = 3
)

// Survives reports whether a live cell with the given neighbor count stays alive.
func Survives(neighbors int) bool {
	return neighbors >= minSurvive && neighbors <= maxSurvive
}

// Born reports whether a dead cell with the given neighbor count becomes alive.
func Born(neighbors int) bool {
	return neighbors == birthCount
}

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A live cell survives with 2 or 3 live neighbors; a dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}
