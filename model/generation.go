package model

import (
	"crypto/md5"
	"fmt"
)

// Cell addresses one position of a generation.
type Cell struct {
	Row, Col int
}

// Bounds is the smallest rectangle holding every live cell, inclusive on both ends
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Area returns the number of cells covered by the bounds
func (b Bounds) Area() int {
	return (b.MaxRow - b.MinRow + 1) * (b.MaxCol - b.MinCol + 1)
}

// Generation is one complete snapshot of cell states on a rows x cols board
type Generation struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGeneration creates an all-dead generation. Negative dimensions are clamped to 0.
func NewGeneration(rows, cols int) *Generation {
	g := &Generation{}
	g.reset(rows, cols)
	return g
}

// Rows returns the number of rows
func (g *Generation) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Generation) Cols() int {
	return g.cols
}

// reset resizes the generation to new dimensions and kills every cell,
// reusing the existing rows where their length already matches.
func (g *Generation) reset(rows, cols int) {
	rows, cols = max(0, rows), max(0, cols)
	g.rows = rows
	g.cols = cols

	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Set sets a cell to alive (true) or dead (false); out of range coordinates are ignored
func (g *Generation) Set(r, c int, alive bool) {
	if g.inBounds(r, c) {
		g.cells[r][c] = alive
	}
}

// Get returns the state of a cell, false for any out of range coordinate
func (g *Generation) Get(r, c int) bool {
	if !g.inBounds(r, c) {
		return false
	}
	return g.cells[r][c]
}

func (g *Generation) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// CountLiveNeighbors counts living cells among the 8 positions around (r, c).
// Positions off the board count as dead; (r, c) itself may lie off the board.
func (g *Generation) CountLiveNeighbors(r, c int) int {
	count := 0

	minR := max(0, r-1)
	maxR := min(g.rows-1, r+1)
	minC := max(0, c-1)
	maxC := min(g.cols-1, c+1)

	for nr := minR; nr <= maxR; nr++ {
		for nc := minC; nc <= maxC; nc++ {
			if nr == r && nc == c {
				continue
			}
			if g.cells[nr][nc] {
				count++
			}
		}
	}

	return count
}

// Clone returns a deep copy of the generation
func (g *Generation) Clone() *Generation {
	out := &Generation{rows: g.rows, cols: g.cols, cells: make([][]bool, g.rows)}
	for i, row := range g.cells {
		out.cells[i] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether both generations have the same dimensions and cell states.
// A nil generation equals nothing.
func (g *Generation) Equal(other *Generation) bool {
	if g == nil || other == nil {
		return false
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Population returns the total number of living cells
func (g *Generation) Population() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// AliveCells lists every living cell in row-major order
func (g *Generation) AliveCells() []Cell {
	cells := make([]Cell, 0)
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// BoundingBox returns the bounds of the living cells; ok is false when none are alive
func (g *Generation) BoundingBox() (b Bounds, ok bool) {
	for r := range g.rows {
		for c := range g.cols {
			if !g.cells[r][c] {
				continue
			}
			if !ok {
				b = Bounds{MinRow: r, MaxRow: r, MinCol: c, MaxCol: c}
				ok = true
				continue
			}
			b.MinRow = min(b.MinRow, r)
			b.MaxRow = max(b.MaxRow, r)
			b.MinCol = min(b.MinCol, c)
			b.MaxCol = max(b.MaxCol, c)
		}
	}
	return b, ok
}

// Fingerprint returns an MD5 digest of the dimensions and cell states
func (g *Generation) Fingerprint() string {
	h := md5.New()
	fmt.Fprintf(h, "%d:%d:", g.rows, g.cols)
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
