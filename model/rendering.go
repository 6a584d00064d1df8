package model

import (
	"io"
	"strconv"
	"strings"
)

const (
	// AliveGlyph marks a live cell in the text format; any other character is dead.
	AliveGlyph = 'O'
	// DeadGlyph is written for dead cells
	DeadGlyph = '.'
)

// String renders the generation in the text load format: a "rows cols" header
// followed by one line per row.
func (g *Generation) String() string {
	var sb strings.Builder
	sb.Grow((g.cols + 1) * (g.rows + 1))

	sb.WriteString(strconv.Itoa(g.rows))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.cols))
	sb.WriteByte('\n')

	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				sb.WriteByte(AliveGlyph)
			} else {
				sb.WriteByte(DeadGlyph)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the generation to w in the text load format
func (g *Generation) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}
