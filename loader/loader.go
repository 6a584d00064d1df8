// Package loader reads boards written in the plain text format:
//
//	R C
//	.O...
//	..O..
//
// The first line holds the row and column counts. Each of the next R lines
// describes one row, 'O' meaning alive and any other character dead. Parsing is
// best effort and never fails: missing header values are 0, missing or short
// rows are dead, and anything past the declared size is ignored.
package loader

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-engine/model"
)

// Parse builds a generation from its text description
func Parse(data string) *model.Generation {
	lines := strings.Split(data, "\n")
	rows, cols := parseHeader(strings.TrimSuffix(lines[0], "\r"))

	g := model.NewGeneration(rows, cols)
	body := lines[1:]
	for r := 0; r < rows && r < len(body); r++ {
		line := []rune(strings.TrimSuffix(body[r], "\r"))
		for c := 0; c < cols && c < len(line); c++ {
			if line[c] == model.AliveGlyph {
				g.Set(r, c, true)
			}
		}
	}
	return g
}

// parseHeader reads up to two leading 32-bit integers. Reading stops at the
// first token that is not one, so "x 3" and "9999999999 3" give 0x0.
// Negative values become 0.
func parseHeader(line string) (rows, cols int) {
	var dims [2]int
	for i, field := range strings.Fields(line) {
		if i == len(dims) {
			break
		}
		n, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			break
		}
		dims[i] = max(0, int(n))
	}
	return dims[0], dims[1]
}

// Read consumes r entirely and parses it
func Read(r io.Reader) (*model.Generation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "[Read] failed to read board")
	}
	return Parse(string(data)), nil
}

// ReadFile reads and parses the named file
func ReadFile(filename string) (*model.Generation, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[ReadFile] failed to read file: %+v", filename)
	}
	return Parse(string(data)), nil
}

// LoadString replaces the engine's board with the one described by data
func LoadString(e *model.Engine, data string) {
	e.Replace(Parse(data))
}

// LoadFile replaces the engine's board with the one stored in filename.
// The engine is left untouched when the file cannot be read.
func LoadFile(e *model.Engine, filename string) error {
	g, err := ReadFile(filename)
	if err != nil {
		return err
	}
	e.Replace(g)
	return nil
}
