package model

const (
	// defaultSeedRows and defaultSeedCols size a board that is filled before it was ever sized
	defaultSeedRows = 10
	defaultSeedCols = 10
)

// RandomInitialize replaces the current generation with random cells, each alive
// independently with probability p clamped to [0, 1]. An unsized engine
// (0 rows or 0 columns) becomes 10x10 first. The previous generation is dropped.
func (e *Engine) RandomInitialize(p float64) {
	rows, cols := e.current.rows, e.current.cols
	if rows == 0 || cols == 0 {
		rows, cols = defaultSeedRows, defaultSeedCols
	}
	p = min(max(p, 0), 1)

	next := e.pool.Get(rows, cols)
	for r := range rows {
		for c := range cols {
			next.cells[r][c] = e.rng.Float64() < p
		}
	}
	e.install(next)
}
