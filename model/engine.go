package model

import (
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/life-engine/rules"
)

// Engine holds the current generation of a bounded Game of Life board and
// the generation it was advanced from.
// The zero value is not usable; construct one with New or NewSized.
//
// An Engine is not safe for concurrent use: Advance reads all of the current
// generation and then swaps buffers in two steps, so callers sharing an
// engine must serialize every call themselves.
type Engine struct {
	current  *Generation
	previous prior

	workers int
	pool    *GridPool
	rng     *rand.Rand
}

// prior is the optional predecessor of the current generation. It is only
// present after an Advance and is dropped by every bulk replacement.
type prior struct {
	gen     *Generation
	present bool
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers splits each advance into row bands computed by n goroutines.
// Values below 2 keep the advance on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithPool recycles generation buffers through the given pool
func WithPool(pool *GridPool) Option {
	return func(e *Engine) {
		e.pool = pool
	}
}

// WithRand sets the random source used by RandomInitialize
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed makes RandomInitialize deterministic for the given seed
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// New creates an empty 0x0 engine, to be sized later by a load or a random fill
func New(opts ...Option) *Engine {
	return NewSized(0, 0, opts...)
}

// NewSized creates an engine with an all-dead rows x cols generation.
// Negative dimensions are clamped to 0.
func NewSized(rows, cols int, opts ...Option) *Engine {
	e := &Engine{
		workers: 1,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.current = e.pool.Get(rows, cols)
	return e
}

// NumRows returns the number of rows of the current generation
func (e *Engine) NumRows() int {
	return e.current.rows
}

// NumCols returns the number of columns of the current generation
func (e *Engine) NumCols() int {
	return e.current.cols
}

// IsAlive returns the state of (r, c), false for any out of range coordinate
func (e *Engine) IsAlive(r, c int) bool {
	return e.current.Get(r, c)
}

// CountLiveNeighbors returns the number of live cells around (r, c) with no wraparound
func (e *Engine) CountLiveNeighbors(r, c int) int {
	return e.current.CountLiveNeighbors(r, c)
}

// Population returns the number of live cells in the current generation
func (e *Engine) Population() int {
	return e.current.Population()
}

// Fingerprint returns the digest of the current generation
func (e *Engine) Fingerprint() string {
	return e.current.Fingerprint()
}

// Generation returns a copy of the current generation
func (e *Engine) Generation() *Generation {
	return e.current.Clone()
}

// HasPrevious reports whether an advance has happened since the last bulk replacement
func (e *Engine) HasPrevious() bool {
	return e.previous.present
}

// Replace installs a copy of g as the current generation and forgets the
// previous one. A nil g empties the engine.
func (e *Engine) Replace(g *Generation) {
	if g == nil {
		e.install(e.pool.Get(0, 0))
		return
	}
	next := e.pool.Get(g.rows, g.cols)
	for r, row := range g.cells {
		copy(next.cells[r], row)
	}
	e.install(next)
}

// install takes ownership of next as the current generation
func (e *Engine) install(next *Generation) {
	e.dropPrevious()
	e.pool.Put(e.current)
	e.current = next
}

func (e *Engine) dropPrevious() {
	if e.previous.present {
		e.pool.Put(e.previous.gen)
	}
	e.previous = prior{}
}

// Advance computes the next generation under the B3/S23 rule and makes it
// current; the generation it replaces becomes the previous one.
// An empty board does not change.
func (e *Engine) Advance() {
	rows, cols := e.current.rows, e.current.cols
	if rows == 0 || cols == 0 {
		return
	}

	next := e.pool.Get(rows, cols)
	e.computeNext(next)

	e.dropPrevious()
	e.previous = prior{gen: e.current, present: true}
	e.current = next
}

// computeNext fills next from the current generation, which stays untouched
func (e *Engine) computeNext(next *Generation) {
	rows := e.current.rows
	if e.workers < 2 || rows < 2 {
		e.computeRows(next, 0, rows)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, rows)
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers
	)

	for startRow := 0; startRow < rows; startRow += rowsPerWorker {
		endRow := min(startRow+rowsPerWorker, rows)
		eg.Go(func() error {
			e.computeRows(next, startRow, endRow)
			return nil
		})
	}

	// bands only write their own rows of next and never fail
	_ = eg.Wait()
}

func (e *Engine) computeRows(next *Generation, startRow, endRow int) {
	cur := e.current
	for r := startRow; r < endRow; r++ {
		for c := range cur.cols {
			next.cells[r][c] = rules.ApplyConwayRules(cur.CountLiveNeighbors(r, c), cur.cells[r][c])
		}
	}
}

// IsStillLife reports whether the current generation is identical to the one
// it was advanced from. It is false until the first advance after a bulk
// replacement, and false if the dimensions of the two differ.
func (e *Engine) IsStillLife() bool {
	if !e.previous.present {
		return false
	}
	return e.previous.gen.Equal(e.current)
}

// Delta counts the cells born and the cells that died in the last advance.
// Both are 0 when there is no previous generation.
func (e *Engine) Delta() (births, deaths int) {
	prev := e.previous.gen
	if !e.previous.present || prev.rows != e.current.rows || prev.cols != e.current.cols {
		return 0, 0
	}
	for r := range e.current.rows {
		for c := range e.current.cols {
			was, is := prev.cells[r][c], e.current.cells[r][c]
			switch {
			case is && !was:
				births++
			case was && !is:
				deaths++
			}
		}
	}
	return births, deaths
}
