package model

import "sync"

// GridPool recycles generation buffers between advances
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Generation{}
			},
		},
	}
}

// Get retrieves an all-dead generation with the given dimensions. A nil pool allocates.
func (p *GridPool) Get(rows, cols int) *Generation {
	if p == nil {
		return NewGeneration(rows, cols)
	}
	g := p.pool.Get().(*Generation)
	g.reset(rows, cols)
	return g
}

// Put hands a generation back for reuse. The caller must not touch g afterwards.
func (p *GridPool) Put(g *Generation) {
	if p == nil || g == nil {
		return
	}
	p.pool.Put(g)
}
