package model

import "sync"

// GridPool recycles grid buffers between batch runs
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() any {
				return &Grid{}
			},
		},
	}
}

// Get returns an empty grid of the requested size
func (p *GridPool) Get(width, height int) *Grid {
	if p == nil {
		return NewGrid(width, height)
	}
	g := p.pool.Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put hands a grid back once its run is finished; nil pools drop it
func (p *GridPool) Put(g *Grid) {
	if p == nil || g == nil {
		return
	}
	p.pool.Put(g)
}
