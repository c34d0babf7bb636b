package model

import (
	"sync"

	"github.com/pkg/errors"
)

// GridToPool returns a grid to the pool for reuse
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}

// GridPool recycles cell buffers between runs of the same board size
type GridPool struct {
	pool sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Grid{}
			},
		},
	}
}

// Get retrieves an all-Dead grid of the given size from the pool
func (p *GridPool) Get(width, height uint32) (*Grid, error) {
	g := p.pool.Get().(*Grid)
	if err := g.reset(width, height); err != nil {
		p.pool.Put(g)
		return nil, errors.Wrap(err, "[GridPool.Get]")
	}
	return g, nil
}

// Put returns a grid to the pool, clearing its state
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.pool.Put(g)
}
