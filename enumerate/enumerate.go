package enumerate

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/gridorbit/bitgrid"
	"github.com/katalvlaran/gridorbit/canon"
	"github.com/katalvlaran/gridorbit/combo"
	"github.com/katalvlaran/gridorbit/gridgraph"
	"github.com/katalvlaran/gridorbit/store"
)

// counter encapsulates mutable enumeration state.
type counter struct {
	geom  bitgrid.Geometry
	canon *canon.Canonicalizer
	opts  Options
	ctx   context.Context
	store *store.Store // nil unless KeepPatterns
	res   *Result
}

// Enumerate counts the symmetry classes of n-cell placements on a
// size×size grid for every n in the configured range.
// Returns bitgrid.ErrBadSize for an unsupported size, ErrOptionViolation
// for bad options, ErrBadRange when the range exceeds L², a wrapped
// context error on cancellation, or the OnPass hook error.
func Enumerate(size int, opts ...Option) (*Result, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := bitgrid.NewGeometry(size)
	if err != nil {
		return nil, err
	}
	cells := g.Cells()
	if o.Hi < 0 {
		o.Hi = cells
	}
	if o.Hi > cells {
		return nil, fmt.Errorf("%w: [%d,%d] on %d cells", ErrBadRange, o.Lo, o.Hi, cells)
	}
	if o.Binner == nil {
		o.Binner = store.MaskBinner{Mask: store.DefaultMask(g)}
	}

	c := &counter{
		geom:  g,
		canon: canon.New(g, o.TieBreak),
		opts:  o,
		ctx:   o.Ctx,
		res: &Result{
			Geometry:   g,
			TieBreak:   o.TieBreak,
			Lo:         o.Lo,
			Hi:         o.Hi,
			Counts:     make([]int, cells+1),
			Placements: make([]uint64, cells+1),
			OrbitSizes: make(map[int]int, canon.OrbitLen),
		},
	}
	if o.KeepPatterns {
		c.store = store.New(cells, o.Binner)
	}
	if o.CountConnected {
		c.res.Connected = make([]int, cells+1)
		c.res.Conn = o.Conn
	}

	start := time.Now()
	for n := o.Lo; n <= o.Hi; n++ {
		if err = c.pass(n); err != nil {
			return nil, err
		}
	}
	c.res.Elapsed = time.Since(start)
	c.res.Store = c.store
	return c.res, nil
}

// pass enumerates every raw subset with n cells.
func (c *counter) pass(n int) error {
	if err := c.ctx.Err(); err != nil {
		return fmt.Errorf("enumerate: pass n=%d: %w", n, err)
	}
	start := time.Now()
	set := c.setFor(n)
	cells := c.geom.Cells()

	var visited uint64
	var err error
	if n == 0 || n == cells {
		// one subset: the empty or the full board
		visited = 1
		c.register(n, set, c.geom.Pack(combo.First(n)))
	} else {
		c.opts.Generator.Walk(cells, n, func(raw uint64) bool {
			visited++
			if visited%pollEvery == 0 {
				if err = c.ctx.Err(); err != nil {
					return false
				}
			}
			c.register(n, set, c.geom.Pack(raw))
			return true
		})
		if err != nil {
			return fmt.Errorf("enumerate: pass n=%d: %w", n, err)
		}
	}

	c.res.Counts[n] = set.Len()
	stats := PassStats{
		N:       n,
		Classes: set.Len(),
		Subsets: visited,
		Bins:    set.Stats(),
		Elapsed: time.Since(start),
	}
	return c.opts.OnPass(stats)
}

// setFor returns the Set that deduplicates pass n. Without a Store the
// Set lives for one pass only.
func (c *counter) setFor(n int) *store.Set {
	if c.store != nil {
		return c.store.Set(n)
	}
	return store.NewSet(c.opts.Binner)
}

// register canonicalizes p and accounts for its class the first time it
// is seen.
func (c *counter) register(n int, set *store.Set, p bitgrid.Pattern) {
	cp := c.canon.Canonicalize(p)
	if !set.RegisterIfNew(cp) {
		return
	}
	c.res.Placements[n] += c.canon.Placements(cp)
	c.res.OrbitSizes[c.canon.OrbitSize(cp)]++
	if c.res.Connected != nil && gridgraph.IsConnected(cp, c.opts.Conn) {
		c.res.Connected[n]++
	}
}
