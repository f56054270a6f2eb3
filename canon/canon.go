package canon

import (
	"github.com/katalvlaran/gridorbit/bitgrid"
)

// OrbitLen is the order of the dihedral group of the square.
const OrbitLen = 8

// Canonicalizer selects canonical patterns for one grid size and one
// tie-break rule. It holds no mutable state and is safe to share.
type Canonicalizer struct {
	geom bitgrid.Geometry
	tb   TieBreak
}

// New returns a Canonicalizer for the frame g using rule tb.
func New(g bitgrid.Geometry, tb TieBreak) *Canonicalizer {
	return &Canonicalizer{geom: g, tb: tb}
}

// Geometry returns the frame the canonicalizer works in.
func (c *Canonicalizer) Geometry() bitgrid.Geometry { return c.geom }

// TieBreak returns the rule in use.
func (c *Canonicalizer) TieBreak() TieBreak { return c.tb }

// Orbit returns the 8 images of p, each translated to the origin: the four
// rotations of p followed by the four rotations of its mirror image.
// Members repeat when p has its own symmetry.
func (c *Canonicalizer) Orbit(p bitgrid.Pattern) [OrbitLen]bitgrid.Pattern {
	var out [OrbitLen]bitgrid.Pattern
	c.sweep(p, func(i int, m bitgrid.Pattern) { out[i] = m })
	return out
}

// Canonicalize returns the representative of p's class.
func (c *Canonicalizer) Canonicalize(p bitgrid.Pattern) bitgrid.Pattern {
	if p == 0 {
		return 0
	}
	best := bitgrid.Translate(p)
	c.sweep(p, func(_ int, m bitgrid.Pattern) {
		if c.tb.better(m, best) {
			best = m
		}
	})
	return best
}

// sweep calls visit with each translated orbit member in order.
// The frame is kept between rotations, so the pattern is rotated
// untranslated and only the reported member is moved to the origin.
func (c *Canonicalizer) sweep(p bitgrid.Pattern, visit func(i int, m bitgrid.Pattern)) {
	g := c.geom
	q := p
	for i := 0; i < 4; i++ {
		visit(i, bitgrid.Translate(q))
		q = g.Rotate(q)
	}
	q = g.Mirror(p)
	for i := 4; i < OrbitLen; i++ {
		visit(i, bitgrid.Translate(q))
		q = g.Rotate(q)
	}
}

// OrbitSize returns the number of distinct translated orbit members of p:
// always 1, 2, 4 or 8.
func (c *Canonicalizer) OrbitSize(p bitgrid.Pattern) int {
	return len(distinct(c.Orbit(p)))
}

// Placements returns how many raw cell subsets of the L×L grid belong to
// p's class: for each distinct oriented shape, the number of positions its
// bounding box can take inside the frame. The empty class has one placement.
func (c *Canonicalizer) Placements(p bitgrid.Pattern) uint64 {
	if p == 0 {
		return 1
	}
	size := c.geom.Size()
	var total uint64
	for _, m := range distinct(c.Orbit(p)) {
		h, w := m.Bounds()
		total += uint64((size - h + 1) * (size - w + 1))
	}
	return total
}

// distinct drops repeated members, keeping first occurrence order.
func distinct(orbit [OrbitLen]bitgrid.Pattern) []bitgrid.Pattern {
	out := make([]bitgrid.Pattern, 0, OrbitLen)
outer:
	for _, m := range orbit {
		for _, seen := range out {
			if seen == m {
				continue outer
			}
		}
		out = append(out, m)
	}
	return out
}
