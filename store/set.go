package store

import (
	"slices"

	"github.com/katalvlaran/gridorbit/bitgrid"
)

// Set is the collection of distinct canonical patterns for one cell count.
type Set struct {
	binner Binner
	bins   [][]bitgrid.Pattern
	n      int
}

// NewSet returns an empty Set partitioned by b.
func NewSet(b Binner) *Set {
	return &Set{
		binner: b,
		bins:   make([][]bitgrid.Pattern, b.Bins()),
	}
}

// RegisterIfNew inserts p and returns true if p has not been seen before;
// otherwise it returns false and leaves the set unchanged.
func (s *Set) RegisterIfNew(p bitgrid.Pattern) bool {
	i := s.binner.Bin(p)
	bin := s.bins[i]
	for _, prev := range bin {
		if prev == p {
			return false
		}
	}
	s.bins[i] = append(bin, p)
	s.n++
	return true
}

// Contains reports whether p has been registered.
func (s *Set) Contains(p bitgrid.Pattern) bool {
	return slices.Contains(s.bins[s.binner.Bin(p)], p)
}

// Len returns the number of distinct patterns registered.
func (s *Set) Len() int { return s.n }

// Patterns returns every registered pattern in ascending order.
func (s *Set) Patterns() []bitgrid.Pattern {
	out := make([]bitgrid.Pattern, 0, s.n)
	for _, bin := range s.bins {
		out = append(out, bin...)
	}
	slices.Sort(out)
	return out
}

// BinStats summarizes how evenly a Set spreads across its bins.
type BinStats struct {
	Bins    int     // total bins
	Used    int     // bins holding at least one pattern
	Longest int     // largest bin population
	Mean    float64 // mean population over used bins
}

// Stats returns the bin occupancy of s.
func (s *Set) Stats() BinStats {
	st := BinStats{Bins: len(s.bins)}
	for _, bin := range s.bins {
		if len(bin) == 0 {
			continue
		}
		st.Used++
		st.Longest = max(st.Longest, len(bin))
	}
	if st.Used > 0 {
		st.Mean = float64(s.n) / float64(st.Used)
	}
	return st
}
