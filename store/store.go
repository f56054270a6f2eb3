package store

// Store owns one Set per cell count n in [0, cells].
type Store struct {
	sets []*Set
}

// New returns a Store with empty Sets for every n from 0 to cells.
func New(cells int, b Binner) *Store {
	if cells < 0 {
		cells = 0
	}
	st := &Store{sets: make([]*Set, cells+1)}
	for n := range st.sets {
		st.sets[n] = NewSet(b)
	}
	return st
}

// Cells returns the largest cell count the store covers.
func (st *Store) Cells() int { return len(st.sets) - 1 }

// Set returns the Set for cell count n, or nil if n is out of range.
func (st *Store) Set(n int) *Set {
	if n < 0 || n >= len(st.sets) {
		return nil
	}
	return st.sets[n]
}

// Counts returns Len of every Set, indexed by n.
func (st *Store) Counts() []int {
	out := make([]int, len(st.sets))
	for n, s := range st.sets {
		out[n] = s.Len()
	}
	return out
}

// Total returns the number of patterns across all Sets.
func (st *Store) Total() int {
	total := 0
	for _, s := range st.sets {
		total += s.Len()
	}
	return total
}
