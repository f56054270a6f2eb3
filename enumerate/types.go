package enumerate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridorbit/bitgrid"
	"github.com/katalvlaran/gridorbit/canon"
	"github.com/katalvlaran/gridorbit/combo"
	"github.com/katalvlaran/gridorbit/gridgraph"
	"github.com/katalvlaran/gridorbit/store"
)

// Sentinel errors for enumeration.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enumerate: invalid option supplied")

	// ErrBadRange is returned when the n range does not fit [0, L²].
	ErrBadRange = errors.New("enumerate: cell-count range out of bounds")

	// ErrNotExhaustive is returned by Verify when class weights for some n
	// do not add up to the number of raw subsets.
	ErrNotExhaustive = errors.New("enumerate: classes do not cover every subset")
)

// pollEvery is the number of subsets between context checks; a power of two.
const pollEvery = 1 << 16

// Option configures Enumerate via functional arguments.
// If an Option is invalid (e.g. negative range), it will be recorded
// internally and surfaced as ErrOptionViolation when Enumerate is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize an enumeration.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// TieBreak picks the canonical member of each orbit.
	TieBreak canon.TieBreak

	// Binner partitions each per-n Set. Nil means store.NewBinner("mask").
	Binner store.Binner

	// Generator walks the raw subsets of each pass.
	Generator combo.Generator

	// Lo and Hi bound the cell counts to enumerate. Hi < 0 means L².
	Lo, Hi int

	// CountConnected enables Result.Connected using Conn.
	CountConnected bool

	// Conn is the connectivity used when CountConnected is set.
	Conn gridgraph.Connectivity

	// KeepPatterns retains the Store in the Result.
	KeepPatterns bool

	// OnPass is called after each pass. If it returns an error,
	// Enumerate aborts and propagates that error.
	OnPass func(PassStats) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - MinValue tie-break, mask binner, lexicographic generator
//   - the full range n ∈ [0, L²]
//   - no connectivity count, patterns dropped, no-op OnPass.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		TieBreak:  canon.MinValue,
		Generator: combo.Lexicographic{},
		Lo:        0,
		Hi:        -1,
		OnPass:    func(PassStats) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTieBreak selects the canonical-representative rule.
func WithTieBreak(tb canon.TieBreak) Option {
	return func(o *Options) {
		switch tb {
		case canon.MinValue, canon.MaxReversed:
			o.TieBreak = tb
		default:
			o.err = fmt.Errorf("%w: unknown tie-break %v", ErrOptionViolation, tb)
		}
	}
}

// WithBinner sets the bin function of the deduplication store.
//
//	Bins() in [1, store.MaxBins]: accepted
//	otherwise: invalid option → ErrOptionViolation
func WithBinner(b store.Binner) Option {
	return func(o *Options) {
		switch {
		case b == nil:
			// keep the default
		case b.Bins() < 1 || b.Bins() > store.MaxBins:
			o.err = fmt.Errorf("%w: binner has %d bins, want [1,%d]",
				ErrOptionViolation, b.Bins(), store.MaxBins)
		default:
			o.Binner = b
		}
	}
}

// WithGenerator sets the raw-subset walk.
func WithGenerator(g combo.Generator) Option {
	return func(o *Options) {
		if g != nil {
			o.Generator = g
		}
	}
}

// WithRange restricts the passes to cell counts in [lo, hi].
//
//	lo < 0 or hi < lo: invalid option → ErrOptionViolation
//	hi > L²: rejected by Enumerate with ErrBadRange
func WithRange(lo, hi int) Option {
	return func(o *Options) {
		if lo < 0 || hi < lo {
			o.err = fmt.Errorf("%w: range [%d,%d]", ErrOptionViolation, lo, hi)
			return
		}
		o.Lo, o.Hi = lo, hi
	}
}

// WithConnectivity also counts the classes whose cells are connected
// under conn.
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(o *Options) {
		if !conn.Valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, gridgraph.ErrBadConnectivity)
			return
		}
		o.CountConnected = true
		o.Conn = conn
	}
}

// WithKeepPatterns retains every canonical pattern in Result.Store.
func WithKeepPatterns() Option {
	return func(o *Options) { o.KeepPatterns = true }
}

// WithOnPass registers a callback to run after each pass; returning an
// error from this callback stops the enumeration.
func WithOnPass(fn func(PassStats) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPass = fn
		}
	}
}

// PassStats describes one finished pass.
type PassStats struct {
	N       int            // cell count
	Classes int            // distinct canonical patterns
	Subsets uint64         // raw subsets visited
	Bins    store.BinStats // store occupancy
	Elapsed time.Duration
}

// Result holds the outcome of an enumeration. Slices are indexed by n in
// [0, L²]; entries outside [Lo, Hi] are zero.
type Result struct {
	Geometry bitgrid.Geometry
	TieBreak canon.TieBreak
	Lo, Hi   int

	// Counts[n] is the number of symmetry classes with n cells.
	Counts []int
	// Connected[n] counts the classes that form one island; nil unless
	// WithConnectivity was given.
	Connected []int
	Conn      gridgraph.Connectivity
	// Placements[n] is the sum of class weights: raw subsets covered.
	Placements []uint64
	// OrbitSizes maps orbit size (1, 2, 4, 8) to the number of classes.
	OrbitSizes map[int]int

	// Store holds the representatives; nil unless WithKeepPatterns.
	Store *store.Store

	Elapsed time.Duration
}

// Total returns the number of classes summed over all n.
func (r *Result) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c
	}
	return total
}

// Verify checks that for every enumerated n the class weights add up to
// C(L², n). Returns ErrNotExhaustive naming the first offending n.
func (r *Result) Verify() error {
	cells := r.Geometry.Cells()
	for n := r.Lo; n <= r.Hi; n++ {
		if want := combo.Count(cells, n); r.Placements[n] != want {
			return fmt.Errorf("%w: n=%d covers %d of %d subsets",
				ErrNotExhaustive, n, r.Placements[n], want)
		}
	}
	return nil
}
