// Package report renders an enumeration Result as the plain-text batch
// report: one line per cell count, then the totals.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/gridorbit/enumerate"
	"github.com/katalvlaran/gridorbit/gridgraph"
)

// Sentinel errors for report rendering.
var (
	// ErrNilResult is returned when Write gets a nil Result.
	ErrNilResult = errors.New("report: result is nil")
	// ErrNoPatterns is returned when drawings are requested but the Result
	// was produced without WithKeepPatterns.
	ErrNoPatterns = errors.New("report: result holds no patterns")
	// ErrDrawRange is returned when the drawing cell count is outside the
	// enumerated range.
	ErrDrawRange = errors.New("report: drawing cell count not enumerated")
)

const rule = "======================"

// Option configures Write.
type Option func(*options)

type options struct {
	placements bool
	orbits     bool
	draw       int // -1: none
}

// WithPlacements adds the raw-subset coverage of each n to its line.
func WithPlacements() Option {
	return func(o *options) { o.placements = true }
}

// WithOrbitSizes adds a histogram of classes by orbit size.
func WithOrbitSizes() Option {
	return func(o *options) { o.orbits = true }
}

// WithDrawings appends a drawing of every class with n cells, each headed
// by its number of connected islands.
// A negative n disables drawings.
func WithDrawings(n int) Option {
	return func(o *options) { o.draw = n }
}

// Write renders res to w:
//
//	======================
//	L = 3
//	n = 0,	count = 1
//	...
//	sum_count = 86
//	raw subsets = 512
//
// Connected counts are added to each line when res has them.
func Write(w io.Writer, res *enumerate.Result, opts ...Option) error {
	if res == nil {
		return ErrNilResult
	}
	o := options{draw: -1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.draw >= 0 {
		if res.Store == nil {
			return ErrNoPatterns
		}
		if o.draw < res.Lo || o.draw > res.Hi {
			return fmt.Errorf("%w: n=%d outside [%d,%d]", ErrDrawRange, o.draw, res.Lo, res.Hi)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "L = %d\n", res.Geometry.Size())
	raw := new(big.Int)
	for n := res.Lo; n <= res.Hi; n++ {
		fmt.Fprintf(bw, "n = %d,\tcount = %d", n, res.Counts[n])
		if res.Connected != nil {
			fmt.Fprintf(bw, ",\tconnected%s = %d", res.Conn, res.Connected[n])
		}
		if o.placements {
			fmt.Fprintf(bw, ",\tplacements = %s", humanize.Comma(int64(res.Placements[n])))
		}
		fmt.Fprintln(bw)
		raw.Add(raw, new(big.Int).SetUint64(res.Placements[n]))
	}
	fmt.Fprintf(bw, "sum_count = %d\n", res.Total())
	fmt.Fprintf(bw, "raw subsets = %s\n", humanize.BigComma(raw))
	if o.orbits {
		sizes := make([]int, 0, len(res.OrbitSizes))
		for size := range res.OrbitSizes {
			sizes = append(sizes, size)
		}
		slices.Sort(sizes)
		fmt.Fprint(bw, "orbits =")
		for _, size := range sizes {
			fmt.Fprintf(bw, " %d×%d", size, res.OrbitSizes[size])
		}
		fmt.Fprintln(bw)
	}
	if o.draw >= 0 {
		writeDrawings(bw, res, o.draw)
	}
	return bw.Flush()
}

// writeDrawings lists every class with n cells and its island count under
// res.Conn (Conn4 unless the Result counted Conn8).
func writeDrawings(bw *bufio.Writer, res *enumerate.Result, n int) {
	patterns := res.Store.Set(n).Patterns()
	fmt.Fprintln(bw, rule)
	fmt.Fprintf(bw, "classes with n = %d: %d\n", n, len(patterns))
	for i, p := range patterns {
		islands := len(gridgraph.ConnectedComponents(p, res.Conn))
		fmt.Fprintf(bw, "\n#%d (%#x) islands%s = %d\n", i+1, uint64(p), res.Conn, islands)
		fmt.Fprint(bw, res.Geometry.Draw(p))
	}
}
