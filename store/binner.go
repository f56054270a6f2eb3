package store

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/gridorbit/bitgrid"
)

// ErrUnknownBinner is returned by NewBinner for unrecognized names.
var ErrUnknownBinner = errors.New("store: unknown binner")

// MaxBins bounds the bin count of any Binner a Set is built from;
// a MaskBinner may select at most 20 cells.
const MaxBins = 1 << 20

// Binner maps a canonical pattern to one of Bins() bins.
type Binner interface {
	// Bins is the fixed number of bins; Bin always returns a value in [0, Bins()).
	Bins() int
	// Bin must depend on p only.
	Bin(p bitgrid.Pattern) int
}

// MaskBinner bins by the bits of the pattern selected by Mask.
type MaskBinner struct {
	Mask bitgrid.Pattern
}

// Bins returns 2^popcount(Mask).
func (b MaskBinner) Bins() int { return 1 << uint(b.Mask.Count()) }

// Bin gathers the masked bits into a bin index.
func (b MaskBinner) Bin(p bitgrid.Pattern) int {
	return int(bitgrid.Extract(uint64(p), uint64(b.Mask)))
}

// DefaultMask selects the cells (r, c) of the frame with r+c ≤ 2 for grids up
// to 4×4, and r+c ≤ 3 for larger grids, which hold many more classes.
// For L ≥ 3 and the smaller depth this is 0x10307: six cells, 64 bins.
func DefaultMask(g bitgrid.Geometry) bitgrid.Pattern {
	depth := 2
	if g.Size() > 4 {
		depth = 3
	}
	var mask bitgrid.Pattern
	for r := 0; r < g.Size(); r++ {
		for c := 0; c < g.Size() && r+c <= depth; c++ {
			mask = mask.With(r, c)
		}
	}
	return mask
}

// TrailingZerosBinner bins by the position of the lowest marked cell above
// row 0. Canonical patterns always touch row 0, so that row carries no spread.
type TrailingZerosBinner struct{}

// Bins returns 65: positions 0..63 plus one bin for single-row patterns.
func (TrailingZerosBinner) Bins() int { return 65 }

// Bin returns the trailing zero count of p>>8.
func (TrailingZerosBinner) Bin(p bitgrid.Pattern) int {
	return bits.TrailingZeros64(uint64(p) >> 8)
}

// NewBinner builds a binner by name: "mask" (DefaultMask for g) or "tz".
func NewBinner(name string, g bitgrid.Geometry) (Binner, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mask":
		return MaskBinner{Mask: DefaultMask(g)}, nil
	case "tz", "trailingzeros":
		return TrailingZerosBinner{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBinner, name)
}
