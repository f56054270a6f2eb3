package bitgrid

import (
	"errors"
	"fmt"
	"math/bits"
)

// MaxSize is the largest grid edge that fits a 64-bit word with 8-bit rows.
const MaxSize = 8

// rowBytes is the row stride in bits; one byte per row for every L.
const rowBytes = 8

// ErrBadSize indicates a grid edge outside [1, MaxSize].
var ErrBadSize = errors.New("bitgrid: grid size must be in [1,8]")

// Pattern is a set of marked cells; bit 8*row+col is cell (row, col).
type Pattern uint64

// Count returns the number of marked cells.
func (p Pattern) Count() int { return bits.OnesCount64(uint64(p)) }

// Has reports whether cell (row, col) is marked. Out-of-range cells are never marked.
func (p Pattern) Has(row, col int) bool {
	if row < 0 || row >= MaxSize || col < 0 || col >= MaxSize {
		return false
	}
	return p&(1<<uint(rowBytes*row+col)) != 0
}

// With returns p with cell (row, col) marked.
func (p Pattern) With(row, col int) Pattern {
	return p | 1<<uint(rowBytes*row+col)
}

// Bounds returns the height and width of the bounding box of the marked
// cells. The empty pattern has bounds (0, 0).
func (p Pattern) Bounds() (height, width int) {
	if p == 0 {
		return 0, 0
	}
	top := (63 - bits.LeadingZeros64(uint64(p))) / rowBytes
	bottom := bits.TrailingZeros64(uint64(p)) / rowBytes
	occupied := columns(p)
	return top - bottom + 1, bits.Len8(occupied) - bits.TrailingZeros8(occupied)
}

// columns folds all row-bytes into one: bit c is set iff column c is occupied.
func columns(p Pattern) uint8 {
	p |= p >> 32
	p |= p >> 16
	p |= p >> 8
	return uint8(p)
}

// Geometry describes an L×L frame inside a Pattern.
// It is a small immutable value; copy it freely.
type Geometry struct {
	size     int
	mask     Pattern
	colMasks [MaxSize]Pattern
}

// NewGeometry returns the frame for an size×size grid.
// Returns ErrBadSize if size is outside [1, MaxSize].
func NewGeometry(size int) (Geometry, error) {
	if size < 1 || size > MaxSize {
		return Geometry{}, fmt.Errorf("%w: got %d", ErrBadSize, size)
	}
	g := Geometry{size: size}
	rowMask := Pattern(1)<<uint(size) - 1
	var firstColumn Pattern
	for r := 0; r < size; r++ {
		g.mask |= rowMask << uint(rowBytes*r)
		firstColumn |= 1 << uint(rowBytes*r)
	}
	for c := 0; c < size; c++ {
		g.colMasks[c] = firstColumn << uint(c)
	}
	return g, nil
}

// Size returns the grid edge L.
func (g Geometry) Size() int { return g.size }

// Cells returns L², the number of cells in the frame.
func (g Geometry) Cells() int { return g.size * g.size }

// Mask returns the pattern with every cell of the frame marked.
func (g Geometry) Mask() Pattern { return g.mask }

// Valid reports whether p marks only cells inside the frame.
func (g Geometry) Valid(p Pattern) bool { return p&^g.mask == 0 }
