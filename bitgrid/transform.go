package bitgrid

import "math/bits"

// Rotate turns p 90° clockwise inside the frame: cell (r, c) moves to
// (c, L-1-r). Each column slice is gathered, reversed, and laid down as a
// row. Four rotations return the original pattern.
// p must be Valid for g.
func (g Geometry) Rotate(p Pattern) Pattern {
	var out Pattern
	shift := uint(MaxSize - g.size)
	for c := 0; c < g.size; c++ {
		col := Extract(uint64(p), uint64(g.colMasks[c]))
		if col == 0 {
			continue
		}
		row := uint64(bits.Reverse8(uint8(col))) >> shift
		out |= Pattern(row) << uint(rowBytes*c)
	}
	return out
}

// Mirror reverses the row order inside the frame: cell (r, c) moves to
// (L-1-r, c). Mirror is an involution.
// p must be Valid for g.
func (g Geometry) Mirror(p Pattern) Pattern {
	return Pattern(bits.ReverseBytes64(uint64(p)) >> uint(rowBytes*(MaxSize-g.size)))
}

// Translate shifts the occupied region down to the origin: whole rows while
// row 0 is empty, then single columns while column 0 is empty. The empty
// pattern is returned unchanged.
func Translate(p Pattern) Pattern {
	if p == 0 {
		return 0
	}
	p >>= uint(bits.TrailingZeros64(uint64(p))) &^ (rowBytes - 1)
	return p >> uint(bits.TrailingZeros8(columns(p)))
}
