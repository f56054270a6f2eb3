package bitgrid

// Extract gathers the bits of x selected by mask into the low bits of the
// result, lowest mask bit first (the portable form of PEXT).
func Extract(x, mask uint64) uint64 {
	var out uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		low := mask & -mask
		if x&low != 0 {
			out |= bit
		}
		mask ^= low
	}
	return out
}

// Deposit scatters the low bits of x into the positions selected by mask,
// lowest mask bit first (the portable form of PDEP).
func Deposit(x, mask uint64) uint64 {
	var out uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		low := mask & -mask
		if x&bit != 0 {
			out |= low
		}
		mask ^= low
	}
	return out
}

// Pack places a raw subset, where bit row*L+col marks cell (row, col),
// into the byte-strided Pattern layout. Bits at or above L² are dropped.
func (g Geometry) Pack(raw uint64) Pattern {
	return Pattern(Deposit(raw, uint64(g.mask)))
}

// Unpack is the inverse of Pack for patterns inside the frame.
func (g Geometry) Unpack(p Pattern) uint64 {
	return Extract(uint64(p), uint64(g.mask))
}
