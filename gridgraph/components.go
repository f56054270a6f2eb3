package gridgraph

import "github.com/katalvlaran/gridorbit/bitgrid"

// Column guards: shifting a row-byte sideways must not spill into the
// neighboring row.
const (
	notLastCol  bitgrid.Pattern = 0x7f7f7f7f7f7f7f7f
	notFirstCol bitgrid.Pattern = 0xfefefefefefefefe
)

// Dilate returns p together with every cell adjacent to it under conn.
// Cells beyond the 8×8 word are dropped; callers intersect with their own
// frame or pattern. Any conn other than Conn8 is treated as Conn4.
func Dilate(p bitgrid.Pattern, conn Connectivity) bitgrid.Pattern {
	row := p | (p&notLastCol)<<1 | (p&notFirstCol)>>1
	if conn == Conn8 {
		return row | row<<8 | row>>8
	}
	return row | p<<8 | p>>8
}

// ConnectedComponents finds all contiguous regions (“islands”) of marked
// cells in p, according to conn. Components are returned ordered by their
// lowest cell; their union is p. The empty pattern has no components.
//
// Each island is grown from its lowest cell by repeated dilation clipped
// to p, so the work per island is proportional to its diameter.
func ConnectedComponents(p bitgrid.Pattern, conn Connectivity) []bitgrid.Pattern {
	var comps []bitgrid.Pattern
	for rest := p; rest != 0; {
		comp := island(rest&-rest, p, conn)
		comps = append(comps, comp)
		rest &^= comp
	}
	return comps
}

// IsConnected reports whether p is a single non-empty island.
func IsConnected(p bitgrid.Pattern, conn Connectivity) bool {
	return p != 0 && island(p&-p, p, conn) == p
}

// island grows seed inside p until it stops changing.
func island(seed, p bitgrid.Pattern, conn Connectivity) bitgrid.Pattern {
	comp := seed
	for {
		next := Dilate(comp, conn) & p
		if next == comp {
			return comp
		}
		comp = next
	}
}
