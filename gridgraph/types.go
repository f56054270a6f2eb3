package gridgraph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrGridTooLarge indicates a grid wider or taller than 8 cells.
	ErrGridTooLarge = errors.New("gridgraph: grid must fit in 8×8 cells")
	// ErrBadConnectivity indicates an unknown Connectivity value or name.
	ErrBadConnectivity = errors.New("gridgraph: connectivity must be 4 or 8")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool { return c == Conn4 || c == Conn8 }

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	}
	return fmt.Sprintf("Connectivity(%d)", int(c))
}

// ParseConnectivity accepts "4"/"conn4" or "8"/"conn8".
func ParseConnectivity(name string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "4", "conn4":
		return Conn4, nil
	case "8", "conn8":
		return Conn8, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadConnectivity, name)
}
