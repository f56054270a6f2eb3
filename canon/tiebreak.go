package canon

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/gridorbit/bitgrid"
)

// ErrUnknownTieBreak is returned by ParseTieBreak for unrecognized names.
var ErrUnknownTieBreak = errors.New("canon: unknown tie-break rule")

// TieBreak selects which orbit member represents the class.
type TieBreak int

const (
	// MinValue keeps the orbit member with the smallest raw value.
	MinValue TieBreak = iota
	// MaxReversed keeps the orbit member whose bit-reversed value is largest.
	MaxReversed
)

// String returns the flag spelling of the rule.
func (tb TieBreak) String() string {
	switch tb {
	case MinValue:
		return "min"
	case MaxReversed:
		return "maxrev"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(tb))
	}
}

// ParseTieBreak accepts "min" or "maxrev" (case-insensitive).
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "min", "minvalue":
		return MinValue, nil
	case "maxrev", "maxreversed":
		return MaxReversed, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTieBreak, name)
}

// better reports whether candidate beats the current best under tb.
func (tb TieBreak) better(candidate, best bitgrid.Pattern) bool {
	if tb == MaxReversed {
		return bits.Reverse64(uint64(candidate)) > bits.Reverse64(uint64(best))
	}
	return candidate < best
}
