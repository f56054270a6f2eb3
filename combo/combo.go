package combo

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxWidth is the largest universe a uint64 subset can describe.
const MaxWidth = 64

// binomialWidth is the widest universe combin.Binomial handles without overflow.
const binomialWidth = 48

// ErrUnknownGenerator is returned by ParseGenerator for unrecognized names.
var ErrUnknownGenerator = errors.New("combo: unknown generator")

// First returns the smallest subset with k bits set: the k low bits.
func First(k int) uint64 {
	switch {
	case k <= 0:
		return 0
	case k >= MaxWidth:
		return ^uint64(0)
	}
	return 1<<uint(k) - 1
}

// Next returns the lexicographically next subset of a width-bit universe
// with the same popcount as subset, or 0 when subset is the last one.
// Next(0, w) is 0.
func Next(subset uint64, width int) uint64 {
	if subset == 0 {
		return 0
	}
	low := subset & -subset
	ripple := subset + low
	if ripple == 0 {
		// carried out of bit 63: the ones were already packed at the top
		return 0
	}
	if width < MaxWidth && ripple>>uint(width) != 0 {
		return 0
	}
	ones := (subset ^ ripple) >> uint(bits.TrailingZeros64(low)+2)
	return ripple | ones
}

// Count returns C(width, k), or 0 when k is outside [0, width].
func Count(width, k int) uint64 {
	if width < 0 || k < 0 || k > width {
		return 0
	}
	if width <= binomialWidth {
		return uint64(combin.Binomial(width, k))
	}
	// combin.Binomial overflows its running product past this width;
	// Pascal's rule stays within uint64 up to C(64, 32).
	row := make([]uint64, k+1)
	row[0] = 1
	for n := 1; n <= width; n++ {
		for j := min(n, k); j > 0; j-- {
			row[j] += row[j-1]
		}
	}
	return row[k]
}

// Generator enumerates all k-subsets of a width-bit universe.
type Generator interface {
	// Walk calls visit once per subset until visit returns false.
	// A k outside [0, width] yields no subsets; k == 0 yields the empty set.
	Walk(width, k int, visit func(subset uint64) bool)
}

// Lexicographic walks subsets in increasing numeric order with First/Next.
type Lexicographic struct{}

// Walk implements Generator.
func (Lexicographic) Walk(width, k int, visit func(uint64) bool) {
	if !inRange(width, k) {
		return
	}
	if k == 0 {
		visit(0)
		return
	}
	for s := First(k); s != 0; s = Next(s, width) {
		if !visit(s) {
			return
		}
	}
}

// Indexed walks subsets as gonum index combinations, each packed into bits.
type Indexed struct{}

// Walk implements Generator.
func (Indexed) Walk(width, k int, visit func(uint64) bool) {
	if !inRange(width, k) {
		return
	}
	if k == 0 {
		visit(0)
		return
	}
	gen := combin.NewCombinationGenerator(width, k)
	idx := make([]int, k)
	for gen.Next() {
		var s uint64
		for _, i := range gen.Combination(idx) {
			s |= 1 << uint(i)
		}
		if !visit(s) {
			return
		}
	}
}

func inRange(width, k int) bool {
	return width >= 0 && width <= MaxWidth && k >= 0 && k <= width
}

// ParseGenerator returns a Generator by name: "lex" or "indexed".
func ParseGenerator(name string) (Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lex", "lexicographic":
		return Lexicographic{}, nil
	case "indexed", "gonum":
		return Indexed{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
}
