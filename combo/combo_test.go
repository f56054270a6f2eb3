package combo_test

import (
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridorbit/combo"
)

func collect(g combo.Generator, width, k int) []uint64 {
	var out []uint64
	g.Walk(width, k, func(s uint64) bool {
		out = append(out, s)
		return true
	})
	return out
}

// TestNext_Sequence checks the 2-of-4 walk step by step.
func TestNext_Sequence(t *testing.T) {
	want := []uint64{0b0011, 0b0101, 0b0110, 0b1001, 0b1010, 0b1100}
	got := []uint64{combo.First(2)}
	for s := combo.Next(got[0], 4); s != 0; s = combo.Next(s, 4) {
		got = append(got, s)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("2-of-4 sequence mismatch (-want +got):\n%s", diff)
	}
}

// TestNext_Edges covers the sentinel and the top of a full 64-bit universe.
func TestNext_Edges(t *testing.T) {
	assert.Equal(t, uint64(0), combo.Next(0, 16))
	assert.Equal(t, uint64(0), combo.Next(^uint64(0), 64), "all 64 bits is the only 64-subset")
	assert.Equal(t, uint64(0), combo.Next(1<<63, 64), "last singleton")
	assert.Equal(t, uint64(1<<63|1), combo.Next(1<<62|1<<61, 64))
	assert.Equal(t, uint64(0), combo.Next(0b1000, 4))
	assert.Equal(t, ^uint64(0), combo.First(64))
	assert.Equal(t, uint64(0), combo.First(0))
}

// TestGenerators_ExactlyOnce walks every (width, k) up to 12 with both
// generators: each must visit C(width, k) distinct k-subsets inside the
// universe, and both must visit the same set.
func TestGenerators_ExactlyOnce(t *testing.T) {
	for width := 0; width <= 12; width++ {
		for k := 0; k <= width; k++ {
			want := combo.Count(width, k)
			lex := collect(combo.Lexicographic{}, width, k)
			idx := collect(combo.Indexed{}, width, k)
			require.Len(t, lex, int(want), "lex w=%d k=%d", width, k)
			require.Len(t, idx, int(want), "indexed w=%d k=%d", width, k)

			seen := make(map[uint64]bool, len(lex))
			for i, s := range lex {
				require.Equal(t, k, bits.OnesCount64(s))
				require.Zero(t, s>>uint(width), "outside universe")
				require.False(t, seen[s], "duplicate %#b", s)
				if i > 0 {
					require.Greater(t, s, lex[i-1], "lexicographic order")
				}
				seen[s] = true
			}
			for _, s := range idx {
				require.True(t, seen[s], "indexed produced %#b unknown to lex", s)
			}
		}
	}
}

// TestWalk_OutOfRange yields nothing for impossible subset sizes.
func TestWalk_OutOfRange(t *testing.T) {
	for _, g := range []combo.Generator{combo.Lexicographic{}, combo.Indexed{}} {
		assert.Empty(t, collect(g, 4, 5))
		assert.Empty(t, collect(g, 4, -1))
		assert.Empty(t, collect(g, 65, 1))
	}
}

// TestWalk_Stop verifies that visit returning false ends the walk.
func TestWalk_Stop(t *testing.T) {
	for _, g := range []combo.Generator{combo.Lexicographic{}, combo.Indexed{}} {
		calls := 0
		g.Walk(10, 3, func(uint64) bool {
			calls++
			return calls < 5
		})
		assert.Equal(t, 5, calls)
	}
}

// TestCount checks binomials, including the widest universe.
func TestCount(t *testing.T) {
	assert.Equal(t, uint64(1), combo.Count(0, 0))
	assert.Equal(t, uint64(1820), combo.Count(16, 4))
	assert.Equal(t, uint64(12870), combo.Count(16, 8))
	assert.Equal(t, uint64(0), combo.Count(3, 4))
	assert.Equal(t, uint64(0), combo.Count(3, -1))
	assert.Equal(t, uint64(1832624140942590534), combo.Count(64, 32))
	assert.Equal(t, uint64(64), combo.Count(64, 63))

	var sum uint64
	for k := 0; k <= 16; k++ {
		sum += combo.Count(16, k)
	}
	assert.Equal(t, uint64(1<<16), sum)
}

// TestParseGenerator covers names and errors.
func TestParseGenerator(t *testing.T) {
	g, err := combo.ParseGenerator("lex")
	require.NoError(t, err)
	assert.Equal(t, combo.Lexicographic{}, g)

	g, err = combo.ParseGenerator("Indexed")
	require.NoError(t, err)
	assert.Equal(t, combo.Indexed{}, g)

	_, err = combo.ParseGenerator("gray")
	assert.ErrorIs(t, err, combo.ErrUnknownGenerator)
}
