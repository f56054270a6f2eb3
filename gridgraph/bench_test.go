package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridorbit/bitgrid"
	"github.com/katalvlaran/gridorbit/gridgraph"
)

// BenchmarkConnectedComponents measures component splitting of random
// half-filled 8×8 patterns.
func BenchmarkConnectedComponents(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	pool := make([]bitgrid.Pattern, 256)
	for i := range pool {
		pool[i] = bitgrid.Pattern(rng.Uint64())
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gridgraph.ConnectedComponents(pool[i%len(pool)], gridgraph.Conn4)
	}
}
