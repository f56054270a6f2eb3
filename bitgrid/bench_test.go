package bitgrid_test

import (
	"testing"

	"github.com/katalvlaran/gridorbit/bitgrid"
)

// BenchmarkRotate measures one 90° rotation on a half-filled 4×4 grid.
func BenchmarkRotate(b *testing.B) {
	g := mustGeometry(b, 4)
	p := g.Pack(0xa5a5)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = g.Rotate(p)
	}
	_ = p
}

// BenchmarkTranslate measures translation of a shape far from the origin.
func BenchmarkTranslate(b *testing.B) {
	p := bitgrid.Pattern(0).With(5, 6).With(6, 6).With(6, 7)
	var out bitgrid.Pattern
	for i := 0; i < b.N; i++ {
		out = bitgrid.Translate(p)
	}
	_ = out
}
