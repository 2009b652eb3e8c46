package penrose_test

import (
	"testing"

	"github.com/katalvlaran/quasitile/penrose"
)

// BenchmarkGenerate measures the full pipeline (sun → deflation →
// reassembly → cull) at a visually dense depth.
func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := penrose.Generate(800, 600, 7, nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateDeep stresses the spatial-hash reassembly at a depth
// where a quadratic pairwise search becomes impractical.
func BenchmarkGenerateDeep(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := penrose.Generate(800, 600, 9, nil); err != nil {
			b.Fatal(err)
		}
	}
}
