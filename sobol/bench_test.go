package sobol_test

import (
	"testing"

	"github.com/katalvlaran/qmcpaths/sobol"
)

// benchmarkDraw measures Draw throughput for a given dimension.
func benchmarkDraw(b *testing.B, dim int) {
	g, err := sobol.New(dim, 19910405)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	pt := make([]float64, dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if g.Remaining() == 0 {
			b.StopTimer()
			g, _ = sobol.New(dim, 19910405)
			b.StartTimer()
		}
		if err = g.Draw(pt); err != nil {
			b.Fatalf("Draw failed: %v", err)
		}
	}
}

// BenchmarkDraw_Dim4 benchmarks the short four-point grid dimension.
func BenchmarkDraw_Dim4(b *testing.B) { benchmarkDraw(b, 4) }

// BenchmarkDraw_Dim11 benchmarks the eleven-point grid dimension.
func BenchmarkDraw_Dim11(b *testing.B) { benchmarkDraw(b, 11) }

// BenchmarkSkip measures the closed-form skip-ahead.
func BenchmarkSkip(b *testing.B) {
	g, err := sobol.New(11, 19910405)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := g.Clone()
		if err = c.Skip(uint64(i%1000000) + 1); err != nil {
			b.Fatalf("Skip failed: %v", err)
		}
	}
}
