package rescale_test

import (
	"math"
	"testing"

	"github.com/quantakit/crcal/pulse"
	"github.com/quantakit/crcal/rescale"
)

// benchmarkRescale runs Rescale on the reference pulse at theta,
// failing fast on unexpected errors.
func benchmarkRescale(b *testing.B, theta float64) {
	g, err := pulse.NewGaussianSquare(1, 768, 64, 512.00000001)
	if err != nil {
		b.Fatalf("baseline pulse: %v", err)
	}
	opts := rescale.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = rescale.Rescale(g, theta, opts); err != nil {
			b.Fatalf("Rescale failed: %v", err)
		}
	}
}

// BenchmarkRescale_Quarter benchmarks a shrinking rescale (θ=π/4).
func BenchmarkRescale_Quarter(b *testing.B) { benchmarkRescale(b, math.Pi/4) }

// BenchmarkRescale_Identity benchmarks the no-op angle (θ=π/2).
func BenchmarkRescale_Identity(b *testing.B) { benchmarkRescale(b, math.Pi/2) }

// BenchmarkRescale_Double benchmarks a stretching rescale (θ=π).
func BenchmarkRescale_Double(b *testing.B) { benchmarkRescale(b, math.Pi) }
