package seating_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/seater/seating"
)

// benchmarkOptimalSeat runs OptimalSeat on a row of n seats, each taken
// with probability density, generated from a fixed seed.
func benchmarkOptimalSeat(b *testing.B, n int, density float64) {
	r := rand.New(rand.NewSource(42))
	row := make([]bool, n)
	for i := range row {
		row[i] = r.Float64() < density
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seating.OptimalSeat(row)
	}
}

// BenchmarkOptimalSeat_Sparse measures a 100k-seat row with 5% taken.
func BenchmarkOptimalSeat_Sparse(b *testing.B) { benchmarkOptimalSeat(b, 100_000, 0.05) }

// BenchmarkOptimalSeat_Dense measures a 100k-seat row with 90% taken.
func BenchmarkOptimalSeat_Dense(b *testing.B) { benchmarkOptimalSeat(b, 100_000, 0.9) }

// BenchmarkRender measures drawing a 1k-seat row.
func BenchmarkRender(b *testing.B) {
	row := make([]bool, 1000)
	for i := range row {
		row[i] = i%3 == 0
	}
	seat := seating.OptimalSeat(row)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = seating.Render(row, seat)
	}
}
