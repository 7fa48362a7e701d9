package honeycomb_test

import (
	"testing"

	"github.com/kvantor/dotarray/dotmodel"
	"github.com/kvantor/dotarray/honeycomb"
)

// benchmarkMinimize runs Minimize on an n-dot chain with the given
// occupation bound; neighbors share cross-capacitance and tunneling.
func benchmarkMinimize(b *testing.B, dots, maxOcc int) {
	charging := make([]float64, dots)
	inter := make([][]float64, dots)
	for i := range charging {
		charging[i] = 150
		inter[i] = make([]float64, dots)
	}
	tunnel := make([]dotmodel.TunnelCoupling, 0, dots-1)
	for i := 0; i+1 < dots; i++ {
		inter[i][i+1] = 25
		inter[i+1][i] = 25
		tunnel = append(tunnel, dotmodel.TunnelCoupling{I: i, J: i + 1, T: 3})
	}
	model, err := dotmodel.NewDotArray(charging, inter, tunnel, nil, maxOcc)
	if err != nil {
		b.Fatalf("model: %v", err)
	}
	solver, err := honeycomb.NewSolver(model, honeycomb.DefaultOptions())
	if err != nil {
		b.Fatalf("solver: %v", err)
	}
	det := make([]float64, dots)
	for i := range det {
		det[i] = float64(35 * i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := solver.Minimize(det); err != nil {
			b.Fatalf("minimize: %v", err)
		}
	}
}

// BenchmarkMinimize_FourDotsTwoElectrons matches the reference 2×2 array scale.
func BenchmarkMinimize_FourDotsTwoElectrons(b *testing.B) {
	benchmarkMinimize(b, 4, 2)
}

// BenchmarkMinimize_SixDotsThreeElectrons stresses the enumeration growth.
func BenchmarkMinimize_SixDotsThreeElectrons(b *testing.B) {
	benchmarkMinimize(b, 6, 3)
}
