package sweep

import (
	"math"

	"github.com/kvantor/dotarray/honeycomb"
)

// Axis is one scan coordinate: a named linear direction in detuning
// space swept over Center ± Span in Steps points.
//
// Weights holds the per-dot detuning contribution of one axis unit; the
// detuning of dot i at axis value v is base_i + Weights[i]·v. Steps == 1
// or Span == 0 collapses the axis to the single point Center.
type Axis struct {
	Name    string
	Center  float64
	Span    float64
	Steps   int
	Weights []float64
}

// DetuningAxis builds the fast-path axis: the value is dot d's detuning
// in µeV, applied directly (weight 1 on d, 0 elsewhere).
func DetuningAxis(name string, d, dots int, center, span float64, steps int) Axis {
	w := make([]float64, dots)
	if d >= 0 && d < dots {
		w[d] = 1
	}

	return Axis{Name: name, Center: center, Span: span, Steps: steps, Weights: w}
}

// VirtualAxis builds a named linear-combination axis: one axis unit adds
// weights[i] µeV of detuning to dot i.
func VirtualAxis(name string, weights []float64, center, span float64, steps int) Axis {
	return Axis{Name: name, Center: center, Span: span, Steps: steps, Weights: append([]float64(nil), weights...)}
}

// values materializes the axis coordinates.
func (a Axis) values() []float64 {
	if a.Steps == 1 || a.Span == 0 {
		return []float64{a.Center}
	}
	vs := make([]float64, a.Steps)
	step := 2 * a.Span / float64(a.Steps-1)
	for i := range vs {
		vs[i] = a.Center - a.Span + float64(i)*step
	}

	return vs
}

// validate checks axis shape against the model dimension.
func (a Axis) validate(dots int) error {
	if a.Steps < 1 || a.Span < 0 ||
		math.IsNaN(a.Center) || math.IsInf(a.Center, 0) ||
		math.IsNaN(a.Span) || math.IsInf(a.Span, 0) {
		return ErrBadAxis
	}
	if len(a.Weights) != dots {
		return ErrDimensionMismatch
	}
	for _, w := range a.Weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return ErrNotFinite
		}
	}

	return nil
}

// ObservableFunc reduces a per-cell solver result to the scalar stored
// in the map.
type ObservableFunc func(honeycomb.Result) float64

// TotalCharge is the default observable: Σ n_i.
func TotalCharge(r honeycomb.Result) float64 {
	return float64(r.Occupation.Total())
}

// ProgressFunc receives row-completion notifications during a run. It
// may be called from worker goroutines, but never concurrently.
type ProgressFunc func(rowsDone, totalRows int)

// Options configures a sweep run.
//
// Fields:
//   - Workers    — row-parallel goroutines; ≤ 0 means runtime.NumCPU().
//   - Progress   — optional per-row progress callback.
//   - Observable — per-cell scalar; nil means TotalCharge.
//   - Solver     — tie-break policy passed through to honeycomb.
type Options struct {
	Workers    int
	Progress   ProgressFunc
	Observable ObservableFunc
	Solver     honeycomb.Options
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Solver: honeycomb.DefaultOptions()}
}
