package honeycomb

import (
	"math"

	"github.com/kvantor/dotarray/dotmodel"
)

// Solver evaluates and minimizes the charge-state energy functional of
// one dot-array model. It is read-only after construction and safe for
// concurrent use by multiple goroutines.
type Solver struct {
	model  *dotmodel.DotArray
	tunnel []dotmodel.TunnelCoupling
	eps    float64
}

// NewSolver binds a solver to a model.
// Returns ErrNilModel for a nil model, ErrBadEpsilon for a negative or
// non-finite TieEpsilon, and ErrSearchSpaceTooLarge when the model's
// occupation lattice exceeds MaxEnumeration.
func NewSolver(model *dotmodel.DotArray, opts Options) (*Solver, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if opts.TieEpsilon < 0 || math.IsNaN(opts.TieEpsilon) || math.IsInf(opts.TieEpsilon, 0) {
		return nil, ErrBadEpsilon
	}
	if _, err := latticeSize(model.Dots(), model.MaxOccupation()); err != nil {
		return nil, err
	}

	return &Solver{
		model:  model,
		tunnel: model.TunnelCouplings(),
		eps:    opts.TieEpsilon,
	}, nil
}

// latticeSize returns (max+1)^dots with an overflow-safe cap check.
func latticeSize(dots, maxOcc int) (int, error) {
	size := 1
	for i := 0; i < dots; i++ {
		size *= maxOcc + 1
		if size > MaxEnumeration {
			return 0, ErrSearchSpaceTooLarge
		}
	}

	return size, nil
}

// offsets resolves the per-dot occupation offsets ν_i = ν0_i + ε_i/C_i
// after validating the detuning vector.
func (s *Solver) offsets(detunings []float64) ([]float64, error) {
	if len(detunings) != s.model.Dots() {
		return nil, ErrDimensionMismatch
	}
	nu := make([]float64, len(detunings))
	for i, e := range detunings {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil, ErrNotFinite
		}
		nu[i] = s.model.OffsetBase(i) + e/s.model.Charging(i)
	}

	return nu, nil
}

// chargeEnergy evaluates the purely electrostatic part of E(n).
func (s *Solver) chargeEnergy(n []int, nu []float64) float64 {
	e := 0.0
	for i, ni := range n {
		d := float64(ni) - nu[i]
		e += 0.5 * s.model.Charging(i) * d * d
		for j := i + 1; j < len(n); j++ {
			e += s.model.InterSite(i, j) * float64(ni) * float64(n[j])
		}
	}

	return e
}

// hybridization returns the summed avoided-crossing gain over all
// tunnel-coupled pairs for configuration n. For each pair the gain is
// (√(δ²+4t²)−δ)/2 with δ the magnitude of the cheapest in-bounds
// single-electron transfer across the pair; pairs with no legal
// transfer contribute nothing.
func (s *Solver) hybridization(n []int, nu []float64, base float64, scratch []int) float64 {
	gain := 0.0
	maxOcc := s.model.MaxOccupation()
	for _, tc := range s.tunnel {
		if tc.T == 0 {
			continue
		}
		delta := math.Inf(1)
		// i → j transfer
		if n[tc.I] > 0 && n[tc.J] < maxOcc {
			copy(scratch, n)
			scratch[tc.I]--
			scratch[tc.J]++
			delta = math.Min(delta, math.Abs(s.chargeEnergy(scratch, nu)-base))
		}
		// j → i transfer
		if n[tc.J] > 0 && n[tc.I] < maxOcc {
			copy(scratch, n)
			scratch[tc.J]--
			scratch[tc.I]++
			delta = math.Min(delta, math.Abs(s.chargeEnergy(scratch, nu)-base))
		}
		if math.IsInf(delta, 1) {
			continue
		}
		gain += 0.5 * (math.Sqrt(delta*delta+4*tc.T*tc.T) - delta)
	}

	return gain
}

// Energy evaluates E(occ) at the given detunings.
// Returns ErrDimensionMismatch, ErrOccupationRange or ErrNotFinite on
// invalid input.
func (s *Solver) Energy(occ Occupation, detunings []float64) (float64, error) {
	if len(occ) != s.model.Dots() {
		return 0, ErrDimensionMismatch
	}
	for _, ni := range occ {
		if ni < 0 || ni > s.model.MaxOccupation() {
			return 0, ErrOccupationRange
		}
	}
	nu, err := s.offsets(detunings)
	if err != nil {
		return 0, err
	}
	scratch := make([]int, len(occ))
	base := s.chargeEnergy(occ, nu)
	e := base - s.hybridization(occ, nu, base, scratch)
	if math.IsNaN(e) || math.IsInf(e, 0) {
		return 0, ErrNotFinite
	}

	return e, nil
}

// Minimize finds the ground charge configuration at the given detunings
// by exhaustive enumeration of the bounded occupation lattice.
//
// Determinism: the lattice is walked in ascending lexicographic order
// and a candidate only displaces the incumbent when it is lower by more
// than TieEpsilon, so degenerate minima resolve to the lexicographically
// smallest vector on every call.
//
// Returns ErrDimensionMismatch or ErrNotFinite on invalid detunings.
func (s *Solver) Minimize(detunings []float64) (Result, error) {
	nu, err := s.offsets(detunings)
	if err != nil {
		return Result{}, err
	}

	dots := s.model.Dots()
	maxOcc := s.model.MaxOccupation()
	n := make([]int, dots)
	scratch := make([]int, dots)

	best := Occupation(nil)
	bestE := math.Inf(1)
	for {
		base := s.chargeEnergy(n, nu)
		e := base - s.hybridization(n, nu, base, scratch)
		if best == nil || e < bestE-s.eps {
			best = append(best[:0], n...)
			bestE = e
		}

		// Odometer increment; most-significant digit first keeps the
		// walk lexicographically ascending.
		i := dots - 1
		for ; i >= 0; i-- {
			if n[i] < maxOcc {
				n[i]++
				break
			}
			n[i] = 0
		}
		if i < 0 {
			break
		}
	}

	if math.IsNaN(bestE) || math.IsInf(bestE, 0) {
		return Result{}, ErrNotFinite
	}

	onBoundary := false
	if maxOcc > 0 {
		for _, ni := range best {
			if ni == maxOcc {
				onBoundary = true
				break
			}
		}
	}

	return Result{Occupation: best, Energy: bestE, OnBoundary: onBoundary}, nil
}
