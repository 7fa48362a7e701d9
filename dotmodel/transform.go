package dotmodel

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MaxConditionNumber is the largest 2-norm condition number accepted for
// a lever-arm matrix. Beyond it the inverse carries too few significant
// digits to trust a gate reconstruction, so construction fails with
// ErrIllConditioned instead of letting noise masquerade as voltages.
const MaxConditionNumber = 1e12

// LeverArm is an invertible N×N map from gate voltages (mV) to energy
// detunings (µeV). The inverse is computed once at construction, after
// the conditioning check, so both transform directions are cheap and
// cannot fail at call sites for numerical reasons.
type LeverArm struct {
	n   int
	fwd *mat.Dense
	inv *mat.Dense
}

// NewLeverArm validates rows as a finite, square, well-conditioned
// matrix and precomputes its inverse.
//
// Returns ErrEmptyModel for no rows, ErrNonSquare for ragged or
// non-square input, ErrNotFinite on NaN/Inf entries, ErrSingularMatrix
// if no inverse exists and ErrIllConditioned if the condition number
// exceeds MaxConditionNumber.
func NewLeverArm(rows [][]float64) (*LeverArm, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptyModel
	}
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNotFinite
			}
			data = append(data, v)
		}
	}

	fwd := mat.NewDense(n, n, data)
	cond := mat.Cond(fwd, 2)
	if math.IsInf(cond, 1) {
		return nil, ErrSingularMatrix
	}
	if cond > MaxConditionNumber {
		return nil, ErrIllConditioned
	}

	var inv mat.Dense
	if err := inv.Inverse(fwd); err != nil {
		// mat.Condition from Inverse past our own gate still means the
		// reconstruction is untrustworthy; refuse the matrix.
		return nil, ErrIllConditioned
	}

	return &LeverArm{n: n, fwd: fwd, inv: &inv}, nil
}

// Dim returns the matrix dimension N.
func (l *LeverArm) Dim() int { return l.n }

// GateToDetuning maps gate voltages (mV) to detunings (µeV):
// e = M · g. Pure; returns a fresh vector.
// Returns ErrDimensionMismatch when len(gates) != Dim().
func (l *LeverArm) GateToDetuning(gates []float64) ([]float64, error) {
	return l.apply(l.fwd, gates)
}

// DetuningToGate maps detunings (µeV) to gate voltages (mV):
// g = M⁻¹ · e. Pure; returns a fresh vector.
// Returns ErrDimensionMismatch when len(detunings) != Dim().
func (l *LeverArm) DetuningToGate(detunings []float64) ([]float64, error) {
	return l.apply(l.inv, detunings)
}

func (l *LeverArm) apply(m *mat.Dense, x []float64) ([]float64, error) {
	if len(x) != l.n {
		return nil, ErrDimensionMismatch
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNotFinite
		}
	}
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(l.n, append([]float64(nil), x...)))

	res := make([]float64, l.n)
	copy(res, out.RawVector().Data)

	return res, nil
}
