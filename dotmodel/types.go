package dotmodel

import (
	"math"
)

// SymmetryEpsilon is the tolerance used when checking inter-site symmetry.
const SymmetryEpsilon = 1e-9

// TunnelCoupling is a hybridization energy T (µeV) between dots I and J.
// Pairs are undirected; (I,J) and (J,I) denote the same coupling.
type TunnelCoupling struct {
	I, J int
	T    float64
}

// DotArray is the immutable description of a capacitively coupled array
// of N quantum dots. Construct with NewDotArray; the zero value is not
// usable.
//
// Energy conventions (all µeV):
//   - Charging[i] is the on-site charging energy C_i of dot i.
//   - InterSite[i][j] is the mutual charging energy C_ij (symmetric,
//     diagonal ignored).
//   - Tunnel lists hybridized dot pairs with coupling energy t_ij.
//
// OffsetBase[i] is a static occupation offset ν0_i added to the
// detuning-induced offset ε_i/C_i when evaluating the charge-state
// energy functional. MaxOccupation bounds the electron count per dot
// (inclusive).
type DotArray struct {
	charging      []float64
	interSite     [][]float64
	tunnel        []TunnelCoupling
	offsetBase    []float64
	maxOccupation int
}

// NewDotArray validates and deep-copies the model description.
//
// Requirements:
//   - at least one dot; Charging[i] > 0 and finite
//   - interSite nil (treated as all-zero) or N×N, finite, symmetric
//     within SymmetryEpsilon
//   - offsetBase nil (treated as all-zero) or length N and finite
//   - tunnel pairs with distinct in-range indices and T ≥ 0, finite
//   - maxOccupation ≥ 0
//
// Returns ErrEmptyModel, ErrNonPositiveCharging, ErrNotFinite,
// ErrNonSquare, ErrDimensionMismatch, ErrAsymmetry, ErrBadTunnelPair,
// ErrNegativeTunnel or ErrBadOccupationBound on violation.
func NewDotArray(charging []float64, interSite [][]float64, tunnel []TunnelCoupling, offsetBase []float64, maxOccupation int) (*DotArray, error) {
	n := len(charging)
	if n == 0 {
		return nil, ErrEmptyModel
	}
	if maxOccupation < 0 {
		return nil, ErrBadOccupationBound
	}
	for _, c := range charging {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, ErrNotFinite
		}
		if c <= 0 {
			return nil, ErrNonPositiveCharging
		}
	}

	cs := make([][]float64, n)
	for i := range cs {
		cs[i] = make([]float64, n)
	}
	if interSite != nil {
		if len(interSite) != n {
			return nil, ErrDimensionMismatch
		}
		for i, row := range interSite {
			if len(row) != n {
				return nil, ErrNonSquare
			}
			for j, v := range row {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, ErrNotFinite
				}
				cs[i][j] = v
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if math.Abs(cs[i][j]-cs[j][i]) > SymmetryEpsilon {
					return nil, ErrAsymmetry
				}
			}
		}
	}

	base := make([]float64, n)
	if offsetBase != nil {
		if len(offsetBase) != n {
			return nil, ErrDimensionMismatch
		}
		for i, v := range offsetBase {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNotFinite
			}
			base[i] = v
		}
	}

	ts := make([]TunnelCoupling, 0, len(tunnel))
	for _, tc := range tunnel {
		if tc.I < 0 || tc.I >= n || tc.J < 0 || tc.J >= n || tc.I == tc.J {
			return nil, ErrBadTunnelPair
		}
		if math.IsNaN(tc.T) || math.IsInf(tc.T, 0) {
			return nil, ErrNotFinite
		}
		if tc.T < 0 {
			return nil, ErrNegativeTunnel
		}
		// Normalize pair order for deterministic iteration.
		if tc.I > tc.J {
			tc.I, tc.J = tc.J, tc.I
		}
		ts = append(ts, tc)
	}

	return &DotArray{
		charging:      append([]float64(nil), charging...),
		interSite:     cs,
		tunnel:        ts,
		offsetBase:    base,
		maxOccupation: maxOccupation,
	}, nil
}

// Dots returns the number of dots N.
func (d *DotArray) Dots() int { return len(d.charging) }

// Charging returns the on-site charging energy of dot i (µeV).
func (d *DotArray) Charging(i int) float64 { return d.charging[i] }

// InterSite returns the mutual charging energy between dots i and j (µeV).
func (d *DotArray) InterSite(i, j int) float64 { return d.interSite[i][j] }

// OffsetBase returns the static occupation offset of dot i.
func (d *DotArray) OffsetBase(i int) float64 { return d.offsetBase[i] }

// MaxOccupation returns the inclusive per-dot electron bound.
func (d *DotArray) MaxOccupation() int { return d.maxOccupation }

// TunnelCouplings returns the normalized (I<J), deterministic-order list
// of tunnel couplings. The returned slice is a copy.
func (d *DotArray) TunnelCouplings() []TunnelCoupling {
	return append([]TunnelCoupling(nil), d.tunnel...)
}
