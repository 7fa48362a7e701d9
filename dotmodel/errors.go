package dotmodel

import "errors"

// Sentinel errors for dotmodel construction and transforms.
// All constructors and transforms return these sentinels (or a
// fmt.Errorf wrap of one); callers match with errors.Is.
var (
	// ErrEmptyModel indicates a model with zero dots.
	ErrEmptyModel = errors.New("dotmodel: model must contain at least one dot")
	// ErrDimensionMismatch indicates a slice or matrix whose size
	// disagrees with the number of dots.
	ErrDimensionMismatch = errors.New("dotmodel: dimension mismatch")
	// ErrNonSquare indicates a lever-arm or inter-site matrix that is not square.
	ErrNonSquare = errors.New("dotmodel: matrix is not square")
	// ErrAsymmetry indicates an inter-site matrix violating symmetry.
	ErrAsymmetry = errors.New("dotmodel: inter-site matrix is not symmetric")
	// ErrNotFinite indicates a NaN or ±Inf where a finite value is required.
	ErrNotFinite = errors.New("dotmodel: NaN or Inf encountered")
	// ErrNonPositiveCharging indicates an on-site charging energy ≤ 0.
	ErrNonPositiveCharging = errors.New("dotmodel: charging energy must be > 0")
	// ErrBadTunnelPair indicates a tunnel coupling referencing an invalid dot pair.
	ErrBadTunnelPair = errors.New("dotmodel: invalid tunnel coupling pair")
	// ErrNegativeTunnel indicates a negative tunnel coupling energy.
	ErrNegativeTunnel = errors.New("dotmodel: tunnel coupling must be ≥ 0")
	// ErrBadOccupationBound indicates a negative per-dot occupation bound.
	ErrBadOccupationBound = errors.New("dotmodel: occupation bound must be ≥ 0")
	// ErrSingularMatrix indicates a lever-arm matrix with no inverse.
	ErrSingularMatrix = errors.New("dotmodel: lever-arm matrix is singular")
	// ErrIllConditioned indicates a lever-arm matrix whose condition number
	// exceeds MaxConditionNumber; inverting it would be numerically unstable.
	ErrIllConditioned = errors.New("dotmodel: lever-arm matrix is ill-conditioned")
)
