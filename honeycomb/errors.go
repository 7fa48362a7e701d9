package honeycomb

import "errors"

// Sentinel errors for the charge-state solver.
var (
	// ErrNilModel indicates a nil *dotmodel.DotArray was supplied.
	ErrNilModel = errors.New("honeycomb: dot-array model is nil")
	// ErrDimensionMismatch indicates a detuning or occupation vector whose
	// length differs from the model's dot count.
	ErrDimensionMismatch = errors.New("honeycomb: dimension mismatch")
	// ErrNotFinite indicates a NaN or ±Inf detuning entry or energy term.
	ErrNotFinite = errors.New("honeycomb: NaN or Inf encountered")
	// ErrBadEpsilon indicates a negative or non-finite tie tolerance.
	ErrBadEpsilon = errors.New("honeycomb: tie epsilon must be ≥ 0 and finite")
	// ErrOccupationRange indicates an occupation vector entry outside 0..max.
	ErrOccupationRange = errors.New("honeycomb: occupation outside enumeration bounds")
	// ErrSearchSpaceTooLarge indicates (max+1)^N exceeds MaxEnumeration.
	ErrSearchSpaceTooLarge = errors.New("honeycomb: enumeration space exceeds MaxEnumeration")
)
