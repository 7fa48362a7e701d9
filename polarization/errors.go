package polarization

import "errors"

// Sentinel errors for model evaluation and fitting.
var (
	// ErrLengthMismatch indicates detuning and signal slices of different lengths.
	ErrLengthMismatch = errors.New("polarization: detuning and signal lengths differ")
	// ErrInsufficientData indicates fewer samples than free parameters.
	ErrInsufficientData = errors.New("polarization: not enough samples to fit six parameters")
	// ErrBadThermalEnergy indicates kT ≤ 0 or non-finite.
	ErrBadThermalEnergy = errors.New("polarization: kT must be > 0 and finite")
	// ErrNotFinite indicates NaN or ±Inf in the input samples or guess.
	ErrNotFinite = errors.New("polarization: NaN or Inf encountered")
	// ErrUnknownMethod indicates an unrecognized fit method.
	ErrUnknownMethod = errors.New("polarization: unknown fit method")
	// ErrNotConverged indicates the optimizer failed to converge; distinct
	// from a converged fit with a large residual.
	ErrNotConverged = errors.New("polarization: fit did not converge")
)
