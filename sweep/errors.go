package sweep

import "errors"

// Sentinel errors for sweep configuration and result inspection.
var (
	// ErrNilModel indicates a scan without a dot-array model.
	ErrNilModel = errors.New("sweep: dot-array model is nil")
	// ErrBadAxis indicates an axis with Steps < 1, negative Span or a
	// non-finite Center/Span.
	ErrBadAxis = errors.New("sweep: invalid axis")
	// ErrDimensionMismatch indicates axis weights or base detunings whose
	// length differs from the model's dot count.
	ErrDimensionMismatch = errors.New("sweep: dimension mismatch")
	// ErrNotFinite indicates NaN or ±Inf in axis weights or base detunings.
	ErrNotFinite = errors.New("sweep: NaN or Inf encountered")
	// ErrCellFailed is wrapped around per-cell solver errors recorded in
	// Result.CellErrs and returned by Result.At for failed cells.
	ErrCellFailed = errors.New("sweep: cell evaluation failed")
)
