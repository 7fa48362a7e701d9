package polarization

import (
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/optimize"
)

// Method selects the fitting backend.
type Method int

const (
	// LevenbergMarquardt least squares over the per-sample residuals (default).
	LevenbergMarquardt Method = iota
	// NelderMead simplex over the summed squared residual.
	NelderMead
)

// String implements fmt.Stringer for fit metadata.
func (m Method) String() string {
	switch m {
	case LevenbergMarquardt:
		return "levenberg-marquardt"
	case NelderMead:
		return "nelder-mead"
	default:
		return "unknown"
	}
}

// Fit backend defaults.
const (
	// DefaultMaxIterations caps optimizer iterations.
	DefaultMaxIterations = 200
	// DefaultObjectiveTol is the LM objective tolerance.
	DefaultObjectiveTol = 1e-16
)

// FitOptions configures Fit.
//
// Fields:
//   - Method        — backend; LevenbergMarquardt by default.
//   - InitialGuess  — starting parameters; nil selects the documented
//     heuristic (outer-decile slopes, steepest-gradient center, decile
//     extrapolation for background and height, t = 2kT). The heuristic
//     is a fixed fallback, not data-optimal; supply a guess when it is
//     known to be poor for a trace.
//   - MaxIterations — iteration cap; ≤ 0 means DefaultMaxIterations.
type FitOptions struct {
	Method        Method
	InitialGuess  *Params
	MaxIterations int
}

// DefaultFitOptions returns the documented defaults.
func DefaultFitOptions() FitOptions {
	return FitOptions{Method: LevenbergMarquardt}
}

// FitResult is the immutable outcome of one fit call.
type FitResult struct {
	Params       Params  // fitted parameters
	InitialGuess Params  // the guess actually used
	KT           float64 // thermal energy held fixed during the fit (µeV)
	Method       Method  // backend that produced Params
	Residual     float64 // summed squared residual at Params
}

// Fit fits the polarization-line model to (detuning, signal) samples
// with kT held fixed. Samples are expected in ascending detuning order
// (the natural order of a sweep); only the heuristic guess depends on
// it.
//
// Returns ErrLengthMismatch, ErrInsufficientData, ErrBadThermalEnergy
// or ErrNotFinite on invalid input, ErrUnknownMethod for an
// unrecognized backend and ErrNotConverged when the optimizer fails.
func Fit(detunings, signal []float64, kT float64, opts FitOptions) (*FitResult, error) {
	if len(detunings) != len(signal) {
		return nil, ErrLengthMismatch
	}
	if len(detunings) < NumParams {
		return nil, ErrInsufficientData
	}
	if kT <= 0 || math.IsNaN(kT) || math.IsInf(kT, 0) {
		return nil, ErrBadThermalEnergy
	}
	for i := range detunings {
		if math.IsNaN(detunings[i]) || math.IsInf(detunings[i], 0) ||
			math.IsNaN(signal[i]) || math.IsInf(signal[i], 0) {
			return nil, ErrNotFinite
		}
	}

	guess := heuristicGuess(detunings, signal, kT)
	if opts.InitialGuess != nil {
		guess = *opts.InitialGuess
	}
	if !guess.finite() {
		return nil, ErrNotFinite
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = DefaultMaxIterations
	}

	var fitted Params
	var err error
	switch opts.Method {
	case LevenbergMarquardt:
		fitted, err = fitLM(detunings, signal, kT, guess, maxIter)
	case NelderMead:
		fitted, err = fitNelderMead(detunings, signal, kT, guess, maxIter)
	default:
		return nil, ErrUnknownMethod
	}
	if err != nil {
		return nil, err
	}
	if !fitted.finite() {
		return nil, ErrNotConverged
	}

	return &FitResult{
		Params:       fitted,
		InitialGuess: guess,
		KT:           kT,
		Method:       opts.Method,
		Residual:     sumSquares(detunings, signal, kT, fitted),
	}, nil
}

// fitLM minimizes the per-sample residual vector with
// Levenberg–Marquardt and a numerical Jacobian.
func fitLM(xs, ys []float64, kT float64, guess Params, maxIter int) (Params, error) {
	residuals := func(dst, v []float64) {
		p := paramsFromVector(v)
		for i, x := range xs {
			dst[i] = p.Eval(x, kT) - ys[i]
		}
	}
	jacobian := lm.NumJac{Func: residuals}

	problem := lm.LMProblem{
		Dim:        NumParams,
		Size:       len(xs),
		Func:       residuals,
		Jac:        jacobian.Jac,
		InitParams: guess.vector(),
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}
	results, err := lm.LM(problem, &lm.Settings{Iterations: maxIter, ObjectiveTol: DefaultObjectiveTol})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}

	return paramsFromVector(results.X), nil
}

// fitNelderMead minimizes the summed squared residual with a simplex.
func fitNelderMead(xs, ys []float64, kT float64, guess Params, maxIter int) (Params, error) {
	problem := optimize.Problem{
		Func: func(v []float64) float64 {
			return sumSquares(xs, ys, kT, paramsFromVector(v))
		},
	}
	settings := &optimize.Settings{MajorIterations: maxIter * 10}
	result, err := optimize.Minimize(problem, guess.vector(), settings, &optimize.NelderMead{})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}
	if serr := result.Status.Err(); serr != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrNotConverged, serr)
	}

	return paramsFromVector(result.X), nil
}

// sumSquares is the fit objective: Σ (model(x_i) − y_i)².
func sumSquares(xs, ys []float64, kT float64, p Params) float64 {
	sse := 0.0
	for i, x := range xs {
		d := p.Eval(x, kT) - ys[i]
		sse += d * d
	}

	return sse
}

// heuristicGuess derives the fixed initial guess from the trace:
// side slopes from the outer deciles, center at the steepest gradient,
// background and height from decile means extrapolated to the center,
// and t = 2kT as a thermal-scale starting coupling.
func heuristicGuess(xs, ys []float64, kT float64) Params {
	n := len(xs) / 10
	if n < 2 {
		n = 2
	}
	mL := slope(xs[:n], ys[:n])
	mR := slope(xs[len(xs)-n:], ys[len(ys)-n:])

	// Steepest central difference marks the transition center.
	center := xs[len(xs)/2]
	steepest := -1.0
	for i := 1; i+1 < len(xs); i++ {
		dx := xs[i+1] - xs[i-1]
		if dx == 0 {
			continue
		}
		if g := math.Abs((ys[i+1] - ys[i-1]) / dx); g > steepest {
			steepest = g
			center = xs[i]
		}
	}

	mxL, myL := mean(xs[:n]), mean(ys[:n])
	mxR, myR := mean(xs[len(xs)-n:]), mean(ys[len(ys)-n:])
	background := myL - mL*(mxL-center)
	height := (myR - mR*(mxR-center)) - background

	return Params{
		TunnelCoupling: 2 * kT,
		Center:         center,
		Background:     background,
		LeftSlope:      mL,
		RightSlope:     mR,
		Height:         height,
	}
}

// slope is the least-squares slope of ys over xs.
func slope(xs, ys []float64) float64 {
	mx, my := mean(xs), mean(ys)
	num, den := 0.0, 0.0
	for i := range xs {
		num += (xs[i] - mx) * (ys[i] - my)
		den += (xs[i] - mx) * (xs[i] - mx)
	}
	if den == 0 {
		return 0
	}

	return num / den
}

// mean is the arithmetic mean.
func mean(vs []float64) float64 {
	sum := 0.0
	for _, v := range vs {
		sum += v
	}

	return sum / float64(len(vs))
}
