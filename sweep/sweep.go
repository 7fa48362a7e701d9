package sweep

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/kvantor/dotarray/dotmodel"
	"github.com/kvantor/dotarray/honeycomb"
)

// Scan describes one 2D charge-stability scan: a model, optional base
// detunings (nil means all-zero) and two axes.
type Scan struct {
	Model *dotmodel.DotArray
	Base  []float64
	X, Y  Axis
}

// Result is the assembled charge-stability map. All grids are
// rectangular: [len(YValues)][len(XValues)], indexed [iy][ix]; a
// zero-width axis contributes a single grid line. Failed cells carry
// a nil Occupation, a NaN observable and a non-nil CellErrs entry.
type Result struct {
	XName, YName     string
	XValues, YValues []float64
	Configs          [][]honeycomb.Occupation
	Observable       [][]float64
	Boundary         [][]bool
	CellErrs         [][]error
}

// Run validates the scan, resolves the coordinate grid and evaluates
// every cell, row-parallel. See the package documentation for the
// concurrency and failure-isolation contract.
func (s Scan) Run(opts Options) (*Result, error) {
	if s.Model == nil {
		return nil, ErrNilModel
	}
	dots := s.Model.Dots()
	if err := s.X.validate(dots); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if err := s.Y.validate(dots); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	base := make([]float64, dots)
	if s.Base != nil {
		if len(s.Base) != dots {
			return nil, ErrDimensionMismatch
		}
		for i, v := range s.Base {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrNotFinite
			}
			base[i] = v
		}
	}

	solver, err := honeycomb.NewSolver(s.Model, opts.Solver)
	if err != nil {
		return nil, err
	}
	observe := opts.Observable
	if observe == nil {
		observe = TotalCharge
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	res := &Result{
		XName:   s.X.Name,
		YName:   s.Y.Name,
		XValues: s.X.values(),
		YValues: s.Y.values(),
	}
	ny, nx := len(res.YValues), len(res.XValues)
	res.Configs = make([][]honeycomb.Occupation, ny)
	res.Observable = make([][]float64, ny)
	res.Boundary = make([][]bool, ny)
	res.CellErrs = make([][]error, ny)
	for iy := 0; iy < ny; iy++ {
		res.Configs[iy] = make([]honeycomb.Occupation, nx)
		res.Observable[iy] = make([]float64, nx)
		res.Boundary[iy] = make([]bool, nx)
		res.CellErrs[iy] = make([]error, nx)
	}
	if workers > ny {
		workers = ny
	}

	// Rows are independent; each worker owns a private detuning buffer
	// and writes only to its own rows of the result arrays.
	rows := make(chan int)
	var wg sync.WaitGroup
	var progressMu sync.Mutex
	rowsDone := 0
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			det := make([]float64, dots)
			for iy := range rows {
				yv := res.YValues[iy]
				for ix := 0; ix < nx; ix++ {
					xv := res.XValues[ix]
					for i := 0; i < dots; i++ {
						det[i] = base[i] + s.X.Weights[i]*xv + s.Y.Weights[i]*yv
					}
					r, err := solver.Minimize(det)
					if err != nil {
						res.CellErrs[iy][ix] = fmt.Errorf("%w: row %d col %d: %w", ErrCellFailed, iy, ix, err)
						res.Observable[iy][ix] = math.NaN()
						continue
					}
					res.Configs[iy][ix] = r.Occupation
					res.Observable[iy][ix] = observe(r)
					res.Boundary[iy][ix] = r.OnBoundary
				}
				if opts.Progress != nil {
					progressMu.Lock()
					rowsDone++
					opts.Progress(rowsDone, ny)
					progressMu.Unlock()
				}
			}
		}()
	}
	for iy := 0; iy < ny; iy++ {
		rows <- iy
	}
	close(rows)
	wg.Wait()

	return res, nil
}

// ErrCount returns the number of failed cells.
func (r *Result) ErrCount() int {
	count := 0
	for _, row := range r.CellErrs {
		for _, err := range row {
			if err != nil {
				count++
			}
		}
	}

	return count
}

// At returns the stored charge configuration of the grid cell nearest to
// the coordinate pair (x, y), in axis units. For a failed cell it
// returns the recorded error (matching ErrCellFailed). Coordinate ties
// resolve to the lower index.
func (r *Result) At(x, y float64) (honeycomb.Occupation, error) {
	ix := nearestIndex(r.XValues, x)
	iy := nearestIndex(r.YValues, y)
	if err := r.CellErrs[iy][ix]; err != nil {
		return nil, err
	}

	return r.Configs[iy][ix].Clone(), nil
}

// nearestIndex finds the index of the value closest to v.
func nearestIndex(vs []float64, v float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, c := range vs {
		if d := math.Abs(c - v); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
