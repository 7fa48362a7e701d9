package sweep_test

import (
	"math"
	"testing"

	"github.com/kvantor/dotarray/dotmodel"
	"github.com/kvantor/dotarray/honeycomb"
	"github.com/kvantor/dotarray/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doubleDot returns a symmetric double dot: equal charging energies,
// mutual charging 30 µeV, no tunneling, at most one electron per dot.
func doubleDot(t *testing.T) *dotmodel.DotArray {
	t.Helper()
	m, err := dotmodel.NewDotArray(
		[]float64{100, 100},
		[][]float64{{0, 30}, {30, 0}},
		nil, nil, 1,
	)
	require.NoError(t, err)

	return m
}

// TestRun_HoneycombCorners sweeps a double dot across its four charge
// regions and checks the corner configurations of the map.
func TestRun_HoneycombCorners(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.DetuningAxis("e1", 0, 2, 50, 70, 15),
		Y:     sweep.DetuningAxis("e2", 1, 2, 50, 70, 15),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.XValues, 15)
	require.Len(t, res.YValues, 15)
	assert.Zero(t, res.ErrCount(), "no cell may fail on a well-posed scan")

	last := 14
	assert.Equal(t, honeycomb.Occupation{0, 0}, res.Configs[0][0], "(ε1,ε2)=(-20,-20) is the empty region")
	assert.Equal(t, honeycomb.Occupation{1, 0}, res.Configs[0][last], "(120,-20) loads dot 1")
	assert.Equal(t, honeycomb.Occupation{0, 1}, res.Configs[last][0], "(-20,120) loads dot 2")
	assert.Equal(t, honeycomb.Occupation{1, 1}, res.Configs[last][last], "(120,120) loads both")

	assert.Equal(t, 0.0, res.Observable[0][0])
	assert.Equal(t, 2.0, res.Observable[last][last], "default observable is total charge")
}

// TestRun_ExchangeSymmetry verifies the full map of a symmetric double
// dot is symmetric under exchange of the two detuning axes.
func TestRun_ExchangeSymmetry(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.DetuningAxis("e1", 0, 2, 40, 90, 21),
		Y:     sweep.DetuningAxis("e2", 1, 2, 40, 90, 21),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)

	for iy := range res.YValues {
		for ix := range res.XValues {
			assert.Equal(t, res.Observable[iy][ix], res.Observable[ix][iy],
				"map must be exchange-symmetric at (%d,%d)", ix, iy)
		}
	}
}

// TestRun_ZeroWidthCollapses checks that zero-span axes produce a 1×1
// map with one configuration, not an error.
func TestRun_ZeroWidthCollapses(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.DetuningAxis("e1", 0, 2, 80, 0, 1),
		Y:     sweep.DetuningAxis("e2", 1, 2, -20, 0, 1),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)

	require.Len(t, res.XValues, 1)
	require.Len(t, res.YValues, 1)
	assert.Equal(t, honeycomb.Occupation{1, 0}, res.Configs[0][0])

	// Zero span with a nominal step count still collapses to one line.
	scan.X = sweep.DetuningAxis("e1", 0, 2, 80, 0, 7)
	res, err = scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.XValues, 1)
	assert.Equal(t, []float64{80}, res.XValues)
}

// TestRun_BoundaryFlagPropagation checks the solver's clamped-minimum
// flag survives per cell into the map: filled corners of a max-one
// scan touch the occupation bound, the empty corner does not.
func TestRun_BoundaryFlagPropagation(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.DetuningAxis("e1", 0, 2, 50, 70, 15),
		Y:     sweep.DetuningAxis("e2", 1, 2, 50, 70, 15),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)

	last := 14
	assert.False(t, res.Boundary[0][0], "empty region is not clamped")
	assert.True(t, res.Boundary[0][last], "one loaded dot sits on the max-one bound")
	assert.True(t, res.Boundary[last][0], "one loaded dot sits on the max-one bound")
	assert.True(t, res.Boundary[last][last], "both loaded dots sit on the max-one bound")
}

// TestRun_VirtualAxisCombination scans along a common-mode virtual gate
// that detunes both dots together: the total charge must step 0→2 along
// the diagonal.
func TestRun_VirtualAxisCombination(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.VirtualAxis("common", []float64{1, 1}, 50, 70, 8),
		Y:     sweep.VirtualAxis("diff", []float64{0.5, -0.5}, 0, 0, 1),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)

	first := res.Observable[0][0]
	lastV := res.Observable[0][len(res.XValues)-1]
	assert.Equal(t, 0.0, first, "common mode at -20 µeV keeps the array empty")
	assert.Equal(t, 2.0, lastV, "common mode at 120 µeV fills both dots")
	prev := first
	for _, v := range res.Observable[0] {
		assert.GreaterOrEqual(t, v, prev, "total charge is monotone along the common mode")
		prev = v
	}
}

// TestRun_ProgressReporting collects progress callbacks and checks they
// arrive once per row, monotonically, ending at (rows, rows).
func TestRun_ProgressReporting(t *testing.T) {
	var done []int
	opts := sweep.DefaultOptions()
	opts.Workers = 4
	opts.Progress = func(rowsDone, totalRows int) {
		assert.Equal(t, 9, totalRows)
		done = append(done, rowsDone)
	}

	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.DetuningAxis("e1", 0, 2, 50, 70, 9),
		Y:     sweep.DetuningAxis("e2", 1, 2, 50, 70, 9),
	}
	_, err := scan.Run(opts)
	require.NoError(t, err)

	require.Len(t, done, 9, "one progress call per row")
	for i, d := range done {
		assert.Equal(t, i+1, d, "rowsDone must increase by one per call")
	}
}

// TestRun_WorkerCountsAgree runs the same scan serially and with many
// workers and demands identical maps — cell independence in practice.
func TestRun_WorkerCountsAgree(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		X:     sweep.DetuningAxis("e1", 0, 2, 40, 90, 13),
		Y:     sweep.DetuningAxis("e2", 1, 2, 40, 90, 13),
	}

	serial := sweep.DefaultOptions()
	serial.Workers = 1
	a, err := scan.Run(serial)
	require.NoError(t, err)

	parallel := sweep.DefaultOptions()
	parallel.Workers = 8
	b, err := scan.Run(parallel)
	require.NoError(t, err)

	assert.Equal(t, a.Observable, b.Observable)
	assert.Equal(t, a.Configs, b.Configs)
}

// TestRun_CellFailureIsolation forces every cell to fail numerically
// (overflowing base detunings) and checks the sweep still completes with
// a rectangular error map instead of aborting.
func TestRun_CellFailureIsolation(t *testing.T) {
	scan := sweep.Scan{
		Model: doubleDot(t),
		Base:  []float64{1e300, 1e300},
		X:     sweep.DetuningAxis("e1", 0, 2, 0, 10, 3),
		Y:     sweep.DetuningAxis("e2", 1, 2, 0, 10, 3),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err, "per-cell failures must not abort the sweep")

	assert.Equal(t, 9, res.ErrCount())
	for iy := range res.CellErrs {
		for ix := range res.CellErrs[iy] {
			assert.ErrorIs(t, res.CellErrs[iy][ix], sweep.ErrCellFailed)
			assert.ErrorIs(t, res.CellErrs[iy][ix], honeycomb.ErrNotFinite)
			assert.True(t, math.IsNaN(res.Observable[iy][ix]), "failed cell observable is NaN")
		}
	}

	_, err = res.At(0, 0)
	assert.ErrorIs(t, err, sweep.ErrCellFailed)
}

// TestResult_AtNearestCell checks nearest-cell inspection against a
// single-dot map with known per-cell configurations.
func TestResult_AtNearestCell(t *testing.T) {
	m, err := dotmodel.NewDotArray([]float64{100}, nil, nil, nil, 1)
	require.NoError(t, err)

	scan := sweep.Scan{
		Model: m,
		X:     sweep.DetuningAxis("e1", 0, 1, 50, 50, 3), // values 0, 50, 100 → ν = 0, 0.5, 1
		Y:     sweep.VirtualAxis("none", []float64{0}, 0, 0, 1),
	}
	res, err := scan.Run(sweep.DefaultOptions())
	require.NoError(t, err)

	occ, err := res.At(90, 0)
	require.NoError(t, err)
	assert.Equal(t, honeycomb.Occupation{1}, occ, "90 snaps to the ν=1 cell")

	occ, err = res.At(10, 0)
	require.NoError(t, err)
	assert.Equal(t, honeycomb.Occupation{0}, occ, "10 snaps to the ν=0 cell")
}

// TestRun_Validation exercises the scan-level error set.
func TestRun_Validation(t *testing.T) {
	model := doubleDot(t)
	okX := sweep.DetuningAxis("e1", 0, 2, 0, 10, 3)
	okY := sweep.DetuningAxis("e2", 1, 2, 0, 10, 3)

	_, err := sweep.Scan{X: okX, Y: okY}.Run(sweep.DefaultOptions())
	assert.ErrorIs(t, err, sweep.ErrNilModel)

	bad := okX
	bad.Steps = 0
	_, err = sweep.Scan{Model: model, X: bad, Y: okY}.Run(sweep.DefaultOptions())
	assert.ErrorIs(t, err, sweep.ErrBadAxis)

	bad = okX
	bad.Center = math.NaN()
	_, err = sweep.Scan{Model: model, X: bad, Y: okY}.Run(sweep.DefaultOptions())
	assert.ErrorIs(t, err, sweep.ErrBadAxis)

	bad = okX
	bad.Weights = []float64{1}
	_, err = sweep.Scan{Model: model, X: bad, Y: okY}.Run(sweep.DefaultOptions())
	assert.ErrorIs(t, err, sweep.ErrDimensionMismatch)

	_, err = sweep.Scan{Model: model, Base: []float64{1}, X: okX, Y: okY}.Run(sweep.DefaultOptions())
	assert.ErrorIs(t, err, sweep.ErrDimensionMismatch)

	_, err = sweep.Scan{Model: model, Base: []float64{1, math.Inf(1)}, X: okX, Y: okY}.Run(sweep.DefaultOptions())
	assert.ErrorIs(t, err, sweep.ErrNotFinite)
}
