// Package sweep drives 2D scans over gate/detuning space and assembles
// charge-stability maps from per-cell ground-state solves.
//
// 🚀 What does a sweep do?
//
//	Given a dot-array model and two scan axes, it:
//	  1. resolves every (x, y) grid point to a detuning vector
//	     ε = base + x·w_x + y·w_y (per-dot weight vectors),
//	  2. minimizes the charge-state energy at each point (honeycomb),
//	  3. records the winning occupation, a scalar observable (total
//	     charge by default) and any per-cell failure.
//
// Axis modes:
//   - Detuning axes: DetuningAxis(dot, …) puts weight 1 on a single dot —
//     the axis value is that dot's detuning in µeV, no transform needed.
//   - Combination axes: VirtualAxis(name, weights, …) spreads the axis
//     value over several dots with fixed linear weights, the software
//     analog of sweeping a virtual gate.
//
// Guarantees:
//   - Cells are independent; rows are evaluated in parallel across
//     Options.Workers goroutines. The model and solver are read-only
//     during the run, so no locking is needed beyond the result arrays,
//     which are partitioned by row.
//   - A failing cell never aborts the sweep: its error is recorded in
//     Result.CellErrs and its observable is NaN (errors stay local, maps
//     stay rectangular).
//   - A zero-width axis (Span == 0 or Steps == 1) collapses to a single
//     grid line; a sweep of two such axes is a single-point "scan", not
//     an error.
//   - Progress is reported through an optional callback after each
//     completed row; the library itself never logs.
//
// Result.At(x, y) returns the stored configuration of the grid cell
// nearest to an arbitrary coordinate pair — the synchronous equivalent
// of clicking a point on a rendered map.
package sweep
