// Package dotarray simulates capacitively-coupled quantum-dot arrays:
// charge-stability ("honeycomb") diagrams and inter-dot polarization-line
// fits, in pure Go.
//
// 🚀 What is dotarray?
//
//	A small, deterministic toolkit for semiconductor-qubit tuning math:
//		• Dot-array model: on-site & inter-site charging energies, tunnel
//		  couplings, occupation bounds, lever-arm matrix
//		• Gate ↔ detuning transforms with explicit conditioning checks
//		• Exact charge-state minimization over the bounded occupation lattice
//		• Parallel 2D sweeps producing charge-stability maps
//		• Polarization-line model & nonlinear least-squares fitting
//
// ✨ Why choose dotarray?
//
//   - Reproducible — deterministic tie-breaking, no global state
//   - Fail-fast — sentinel errors, no silent NaN propagation
//   - Pure functions — models are immutable values, transforms return new vectors
//   - Parallel where it pays — sweep cells are evaluated row-parallel
//
// Everything is organized under five subpackages:
//
//	units/        — physical constants (µeV units) and kT derivation
//	dotmodel/     — the dot-array model and lever-arm transforms
//	honeycomb/    — the charge-state energy minimizer
//	sweep/        — the 2D scan driver and stability-map result
//	polarization/ — the polarization-line model and fitter
//
// A command-line front-end lives in cmd/dotsim.
//
// Quick ASCII example of a 2×2 array:
//
//	    D1───D2
//	    │     │
//	    D3───D4
//
//	four dots, nearest-neighbour cross capacitances and tunnel couplings.
//
// Dive into the per-package docs for contracts, error sets and examples.
package dotarray
