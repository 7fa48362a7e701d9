// Package honeycomb finds the ground charge configuration of a
// capacitively-coupled dot array at a given detuning point — the kernel
// behind charge-stability ("honeycomb") diagrams.
//
// 🚀 What does it solve?
//
//	For a dotmodel.DotArray with N dots and a detuning vector ε (µeV),
//	it minimizes over integer occupations n ∈ {0..max}^N:
//
//	  E(n) = Σ_i C_i/2 · (n_i − ν_i)²            (on-site charging)
//	       + Σ_{i<j} C_ij · n_i · n_j            (inter-site charging)
//	       − Σ_{(i,j)∈T} (√(δ_ij² + 4t_ij²) − |δ_ij|)/2   (hybridization)
//
//	where ν_i = ν0_i + ε_i/C_i is the detuning-induced occupation offset
//	and δ_ij is the charging-energy cost of the cheapest in-bounds
//	single-electron transfer across the tunnel-coupled pair (i,j). The
//	hybridization term is the two-level avoided-crossing gain: it
//	vanishes as t→0 and broadens charge-transition boundaries near
//	degeneracy, exactly where honeycomb cell edges form.
//
// Algorithm outline:
//  1. Validate the detuning vector (length N, finite entries).
//  2. Enumerate all (max+1)^N occupation vectors in ascending
//     lexicographic order (odometer loop).
//  3. Track the running minimum; a candidate replaces the incumbent only
//     when its energy is lower by more than TieEpsilon, so ties resolve
//     to the lexicographically smallest vector. Deterministic by
//     construction.
//  4. Flag the result as OnBoundary when any dot sits at the enumeration
//     bound — the true minimum may lie outside the configured range and
//     the caller must widen it rather than trust the value silently.
//
// The search is exhaustive on purpose: the lattice is small and bounded,
// and enumeration guarantees the global minimum where a continuous
// relaxation would not. The flip side is exponential cost in N; the
// solver refuses search spaces beyond MaxEnumeration instead of running
// forever.
//
// Complexity:
//
//	Time   = O((max+1)^N · N²)
//	Memory = O(N)
//
// Errors: see errors.go; all conditions surface as sentinels matched
// with errors.Is, never as NaN results.
package honeycomb
