// Package honeycomb types and options.
package honeycomb

// DefaultTieEpsilon is the energy tolerance under which two
// configurations count as degenerate and the lexicographically smaller
// one wins. Mirrors the toolkit-wide numeric policy.
const DefaultTieEpsilon = 1e-9

// MaxEnumeration caps the number of occupation vectors a single
// Minimize call may enumerate. (max+1)^N beyond this returns
// ErrSearchSpaceTooLarge; raise the cap consciously rather than let a
// mis-sized model spin forever.
const MaxEnumeration = 1 << 26

// Occupation is an electron count per dot.
type Occupation []int

// Clone returns an independent copy of o.
func (o Occupation) Clone() Occupation {
	return append(Occupation(nil), o...)
}

// Total returns the summed electron count — the default observable of a
// charge-stability map.
func (o Occupation) Total() int {
	sum := 0
	for _, n := range o {
		sum += n
	}

	return sum
}

// Result is the outcome of one charge-state minimization.
//
// OnBoundary reports that the minimizing configuration touches the
// enumeration bound (some n_i == MaxOccupation, with MaxOccupation > 0).
// The bound is a hard limitation of the exhaustive search: a boundary
// minimum means the true ground state may lie outside the enumerated
// lattice and the model's occupation bound should be widened.
type Result struct {
	Occupation Occupation
	Energy     float64
	OnBoundary bool
}

// Options configures the solver.
//
// Fields:
//   - TieEpsilon — non-negative energy tolerance for degeneracy
//     detection. Within it, ties break toward the lexicographically
//     smallest occupation vector to keep maps reproducible.
type Options struct {
	TieEpsilon float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{TieEpsilon: DefaultTieEpsilon}
}
