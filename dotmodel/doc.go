// Package dotmodel defines the dot-array data model used across dotarray
// and the linear gate ↔ detuning coordinate transforms.
//
// 🚀 What is a dot array here?
//
//	An ordered set of N quantum dots described by:
//	  • on-site charging energies   (µeV, one per dot)
//	  • inter-site charging energies (µeV, symmetric N×N)
//	  • tunnel couplings             (µeV, sparse dot pairs)
//	  • a per-dot occupation bound and static occupation offsets
//
//	plus an N×N lever-arm matrix M relating the two coordinate systems
//	the lab works in:
//
//	  detuning = M · gate        (mV → µeV)
//	  gate     = M⁻¹ · detuning  (µeV → mV)
//
// Contracts:
//
//   - DotArray and LeverArm are immutable values once constructed; the
//     constructors deep-copy their inputs.
//   - Transforms are pure: they return fresh vectors and never mutate
//     model state.
//   - A singular or ill-conditioned lever-arm matrix is surfaced as
//     ErrSingularMatrix / ErrIllConditioned at construction time — it is
//     never allowed to degrade into silent NaN propagation downstream.
//
// Round-trip guarantee: for any accepted matrix M and gate vector g,
// DetuningToGate(GateToDetuning(g)) recovers g within floating-point
// tolerance.
package dotmodel
