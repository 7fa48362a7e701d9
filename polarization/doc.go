// Package polarization models inter-dot polarization lines and fits
// them to measured charge-sensor traces to extract tunnel couplings.
//
// 🚀 What is a polarization line?
//
//	Sweeping the detuning ε across an inter-dot charge transition, a
//	charge sensor records a sigmoid-like step between two linear
//	backgrounds. Its shape encodes the tunnel coupling t, thermally
//	broadened by kT:
//
//	  Ω(ε)  = √((ε−ε₀)² + 4t²)
//	  Q(ε)  = ½ · (1 + ((ε−ε₀)/Ω) · tanh(Ω / 2kT))
//	  y(ε)  = y₀ + (m_L + (m_R−m_L)·Q) · (ε−ε₀) + A·Q
//
//	with center ε₀, background y₀, side slopes m_L/m_R and transition
//	height A. Q is the excess-charge polarization of the two-level
//	system; it runs 0 → 1 through the transition.
//
// Fitting contract:
//   - kT is a known physical constant of the experiment and is held
//     fixed; only the six model parameters are free.
//   - The initial guess is a fixed, documented heuristic over the data
//     (outer-decile slopes, steepest-gradient center, range height);
//     callers may override it via FitOptions.InitialGuess.
//   - Non-convergence is a distinct failure (ErrNotConverged), never
//     conflated with a successful-but-poor fit; fit quality is the
//     caller's judgement over FitResult.Residual.
//   - Two backends: Levenberg–Marquardt least squares (default) and
//     Nelder–Mead simplex over the summed squared residual.
//
// The fit result records the fitted parameters, the guess actually
// used, kT and the method — everything needed to reproduce the call.
package polarization
