package polarization

import "math"

// NumParams is the number of free model parameters.
const NumParams = 6

// Params are the polarization-line model parameters. Energies in µeV,
// signal in the sensor's units.
type Params struct {
	TunnelCoupling float64 // t: inter-dot tunnel coupling
	Center         float64 // ε₀: transition center detuning
	Background     float64 // y₀: sensor background at the center
	LeftSlope      float64 // m_L: background slope left of the transition
	RightSlope     float64 // m_R: background slope right of the transition
	Height         float64 // A: sensor step height across the transition
}

// Eval evaluates the model at one detuning for a fixed thermal energy
// kT (µeV). At the degenerate point Ω = 0 (t = 0, ε = ε₀) the
// polarization limit Q = ½ is used, keeping Eval finite everywhere.
func (p Params) Eval(detuning, kT float64) float64 {
	shifted := detuning - p.Center
	omega := math.Sqrt(shifted*shifted + 4*p.TunnelCoupling*p.TunnelCoupling)
	q := 0.5
	if omega > 0 {
		q = 0.5 * (1 + shifted/omega*math.Tanh(omega/(2*kT)))
	}
	slope := p.LeftSlope + (p.RightSlope-p.LeftSlope)*q

	return p.Background + slope*shifted + p.Height*q
}

// EvalAll evaluates the model over a detuning slice.
func (p Params) EvalAll(detunings []float64, kT float64) []float64 {
	ys := make([]float64, len(detunings))
	for i, x := range detunings {
		ys[i] = p.Eval(x, kT)
	}

	return ys
}

// vector flattens the parameters in fit order
// (t, ε₀, y₀, m_L, m_R, A).
func (p Params) vector() []float64 {
	return []float64{p.TunnelCoupling, p.Center, p.Background, p.LeftSlope, p.RightSlope, p.Height}
}

// paramsFromVector is the inverse of vector.
func paramsFromVector(v []float64) Params {
	return Params{
		TunnelCoupling: v[0],
		Center:         v[1],
		Background:     v[2],
		LeftSlope:      v[3],
		RightSlope:     v[4],
		Height:         v[5],
	}
}

// finite reports whether all parameters are finite.
func (p Params) finite() bool {
	for _, v := range p.vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
