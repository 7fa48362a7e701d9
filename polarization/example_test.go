package polarization_test

import (
	"fmt"

	"github.com/kvantor/dotarray/polarization"
	"github.com/kvantor/dotarray/units"
)

// ExampleParams_Eval evaluates the documented example fit at zero
// detuning, with kT derived from a 75 mK electron temperature.
func ExampleParams_Eval() {
	params := polarization.Params{
		TunnelCoupling: 20.05,
		Center:         1.97,
		Background:     100.25,
		LeftSlope:      -0.50,
		RightSlope:     -0.44,
		Height:         299.14,
	}
	kT := units.ThermalEnergy(75 * units.MilliKelvin)

	y := params.Eval(0, kT)
	fmt.Printf("sensor signal at zero detuning: %.0f\n", y)
	// Output:
	// sensor signal at zero detuning: 243
}
