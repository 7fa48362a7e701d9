package sweep_test

import (
	"fmt"

	"github.com/kvantor/dotarray/dotmodel"
	"github.com/kvantor/dotarray/sweep"
)

// ExampleScan_Run sweeps the two detunings of a double dot over a small
// honeycomb region and inspects the map at one point — the programmatic
// version of clicking a charge-stability diagram.
//
// Scenario:
//
//	Two dots, C = 100 µeV each, mutual charging 30 µeV, ≤1 electron per
//	dot. Axes sweep ε1 and ε2 from −20 to 120 µeV in 8 steps.
//
// Complexity: O(nx·ny·(max+1)^N) solver calls, row-parallel.
func ExampleScan_Run() {
	model, err := dotmodel.NewDotArray(
		[]float64{100, 100},
		[][]float64{{0, 30}, {30, 0}},
		nil, nil, 1,
	)
	if err != nil {
		fmt.Println("model:", err)

		return
	}

	scan := sweep.Scan{
		Model: model,
		X:     sweep.DetuningAxis("e1", 0, 2, 50, 70, 8),
		Y:     sweep.DetuningAxis("e2", 1, 2, 50, 70, 8),
	}
	opts := sweep.DefaultOptions()
	opts.Workers = 1

	res, err := scan.Run(opts)
	if err != nil {
		fmt.Println("run:", err)

		return
	}

	occ, err := res.At(120, -20)
	if err != nil {
		fmt.Println("at:", err)

		return
	}
	fmt.Printf("cells=%dx%d failures=%d\n", len(res.XValues), len(res.YValues), res.ErrCount())
	fmt.Printf("charge state near (120,-20): %v\n", occ)
	// Output:
	// cells=8x8 failures=0
	// charge state near (120,-20): [1 0]
}
