package bridge_test

import (
	"fmt"

	"github.com/katalvlaran/qmcpaths/bridge"
)

// ExampleBridge_Transform builds a path on a unit-spaced grid from a fixed draw.
//
// Scenario:
//
//	times = [1, 2, 3, 4], z = [1, 0, 0, 0]
//
// Only the terminal draw is non-zero, so the path is the straight line from
// W(0) = 0 to W(4) = sqrt(4)·1 = 2.
func ExampleBridge_Transform() {
	b, err := bridge.FromTimes([]float64{1, 2, 3, 4})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	out := make([]float64, b.Size())
	if err = b.Transform([]float64{1, 0, 0, 0}, out); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("order:", b.Order())
	fmt.Printf("path: %.2f\n", out)
	// Output:
	// order: [3 1 0 2]
	// path: [0.50 1.00 1.50 2.00]
}

// ExampleNewTimeGrid shows the monotonicity precondition.
func ExampleNewTimeGrid() {
	_, err := bridge.NewTimeGrid([]float64{0.2, 0.1, 0.3})
	fmt.Println(err)
	// Output:
	// bridge: invalid time grid: times[1]=0.1 <= times[0]=0.2
}
