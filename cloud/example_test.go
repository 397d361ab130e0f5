package cloud_test

import (
	"fmt"

	"github.com/katalvlaran/orbital/cloud"
)

// ExampleSampleAtom samples carbon's electron cloud and reports the
// per-electron budget split across its four occupied orbitals.
func ExampleSampleAtom() {
	opts := cloud.DefaultOptions()
	opts.PointsPerElectron = 100

	points, err := cloud.SampleAtom(6, &opts)
	if err != nil {
		fmt.Println("sample:", err)

		return
	}

	colors := map[cloud.ColorKey]bool{}
	for _, p := range points {
		colors[p.Color] = true
	}
	fmt.Printf("points=%d orbitals=%d\n", len(points), len(colors))
	// Output:
	// points=600 orbitals=4
}
