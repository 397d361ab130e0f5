package mcmc_test

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/orbital/mcmc"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExampleSample draws a cloud from an unnormalized Gaussian and reports
// how tightly it concentrates: most mass must sit within two standard
// deviations of the peak.
func ExampleSample() {
	density := func(p r3.Vec) float64 {
		return math.Exp(-r3.Norm2(p) / 2)
	}

	opts := mcmc.DefaultOptions()
	opts.Sharpness = 1
	opts.Rand = rand.New(rand.NewSource(5))

	samples, err := mcmc.Sample(density, 20000, &opts)
	if err != nil {
		fmt.Println("sample:", err)

		return
	}

	within := 0
	for _, p := range samples {
		if r3.Norm(p) < 2 {
			within++
		}
	}
	fmt.Printf("samples=%d within2sigma=%v\n", len(samples), float64(within)/float64(len(samples)) > 0.7)
	// Output:
	// samples=20000 within2sigma=true
}
