package wavefunc_test

import (
	"fmt"

	"github.com/katalvlaran/orbital/wavefunc"
	"gonum.org/v1/gonum/spatial/r3"
)

// ExampleDensity evaluates the hydrogen ground state one Bohr radius
// from the nucleus: |ψ_100|² = e⁻²/π.
func ExampleDensity() {
	s, _ := wavefunc.NewQuantumState(1, 0, 0, 1)
	d := wavefunc.Density(r3.Vec{Z: 1}, s)
	fmt.Printf("%.6f\n", d)
	// Output:
	// 0.043079
}

// ExampleRealWavefunction contrasts the two lobes of the 2pz orbital:
// same magnitude, opposite sign.
func ExampleRealWavefunction() {
	s, _ := wavefunc.NewQuantumState(2, 1, 0, 1)
	up := wavefunc.RealWavefunction(r3.Vec{Z: 2}, s)
	down := wavefunc.RealWavefunction(r3.Vec{Z: -2}, s)
	fmt.Printf("up=%+.6f down=%+.6f\n", up, down)
	// Output:
	// up=+0.073381 down=-0.073381
}
