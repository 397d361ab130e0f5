package wavefunc

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Real spherical-harmonic normalization constants. Named so the angular
// table below reads like the textbook forms it implements.
var (
	normS     = 1 / (2 * math.Sqrt(math.Pi))   // 1/2 · √(1/π)
	normP     = math.Sqrt(3 / (4 * math.Pi))   // √(3/4π)
	normDZ2   = math.Sqrt(5 / (16 * math.Pi))  // √(5/16π)
	normDDiag = math.Sqrt(15 / (4 * math.Pi))  // √(15/4π): dxz, dyz, dxy
	normDX2Y2 = math.Sqrt(15 / (16 * math.Pi)) // √(15/16π)
)

// RealWavefunction returns the signed real-orbital amplitude ψ at point
// p: the shared radial part times the real angular combination for
// (l, m), written in direction cosines (x/r, y/r, z/r).
//
// Orientation convention: m=0 → z axis, m=+1 → x axis, m=-1 → y axis
// for p orbitals; d orbitals follow the standard real set
// (dz², dxz, dyz, dx²-y², dxy). Angular momenta above l=2 fall back to
// the spherically symmetric s constant — a documented limitation, since
// renderers only request directional lobes up to d.
//
// Density is the square of this value; see RealDensity.
func RealWavefunction(p r3.Vec, s QuantumState) float64 {
	r := r3.Norm(p)
	if r < MinRadius {
		return 0
	}

	return radial(r, s) * realAngular(p, r, s.L, s.M)
}

// RealDensity returns RealWavefunction squared: the probability density
// of the real orbital, with directional lobes for p and d states.
func RealDensity(p r3.Vec, s QuantumState) float64 {
	amp := RealWavefunction(p, s)

	return amp * amp
}

// realAngular evaluates the real angular combination for (l, m) in
// direction cosines.
func realAngular(p r3.Vec, r float64, l, m int) float64 {
	switch l {
	case 0:
		return normS
	case 1:
		switch m {
		case 0:
			return normP * p.Z / r
		case +1:
			return normP * p.X / r
		case -1:
			return normP * p.Y / r
		}
	case 2:
		r2 := r * r
		switch m {
		case 0:
			return normDZ2 * (3*p.Z*p.Z - r2) / r2
		case +1:
			return normDDiag * p.X * p.Z / r2
		case -1:
			return normDDiag * p.Y * p.Z / r2
		case +2:
			return normDX2Y2 * (p.X*p.X - p.Y*p.Y) / r2
		case -2:
			return normDDiag * p.X * p.Y / r2
		}
	}

	// l > 2 (or an out-of-range m): s-like fallback.
	return normS
}
