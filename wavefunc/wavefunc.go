package wavefunc

import (
	"math"

	"github.com/katalvlaran/orbital/specfunc"
	"gonum.org/v1/gonum/spatial/r3"
)

// radial evaluates the hydrogen-like radial function
//
//	R_{nl}(r) = √((2Z/n)³ · (n-l-1)! / (2n·(n+l)!)) · e^(-ρ/2) · ρ^l · L_{n-l-1}^{2l+1}(ρ),
//
// with ρ = 2·Zeff·r/n. Shared by both density entry points so the two
// variants can only differ in their angular factor.
func radial(r float64, s QuantumState) float64 {
	n := float64(s.N)
	z := s.clampedZeff()
	rho := 2 * z * r / n

	prefactor := math.Sqrt(math.Pow(2*z/n, 3) *
		specfunc.Factorial(s.N-s.L-1) / (2 * n * specfunc.Factorial(s.N+s.L)))

	return prefactor * math.Exp(-rho/2) *
		math.Pow(rho, float64(s.L)) *
		specfunc.Laguerre(s.N-s.L-1, float64(2*s.L+1), rho)
}

// Density returns the complex-orbital probability density |ψ_{nlm}|² at
// point p. The angular factor is the spherical-harmonic modulus
// N_lm · P_l^|m|(cos θ), so the result is independent of azimuth.
// Points within MinRadius of the origin return exactly 0.
//
// The evaluator assumes a valid state (see NewQuantumState); out-of-range
// quantum numbers degrade to a zero angular factor rather than faulting.
func Density(p r3.Vec, s QuantumState) float64 {
	r := r3.Norm(p)
	if r < MinRadius {
		return 0
	}

	mAbs := s.M
	if mAbs < 0 {
		mAbs = -mAbs
	}

	norm := math.Sqrt(float64(2*s.L+1) / (4 * math.Pi) *
		specfunc.Factorial(s.L-mAbs) / specfunc.Factorial(s.L+mAbs))
	angular := norm * specfunc.Legendre(s.L, mAbs, p.Z/r)

	psi := radial(r, s) * angular

	return psi * psi
}
