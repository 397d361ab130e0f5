package specfunc

import "math"

// Laguerre evaluates the generalized Laguerre polynomial L_n^α(x) using
// the three-term recurrence
//
//	(k+1)·L_{k+1} = (2k+1+α-x)·L_k - (k+α)·L_{k-1},
//
// seeded with L_0 = 1 and L_1 = 1+α-x. Exact for n = 0 and n = 1, and
// numerically stable for the small degrees (n ≤ 6) required by radial
// wavefunctions up to the seventh shell. Negative n returns 0.
func Laguerre(n int, alpha, x float64) float64 {
	if n < 0 {
		return 0
	}
	if n == 0 {
		return 1
	}

	prev, curr := 1.0, 1+alpha-x
	for k := 1; k < n; k++ {
		fk := float64(k)
		prev, curr = curr, ((2*fk+1+alpha-x)*curr-(fk+alpha)*prev)/(fk+1)
	}

	return curr
}

// Legendre evaluates the associated Legendre polynomial P_l^|m|(x) for
// x = cos(θ) ∈ [-1, 1]. The sign of m is ignored (only the magnitude
// enters the spherical-harmonic modulus), and |m| > l returns 0.
//
// Evaluation climbs in three stages:
//  1. seed P_m^m = (-1)^m (2m-1)!! (1-x²)^{m/2} as a running product;
//  2. step once to P_{m+1}^m = x(2m+1)P_m^m;
//  3. raise l with the recurrence
//     (l-m)·P_l^m = x(2l-1)·P_{l-1}^m - (l+m-1)·P_{l-2}^m.
func Legendre(l, m int, x float64) float64 {
	if m < 0 {
		m = -m
	}
	if m > l {
		return 0
	}

	// Stage 1: P_m^m as a running product over the double factorial.
	pmm := 1.0
	if m > 0 {
		sinTheta := math.Sqrt((1 - x) * (1 + x))
		oddFactor := 1.0
		for i := 0; i < m; i++ {
			pmm *= -oddFactor * sinTheta
			oddFactor += 2
		}
	}
	if l == m {
		return pmm
	}

	// Stage 2: P_{m+1}^m.
	pmm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmm1
	}

	// Stage 3: climb to P_l^m.
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmm1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmm1 = pmm1, pll
	}

	return pll
}
