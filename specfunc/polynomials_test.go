package specfunc_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/orbital/specfunc"
	"github.com/stretchr/testify/assert"
)

const polyTol = 1e-12 // closed forms and recurrences agree to round-off

// TestLaguerre_RecurrenceSeeds verifies the exact boundary seeds
// L_0^α(x) = 1 and L_1^α(x) = 1+α-x across a grid of (α, x).
func TestLaguerre_RecurrenceSeeds(t *testing.T) {
	alphas := []float64{0, 1, 2.5, 3, 7}
	xs := []float64{0, 0.5, 1, 4, 19.75}

	for _, a := range alphas {
		for _, x := range xs {
			assert.Equal(t, 1.0, specfunc.Laguerre(0, a, x), "L_0 must be exactly 1")
			assert.InDelta(t, 1+a-x, specfunc.Laguerre(1, a, x), polyTol, "L_1 must be 1+α-x")
		}
	}
}

// TestLaguerre_DegreeTwoClosedForm checks the recurrence against the
// closed form L_2^α(x) = x²/2 - (α+2)x + (α+1)(α+2)/2.
func TestLaguerre_DegreeTwoClosedForm(t *testing.T) {
	for _, a := range []float64{0, 1, 3, 5} {
		for _, x := range []float64{0, 0.25, 1, 2.5, 8} {
			want := x*x/2 - (a+2)*x + (a+1)*(a+2)/2
			assert.InDelta(t, want, specfunc.Laguerre(2, a, x), polyTol)
		}
	}
}

// TestLaguerre_NegativeDegree confirms the defined fallback for n < 0.
func TestLaguerre_NegativeDegree(t *testing.T) {
	assert.Equal(t, 0.0, specfunc.Laguerre(-1, 2, 1.5))
	assert.Equal(t, 0.0, specfunc.Laguerre(-4, 0, 0))
}

// TestLaguerre_RadialDegrees exercises the degrees actually used by the
// radial wavefunctions (n-l-1 up to 6) at a physically typical argument,
// comparing against a direct series evaluation.
func TestLaguerre_RadialDegrees(t *testing.T) {
	// Direct finite series: L_n^α(x) = Σ_{i=0}^{n} (-1)^i C(n+α, n-i) x^i / i!.
	series := func(n int, a, x float64) float64 {
		sum := 0.0
		for i := 0; i <= n; i++ {
			binom := 1.0
			for j := 1; j <= n-i; j++ {
				binom *= (a + float64(i+j)) / float64(j)
			}
			term := binom * math.Pow(-x, float64(i)) / specfunc.Factorial(i)
			sum += term
		}

		return sum
	}

	for n := 0; n <= 6; n++ {
		for _, x := range []float64{0.1, 1, 3.5, 10} {
			a := float64(2*n + 1)
			assert.InDelta(t, series(n, a, x), specfunc.Laguerre(n, a, x), 1e-9*math.Abs(series(n, a, x))+1e-9)
		}
	}
}

// TestLegendre_OutOfRangeOrder verifies P_l^m = 0 whenever |m| > l.
func TestLegendre_OutOfRangeOrder(t *testing.T) {
	assert.Equal(t, 0.0, specfunc.Legendre(0, 1, 0.5))
	assert.Equal(t, 0.0, specfunc.Legendre(2, 3, -0.2))
	assert.Equal(t, 0.0, specfunc.Legendre(1, -2, 0.9))
}

// TestLegendre_ClosedForms pins the standard low-order polynomials.
func TestLegendre_ClosedForms(t *testing.T) {
	xs := []float64{-1, -0.6, 0, 0.3, 0.99, 1}

	for _, x := range xs {
		s := math.Sqrt(1 - x*x)
		assert.InDelta(t, 1.0, specfunc.Legendre(0, 0, x), polyTol, "P_0^0")
		assert.InDelta(t, x, specfunc.Legendre(1, 0, x), polyTol, "P_1^0")
		assert.InDelta(t, -s, specfunc.Legendre(1, 1, x), polyTol, "P_1^1")
		assert.InDelta(t, (3*x*x-1)/2, specfunc.Legendre(2, 0, x), polyTol, "P_2^0")
		assert.InDelta(t, -3*x*s, specfunc.Legendre(2, 1, x), polyTol, "P_2^1")
		assert.InDelta(t, 3*(1-x*x), specfunc.Legendre(2, 2, x), polyTol, "P_2^2")
		assert.InDelta(t, (5*x*x*x-3*x)/2, specfunc.Legendre(3, 0, x), polyTol, "P_3^0")
		assert.InDelta(t, -15*s*s*s, specfunc.Legendre(3, 3, x), 1e-11, "P_3^3")
	}
}

// TestLegendre_NegativeOrderSymmetry confirms the magnitude convention:
// the sign of m is ignored, P_l^{-m} ≡ P_l^{m} here.
func TestLegendre_NegativeOrderSymmetry(t *testing.T) {
	for _, x := range []float64{-0.8, 0, 0.4} {
		for l := 0; l <= 3; l++ {
			for m := 0; m <= l; m++ {
				assert.Equal(t, specfunc.Legendre(l, m, x), specfunc.Legendre(l, -m, x))
			}
		}
	}
}
