package specfunc_test

import (
	"testing"

	"github.com/katalvlaran/orbital/specfunc"
)

// BenchmarkFactorial_Warm measures the steady-state lookup path: the
// table is pre-extended, so every call is a read-locked slice index.
func BenchmarkFactorial_Warm(b *testing.B) {
	c := specfunc.NewFactorialCache()
	_ = c.Factorial(20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Factorial(i % 20)
	}
}

// BenchmarkLaguerre_Degree6 evaluates the largest degree the radial
// wavefunctions require (n=7, l=0 → L_6^1).
func BenchmarkLaguerre_Degree6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = specfunc.Laguerre(6, 1, 3.7)
	}
}

// BenchmarkLegendre_L3M3 evaluates the deepest angular case used by
// f-subshell configurations.
func BenchmarkLegendre_L3M3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = specfunc.Legendre(3, 3, 0.42)
	}
}
