// Package specfunc provides the special-function primitives needed by
// hydrogen-like wavefunctions: memoized factorials, generalized Laguerre
// polynomials and associated Legendre polynomials.
//
// What:
//
//   - FactorialCache — an explicit, owned memo table for k! with
//     append-only growth and O(1) amortized lookups.
//   - Laguerre(n, α, x) — generalized Laguerre polynomial L_n^α(x)
//     via the stable three-term recurrence.
//   - Legendre(l, m, x) — associated Legendre polynomial P_l^|m|(x)
//     for x = cos(θ) ∈ [-1, 1].
//
// Why:
//
//   - Radial wavefunctions R_{nl} need (n-l-1)!, (n+l)! and L_{n-l-1}^{2l+1}.
//   - Spherical harmonics Y_{lm} need P_l^|m|(cos θ) and factorial ratios.
//   - Both are evaluated millions of times per sampling run, so the
//     factorial table must never recompute a cached entry.
//
// Numeric policy (no errors, no panics):
//
//   - Factorial(k) with k < 0 returns 1 — transient invalid quantum
//     numbers from interactive callers must degrade, not fault.
//   - Laguerre with n < 0 returns 0; Legendre with |m| > l returns 0.
//
// Complexity:
//
//   - Factorial: O(1) amortized after warm-up, O(k) worst-case growth.
//   - Laguerre:  O(n) time, O(1) memory.
//   - Legendre:  O(l) time, O(1) memory.
//
// Concurrency:
//
//   - FactorialCache is safe for concurrent use; reads take a shared
//     lock, table extension an exclusive one.
package specfunc
