// Package wavefunc evaluates hydrogen-like orbital wavefunctions and
// probability densities at 3-D points.
//
// What:
//
//   - QuantumState — a validated (n, l, m, Zeff) tuple.
//   - Density — |ψ_{nlm}|² for the complex eigenstate: radial part from
//     generalized Laguerre polynomials, angular modulus from associated
//     Legendre polynomials. Azimuth-independent, as a single-m complex
//     eigenstate must be.
//   - RealWavefunction / RealDensity — the signed real-orbital
//     combinations (pz, px, py, dz², dxz, dyz, dx²-y², dxy) written
//     directly in direction cosines, producing the directional lobes
//     renderers expect.
//
// Why:
//
//   - A Metropolis-Hastings sampler only needs an unnormalized,
//     non-negative density it can evaluate pointwise; both entry points
//     provide exactly that.
//   - The two variants agree for s states and differ only in resolving
//     the azimuthal orientation of p and d lobes.
//
// Convention:
//
//   - m = 0 orients along z, m = +1 along x, m = -1 along y (p shell);
//     d follows the standard real-orbital set.
//   - l > 2 real orbitals fall back to the spherically symmetric s
//     constant. This is a documented limitation: current callers only
//     request directional real orbitals up to d.
//
// Numeric policy:
//
//   - Points within MinRadius of the origin evaluate to 0 density
//     (coordinate singularity guard).
//   - Zeff below MinZeff is clamped up; validation errors are returned
//     only by NewQuantumState, never by the evaluators, which assume a
//     valid state and degrade (not fault) otherwise.
//
// Errors:
//
//   - ErrPrincipalRange — n < 1.
//   - ErrAngularRange — l outside [0, n-1].
//   - ErrMagneticRange — m outside [-l, l].
//
// Complexity: every evaluation is O(n) time, O(1) memory.
package wavefunc
