// Package orbital is your in-memory toolkit for computing hydrogen-like
// atomic orbitals and sampling the "electron clouds" renderers draw —
// from special-function primitives to full-atom Metropolis-Hastings
// point clouds.
//
// 🚀 What is orbital?
//
//	A pure-Go numerical library that brings together:
//		• Special functions: memoized factorials, generalized Laguerre
//		  and associated Legendre polynomials
//		• Wavefunctions: complex-orbital |ψ|² and signed real-orbital
//		  amplitudes with directional p/d lobes
//		• Electron configurations: Aufbau filling + simplified Slater
//		  screening → per-orbital effective nuclear charges
//		• Sampling: a Metropolis-Hastings walker that needs no
//		  normalization constant, plus whole-atom orchestration with
//		  per-orbital color tags
//
// ✨ Why choose orbital?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every edge case degrades to a defined
//     numeric fallback, nothing in the core is fatal
//   - Numerically honest – stable up to n=7, l=3, Z=92
//   - Reproducible – inject your own *rand.Rand, get the same cloud
//
// Under the hood, everything is organized under five subpackages:
//
//	specfunc/ — factorial cache, Laguerre & Legendre recurrences
//	wavefunc/ — QuantumState, Density, RealWavefunction, RealDensity
//	slater/   — Subshells, Configuration, EffectiveCharge
//	mcmc/     — the Metropolis-Hastings Sample loop
//	cloud/    — OrbitalSamples & SampleAtom fan-out with color keys
//
// Quick ASCII example:
//
//	  z                    the 2pz orbital: two lobes
//	  │   ●●●              of opposite amplitude sign,
//	  │  ●●●●●             mirrored through the xy
//	──┼────────── x        plane, sampled as a point
//	  │  ●●●●●             cloud whose local density
//	  │   ●●●              tracks |ψ|².
//
// Data flows strictly downward: slater → wavefunc (uses specfunc) →
// mcmc → cloud → your renderer. Dive into examples/ for runnable
// demonstrations.
//
//	go get github.com/katalvlaran/orbital
package orbital
