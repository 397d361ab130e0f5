// Package mcmc implements a Metropolis-Hastings random walk over an
// unnormalized 3-D density, producing point clouds whose local sample
// density tracks the target density — no normalization constant needed.
//
// What:
//
//   - Sample(f, count, opts) runs one self-contained walk: a burn-in
//     phase to reach the stationary distribution, then a recording
//     phase that appends the walker's position after every step,
//     accepted or not. Repeated emission of an unmoved point is how
//     this scheme represents high local density.
//
// Acceptance rule (exact, including its asymmetry):
//
//   - A proposal with density strictly greater than the current value
//     is accepted unconditionally and consumes no random draw from the
//     ratio branch.
//   - Otherwise it is accepted with probability (candidate/current)^p,
//     where p is Options.Sharpness (2 tightens clouds visually, 1 is
//     physically faithful), decided by one uniform draw.
//   - A current density of exactly 0 counts as ratio 1: the walker
//     always escapes a singular region.
//   - Negative, NaN or ±Inf candidate densities are treated as 0.
//
// Why:
//
//   - Orbital densities span many orders of magnitude and have no
//     cheap normalization; MCMC spends time where the density is high
//     without ever integrating it.
//   - Markov-chain correlation between consecutive samples is an
//     accepted tradeoff for speed; samples are not i.i.d.
//
// Options:
//
//   - StepScale — per-axis uniform proposal jitter in [-σ/2, σ/2].
//   - BurnIn — discarded leading iterations (DefaultBurnIn = 700).
//   - Sharpness — acceptance exponent (DefaultSharpness = 2).
//   - Rand — caller-owned *rand.Rand; nil seeds from the clock.
//
// Errors:
//
//   - ErrNilDensity, ErrNonPositiveStep, ErrNegativeBurnIn,
//     ErrNonPositiveSharpness, ErrNegativeCount.
//
// Complexity: O(BurnIn + count) density evaluations, O(count) memory.
// Each call owns its walker; concurrent calls with distinct Rand
// sources are independent.
package mcmc
