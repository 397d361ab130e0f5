// Package cloud orchestrates electron-cloud sampling for whole atoms:
// it fans the Metropolis-Hastings sampler out across every occupied
// orbital of an element and tags each point with a renderer-facing
// color key.
//
// What:
//
//   - OrbitalSamples — sample one orbital: the proposal step scale is
//     derived from n²/Zeff (diffuse orbitals take proportionally larger
//     steps), burn-in sized to escape the origin, density from the
//     real-orbital evaluator so p and d lobes keep their orientation.
//   - SampleAtom — build the element's configuration via slater, give
//     every orbital a point budget proportional to its electron count
//     (constant point density per electron across the atom), run each
//     orbital's walk as an independent task with its own seeded random
//     source, and concatenate results deterministically in orbital
//     order.
//
// Concurrency:
//
//   - Orbital walks are statistically independent given distinct random
//     streams, so SampleAtom parallelizes across orbitals with an
//     errgroup bounded by Options.Parallelism. Ordering and content of
//     the output depend only on Options.Seed, never on the worker
//     count.
//
// Degradation policy:
//
//   - z ≤ 0 or an empty configuration yields an empty cloud, nil error.
//   - A zero point budget yields zero points for the orbital, no error.
//   - Sampling stops early once the remaining electron budget reaches
//     zero.
//
// Errors:
//
//   - ErrNegativeBudget — PointsPerElectron < 0.
//   - Budget, step and sharpness violations surface as wrapped mcmc
//     sentinels.
//
// Output is consumed in-memory by an external renderer; ColorKey is an
// opaque tag keyed to (n, l, m), not a styling contract.
package cloud
