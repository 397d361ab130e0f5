// Package cloud defines the tagged-point output type, options and
// sentinel errors for atom-level sampling.
package cloud

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/orbital/mcmc"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for atom-level sampling.
var (
	// ErrNegativeBudget indicates PointsPerElectron < 0.
	ErrNegativeBudget = errors.New("cloud: points-per-electron budget must be non-negative")
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultPointsPerElectron balances cloud legibility against frame
	// budget for a mid-table atom.
	DefaultPointsPerElectron = 400

	// DefaultSeed keeps SampleAtom reproducible out of the box; callers
	// wanting fresh clouds per frame vary the seed themselves.
	DefaultSeed = 1

	// stepScaleFactor converts the orbital extent n²/Zeff into the
	// proposal jitter width.
	stepScaleFactor = 1.0

	// seedStride separates per-orbital random streams; any large odd
	// constant works, this one is the 32-bit golden-ratio multiplier.
	seedStride = 2654435761
)

// Point is one sampled position tagged with its orbital's color key.
type Point struct {
	Pos   r3.Vec
	Color ColorKey
}

// Options configures SampleAtom.
//
// Fields:
//   - PointsPerElectron — samples per electron; an orbital's budget is
//     this times its occupancy.
//   - Sharpness — acceptance exponent forwarded to the sampler.
//   - BurnIn    — burn-in iterations per orbital walk.
//   - Parallelism — max concurrent orbital walks; ≤ 0 means NumCPU.
//   - Seed — base seed; orbital i walks with Seed + i·seedStride.
type Options struct {
	PointsPerElectron int
	Sharpness         float64
	BurnIn            int
	Parallelism       int
	Seed              int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		PointsPerElectron: DefaultPointsPerElectron,
		Sharpness:         mcmc.DefaultSharpness,
		BurnIn:            mcmc.DefaultBurnIn,
		Parallelism:       0,
		Seed:              DefaultSeed,
	}
}

// workers resolves Parallelism to a positive worker count.
func (o *Options) workers() int {
	if o.Parallelism > 0 {
		return o.Parallelism
	}

	return runtime.NumCPU()
}
