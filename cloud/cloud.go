package cloud

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/orbital/mcmc"
	"github.com/katalvlaran/orbital/slater"
	"github.com/katalvlaran/orbital/wavefunc"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

// OrbitalSamples runs one orbital's Metropolis-Hastings walk and
// returns count positions. The proposal step scale follows the
// orbital's spatial extent, n²/Zeff, so diffuse valence orbitals mix as
// quickly as tight cores. A nil rng falls back to the sampler's
// clock-seeded source.
func OrbitalSamples(s wavefunc.QuantumState, count int, sharpness float64, rng *rand.Rand) ([]r3.Vec, error) {
	opts := mcmc.DefaultOptions()
	opts.StepScale = stepScaleFactor * float64(s.N*s.N) / s.Zeff
	opts.Sharpness = sharpness
	opts.Rand = rng

	samples, err := mcmc.Sample(func(p r3.Vec) float64 {
		return wavefunc.RealDensity(p, s)
	}, count, &opts)
	if err != nil {
		return nil, fmt.Errorf("OrbitalSamples(%v): %w", s, err)
	}

	return samples, nil
}

// orbitalPlan is one scheduled walk: the orbital and its point budget.
type orbitalPlan struct {
	orbital slater.Orbital
	count   int
}

// SampleAtom samples the full electron cloud of element z: every
// occupied orbital gets PointsPerElectron × occupancy points, walks run
// concurrently (bounded by Options.Parallelism) with independently
// seeded random streams, and the result concatenates per-orbital
// batches in configuration order. Output depends only on z and
// Options.Seed, never on the worker count.
//
// z ≤ 0 returns an empty cloud; a zero budget returns zero points for
// every orbital. Neither is an error.
func SampleAtom(z int, opts *Options) ([]Point, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.PointsPerElectron < 0 {
		return nil, ErrNegativeBudget
	}

	plans := planBudgets(z, o.PointsPerElectron)
	if len(plans) == 0 {
		return []Point{}, nil
	}

	batches := make([][]r3.Vec, len(plans))
	var g errgroup.Group
	g.SetLimit(o.workers())
	for i, plan := range plans {
		i, plan := i, plan
		g.Go(func() error {
			rng := rand.New(rand.NewSource(o.Seed + int64(i)*seedStride))
			sampleOpts := mcmc.Options{
				StepScale: stepScaleFactor * float64(plan.orbital.N*plan.orbital.N) / plan.orbital.Zeff,
				BurnIn:    o.BurnIn,
				Sharpness: o.Sharpness,
				Rand:      rng,
			}
			state := plan.orbital.State()
			samples, err := mcmc.Sample(func(p r3.Vec) float64 {
				return wavefunc.RealDensity(p, state)
			}, plan.count, &sampleOpts)
			if err != nil {
				return fmt.Errorf("SampleAtom(z=%d, orbital=%v): %w", z, state, err)
			}
			batches[i] = samples

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, b := range batches {
		total += len(b)
	}
	points := make([]Point, 0, total)
	for i, b := range batches {
		orb := plans[i].orbital
		key := colorFor(orb.N, orb.L, orb.M)
		for _, pos := range b {
			points = append(points, Point{Pos: pos, Color: key})
		}
	}

	return points, nil
}

// planBudgets allocates point budgets proportional to occupancy,
// stopping once the remaining electron count is exhausted.
func planBudgets(z, perElectron int) []orbitalPlan {
	orbitals := slater.Configuration(z)
	if len(orbitals) == 0 {
		return nil
	}

	plans := make([]orbitalPlan, 0, len(orbitals))
	remaining := z
	for _, orb := range orbitals {
		if remaining <= 0 {
			break
		}
		electrons := orb.Electrons
		if electrons > remaining {
			electrons = remaining
		}
		remaining -= electrons

		plans = append(plans, orbitalPlan{
			orbital: orb,
			count:   electrons * perElectron,
		})
	}

	return plans
}
