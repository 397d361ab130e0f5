package mcmc

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// DensityFunc is an unnormalized, pointwise-evaluable target density.
// It should be non-negative; the sampler sanitizes negative and
// non-finite values to 0 rather than propagating a fault.
type DensityFunc func(p r3.Vec) float64

// walker is the mutable chain state: current position and its cached
// density. Owned exclusively by one Sample call.
type walker struct {
	pos     r3.Vec
	density float64
}

// Sample runs one Metropolis-Hastings walk over f and returns exactly
// count accepted positions in generation order.
//
// The walker starts offset from the origin, runs opts.BurnIn discarded
// steps, then records its position after every subsequent step whether
// or not the proposal was accepted. See the package documentation for
// the exact acceptance rule. count of 0 returns an empty, non-nil
// slice. Each call is self-contained: no walker state persists.
func Sample(f DensityFunc, count int, opts *Options) ([]r3.Vec, error) {
	if f == nil {
		return nil, ErrNilDensity
	}
	if count < 0 {
		return nil, ErrNegativeCount
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	start := r3.Vec{
		X: initialOffset * o.StepScale,
		Y: initialOffset * o.StepScale,
		Z: initialOffset * o.StepScale,
	}
	w := walker{pos: start, density: sanitize(f(start))}

	for i := 0; i < o.BurnIn; i++ {
		w.step(f, o.StepScale, o.Sharpness, rng)
	}

	out := make([]r3.Vec, 0, count)
	for i := 0; i < count; i++ {
		w.step(f, o.StepScale, o.Sharpness, rng)
		out = append(out, w.pos)
	}

	return out, nil
}

// step proposes one move and applies the acceptance rule. Unconditional
// acceptance (candidate strictly greater) consumes no ratio draw; the
// probabilistic branch consumes exactly one.
func (w *walker) step(f DensityFunc, scale, sharpness float64, rng *rand.Rand) {
	cand := r3.Vec{
		X: w.pos.X + (rng.Float64()-0.5)*scale,
		Y: w.pos.Y + (rng.Float64()-0.5)*scale,
		Z: w.pos.Z + (rng.Float64()-0.5)*scale,
	}
	candDensity := sanitize(f(cand))

	accept := false
	switch {
	case candDensity > w.density:
		accept = true
	case w.density == 0:
		// Ratio is defined as 1 in the singular region: always move,
		// so the walker recovers instead of freezing.
		accept = true
	default:
		ratio := math.Pow(candDensity/w.density, sharpness)
		accept = rng.Float64() < ratio
	}

	if accept {
		w.pos = cand
		w.density = candDensity
	}
}

// sanitize maps negative and non-finite densities to 0; extreme
// quantum numbers can underflow or overflow the special functions.
func sanitize(d float64) float64 {
	if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}

	return d
}
