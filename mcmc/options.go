// Package mcmc defines options and sentinel errors for the
// Metropolis-Hastings sampler.
package mcmc

import (
	"errors"
	"math/rand"
)

// Sentinel errors for sampler validation.
var (
	// ErrNilDensity indicates a nil density function.
	ErrNilDensity = errors.New("mcmc: density function must be non-nil")
	// ErrNonPositiveStep indicates StepScale ≤ 0.
	ErrNonPositiveStep = errors.New("mcmc: step scale must be positive")
	// ErrNegativeBurnIn indicates BurnIn < 0.
	ErrNegativeBurnIn = errors.New("mcmc: burn-in count must be non-negative")
	// ErrNonPositiveSharpness indicates Sharpness ≤ 0.
	ErrNonPositiveSharpness = errors.New("mcmc: sharpness exponent must be positive")
	// ErrNegativeCount indicates a negative sample count.
	ErrNegativeCount = errors.New("mcmc: sample count must be non-negative")
)

// Deterministic defaults (named, no magic numbers).
const (
	// DefaultStepScale is the proposal jitter width for unit-scale
	// densities; orbital callers derive their own from n²/Zeff.
	DefaultStepScale = 1.0

	// DefaultBurnIn comfortably escapes the origin for every (n, l, m,
	// Zeff) combination up to n=7 at the default step scale.
	DefaultBurnIn = 700

	// DefaultSharpness = 2 squares the acceptance ratio, visually
	// tightening clouds; use 1 for a physically faithful density.
	DefaultSharpness = 2.0

	// initialOffset keeps the walker's start strictly off the origin,
	// which is a density singularity for non-s states. Expressed as a
	// fraction of StepScale.
	initialOffset = 0.5
)

// Options configures one sampling run.
//
// Fields:
//   - StepScale — per-axis proposal jitter is uniform in [-σ/2, σ/2].
//   - BurnIn    — leading iterations discarded before recording.
//   - Sharpness — exponent on the acceptance ratio.
//   - Rand      — random source; nil means a clock-seeded source is
//     created per call (reproducible runs must inject their own).
type Options struct {
	StepScale float64
	BurnIn    int
	Sharpness float64
	Rand      *rand.Rand
}

// DefaultOptions returns the documented defaults with a nil Rand.
func DefaultOptions() Options {
	return Options{
		StepScale: DefaultStepScale,
		BurnIn:    DefaultBurnIn,
		Sharpness: DefaultSharpness,
		Rand:      nil,
	}
}

// validate checks every knob and returns the first violation.
func (o *Options) validate() error {
	if o.StepScale <= 0 {
		return ErrNonPositiveStep
	}
	if o.BurnIn < 0 {
		return ErrNegativeBurnIn
	}
	if o.Sharpness <= 0 {
		return ErrNonPositiveSharpness
	}

	return nil
}
