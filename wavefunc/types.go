// Package wavefunc defines the quantum-state tuple, numeric floors and
// sentinel errors shared by the density evaluators.
package wavefunc

import (
	"errors"
	"fmt"
)

// Sentinel errors for quantum-state validation.
var (
	// ErrPrincipalRange indicates n < 1.
	ErrPrincipalRange = errors.New("wavefunc: principal quantum number must be ≥ 1")
	// ErrAngularRange indicates l outside [0, n-1].
	ErrAngularRange = errors.New("wavefunc: angular momentum must satisfy 0 ≤ l < n")
	// ErrMagneticRange indicates |m| > l.
	ErrMagneticRange = errors.New("wavefunc: magnetic number must satisfy |m| ≤ l")
)

const (
	// MinZeff is the floor applied to effective nuclear charge; a
	// non-positive Zeff would collapse the radial profile entirely.
	MinZeff = 0.1

	// MinRadius guards the coordinate singularity at the origin: points
	// closer than this evaluate to zero density.
	MinRadius = 1e-10
)

// subshellLetters maps l to the spectroscopic letter for String().
var subshellLetters = [...]string{"s", "p", "d", "f", "g", "h", "i"}

// QuantumState identifies one hydrogen-like orbital: principal number N,
// angular momentum L, magnetic number M and the screened nuclear charge
// Zeff felt by its electron. Values are immutable once constructed.
type QuantumState struct {
	N, L, M int
	Zeff    float64
}

// NewQuantumState validates (n, l, m) and clamps zeff to MinZeff.
// Returns the first violated range as a sentinel error.
func NewQuantumState(n, l, m int, zeff float64) (QuantumState, error) {
	s := QuantumState{N: n, L: l, M: m, Zeff: zeff}
	if err := s.Validate(); err != nil {
		return QuantumState{}, err
	}
	if s.Zeff < MinZeff {
		s.Zeff = MinZeff
	}

	return s, nil
}

// Validate reports whether the quantum numbers form a legal state.
func (s QuantumState) Validate() error {
	if s.N < 1 {
		return fmt.Errorf("n=%d: %w", s.N, ErrPrincipalRange)
	}
	if s.L < 0 || s.L >= s.N {
		return fmt.Errorf("n=%d l=%d: %w", s.N, s.L, ErrAngularRange)
	}
	if s.M < -s.L || s.M > s.L {
		return fmt.Errorf("l=%d m=%d: %w", s.L, s.M, ErrMagneticRange)
	}

	return nil
}

// String renders the state in spectroscopic notation, e.g. "3d m=-1 Zeff=6.95".
func (s QuantumState) String() string {
	letter := "?"
	if s.L >= 0 && s.L < len(subshellLetters) {
		letter = subshellLetters[s.L]
	}

	return fmt.Sprintf("%d%s m=%+d Zeff=%.2f", s.N, letter, s.M, s.Zeff)
}

// clampedZeff returns Zeff floored at MinZeff; the evaluators never
// trust a caller-assembled struct literal.
func (s QuantumState) clampedZeff() float64 {
	if s.Zeff < MinZeff {
		return MinZeff
	}

	return s.Zeff
}
