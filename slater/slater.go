package slater

import "github.com/katalvlaran/orbital/wavefunc"

// Subshells fills the Aufbau order with z electrons and computes each
// subshell's effective nuclear charge. z ≤ 0 yields an empty slice; z
// beyond the table's 112-electron capacity is truncated to "as many as
// fit". Never errors: transient invalid input from interactive callers
// must degrade to an empty or partial configuration.
func Subshells(z int) []Subshell {
	if z <= 0 {
		return nil
	}

	shells := make([]Subshell, 0, len(aufbauOrder))
	remaining := z
	for _, slot := range aufbauOrder {
		if remaining <= 0 {
			break
		}

		capacity := subshellCapacity(slot.l)
		occupied := capacity
		if remaining < capacity {
			occupied = remaining
		}
		remaining -= occupied

		shells = append(shells, Subshell{
			N:         slot.n,
			L:         slot.l,
			Capacity:  capacity,
			Electrons: occupied,
		})
	}

	for i := range shells {
		shells[i].Zeff = EffectiveCharge(z, shells[i].N, shells)
	}

	return shells
}

// EffectiveCharge computes Zeff = max(z - S, MinZeff) for an electron in
// shell n, with the screening sum S over the given configuration:
//
//	same shell (excluding self): 0.35 each, 0.30 when n = 1;
//	shell n-1:                   0.85 each;
//	shells ≤ n-2:                1.00 each.
//
// Grouping is by principal quantum number only — a deliberate
// simplification of the full (n,l) Slater groups.
func EffectiveCharge(z, n int, shells []Subshell) float64 {
	sameShell := sameShellScreen
	if n == 1 {
		sameShell = innermostScreen
	}

	s := 0.0
	for _, sh := range shells {
		switch {
		case sh.N == n:
			s += sameShell * float64(sh.Electrons)
		case sh.N == n-1:
			s += innerShellScreen * float64(sh.Electrons)
		case sh.N < n-1:
			s += deepShellScreen * float64(sh.Electrons)
		}
		// Shells above n do not screen.
	}
	// The target electron does not screen itself.
	s -= sameShell

	zeff := float64(z) - s
	if zeff < wavefunc.MinZeff {
		zeff = wavefunc.MinZeff
	}

	return zeff
}

// Configuration expands Subshells(z) into concrete orbitals: within each
// subshell, m values are assigned in display order (0, +1, -1, +2, -2, …)
// and electrons spread one-per-orbital across all distinguishable lobes
// before any orbital takes a second. Each orbital inherits its
// subshell's Zeff.
func Configuration(z int) []Orbital {
	shells := Subshells(z)
	if len(shells) == 0 {
		return nil
	}

	orbitals := make([]Orbital, 0, z)
	for _, sh := range shells {
		lobes := 2*sh.L + 1
		singles := sh.Electrons
		if singles > lobes {
			singles = lobes
		}
		doubles := sh.Electrons - singles

		for i, m := range magneticOrder(sh.L) {
			if i >= singles {
				break
			}
			electrons := 1
			if i < doubles {
				electrons = 2
			}
			orbitals = append(orbitals, Orbital{
				N:         sh.N,
				L:         sh.L,
				M:         m,
				Electrons: electrons,
				Zeff:      sh.Zeff,
			})
		}
	}

	return orbitals
}
