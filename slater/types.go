// Package slater defines subshell/orbital records and the canonical
// filling-order table shared by the configuration builder.
package slater

import (
	"fmt"

	"github.com/katalvlaran/orbital/wavefunc"
)

// Screening contributions per simplified Slater's rules.
const (
	// sameShellScreen is contributed by each other electron sharing the
	// target's principal quantum number.
	sameShellScreen = 0.35
	// innermostScreen replaces sameShellScreen within the n=1 shell.
	innermostScreen = 0.30
	// innerShellScreen is contributed by each electron one shell below.
	innerShellScreen = 0.85
	// deepShellScreen is contributed by each electron two or more
	// shells below.
	deepShellScreen = 1.00
)

// subshellLetters maps l to its spectroscopic letter for labels.
var subshellLetters = [...]string{"s", "p", "d", "f"}

// aufbauEntry is one (n, l) slot of the canonical filling order.
type aufbauEntry struct {
	n, l int
}

// aufbauOrder is the fixed Aufbau filling sequence. Capacity of each
// entry is 2(2l+1); the table holds 112 electrons in total.
var aufbauOrder = []aufbauEntry{
	{1, 0}, {2, 0}, {2, 1}, {3, 0}, {3, 1}, {4, 0}, {3, 2}, {4, 1},
	{5, 0}, {4, 2}, {5, 1}, {6, 0}, {4, 3}, {5, 2}, {6, 1}, {7, 0},
	{5, 3}, {6, 2},
}

// Subshell is one (n, l) group of an electron configuration, carrying
// its occupancy and the effective nuclear charge computed for it. It is
// constructed by Subshells and not mutated afterwards.
type Subshell struct {
	N, L      int
	Capacity  int
	Electrons int
	Zeff      float64
}

// Label renders the subshell in spectroscopic notation, e.g. "2p".
func (s Subshell) Label() string {
	letter := "?"
	if s.L >= 0 && s.L < len(subshellLetters) {
		letter = subshellLetters[s.L]
	}

	return fmt.Sprintf("%d%s", s.N, letter)
}

// String renders the subshell with its occupancy, e.g. "2p⁴" as "2p4".
func (s Subshell) String() string {
	return fmt.Sprintf("%s%d", s.Label(), s.Electrons)
}

// Orbital is one spatial orientation (fixed m) within a subshell.
// Electrons is 1 or 2: multiple electrons share an orbital without
// changing its spatial shape.
type Orbital struct {
	N, L, M   int
	Electrons int
	Zeff      float64
}

// State converts the orbital into the evaluator's quantum-state tuple.
func (o Orbital) State() wavefunc.QuantumState {
	s, err := wavefunc.NewQuantumState(o.N, o.L, o.M, o.Zeff)
	if err != nil {
		// Orbitals are built from the validated Aufbau table; an error
		// here means table corruption, which tests pin down directly.
		return wavefunc.QuantumState{N: 1, Zeff: wavefunc.MinZeff}
	}

	return s
}

// subshellCapacity returns 2(2l+1).
func subshellCapacity(l int) int {
	return 2 * (2*l + 1)
}

// magneticOrder returns the display ordering of m values for angular
// momentum l: 0, +1, -1, +2, -2, … so the most distinguishable lobes
// appear first.
func magneticOrder(l int) []int {
	order := make([]int, 0, 2*l+1)
	order = append(order, 0)
	for m := 1; m <= l; m++ {
		order = append(order, +m, -m)
	}

	return order
}
