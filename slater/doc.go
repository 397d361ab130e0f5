// Package slater builds electron configurations and screened nuclear
// charges for atoms, producing the per-orbital quantum states the
// sampling layer renders.
//
// What:
//
//   - Subshells(z) — fill the canonical Aufbau order
//     (1s,2s,2p,3s,3p,4s,3d,4p,5s,4d,5p,6s,4f,5d,6p,7s,5f,6d) until z
//     electrons are placed, attaching a per-subshell Zeff.
//   - Configuration(z) — expand subshells into concrete orbitals, one
//     per distinguishable m in display order (0, +1, -1, +2, -2, …),
//     spreading electrons across lobes before doubling up.
//   - EffectiveCharge — simplified Slater screening:
//     same-shell electrons contribute 0.35 each (0.30 within n=1),
//     shell n-1 contributes 0.85, shells ≤ n-2 contribute 1.00.
//
// Why:
//
//   - The wavefunction evaluator needs one (n, l, m, Zeff) tuple per
//     occupied orbital; screening is what keeps a sodium 3s cloud
//     diffuse while its 1s core stays tight.
//   - The m ordering is Hund's-rule-inspired but purely visual: it
//     maximizes distinguishable lobe patterns, it does not track spin.
//
// Approximations (deliberate):
//
//   - Screening groups by principal quantum number only, not by the
//     full (n,l) Slater groups.
//   - Zeff is floored at wavefunc.MinZeff so heavily screened excited
//     shells keep a physical (positive) charge.
//
// Degradation policy (no errors, no panics):
//
//   - z ≤ 0 yields an empty configuration.
//   - z beyond the table's capacity yields a truncated configuration:
//     as many electrons as fit.
//
// Complexity: O(shells²) per query — at most 18×18 across the table.
package slater
