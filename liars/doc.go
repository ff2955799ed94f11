// Package liars implements the core rules of Liar's Poker: the fixed-width
// secret numbers players hold, the digit-count model used to adjudicate
// claims, and the claim/raise rules themselves.
//
// The package is pure: it performs no I/O and holds no game state. Round
// sequencing and player interaction live in the game package.
//
// # Deterministic Testing
//
// All randomness is injected. Generate reproducible numbers by passing a
// seeded *rand.Rand:
//
//	rng := randutil.New(42)
//	numbers, err := liars.GenerateUniqueNumbers(rng, 4)
package liars
