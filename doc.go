// Package tomb provides minimal dice representation and rolling primitives
// for games: fixed-face numeric dice, slice-backed dice over arbitrary
// ordered face sets, a two-faced coin, and pluggable random sourcing.
//
// One way to think about the package is as a minimal headless tabletop:
// dice are small value types that track which face is showing, and rollers
// choose a new face for them using an injected randomness source.
//
// # Determinism
//
// Rollers built with NewSeededRoller are deterministic: given the same seed
// and the same sequence of roll calls in the same order, the sequence of
// returned values is reproducible across runs and platforms. This is the
// intended way to test code built on the package.
//
// # Concurrency
//
// Rollers and dice hold mutable state and provide no internal locking. A
// roller or die shared across goroutines must be serialized by the caller.
package tomb
