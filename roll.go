package tomb

// Source yields uniformly distributed integers. It is the narrow capability
// rollers need from a randomness generator, so deterministic test doubles
// can stand in for real randomness.
//
// *math/rand/v2.Rand satisfies Source as-is, as does Rand from this package.
type Source interface {
	// IntN returns a uniformly distributed integer in [0, n). n must be
	// at least 1.
	IntN(n int) int
}

// Roller chooses new faces for dice.
//
// A roll picks an absolute position uniformly across all faces, independent
// of the face currently showing — it is not a rotation by a random offset,
// and the die may land on the face it already shows.
//
// Rollers are stateless with respect to the dice they roll and may be
// reused across any number of dice.
type Roller interface {
	// Roll reports the position d would land on, without changing d.
	Roll(d Die) int

	// RollMut moves d to a freshly chosen position and reports it. After
	// the call the die's state reflects the returned position exactly.
	RollMut(d Die) int
}

// Result is an immutable snapshot of a single roll: which face was selected
// and the value that face shows.
type Result[T any] struct {
	Position int
	Value    T
}

// Roll reports the face d would show if rolled, without mutating d.
//
// The roller's randomness source is still advanced by the call: rolling the
// same die twice without mutation generally yields different results.
func Roll[T any](r Roller, d FaceDie[T]) Result[T] {
	p := r.Roll(d)
	return Result[T]{Position: p, Value: d.Face(p)}
}

// RollMut rolls d in place, leaving it resting on the selected face.
//
// The returned value always matches d's showing value immediately after
// the call.
func RollMut[T any](r Roller, d FaceDie[T]) Result[T] {
	p := r.RollMut(d)
	return Result[T]{Position: p, Value: d.Face(p)}
}
