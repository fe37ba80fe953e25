package tomb

import "errors"

// ErrNoFaces indicates a die was constructed without any faces.
var ErrNoFaces = errors.New("a die must have at least one face")

// ErrOutOfRange indicates a face selection outside a die's faces.
var ErrOutOfRange = errors.New("face selection must be within the die's faces")

// Die is the minimal contract rollers need from a die: a fixed number of
// faces and a current position within them.
//
// Implementations maintain the invariant 0 <= Position() < Faces() from
// construction onwards. Construction is the only validation checkpoint;
// once a die exists, reading and rotating it never fails.
type Die interface {
	// Faces returns the number of faces on the die. Always at least 1.
	Faces() int

	// Position returns the index of the face currently showing.
	Position() int

	// SetPosition moves the die so the face at position p shows.
	//
	// SetPosition panics if p is outside [0, Faces()). Rollers only pass
	// positions drawn from that range, so reaching the panic means a broken
	// Roller implementation rather than a user error.
	SetPosition(p int)
}

// FaceDie is a Die whose faces show values of type T.
type FaceDie[T any] interface {
	Die

	// Face returns the value shown when the die rests at position p,
	// which must be within [0, Faces()).
	Face(p int) T
}

// Rotator shifts a die's current face by a signed offset.
type Rotator interface {
	// Rotate advances (positive) or rewinds (negative) the current face by
	// offset positions, wrapping around in both directions. Any offset is
	// valid: on a six-sided die, rotating by -7 is the same as rotating
	// by -1, and rotating backwards from the first face lands on the last.
	Rotate(offset int)
}

// normalize maps p onto [0, n) using true mathematical modulo, so negative
// inputs wrap backwards instead of producing a negative remainder.
func normalize(p, n int) int {
	p %= n
	if p < 0 {
		p += n
	}
	return p
}
