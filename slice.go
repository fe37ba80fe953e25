package tomb

import "fmt"

// SliceDie is a die whose faces are an externally supplied ordered sequence
// of arbitrary elements.
//
// NumericDie is simpler and more typical; reach for SliceDie when faces map
// to non-numeric values such as runes, enums, or weighted entries (repeated
// elements are allowed).
//
// The die shares the caller's backing slice and never writes to it. The
// caller retains ownership and must keep the slice intact for as long as
// the die is used.
type SliceDie[T any] struct {
	faces    []T
	position int
}

// NewSlice creates a die over the given faces, resting on the first one.
//
// NewSlice returns ErrNoFaces if faces is empty.
func NewSlice[T any](faces []T) (SliceDie[T], error) {
	if len(faces) == 0 {
		return SliceDie[T]{}, ErrNoFaces
	}
	return SliceDie[T]{faces: faces}, nil
}

// NewSliceAt creates a die over the given faces, resting at position.
//
// NewSliceAt returns ErrNoFaces if faces is empty, and ErrOutOfRange unless
// 0 <= position < len(faces). Validation happens here and only here; a
// constructed die never fails a later access.
func NewSliceAt[T any](faces []T, position int) (SliceDie[T], error) {
	d, err := NewSlice(faces)
	if err != nil {
		return SliceDie[T]{}, err
	}
	if position < 0 || position >= len(faces) {
		return SliceDie[T]{}, ErrOutOfRange
	}
	d.position = position
	return d, nil
}

// Faces returns the number of faces on the die.
func (d SliceDie[T]) Faces() int { return len(d.faces) }

// Position returns the index of the face currently showing.
func (d SliceDie[T]) Position() int { return d.position }

// SetPosition moves the die so the face at position p shows.
// It panics if p is outside [0, Faces()).
func (d *SliceDie[T]) SetPosition(p int) {
	if p < 0 || p >= len(d.faces) {
		panic(fmt.Sprintf("tomb: position %d out of range for %d faces", p, len(d.faces)))
	}
	d.position = p
}

// Face returns the value shown at position p.
func (d SliceDie[T]) Face(p int) T { return d.faces[p] }

// Value returns the face value currently showing.
func (d SliceDie[T]) Value() T { return d.faces[d.position] }

// Sides returns the backing slice of faces. Callers must not modify it
// through the returned slice while the die is in use.
func (d SliceDie[T]) Sides() []T { return d.faces }

// Rotate shifts the showing face by offset positions, wrapping around in
// both directions.
func (d *SliceDie[T]) Rotate(offset int) {
	d.position = normalize(d.position+offset, len(d.faces))
}

// Rotated returns a copy of the die rotated by offset, leaving d unchanged.
// The copy shares the same backing faces.
func (d SliceDie[T]) Rotated(offset int) SliceDie[T] {
	d.Rotate(offset)
	return d
}

// Equal reports whether both dice rest on the same position of the same
// backing slice. Dice over distinct slices are never equal, even when the
// slices hold equal elements.
func (d SliceDie[T]) Equal(other SliceDie[T]) bool {
	if d.position != other.position || len(d.faces) != len(other.faces) {
		return false
	}
	return len(d.faces) == 0 || &d.faces[0] == &other.faces[0]
}
