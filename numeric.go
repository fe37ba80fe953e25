package tomb

import "fmt"

// NumericDie is a die whose faces are the integers 1 through Faces().
//
// The zero value is not a usable die; construct one with New, NewShowing,
// or a named constructor such as D6. NumericDie is comparable: two dice are
// equal when they have the same number of faces and show the same value.
type NumericDie struct {
	faces    int
	position int
}

// New creates a die with the given number of faces, showing 1.
//
// New returns ErrNoFaces if faces is less than 1.
func New(faces int) (NumericDie, error) {
	if faces < 1 {
		return NumericDie{}, ErrNoFaces
	}
	return NumericDie{faces: faces}, nil
}

// NewShowing creates a die resting on the given face value.
//
// NewShowing returns ErrNoFaces if faces is less than 1, and ErrOutOfRange
// unless 1 <= value <= faces.
func NewShowing(faces, value int) (NumericDie, error) {
	d, err := New(faces)
	if err != nil {
		return NumericDie{}, err
	}
	if value < 1 || value > faces {
		return NumericDie{}, ErrOutOfRange
	}
	d.position = value - 1
	return d, nil
}

// D4 creates a 4-sided die showing 1.
func D4() NumericDie { return NumericDie{faces: 4} }

// D6 creates a 6-sided die showing 1.
func D6() NumericDie { return NumericDie{faces: 6} }

// D8 creates an 8-sided die showing 1.
func D8() NumericDie { return NumericDie{faces: 8} }

// D10 creates a 10-sided die showing 1.
func D10() NumericDie { return NumericDie{faces: 10} }

// D12 creates a 12-sided die showing 1.
func D12() NumericDie { return NumericDie{faces: 12} }

// D20 creates a 20-sided die showing 1.
func D20() NumericDie { return NumericDie{faces: 20} }

// D100 creates a 100-sided die showing 1.
func D100() NumericDie { return NumericDie{faces: 100} }

// Faces returns the number of faces on the die.
func (d NumericDie) Faces() int { return d.faces }

// Position returns the index of the face currently showing.
func (d NumericDie) Position() int { return d.position }

// SetPosition moves the die so the face at position p shows.
// It panics if p is outside [0, Faces()).
func (d *NumericDie) SetPosition(p int) {
	if p < 0 || p >= d.faces {
		panic(fmt.Sprintf("tomb: position %d out of range for %d faces", p, d.faces))
	}
	d.position = p
}

// Face returns the value shown at position p, which is always p+1.
func (d NumericDie) Face(p int) int { return p + 1 }

// Value returns the face value currently showing.
func (d NumericDie) Value() int { return d.position + 1 }

// Rotate shifts the showing face by offset positions, wrapping around in
// both directions.
func (d *NumericDie) Rotate(offset int) {
	d.position = normalize(d.position+offset, d.faces)
}

// Rotated returns a copy of the die rotated by offset, leaving d unchanged.
func (d NumericDie) Rotated(offset int) NumericDie {
	d.Rotate(offset)
	return d
}

func (d NumericDie) String() string {
	return fmt.Sprintf("d%d:%d", d.faces, d.Value())
}
