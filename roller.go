package tomb

// RNGRoller rolls dice using an injected randomness Source.
//
// The roller takes dice by reference and never consumes them; callers keep
// their dice across any number of rolls. The wrapped source is sequential
// mutable state, so an RNGRoller shared across goroutines must be
// serialized by the caller.
type RNGRoller struct {
	src Source
}

// NewRoller creates a roller that draws from the given source.
func NewRoller(src Source) *RNGRoller {
	return &RNGRoller{src: src}
}

// NewSeededRoller creates a deterministic roller seeded with the given
// value. Two rollers with the same seed produce identical roll sequences.
func NewSeededRoller(seed uint64) *RNGRoller {
	return NewRoller(NewRand(seed))
}

// NewRandomRoller creates a roller seeded from crypto/rand.
func NewRandomRoller() (*RNGRoller, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededRoller(seed), nil
}

// Roll reports the position d would land on, without changing d. The
// underlying source is advanced even though the die is not.
func (r *RNGRoller) Roll(d Die) int {
	return r.src.IntN(d.Faces())
}

// RollMut moves d to a uniformly chosen position and reports it.
func (r *RNGRoller) RollMut(d Die) int {
	p := r.src.IntN(d.Faces())
	d.SetPosition(p)
	return p
}

// NopRoller declares that it rolls dice, but does nothing: every roll
// reports the face already showing. Useful as an inert test double.
type NopRoller struct{}

// Roll returns d's current position.
func (NopRoller) Roll(d Die) int { return d.Position() }

// RollMut returns d's current position, leaving d untouched.
func (NopRoller) RollMut(d Die) int { return d.Position() }
