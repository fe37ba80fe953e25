package tomb

// Facing is one of the two sides a Coin can show.
//
// A bool would have worked, but loses the clarity of what true or false
// means at a call site.
type Facing int

const (
	Heads Facing = iota
	Tails
)

func (f Facing) String() string {
	switch f {
	case Heads:
		return "Heads"
	case Tails:
		return "Tails"
	default:
		return "Unknown"
	}
}

// Coin is a two-faced die showing either Heads or Tails.
//
// The zero value is a coin showing Heads. Coin is comparable with ==.
type Coin struct {
	facing Facing
}

// NewCoin creates a coin showing the given facing.
func NewCoin(facing Facing) Coin {
	return Coin{facing: facing}
}

// IsHeads reports whether the coin shows Heads.
func (c Coin) IsHeads() bool { return c.facing == Heads }

// IsTails reports whether the coin shows Tails.
func (c Coin) IsTails() bool { return c.facing == Tails }

// Flip turns the coin over in place and returns the new facing.
func (c *Coin) Flip() Facing {
	c.facing ^= 1
	return c.facing
}

// Flipped returns a copy of the coin turned over, leaving c unchanged.
func (c Coin) Flipped() Coin {
	c.Flip()
	return c
}

// Faces returns 2.
func (c Coin) Faces() int { return 2 }

// Position returns 0 for Heads and 1 for Tails.
func (c Coin) Position() int { return int(c.facing) }

// SetPosition moves the coin so the facing at position p shows.
// It panics if p is not 0 or 1.
func (c *Coin) SetPosition(p int) {
	if p < 0 || p > 1 {
		panic("tomb: coin position must be 0 or 1")
	}
	c.facing = Facing(p)
}

// Face returns the facing shown at position p.
func (c Coin) Face(p int) Facing { return Facing(p) }

// Value returns the facing currently showing.
func (c Coin) Value() Facing { return c.facing }

// Rotate shifts the showing facing by offset, wrapping around in both
// directions. Odd offsets turn the coin over; even offsets leave it as is.
func (c *Coin) Rotate(offset int) {
	c.facing = Facing(normalize(int(c.facing)+offset, 2))
}

// Rotated returns a copy of the coin rotated by offset, leaving c unchanged.
func (c Coin) Rotated(offset int) Coin {
	c.Rotate(offset)
	return c
}

func (c Coin) String() string {
	return c.facing.String()
}
