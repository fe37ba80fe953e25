package tomb

import "testing"

// TestCoinZeroValueIsHeads ensures the zero value is a usable heads coin.
func TestCoinZeroValueIsHeads(t *testing.T) {
	var c Coin
	if !c.IsHeads() {
		t.Fatalf("zero value coin shows %v, want Heads", c.Value())
	}
	if c != NewCoin(Heads) {
		t.Fatalf("zero value coin differs from NewCoin(Heads)")
	}
}

// TestCoinFlip ensures flipping alternates facings and reports the new one.
func TestCoinFlip(t *testing.T) {
	c := NewCoin(Heads)

	if got := c.Flip(); got != Tails {
		t.Fatalf("Flip() = %v, want Tails", got)
	}
	if !c.IsTails() {
		t.Fatalf("coin shows %v after flip, want Tails", c.Value())
	}
	if got := c.Flip(); got != Heads {
		t.Fatalf("second Flip() = %v, want Heads", got)
	}
}

// TestCoinFlippedLeavesOriginal ensures the immutable variant copies.
func TestCoinFlippedLeavesOriginal(t *testing.T) {
	c := NewCoin(Heads)
	f := c.Flipped()

	if !c.IsHeads() {
		t.Fatalf("original coin shows %v, want Heads", c.Value())
	}
	if !f.IsTails() {
		t.Fatalf("flipped coin shows %v, want Tails", f.Value())
	}
}

// TestCoinRotateParity ensures odd offsets turn the coin and even ones do not.
func TestCoinRotateParity(t *testing.T) {
	tcs := []struct {
		offset int
		want   Facing
	}{
		{0, Heads},
		{1, Tails},
		{2, Heads},
		{3, Tails},
		{-1, Tails},
		{-2, Heads},
		{-5, Tails},
	}

	for _, tc := range tcs {
		c := NewCoin(Heads)
		c.Rotate(tc.offset)
		if c.Value() != tc.want {
			t.Fatalf("heads coin rotated by %d shows %v, want %v", tc.offset, c.Value(), tc.want)
		}
	}
}

// TestCoinAsDie ensures the coin satisfies the die contracts.
func TestCoinAsDie(t *testing.T) {
	c := NewCoin(Tails)
	var d FaceDie[Facing] = &c

	if d.Faces() != 2 {
		t.Fatalf("Faces() = %d, want 2", d.Faces())
	}
	if d.Position() != 1 {
		t.Fatalf("Position() = %d, want 1", d.Position())
	}
	if d.Face(0) != Heads || d.Face(1) != Tails {
		t.Fatalf("Face mapping = %v/%v, want Heads/Tails", d.Face(0), d.Face(1))
	}

	d.SetPosition(0)
	if !c.IsHeads() {
		t.Fatalf("coin shows %v after SetPosition(0), want Heads", c.Value())
	}
}

// TestFacingString ensures facings render their names.
func TestFacingString(t *testing.T) {
	if Heads.String() != "Heads" || Tails.String() != "Tails" {
		t.Fatalf("Facing strings = %q/%q, want Heads/Tails", Heads.String(), Tails.String())
	}
}
