package tomb

import "testing"

// TestNewSeed ensures seed generation succeeds and feeds a usable roller.
func TestNewSeed(t *testing.T) {
	seed, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed returned error: %v", err)
	}

	roller := NewSeededRoller(seed)
	d := D6()
	res := RollMut(roller, &d)
	if res.Value < 1 || res.Value > 6 {
		t.Fatalf("roll = %d, want within [1, 6]", res.Value)
	}
}
