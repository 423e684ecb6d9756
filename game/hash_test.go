package game

import "testing"

func TestCombineHashNotCommutative(t *testing.T) {
	a := CombineHash(CombineHash(0, 1), 2)
	b := CombineHash(CombineHash(0, 2), 1)
	if a == b {
		t.Fatalf("CombineHash(1, 2) == CombineHash(2, 1) == %d, want distinct hashes for swapped order", a)
	}
}

func TestCombineHashDeterministic(t *testing.T) {
	a := CombineHash(CombineHash(0, 7), 9)
	b := CombineHash(CombineHash(0, 7), 9)
	if a != b {
		t.Fatalf("CombineHash is not deterministic: %d != %d", a, b)
	}
}

func TestPlayerCharRoundTrip(t *testing.T) {
	for p := 0; p < 4; p++ {
		if got := CharToPlayer(PlayerChar(p)); got != p {
			t.Fatalf("CharToPlayer(PlayerChar(%d)) = %d, want %d", p, got, p)
		}
	}
}
