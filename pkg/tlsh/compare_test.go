package tlsh

import "testing"

func TestCompareIdenticalIsZero(t *testing.T) {
	h := sampleHash()
	if d := Compare(h, h, WithLengthPenalty); d != 0 {
		t.Fatalf("Compare(h,h) = %d, want 0", d)
	}
	if d := Compare(h, h, BodyOnly); d != 0 {
		t.Fatalf("Compare(h,h, BodyOnly) = %d, want 0", d)
	}
}

func TestCompareIsSymmetric(t *testing.T) {
	h1 := sampleHash()
	h2 := h1
	h2.Checksum ^= 0xFF
	h2.LengthCode = 0x12
	h2.Body[0] ^= 0x3

	for _, mode := range []CompareMode{WithLengthPenalty, BodyOnly} {
		if a, b := Compare(h1, h2, mode), Compare(h2, h1, mode); a != b {
			t.Fatalf("Compare not symmetric under mode %v: %d vs %d", mode, a, b)
		}
	}
}

func TestCompareNonNegative(t *testing.T) {
	h1 := sampleHash()
	h2 := FuzzyHash{}
	if d := Compare(h1, h2, WithLengthPenalty); d < 0 {
		t.Fatalf("Compare returned negative distance: %d", d)
	}
}

func TestChecksumDistance(t *testing.T) {
	if d := checksumDistance(1, 1); d != 0 {
		t.Errorf("checksumDistance(1,1) = %d, want 0", d)
	}
	if d := checksumDistance(1, 2); d != 1 {
		t.Errorf("checksumDistance(1,2) = %d, want 1", d)
	}
}

func TestNibbleDistanceWrapsCircularly(t *testing.T) {
	cases := []struct{ a, b byte; want int }{
		{0, 0, 0},
		{0, 8, 8},
		{0, 15, 1},
		{1, 14, 3},
	}
	for _, c := range cases {
		if got := nibbleDistance(c.a, c.b); got != c.want {
			t.Errorf("nibbleDistance(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestLengthDistance(t *testing.T) {
	cases := []struct {
		a, b byte
		want int
	}{
		{10, 10, 0},
		{10, 11, 1},
		{10, 13, 36},
	}
	for _, c := range cases {
		if got := lengthDistance(c.a, c.b); got != c.want {
			t.Errorf("lengthDistance(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
