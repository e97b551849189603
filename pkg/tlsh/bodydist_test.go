package tlsh

import (
	"math/rand"
	"testing"
)

func TestDibitDistanceFormula(t *testing.T) {
	for x := byte(0); x < 4; x++ {
		for y := byte(0); y < 4; y++ {
			d := int(x) - int(y)
			if d < 0 {
				d = -d
			}
			want := d
			if d == 3 {
				want = 6
			}
			if got := dibitDistance(x, y); got != want {
				t.Errorf("dibitDistance(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestBodyKernelsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		var a, b [codeBytes]byte
		r.Read(a[:])
		r.Read(b[:])

		scalar := bodyDistanceScalar(a, b)
		tabled := bodyDistanceTabled(a, b)
		bitsliced := bodyDistanceBitsliced(a, b)
		bitsliced64 := bodyDistanceBitsliced64(a, b)
		avx2 := bodyDistanceAVX2(a, b)

		if tabled != scalar {
			t.Fatalf("trial %d: tabled=%d scalar=%d", trial, tabled, scalar)
		}
		if bitsliced != scalar {
			t.Fatalf("trial %d: bitsliced=%d scalar=%d", trial, bitsliced, scalar)
		}
		if bitsliced64 != scalar {
			t.Fatalf("trial %d: bitsliced64=%d scalar=%d", trial, bitsliced64, scalar)
		}
		if avx2 != scalar {
			t.Fatalf("trial %d: avx2=%d scalar=%d", trial, avx2, scalar)
		}
	}
}

func TestBodyDistanceZeroForEqualInputs(t *testing.T) {
	var a [codeBytes]byte
	for i := range a {
		a[i] = byte(i * 7)
	}
	if d := bodyDistance(a, a); d != 0 {
		t.Fatalf("bodyDistance(a,a) = %d, want 0", d)
	}
}
