package tlsh

import (
	"bytes"
	"strings"
	"testing"
)

func repeatingText(n int) []byte {
	src := []byte("The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs. ")
	out := make([]byte, 0, n)
	for len(out) < n {
		out = append(out, src...)
	}
	return out[:n]
}

func TestStreamingEquivalence(t *testing.T) {
	data := repeatingText(3000)

	oneShot, err := HashBytes(data, DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("HashBytes failed: %v", err)
	}

	chunkSizes := []int{1, 3, 7, 500, 1024}
	for _, size := range chunkSizes {
		g := NewGenerator(DefaultGeneratorOptions())
		for off := 0; off < len(data); off += size {
			end := off + size
			if end > len(data) {
				end = len(data)
			}
			g.Update(data[off:end])
		}
		chunked, err := g.Finalize()
		if err != nil {
			t.Fatalf("chunk size %d: Finalize failed: %v", size, err)
		}
		if !chunked.Equal(oneShot) {
			t.Fatalf("chunk size %d produced a different hash: %+v vs %+v", size, chunked, oneShot)
		}
	}
}

func TestInputTooShort(t *testing.T) {
	_, err := HashBytes(bytes.Repeat([]byte{0x41}, 40), DefaultGeneratorOptions())
	if err == nil {
		t.Fatal("expected an error for 40-byte input")
	}
	var ge *GenError
	if !asGenError(err, &ge) || ge.Unwrap() != ErrInputTooShort {
		t.Fatalf("got %v, want ErrInputTooShort", err)
	}
}

func TestStrictModeRaisesMinimum(t *testing.T) {
	data := repeatingText(200)
	opts := DefaultGeneratorOptions()
	opts.StrictInputLength = true

	_, err := HashBytes(data, opts)
	if err == nil {
		t.Fatal("expected strict mode to reject a 200-byte input")
	}

	if _, err := HashBytes(repeatingText(300), opts); err != nil {
		t.Fatalf("300 bytes should satisfy strict mode: %v", err)
	}
}

func TestInsufficientComplexity(t *testing.T) {
	_, err := HashBytes(make([]byte, 512), DefaultGeneratorOptions())
	if err == nil {
		t.Fatal("expected an error for an all-zero input")
	}
	var ge *GenError
	if !asGenError(err, &ge) || ge.Unwrap() != ErrInsufficientComplexity {
		t.Fatalf("got %v, want ErrInsufficientComplexity", err)
	}
}

func TestFinalizeSucceedsWithEnoughComplexity(t *testing.T) {
	h, err := HashBytes(repeatingText(2000), DefaultGeneratorOptions())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	text := h.String()
	back, err := Parse(text)
	if err != nil {
		t.Fatalf("round trip parse failed: %v", err)
	}
	if !back.Equal(h) {
		t.Fatalf("round trip mismatch: %+v vs %+v", back, h)
	}
	if strings.Count(text, "T1") != 1 {
		t.Fatalf("expected exactly one T1 prefix in %q", text)
	}
}

func TestUpdateAfterFinalizePanics(t *testing.T) {
	g := NewGenerator(DefaultGeneratorOptions())
	g.Update(repeatingText(100))
	if _, err := g.Finalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic from Update after Finalize")
		}
	}()
	g.Update([]byte("more"))
}

func TestOneshotMatchesManualFlow(t *testing.T) {
	data := repeatingText(1500)

	oneshot, err1 := HashBytes(data, DefaultGeneratorOptions())
	g := NewGenerator(DefaultGeneratorOptions())
	g.Update(data)
	manual, err2 := g.Finalize()

	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("error mismatch: %v vs %v", err1, err2)
	}
	if !oneshot.Equal(manual) {
		t.Fatalf("oneshot %+v != manual %+v", oneshot, manual)
	}
}

func TestBucketSelectMatchesFourStepChain(t *testing.T) {
	naive := func(salt, a, b, c byte) byte {
		h := pearsonT[salt]
		h = pearsonT[h^a]
		h = pearsonT[h^b]
		h = pearsonT[h^c]
		return h
	}

	for _, salt := range bucketSalts {
		for a := 0; a < 256; a += 7 {
			for b := 0; b < 256; b += 11 {
				for c := 0; c < 256; c += 13 {
					want := naive(salt, byte(a), byte(b), byte(c))
					got := bucketSelect(salt, byte(a), byte(b), byte(c))
					if got != want {
						t.Fatalf("bucketSelect(%d,%d,%d,%d) = %d, want %d", salt, a, b, c, got, want)
					}
				}
			}
		}
	}
}

func asGenError(err error, target **GenError) bool {
	ge, ok := err.(*GenError)
	if !ok {
		return false
	}
	*target = ge
	return true
}
