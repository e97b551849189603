package tlsh

const (
	effectiveBuckets = 128
	codeBytes        = effectiveBuckets / 4
)

// quartiles holds the 25th/50th/75th percentile bucket counts computed
// over the first effectiveBuckets counters.
type quartiles struct {
	q1, q2, q3 int
}

// computeQuartiles finds q1, q2 and q3 by selection (quickselect), the
// same "n-th element" approach the reference implementation uses instead
// of a full sort. buckets itself is left unchanged: each selection runs
// on its own copy.
func computeQuartiles(buckets []int) quartiles {
	n := len(buckets)
	p1 := n/4 - 1
	p2 := n/2 - 1
	p3 := n - n/4 - 1

	// Work on independent copies so that each selection starts from the
	// same input; three quickselects over 128 elements is cheap and far
	// simpler to read correctly than sharing partition state between them.
	a := append([]int(nil), buckets...)
	b := append([]int(nil), buckets...)
	c := append([]int(nil), buckets...)

	return quartiles{
		q1: nthElement(a, p1),
		q2: nthElement(b, p2),
		q3: nthElement(c, p3),
	}
}

// nthElement returns the value that would occupy index k if s were sorted
// ascending, using Hoare-style quickselect with a median-of-three pivot.
// s is reordered in place.
func nthElement(s []int, k int) int {
	lo, hi := 0, len(s)-1
	for lo < hi {
		pivotIdx := medianOfThree(s, lo, (lo+hi)/2, hi)
		s[pivotIdx], s[hi] = s[hi], s[pivotIdx]
		pivot := s[hi]

		store := lo
		for i := lo; i < hi; i++ {
			if s[i] < pivot {
				s[i], s[store] = s[store], s[i]
				store++
			}
		}
		s[store], s[hi] = s[hi], s[store]

		switch {
		case k < store:
			hi = store - 1
		case k > store:
			lo = store + 1
		default:
			return s[store]
		}
	}
	return s[lo]
}

func medianOfThree(s []int, a, b, c int) int {
	switch {
	case (s[a] < s[b]) != (s[a] < s[c]):
		return a
	case (s[b] < s[a]) != (s[b] < s[c]):
		return b
	default:
		return c
	}
}

// dibitFor encodes a single bucket's count relative to the quartile
// thresholds, per the edge policy in the specification: counts at or
// below q1 map to 0, the (q1,q2] range to 1, (q2,q3] to 2, and anything
// above q3 to 3.
func dibitFor(count int, q quartiles) byte {
	switch {
	case count <= q.q1:
		return 0
	case count <= q.q2:
		return 1
	case count <= q.q3:
		return 2
	default:
		return 3
	}
}

// packBody encodes the effectiveBuckets counters into the 32-byte body,
// four dibits per byte: buckets [4i, 4i+4) go into byte codeBytes-1-i
// (bucket 4i+j in bits 2j..2j+1), so the byte order is reversed relative
// to bucket order. The hex codec emits Body bytes in array order, so the
// text carries this reversed layout, mirroring the reference
// implementation's textual form.
func packBody(buckets []int, q quartiles) [codeBytes]byte {
	var body [codeBytes]byte
	for i := 0; i < codeBytes; i++ {
		var h byte
		for j := 0; j < 4; j++ {
			d := dibitFor(buckets[4*i+j], q)
			h |= d << (uint(j) * 2)
		}
		body[codeBytes-1-i] = h
	}
	return body
}

// qRatiosByte packs q1Ratio (high nibble) and q2Ratio (low nibble) into
// the single q_ratios byte described by the data model.
func qRatiosByte(q quartiles) (byte, error) {
	if q.q3 == 0 {
		return 0, ErrInsufficientComplexity
	}
	q1Ratio := byte((q.q1 * 100 / q.q3) % 16)
	q2Ratio := byte((q.q2 * 100 / q.q3) % 16)
	return (q1Ratio << 4) | q2Ratio, nil
}
