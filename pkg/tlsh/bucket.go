package tlsh

const (
	totalBuckets   = 256
	defaultMinLen  = 50
	strictMinLen   = 256
	checksumWindow = 4 // prior bytes kept alongside the current byte
)

// bucketSalts are the six published TLSH bucket-selector salts.
var bucketSalts = [6]byte{2, 3, 5, 7, 11, 13}

// ChecksumLen selects the width of the running checksum. Only the 1-byte
// variant — the default TLSH form this package implements — is supported
// today; the type exists so GeneratorOptions has a stable place to grow
// into wider checksums without breaking callers.
type ChecksumLen int

// Checksum1Byte is the default, and only supported, checksum width.
const Checksum1Byte ChecksumLen = 1

// Variant selects the bucket-count variant of the hash. Only Tlsh128, the
// default 128-bucket/1-byte-checksum form, is supported.
type Variant int

// Tlsh128 is the default 128-bucket variant.
const Tlsh128 Variant = 128

// GeneratorOptions configures a new Generator.
type GeneratorOptions struct {
	ChecksumLen ChecksumLen
	Variant     Variant
	// StrictInputLength raises the minimum accepted input from 50 bytes
	// to 256 bytes, matching the reference implementation's conservative
	// build mode.
	StrictInputLength bool
}

// DefaultGeneratorOptions returns the default 128-bucket, 1-byte-checksum,
// non-strict configuration.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{ChecksumLen: Checksum1Byte, Variant: Tlsh128}
}

// Generator is a single-owner streaming accumulator. It must not be used
// concurrently by more than one goroutine; Update never fails, and
// Finalize consumes the generator, leaving it unusable for further
// updates.
type Generator struct {
	opts GeneratorOptions

	buckets [totalBuckets]int32

	window [checksumWindow]byte // window[0] = most recent prior byte
	filled int                  // number of prior bytes captured, capped at checksumWindow

	checksum byte
	prevByte byte

	length    int64
	finalized bool
}

// NewGenerator creates a Generator ready to accept bytes via Update.
func NewGenerator(opts GeneratorOptions) *Generator {
	if opts.ChecksumLen == 0 {
		opts.ChecksumLen = Checksum1Byte
	}
	if opts.Variant == 0 {
		opts.Variant = Tlsh128
	}
	return &Generator{opts: opts}
}

// Update appends bytes to the generator's input. It never fails and may
// be called any number of times with any chunking — feeding a stream in
// one call or many produces the same FuzzyHash at Finalize.
func (g *Generator) Update(data []byte) {
	if g.finalized {
		panic("tlsh: Update called on a finalized Generator")
	}
	for _, b := range data {
		g.updateByte(b)
	}
}

func (g *Generator) updateByte(c byte) {
	g.length++

	if g.filled >= checksumWindow {
		r1, r2, r3, r4, r5 := c, g.window[0], g.window[1], g.window[2], g.window[3]
		g.buckets[bucketSelect(bucketSalts[0], r1, r2, r3)]++
		g.buckets[bucketSelect(bucketSalts[1], r1, r2, r4)]++
		g.buckets[bucketSelect(bucketSalts[2], r1, r3, r4)]++
		g.buckets[bucketSelect(bucketSalts[3], r1, r3, r5)]++
		g.buckets[bucketSelect(bucketSalts[4], r1, r2, r5)]++
		g.buckets[bucketSelect(bucketSalts[5], r1, r4, r5)]++
	} else {
		g.filled++
	}

	g.checksum = pearsonT[(c^g.prevByte)^g.checksum]
	g.prevByte = c

	g.window[3] = g.window[2]
	g.window[2] = g.window[1]
	g.window[1] = g.window[0]
	g.window[0] = c
}

// bucketSelect implements bucket_select(salt, a, b, c), the four-deep
// Pearson chain T[T[T[T[salt]^a]^b]^c] that the reference bucket mapping
// uses to turn a salted triplet into a bucket index.
//
// It is computed as two lookups into the double-update table T2[x][y] =
// T[T[x]^y] rather than four lookups into T: writing v2 = T[T[salt]^a],
// v2 is exactly T2[salt][a]. The remaining two T applications,
// T[T[v2^b]^c], are in turn exactly T2[v2^b][c], since T2[p][c] =
// T[T[p]^c] with p = v2^b. Both groupings fuse a "T, XOR, T" pair into a
// single read of the 64 KiB table bucket.go pays to build once.
func bucketSelect(salt, a, b, c byte) byte {
	t2 := pearsonDoubleTable()
	v2 := t2[salt][a]
	return t2[v2^b][c]
}

// Finalize consumes the generator and produces its FuzzyHash. The
// generator must not be used again afterward.
func (g *Generator) Finalize() (FuzzyHash, error) {
	if g.finalized {
		panic("tlsh: Finalize called on an already-finalized Generator")
	}
	g.finalized = true

	minLen := int64(defaultMinLen)
	if g.opts.StrictInputLength {
		minLen = strictMinLen
	}
	if g.length < minLen {
		return FuzzyHash{}, genErr(ErrInputTooShort)
	}
	if g.length > maxEncodableLength {
		return FuzzyHash{}, genErr(ErrInputTooLarge)
	}

	counts := make([]int, effectiveBuckets)
	for i := 0; i < effectiveBuckets; i++ {
		counts[i] = int(g.buckets[i])
	}
	q := computeQuartiles(counts)

	qr, err := qRatiosByte(q)
	if err != nil {
		return FuzzyHash{}, genErr(err)
	}

	return FuzzyHash{
		Checksum:   g.checksum,
		LengthCode: lengthCode(int(g.length)),
		QRatios:    qr,
		Body:       packBody(counts, q),
	}, nil
}
