package tlsh

import (
	"encoding/hex"
	"strings"
)

const (
	versionPrefix = "T1"
	hexBodyLen    = 70 // 1+1+1+32 bytes, two hex chars each
)

// swapNibbles exchanges the high and low nibble of a byte. The reference
// TLSH textual form stores the checksum and length-code bytes with their
// nibbles swapped relative to their in-memory value.
func swapNibbles(b byte) byte {
	return (b&0x0F)<<4 | (b&0xF0)>>4
}

// ParseOptions configures Parse.
type ParseOptions struct {
	// Strict additionally requires that re-encoding the parsed hash
	// reproduces the same canonical text (ignoring input case and the
	// presence/absence of the "T1" prefix), rejecting any text that,
	// while syntactically valid hex, could not have been produced by
	// this package's own encoder. Hex decoding and the nibble swaps are
	// lossless, so every text that passes the length and character checks
	// also passes this one.
	Strict bool
}

// Parse decodes a textual TLSH hash, with or without the "T1" prefix,
// case-insensitively.
func Parse(text string) (FuzzyHash, error) {
	return ParseWithOptions(text, ParseOptions{})
}

// ParseWithOptions decodes a textual TLSH hash under the given options.
func ParseWithOptions(text string, opts ParseOptions) (FuzzyHash, error) {
	body := text
	if len(body) >= 2 && strings.EqualFold(body[:2], versionPrefix) {
		body = body[2:]
	}
	if len(body) != hexBodyLen {
		return FuzzyHash{}, parseErr(ErrBadLength)
	}

	raw := make([]byte, hex.DecodedLen(len(body)))
	if _, err := hex.Decode(raw, []byte(body)); err != nil {
		return FuzzyHash{}, parseErr(ErrBadCharacter)
	}

	h := FuzzyHash{
		Checksum:   swapNibbles(raw[0]),
		LengthCode: swapNibbles(raw[1]),
		QRatios:    raw[2],
	}
	copy(h.Body[:], raw[3:])

	if opts.Strict {
		canonical := strings.ToUpper(strings.TrimPrefix(strings.ToUpper(text), versionPrefix))
		if h.String()[len(versionPrefix):] != canonical {
			return FuzzyHash{}, parseErr(ErrStrictViolation)
		}
	}

	return h, nil
}

// String renders h in canonical form: "T1" followed by 70 uppercase hex
// characters.
func (h FuzzyHash) String() string {
	raw := make([]byte, 0, 3+codeBytes)
	raw = append(raw, swapNibbles(h.Checksum), swapNibbles(h.LengthCode), h.QRatios)
	raw = append(raw, h.Body[:]...)

	encoded := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(encoded, raw)

	return versionPrefix + strings.ToUpper(string(encoded))
}
