package tlsh

import "errors"

// GenError is returned by Generator.Finalize when the accumulated input
// cannot be turned into a FuzzyHash.
type GenError struct {
	msg string
	err error
}

func (e *GenError) Error() string { return e.msg }
func (e *GenError) Unwrap() error { return e.err }

var (
	// ErrInputTooShort means fewer bytes were fed than the generator's
	// minimum (50 by default, 256 in strict mode).
	ErrInputTooShort = errors.New("tlsh: input shorter than minimum length")
	// ErrInputTooLarge means the fed byte count exceeds what the length
	// code can represent.
	ErrInputTooLarge = errors.New("tlsh: input longer than Lcode can encode")
	// ErrInsufficientComplexity means the input's bucket distribution is
	// degenerate (q3 == 0): every bucket is empty or near-empty.
	ErrInsufficientComplexity = errors.New("tlsh: input has insufficient complexity to hash")
)

func genErr(sentinel error) *GenError {
	return &GenError{msg: sentinel.Error(), err: sentinel}
}

// ParseError is returned by Parse when a textual hash cannot be decoded.
type ParseError struct {
	msg string
	err error
}

func (e *ParseError) Error() string { return e.msg }
func (e *ParseError) Unwrap() error { return e.err }

var (
	// ErrBadLength means the text, after stripping an optional "T1"
	// prefix, is not 70 hex characters long.
	ErrBadLength = errors.New("tlsh: hash text has the wrong length")
	// ErrBadCharacter means the text contains a non-hex character.
	ErrBadCharacter = errors.New("tlsh: hash text contains a non-hex character")
	// ErrStrictViolation means strict-mode parsing rejected an otherwise
	// syntactically valid hash.
	ErrStrictViolation = errors.New("tlsh: hash failed strict validation")
)

func parseErr(sentinel error) *ParseError {
	return &ParseError{msg: sentinel.Error(), err: sentinel}
}
