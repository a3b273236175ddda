package nbor

import "errors"

// Every decode failure wraps exactly one of these sentinels; match the kind
// with errors.Is. A failure is terminal for the Reader it occurred on.
var (
	// ErrUnexpectedEOF reports that fewer bytes remain than a read
	// requires, including declared lengths that cannot possibly be
	// satisfied by the remaining input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidData reports bytes that were read successfully but do not
	// form a valid value: malformed UTF-8, or trailing bytes left after a
	// top-level decode.
	ErrInvalidData = errors.New("invalid data")

	// ErrInvalidInput reports wire content the format forbids: NaN float
	// bit patterns, unknown union discriminants, or a buffer length that
	// exceeds the remaining input.
	ErrInvalidInput = errors.New("invalid input")
)
