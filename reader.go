package nbor

import "fmt"

// Reader is the byte source for one decode: an in-memory buffer and a
// cursor over it. A Reader is created once per top-level decode, owned by
// that single call stack, and discarded when the decode returns; after any
// failure the cursor is wherever it happened to advance to, so a failed
// Reader must not be reused.
//
// ReadFull, ReadByte and Remaining are the only way decoders touch input.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader over p. The Reader does not copy p; use
// Unmarshal when the input must not be aliased.
func NewReader(p []byte) *Reader {
	return &Reader{buf: p}
}

// ReadFull fills p entirely from the next bytes of input, advancing the
// cursor by exactly len(p). A source with fewer bytes fails with
// ErrUnexpectedEOF; a partial fill is never reported as success.
func (r *Reader) ReadFull(p []byte) error {
	if len(p) > r.Remaining() {
		return fmt.Errorf("read %d bytes with %d remaining: %w", len(p), r.Remaining(), ErrUnexpectedEOF)
	}
	r.off += copy(p, r.buf[r.off:])
	return nil
}

// ReadByte returns the next byte of input.
func (r *Reader) ReadByte() (byte, error) {
	if r.off == len(r.buf) {
		return 0, fmt.Errorf("read 1 byte with 0 remaining: %w", ErrUnexpectedEOF)
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// Remaining returns the exact count of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}
