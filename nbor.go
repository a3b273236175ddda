// Package nbor implements decoding of NBOR, a compact fixed-width binary
// encoding for structured values.
//
// The format is not self-describing: the wire carries no type information,
// so the caller states the expected shape by choosing decode functions. All
// multi-byte integers are little-endian. Variable-size containers (strings,
// sequences, sets, maps, byte buffers) carry a 4-byte length prefix;
// fixed-size arrays and tuples carry none because their size is part of the
// type.
//
// The decoders are written for untrusted input. A length or count read from
// the wire never drives an allocation larger than the bytes that actually
// remain in the source, float bit patterns that are NaN are rejected
// (signalling and quiet NaN encodings differ across architectures and would
// break determinism of the format), and a top-level Unmarshal must consume
// its input exactly.
//
// Two flag-byte conventions are permissive: bool decodes byte 1 as true and
// any other byte as false, while an option flag treats any nonzero byte as
// present. Multiple byte sequences can therefore decode to the same value;
// producing the canonical encoding is the encoder's responsibility.
//
// Decoding nested containers recurses once per nesting level and no depth
// limit is imposed; callers decoding hostile, deeply nested shapes should
// bound the nesting themselves.
package nbor

import "cmp"

// DecodeFunc decodes one value of type T from r.
//
// Composite decoders take DecodeFuncs for their element types, so decoders
// for arbitrarily nested shapes are built by composition.
type DecodeFunc[T any] func(r *Reader) (T, error)

// Uint128 is an unsigned 128-bit integer as two little-endian 64-bit words.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is the two's-complement signed counterpart of Uint128.
type Int128 struct {
	Lo uint64
	Hi int64
}

// Entry is one key/value pair of a sorted map.
type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}
