package nbor

import (
	"cmp"
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
	"slices"
	"unicode/utf8"
)

// Unmarshal decodes exactly one value from p. The input is copied up front
// so the decode never aliases or retains the caller's slice, and any bytes
// left unread after the decode fail with ErrInvalidData.
func Unmarshal[T any](p []byte, dec DecodeFunc[T]) (T, error) {
	r := NewReader(append([]byte(nil), p...))
	v, err := dec(r)
	if err != nil {
		var zero T
		return zero, err
	}
	if n := r.Remaining(); n > 0 {
		var zero T
		return zero, fmt.Errorf("not all bytes read, %d remaining: %w", n, ErrInvalidData)
	}
	return v, nil
}

// DecodeUint8 decodes an unsigned 8-bit integer.
func DecodeUint8(r *Reader) (uint8, error) {
	return r.ReadByte()
}

// DecodeUint16 decodes a little-endian unsigned 16-bit integer.
func DecodeUint16(r *Reader) (uint16, error) {
	var b [2]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

// DecodeUint32 decodes a little-endian unsigned 32-bit integer.
func DecodeUint32(r *Reader) (uint32, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// DecodeUint64 decodes a little-endian unsigned 64-bit integer.
func DecodeUint64(r *Reader) (uint64, error) {
	var b [8]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// DecodeUint128 decodes a little-endian unsigned 128-bit integer.
func DecodeUint128(r *Reader) (Uint128, error) {
	var b [16]byte
	if err := r.ReadFull(b[:]); err != nil {
		return Uint128{}, err
	}
	return Uint128{
		Lo: binary.LittleEndian.Uint64(b[:8]),
		Hi: binary.LittleEndian.Uint64(b[8:]),
	}, nil
}

// DecodeInt8 decodes a signed 8-bit integer.
func DecodeInt8(r *Reader) (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

// DecodeInt16 decodes a little-endian signed 16-bit integer.
func DecodeInt16(r *Reader) (int16, error) {
	v, err := DecodeUint16(r)
	return int16(v), err
}

// DecodeInt32 decodes a little-endian signed 32-bit integer.
func DecodeInt32(r *Reader) (int32, error) {
	v, err := DecodeUint32(r)
	return int32(v), err
}

// DecodeInt64 decodes a little-endian signed 64-bit integer.
func DecodeInt64(r *Reader) (int64, error) {
	v, err := DecodeUint64(r)
	return int64(v), err
}

// DecodeInt128 decodes a little-endian two's-complement 128-bit integer.
func DecodeInt128(r *Reader) (Int128, error) {
	v, err := DecodeUint128(r)
	return Int128{Lo: v.Lo, Hi: int64(v.Hi)}, err
}

// DecodeFloat32 decodes the little-endian bit pattern of an IEEE 754
// single-precision float. NaN patterns fail with ErrInvalidInput: their
// signalling/quiet encodings differ across architectures, so the format
// forbids them.
func DecodeFloat32(r *Reader) (float32, error) {
	bits, err := DecodeUint32(r)
	if err != nil {
		return 0, err
	}
	f := math.Float32frombits(bits)
	if math.IsNaN(float64(f)) {
		return 0, fmt.Errorf("float32 bit pattern %#x is NaN: %w", bits, ErrInvalidInput)
	}
	return f, nil
}

// DecodeFloat64 decodes the little-endian bit pattern of an IEEE 754
// double-precision float, rejecting NaN like DecodeFloat32.
func DecodeFloat64(r *Reader) (float64, error) {
	bits, err := DecodeUint64(r)
	if err != nil {
		return 0, err
	}
	f := math.Float64frombits(bits)
	if math.IsNaN(f) {
		return 0, fmt.Errorf("float64 bit pattern %#x is NaN: %w", bits, ErrInvalidInput)
	}
	return f, nil
}

// DecodeBool decodes one byte: 1 is true, anything else is false.
func DecodeBool(r *Reader) (bool, error) {
	b, err := r.ReadByte()
	return b == 1, err
}

// DecodeOption decodes the 1-byte presence flag and, when it is nonzero,
// one value of the inner type. Absent decodes to nil.
func DecodeOption[T any](r *Reader, dec DecodeFunc[T]) (*T, error) {
	flag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if flag == 0 {
		return nil, nil
	}
	v, err := dec(r)
	if err != nil {
		return nil, fmt.Errorf("decode option value: %w", err)
	}
	return &v, nil
}

// decodeLen reads the 4-byte length prefix that heads every variable-size
// container. Callers must bound it against Remaining before allocating.
func decodeLen(r *Reader) (uint32, error) {
	n, err := DecodeUint32(r)
	if err != nil {
		return 0, fmt.Errorf("decode length prefix: %w", err)
	}
	return n, nil
}

// DecodeString decodes a 4-byte byte length followed by that many bytes of
// UTF-8. Invalid UTF-8 fails with ErrInvalidData. The result never aliases
// the Reader's buffer.
func DecodeString(r *Reader) (string, error) {
	n, err := decodeLen(r)
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return "", fmt.Errorf("string len %d greater than remaining buf len %d: %w", n, r.Remaining(), ErrUnexpectedEOF)
	}
	p := make([]byte, n)
	if err := r.ReadFull(p); err != nil {
		return "", err
	}
	if !utf8.Valid(p) {
		return "", fmt.Errorf("string bytes are not valid UTF-8: %w", ErrInvalidData)
	}
	return string(p), nil
}

// DecodeSlice decodes a 4-byte element count followed by that many values
// in order. The count is untrusted: one that cannot possibly be satisfied
// by the remaining input fails before any element is decoded or any
// count-sized allocation is made.
func DecodeSlice[T any](r *Reader, dec DecodeFunc[T]) ([]T, error) {
	n, err := decodeLen(r)
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return nil, fmt.Errorf("sequence len %d greater than remaining buf len %d: %w", n, r.Remaining(), ErrUnexpectedEOF)
	}
	out := make([]T, 0, n)
	for i := 0; i < int(n); i++ {
		v, err := dec(r)
		if err != nil {
			return nil, fmt.Errorf("decode element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// DecodeSet decodes the sequence wire shape and folds it into a set.
// Element order and duplicate multiplicity are lost.
func DecodeSet[T comparable](r *Reader, dec DecodeFunc[T]) (map[T]struct{}, error) {
	elems, err := DecodeSlice(r, dec)
	if err != nil {
		return nil, err
	}
	set := make(map[T]struct{}, len(elems))
	for _, v := range elems {
		set[v] = struct{}{}
	}
	return set, nil
}

// DecodeMap decodes a 4-byte pair count followed by alternating keys and
// values. A key decoded twice keeps the value decoded last for it.
func DecodeMap[K comparable, V any](r *Reader, decKey DecodeFunc[K], decValue DecodeFunc[V]) (map[K]V, error) {
	n, err := decodeLen(r)
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return nil, fmt.Errorf("map len %d greater than remaining buf len %d: %w", n, r.Remaining(), ErrUnexpectedEOF)
	}
	m := make(map[K]V, n)
	for i := 0; i < int(n); i++ {
		k, err := decKey(r)
		if err != nil {
			return nil, fmt.Errorf("decode key %d: %w", i, err)
		}
		v, err := decValue(r)
		if err != nil {
			return nil, fmt.Errorf("decode value %d: %w", i, err)
		}
		m[k] = v
	}
	return m, nil
}

// DecodeSortedMap decodes the same wire shape as DecodeMap and returns the
// entries sorted by key. Duplicate keys collapse the same way, keeping the
// value decoded last.
func DecodeSortedMap[K cmp.Ordered, V any](r *Reader, decKey DecodeFunc[K], decValue DecodeFunc[V]) ([]Entry[K, V], error) {
	m, err := DecodeMap(r, decKey, decValue)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	slices.SortFunc(entries, func(a, b Entry[K, V]) int {
		return cmp.Compare(a.Key, b.Key)
	})
	return entries, nil
}

// DecodeBytes decodes a 4-byte length followed by that many raw bytes.
// Unlike the element-wise container decoders this allocates the full
// declared length eagerly, so a length exceeding the remaining input is
// rejected outright with ErrInvalidInput before any allocation.
func DecodeBytes(r *Reader) ([]byte, error) {
	n, err := decodeLen(r)
	if err != nil {
		return nil, err
	}
	if uint64(n) > uint64(r.Remaining()) {
		return nil, fmt.Errorf("buffer len %d greater than remaining buf len %d: %w", n, r.Remaining(), ErrInvalidInput)
	}
	p := make([]byte, n)
	if err := r.ReadFull(p); err != nil {
		return nil, err
	}
	return p, nil
}

// DecodeArray decodes exactly len(dst) elements into dst, in order,
// stopping at the first failure. The element count is part of the caller's
// type rather than the wire data; decode a fixed-size array a with
// DecodeArray(r, a[:], dec).
func DecodeArray[T any](r *Reader, dst []T, dec DecodeFunc[T]) error {
	for i := range dst {
		v, err := dec(r)
		if err != nil {
			return fmt.Errorf("decode element %d: %w", i, err)
		}
		dst[i] = v
	}
	return nil
}

// DecodeFields runs each field decoder strictly left to right, stopping at
// the first failure. Tuples and aggregate types are encoded as the bare
// concatenation of their fields with no prefix or padding, so this is the
// whole decode contract for them.
func DecodeFields(r *Reader, fields ...func(*Reader) error) error {
	for i, f := range fields {
		if err := f(r); err != nil {
			return fmt.Errorf("decode field %d: %w", i, err)
		}
	}
	return nil
}

// Field adapts a DecodeFunc and a destination pointer for DecodeFields.
func Field[T any](dst *T, dec DecodeFunc[T]) func(*Reader) error {
	return func(r *Reader) error {
		v, err := dec(r)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

// DecodeTuple2 decodes two values of distinct types, strictly in order.
func DecodeTuple2[A, B any](r *Reader, decA DecodeFunc[A], decB DecodeFunc[B]) (A, B, error) {
	var a A
	var b B
	err := DecodeFields(r, Field(&a, decA), Field(&b, decB))
	return a, b, err
}

// DecodeTuple3 decodes three values of distinct types, strictly in order.
func DecodeTuple3[A, B, C any](r *Reader, decA DecodeFunc[A], decB DecodeFunc[B], decC DecodeFunc[C]) (A, B, C, error) {
	var a A
	var b B
	var c C
	err := DecodeFields(r, Field(&a, decA), Field(&b, decB), Field(&c, decC))
	return a, b, c, err
}

// DecodeTuple4 decodes four values of distinct types, strictly in order.
func DecodeTuple4[A, B, C, D any](r *Reader, decA DecodeFunc[A], decB DecodeFunc[B], decC DecodeFunc[C], decD DecodeFunc[D]) (A, B, C, D, error) {
	var a A
	var b B
	var c C
	var d D
	err := DecodeFields(r, Field(&a, decA), Field(&b, decB), Field(&c, decC), Field(&d, decD))
	return a, b, c, d, err
}

// Socket address discriminants.
const (
	addrV4 = 0
	addrV6 = 1
)

// DecodeAddrPort decodes the tagged socket-address union: one discriminant
// byte selecting IPv4 (0) or IPv6 (1), the raw address bytes (4 or 16),
// then a 2-byte little-endian port. Any other discriminant fails with
// ErrInvalidInput naming the value. IPv6 flow-info and scope-id are not
// represented on the wire.
func DecodeAddrPort(r *Reader) (netip.AddrPort, error) {
	kind, err := r.ReadByte()
	if err != nil {
		return netip.AddrPort{}, err
	}

	var addr netip.Addr
	switch kind {
	case addrV4:
		var b [4]byte
		if err := r.ReadFull(b[:]); err != nil {
			return netip.AddrPort{}, err
		}
		addr = netip.AddrFrom4(b)
	case addrV6:
		var b [16]byte
		if err := r.ReadFull(b[:]); err != nil {
			return netip.AddrPort{}, err
		}
		addr = netip.AddrFrom16(b)
	default:
		return netip.AddrPort{}, fmt.Errorf("invalid socket address variant %d: %w", kind, ErrInvalidInput)
	}

	port, err := DecodeUint16(r)
	if err != nil {
		return netip.AddrPort{}, err
	}
	return netip.AddrPortFrom(addr, port), nil
}
