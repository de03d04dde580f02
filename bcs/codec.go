package bcs

import (
	"fmt"
	"math/big"
)

// Marshaler is implemented by types that write themselves through a Writer.
// Field order in MarshalBCS is the wire schema: fields are concatenated with
// no separators, so encode and decode must agree on it exactly.
type Marshaler interface {
	MarshalBCS(*Writer) error
}

// Unmarshaler is the decode counterpart of Marshaler.
type Unmarshaler interface {
	UnmarshalBCS(*Reader) error
}

// Marshal runs fn against a fresh Writer and returns the accumulated bytes.
// Writer panics (out-of-range values) come back as errors.
func Marshal(fn func(*Writer) error) (out []byte, err error) {
	defer catch(&err)
	w := NewWriter()
	if err := fn(w); err != nil {
		return nil, err
	}
	return w.Finish(), nil
}

// Unmarshal runs fn against a Reader over raw and requires the whole input
// to be consumed: leftover bytes fail with ErrTrailingBytes. Use this at a
// top-level schema boundary.
func Unmarshal(raw []byte, fn func(*Reader) error) (err error) {
	defer catch(&err)
	r := NewReader(raw)
	if err := fn(r); err != nil {
		return err
	}
	if !r.Empty() {
		return &DecodeError{
			Kind:   ErrTrailingBytes,
			Schema: "input",
			Offset: r.Position(),
			Detail: fmt.Sprintf("%d bytes left after final field", len(raw)-r.Position()),
		}
	}
	return nil
}

// UnmarshalPrefix runs fn against a Reader over raw and returns how many
// bytes it consumed, without requiring full consumption. This is the
// composing form: a decoder embedded in a larger schema reads its prefix and
// leaves the rest.
func UnmarshalPrefix(raw []byte, fn func(*Reader) error) (n int, err error) {
	defer catch(&err)
	r := NewReader(raw)
	if err := fn(r); err != nil {
		return 0, err
	}
	return r.Position(), nil
}

// MarshalValue encodes a Marshaler to a fresh byte sequence.
func MarshalValue(v Marshaler) ([]byte, error) {
	return Marshal(v.MarshalBCS)
}

// UnmarshalValue decodes raw into v, requiring full consumption.
func UnmarshalValue(raw []byte, v Unmarshaler) error {
	return Unmarshal(raw, v.UnmarshalBCS)
}

// ----------------------------------------------------------------------------
// Per-schema encoders. Primitives that cannot fail return bytes directly;
// the big-integer widths return an error for out-of-range input.
// ----------------------------------------------------------------------------

// EncodeU8 encodes v as a single byte.
func EncodeU8(v uint8) []byte {
	return []byte{v}
}

// EncodeU16 encodes v as 2 little-endian bytes.
func EncodeU16(v uint16) []byte {
	w := NewWriter()
	w.U16(v)
	return w.Finish()
}

// EncodeU32 encodes v as 4 little-endian bytes.
func EncodeU32(v uint32) []byte {
	w := NewWriter()
	w.U32(v)
	return w.Finish()
}

// EncodeU64 encodes v as 8 little-endian bytes.
func EncodeU64(v uint64) []byte {
	w := NewWriter()
	w.U64(v)
	return w.Finish()
}

// EncodeU128 encodes v as exactly 16 little-endian bytes.
func EncodeU128(v *big.Int) ([]byte, error) {
	return Marshal(func(w *Writer) error {
		w.U128(v)
		return nil
	})
}

// EncodeU256 encodes v as exactly 32 little-endian bytes.
func EncodeU256(v *big.Int) ([]byte, error) {
	return Marshal(func(w *Writer) error {
		w.U256(v)
		return nil
	})
}

// EncodeBool encodes v as 0x00 or 0x01.
func EncodeBool(v bool) []byte {
	w := NewWriter()
	w.Bool(v)
	return w.Finish()
}

// EncodeString encodes s as a ULEB128 byte count followed by UTF-8 bytes.
func EncodeString(s string) []byte {
	w := NewWriter()
	w.String(s)
	return w.Finish()
}

// EncodeBytes encodes b as a length-prefixed byte vector.
func EncodeBytes(b []byte) []byte {
	w := NewWriter()
	w.SliceBytes(b)
	return w.Finish()
}

// ----------------------------------------------------------------------------
// Per-schema decoders. Each returns the value and the number of bytes
// consumed, so decoders compose inside larger schemas.
// ----------------------------------------------------------------------------

// DecodeU8 decodes a u8 from the front of raw.
func DecodeU8(raw []byte) (v uint8, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.U8()
		return nil
	})
	return
}

// DecodeU16 decodes a little-endian u16 from the front of raw.
func DecodeU16(raw []byte) (v uint16, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.U16()
		return nil
	})
	return
}

// DecodeU32 decodes a little-endian u32 from the front of raw.
func DecodeU32(raw []byte) (v uint32, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.U32()
		return nil
	})
	return
}

// DecodeU64 decodes a little-endian u64 from the front of raw.
func DecodeU64(raw []byte) (v uint64, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.U64()
		return nil
	})
	return
}

// DecodeU128 decodes 16 little-endian bytes from the front of raw.
func DecodeU128(raw []byte) (v *big.Int, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.U128()
		return nil
	})
	return
}

// DecodeU256 decodes 32 little-endian bytes from the front of raw.
func DecodeU256(raw []byte) (v *big.Int, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.U256()
		return nil
	})
	return
}

// DecodeBool decodes a boolean from the front of raw.
func DecodeBool(raw []byte) (v bool, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.Bool()
		return nil
	})
	return
}

// DecodeString decodes a length-prefixed UTF-8 string from the front of raw.
func DecodeString(raw []byte) (v string, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.String()
		return nil
	})
	return
}

// DecodeBytes decodes a length-prefixed byte vector from the front of raw.
func DecodeBytes(raw []byte) (v []byte, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = r.SliceBytes()
		return nil
	})
	return
}

// ----------------------------------------------------------------------------
// Generic composites. Element codecs are plain functions conforming to the
// same contract as the built-in ones: an encoder appends exactly the
// element's encoding, a decoder consumes exactly it or panics with a
// *DecodeError.
// ----------------------------------------------------------------------------

// EncodeFunc writes one element of a composite through the Writer.
type EncodeFunc[T any] func(*Writer, T)

// DecodeFunc reads one element of a composite from the Reader.
type DecodeFunc[T any] func(*Reader) T

// WriteVector appends a ULEB128 element count followed by each element in
// order.
func WriteVector[T any](w *Writer, elems []T, enc EncodeFunc[T]) {
	w.ULEB(uint64(len(elems)))
	for _, e := range elems {
		enc(w, e)
	}
}

// ReadVector consumes a ULEB128 element count and then that many elements.
// The initial allocation is capped by the remaining input, since every
// element occupies at least one byte: a forged huge count fails on read, not
// on allocation.
func ReadVector[T any](r *Reader, dec DecodeFunc[T]) []T {
	n := r.Len("vector length")
	capHint := n
	if rem := r.in.Remaining(); capHint > rem {
		capHint = rem
	}
	out := make([]T, 0, capHint)
	for i := 0; i < n; i++ {
		out = append(out, dec(r))
	}
	return out
}

// WriteFixedArray appends each element in order with no length prefix; the
// element count is fixed by the schema.
func WriteFixedArray[T any](w *Writer, elems []T, enc EncodeFunc[T]) {
	for _, e := range elems {
		enc(w, e)
	}
}

// ReadFixedArray consumes exactly n elements with no length prefix.
func ReadFixedArray[T any](r *Reader, n int, dec DecodeFunc[T]) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, dec(r))
	}
	return out
}

// WriteOption appends 0x00 for nil, or 0x01 followed by the payload.
func WriteOption[T any](w *Writer, v *T, enc EncodeFunc[T]) {
	if v == nil {
		w.Option(false)
		return
	}
	w.Option(true)
	enc(w, *v)
}

// ReadOption consumes the option tag and, if set, the payload. Absent
// decodes to nil.
func ReadOption[T any](r *Reader, dec DecodeFunc[T]) *T {
	if !r.Option() {
		return nil
	}
	v := dec(r)
	return &v
}

// EncodeVector encodes elems as a length-prefixed homogeneous sequence.
func EncodeVector[T any](elems []T, enc EncodeFunc[T]) ([]byte, error) {
	return Marshal(func(w *Writer) error {
		WriteVector(w, elems, enc)
		return nil
	})
}

// DecodeVector decodes a length-prefixed homogeneous sequence from the front
// of raw, returning the elements and the bytes consumed.
func DecodeVector[T any](raw []byte, dec DecodeFunc[T]) (elems []T, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		elems = ReadVector(r, dec)
		return nil
	})
	return
}

// EncodeOption encodes v as an optional: tag byte, then the payload if
// present.
func EncodeOption[T any](v *T, enc EncodeFunc[T]) ([]byte, error) {
	return Marshal(func(w *Writer) error {
		WriteOption(w, v, enc)
		return nil
	})
}

// DecodeOption decodes an optional from the front of raw.
func DecodeOption[T any](raw []byte, dec DecodeFunc[T]) (v *T, n int, err error) {
	n, err = UnmarshalPrefix(raw, func(r *Reader) error {
		v = ReadOption(r, dec)
		return nil
	})
	return
}
