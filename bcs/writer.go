package bcs

import (
	"encoding/binary"
	"math/big"

	"github.com/rony4d/go-sui-wallet/utils/fast"
)

// Writer accumulates a BCS byte sequence. All multi-byte integers go out
// little-endian; variable-length payloads are prefixed with a minimal
// ULEB128 count.
//
// A Writer is single-owner: it must not be shared between goroutines. The
// U128/U256 methods panic with *EncodeError when handed an out-of-range
// value; Marshal recovers that panic into an error return, so callers
// driving a Writer by hand should either go through Marshal or treat an
// out-of-range value as the precondition violation it is. After such a
// panic the Writer's contents are unspecified — Reset or discard it.
type Writer struct {
	out *fast.Writer
}

// NewWriter creates an empty Writer with a small pre-sized buffer.
func NewWriter() *Writer {
	return &Writer{
		out: fast.NewWriter(make([]byte, 0, 128)),
	}
}

// U8 appends a single byte.
func (w *Writer) U8(v uint8) {
	w.out.WriteByte(v)
}

// U16 appends v as 2 little-endian bytes.
func (w *Writer) U16(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.out.Write(buf[:])
}

// U32 appends v as 4 little-endian bytes.
func (w *Writer) U32(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.out.Write(buf[:])
}

// U64 appends v as 8 little-endian bytes.
func (w *Writer) U64(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.out.Write(buf[:])
}

// U128 appends v as exactly 16 little-endian bytes.
// Panics with *EncodeError if v is nil, negative, or >= 2^128.
func (w *Writer) U128(v *big.Int) {
	w.bigLE("u128", v, 16)
}

// U256 appends v as exactly 32 little-endian bytes.
// Panics with *EncodeError if v is nil, negative, or >= 2^256.
func (w *Writer) U256(v *big.Int) {
	w.bigLE("u256", v, 32)
}

// bigLE writes the little-endian fixed-width form of an arbitrary-precision
// integer. big.Int.Bytes yields the magnitude big-endian, so the bytes are
// reversed into a zero-padded buffer of the full width.
func (w *Writer) bigLE(schema string, v *big.Int, width int) {
	if v == nil {
		panic(&EncodeError{Kind: ErrValueOutOfRange, Schema: schema, Detail: "nil value"})
	}
	if v.Sign() < 0 {
		panic(&EncodeError{Kind: ErrValueOutOfRange, Schema: schema, Detail: "negative value"})
	}
	if v.BitLen() > 8*width {
		panic(&EncodeError{Kind: ErrValueOutOfRange, Schema: schema, Detail: "value wider than " + schema})
	}
	be := v.Bytes()
	buf := make([]byte, width)
	for i, b := range be {
		buf[len(be)-1-i] = b
	}
	w.out.Write(buf)
}

// Bool appends 0x01 for true, 0x00 for false.
func (w *Writer) Bool(v bool) {
	if v {
		w.out.WriteByte(1)
	} else {
		w.out.WriteByte(0)
	}
}

// ULEB appends the minimal ULEB128 encoding of v.
func (w *Writer) ULEB(v uint64) {
	for {
		chunk := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			chunk |= 0x80
		}
		w.out.WriteByte(chunk)
		if v == 0 {
			return
		}
	}
}

// FixedBytes appends v verbatim, no length prefix. The length is part of the
// caller's schema.
func (w *Writer) FixedBytes(v []byte) {
	w.out.Write(v)
}

// SliceBytes appends a ULEB128 byte count followed by v.
func (w *Writer) SliceBytes(v []byte) {
	w.ULEB(uint64(len(v)))
	w.out.Write(v)
}

// String appends a ULEB128 byte count (not rune count) followed by the UTF-8
// bytes of s. Go strings are assumed well-formed UTF-8 at this boundary.
func (w *Writer) String(s string) {
	w.ULEB(uint64(len(s)))
	w.out.Write([]byte(s))
}

// Option appends the option tag: 0x01 if a payload follows, 0x00 otherwise.
// The caller writes the payload after a true tag.
func (w *Writer) Option(present bool) {
	w.Bool(present)
}

// EnumVariant appends the ULEB128 discriminant of a tagged union. The
// variant payload follows.
func (w *Writer) EnumVariant(index uint64) {
	w.ULEB(index)
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int {
	return w.out.Len()
}

// Finish returns a copy of the accumulated bytes. The copy stays valid after
// the Writer is reset or written to again.
func (w *Writer) Finish() []byte {
	out := make([]byte, w.out.Len())
	copy(out, w.out.Bytes())
	return out
}

// Reset discards the contents, keeping the allocation.
func (w *Writer) Reset() {
	w.out.Reset()
}
