package bcs

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/rony4d/go-sui-wallet/utils/fast"
)

// Reader decodes a BCS byte sequence front to back. Every read either
// succeeds or panics with a *DecodeError carrying the schema element and
// byte offset; Unmarshal and the Decode helpers recover those panics into
// error returns. Availability is checked before every read, so the
// underlying buffer's own bounds trap fires only on a bug in this package.
//
// A Reader is single-owner: it must not be shared between goroutines. After
// a failed read the cursor position is unspecified and the Reader must not
// be used further.
type Reader struct {
	in *fast.Reader

	// Strict rejects non-minimal ULEB128 input (a multi-byte encoding whose
	// last byte is zero) as an invalid value. The default, like the
	// reference implementation, is to accept it.
	Strict bool
}

// NewReader creates a Reader over raw with the cursor at position 0. The
// Reader borrows raw; it never mutates it, but callers must not either while
// decoding.
func NewReader(raw []byte) *Reader {
	return &Reader{
		in: fast.NewReader(raw),
	}
}

// need panics with a truncated-input error unless n more bytes are
// available.
func (r *Reader) need(n int, schema string) {
	if r.in.Remaining() < n {
		panic(&DecodeError{
			Kind:   ErrTruncatedInput,
			Schema: schema,
			Offset: r.in.Position(),
			Detail: fmt.Sprintf("need %d bytes, have %d", n, r.in.Remaining()),
		})
	}
}

// U8 consumes one byte.
func (r *Reader) U8() uint8 {
	r.need(1, "u8")
	return r.in.ReadByte()
}

// U16 consumes 2 bytes, little-endian.
func (r *Reader) U16() uint16 {
	r.need(2, "u16")
	return binary.LittleEndian.Uint16(r.in.Read(2))
}

// U32 consumes 4 bytes, little-endian.
func (r *Reader) U32() uint32 {
	r.need(4, "u32")
	return binary.LittleEndian.Uint32(r.in.Read(4))
}

// U64 consumes 8 bytes, little-endian.
func (r *Reader) U64() uint64 {
	r.need(8, "u64")
	return binary.LittleEndian.Uint64(r.in.Read(8))
}

// U128 consumes 16 little-endian bytes into an arbitrary-precision integer.
func (r *Reader) U128() *big.Int {
	return r.bigLE("u128", 16)
}

// U256 consumes 32 little-endian bytes into an arbitrary-precision integer.
func (r *Reader) U256() *big.Int {
	return r.bigLE("u256", 32)
}

func (r *Reader) bigLE(schema string, width int) *big.Int {
	r.need(width, schema)
	le := r.in.Read(width)
	be := make([]byte, width)
	for i, b := range le {
		be[width-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// Bool consumes one byte; only 0x00 and 0x01 are in domain.
func (r *Reader) Bool() bool {
	start := r.in.Position()
	r.need(1, "bool")
	switch b := r.in.ReadByte(); b {
	case 0:
		return false
	case 1:
		return true
	default:
		panic(&DecodeError{
			Kind:   ErrInvalidValue,
			Schema: "bool",
			Offset: start,
			Detail: fmt.Sprintf("byte 0x%02x outside {0,1}", b),
		})
	}
}

// ULEB consumes a ULEB128 value of at most 64 bits. Fails with truncated
// input if the buffer ends before a terminator byte, and with overflow if
// the value does not fit in 64 bits. Non-minimal input is accepted unless
// Strict is set.
func (r *Reader) ULEB() uint64 {
	start := r.in.Position()
	var v uint64
	for i := 0; ; i++ {
		r.need(1, "uleb128")
		c := r.in.ReadByte()
		payload := uint64(c & 0x7f)
		// The 10th byte holds bit 63 alone: anything above it, or an 11th
		// byte, no longer fits a 64-bit value.
		if i == maxULEB64Bytes-1 && (payload > 1 || c&0x80 != 0) {
			panic(&DecodeError{
				Kind:   ErrOverflow,
				Schema: "uleb128",
				Offset: start,
				Detail: "value wider than 64 bits",
			})
		}
		v |= payload << (7 * i)
		if c&0x80 == 0 {
			if r.Strict && i > 0 && payload == 0 {
				panic(&DecodeError{
					Kind:   ErrInvalidValue,
					Schema: "uleb128",
					Offset: start,
					Detail: "non-minimal encoding",
				})
			}
			return v
		}
	}
}

// Len consumes a ULEB128 length prefix for the named schema element and
// bounds it to the platform int.
func (r *Reader) Len(schema string) int {
	start := r.in.Position()
	v := r.ULEB()
	if v > uint64(math.MaxInt) {
		panic(&DecodeError{
			Kind:   ErrOverflow,
			Schema: schema,
			Offset: start,
			Detail: fmt.Sprintf("length %d exceeds platform int", v),
		})
	}
	return int(v)
}

// FixedBytes consumes exactly n bytes and returns them as a fresh slice that
// does not alias the input.
func (r *Reader) FixedBytes(n int) []byte {
	r.need(n, "bytes")
	out := make([]byte, n)
	copy(out, r.in.Read(n))
	return out
}

// SliceBytes consumes a ULEB128 byte count followed by that many raw bytes.
func (r *Reader) SliceBytes() []byte {
	n := r.Len("byte vector length")
	return r.FixedBytes(n)
}

// String consumes a ULEB128 byte count followed by that many UTF-8 bytes.
// Malformed UTF-8 is rejected outright rather than smoothed over with
// replacement runes: these strings end up inside signed payloads, where the
// bytes are the value.
func (r *Reader) String() string {
	n := r.Len("string length")
	start := r.in.Position()
	r.need(n, "string")
	body := r.in.Read(n)
	if !utf8.Valid(body) {
		panic(&DecodeError{
			Kind:   ErrInvalidValue,
			Schema: "string",
			Offset: start,
			Detail: "invalid UTF-8",
		})
	}
	return string(body)
}

// Option consumes the option tag and reports whether a payload follows.
// Only 0x00 and 0x01 are in domain.
func (r *Reader) Option() bool {
	start := r.in.Position()
	r.need(1, "option tag")
	switch b := r.in.ReadByte(); b {
	case 0:
		return false
	case 1:
		return true
	default:
		panic(&DecodeError{
			Kind:   ErrInvalidValue,
			Schema: "option tag",
			Offset: start,
			Detail: fmt.Sprintf("tag 0x%02x outside {0,1}", b),
		})
	}
}

// EnumVariant consumes a ULEB128 discriminant and checks it against the
// variant count.
func (r *Reader) EnumVariant(variants uint64) uint64 {
	start := r.in.Position()
	v := r.ULEB()
	if v >= variants {
		panic(&DecodeError{
			Kind:   ErrInvalidValue,
			Schema: "enum discriminant",
			Offset: start,
			Detail: fmt.Sprintf("variant %d out of range [0,%d)", v, variants),
		})
	}
	return v
}

// ReadRemaining consumes the rest of the input and returns a fresh copy.
func (r *Reader) ReadRemaining() []byte {
	tail := r.in.ReadRemaining()
	out := make([]byte, len(tail))
	copy(out, tail)
	return out
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) {
	r.need(n, "skip")
	r.in.Skip(n)
}

// Position returns the number of bytes consumed so far.
func (r *Reader) Position() int {
	return r.in.Position()
}

// HasMore reports whether unconsumed bytes remain.
func (r *Reader) HasMore() bool {
	return !r.in.Empty()
}

// Empty reports whether the entire input has been consumed.
func (r *Reader) Empty() bool {
	return r.in.Empty()
}
