package bcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// ulebVectors pins the encoding at the byte-count boundaries up to five bytes
// and at the ten-byte 64-bit maximum. These are the
// wire bytes the reference implementation emits; they must never change.
var ulebVectors = []struct {
	v   uint64
	enc []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7F}},
	{128, []byte{0x80, 0x01}},
	{300, []byte{0xAC, 0x02}},
	{16383, []byte{0xFF, 0x7F}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{2097151, []byte{0xFF, 0xFF, 0x7F}},
	{2097152, []byte{0x80, 0x80, 0x80, 0x01}},
	{1 << 31, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	{math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	{1 << 32, []byte{0x80, 0x80, 0x80, 0x80, 0x10}},
	{math.MaxUint64, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
}

func TestULEBVectors(t *testing.T) {
	t.Run("Encode", func(t *testing.T) {
		require := require.New(t)
		for _, tc := range ulebVectors {
			require.Equal(tc.enc, ULEBEncode(tc.v), "value %d", tc.v)
		}
	})

	t.Run("Decode", func(t *testing.T) {
		require := require.New(t)
		for _, tc := range ulebVectors {
			v, n, err := ULEBDecode(tc.enc)
			require.NoError(err, "value %d", tc.v)
			require.Equal(tc.v, v)
			require.Equal(len(tc.enc), n)
		}
	})

	t.Run("Round trip via Writer", func(t *testing.T) {
		require := require.New(t)
		for _, tc := range ulebVectors {
			w := NewWriter()
			w.ULEB(tc.v)
			require.Equal(tc.enc, w.Finish(), "value %d", tc.v)
		}
	})
}

// TestULEBMinimality checks the canonical-form rule: the terminator byte of
// a multi-byte encoding is never zero.
func TestULEBMinimality(t *testing.T) {
	require := require.New(t)
	for _, v := range []uint64{0, 1, 127, 128, 129, 16383, 16384, 1 << 21, 1 << 31, math.MaxUint32, 1 << 32, math.MaxUint64} {
		enc := ULEBEncode(v)
		last := enc[len(enc)-1]
		require.Zero(last&0x80, "value %d: terminator has continuation bit", v)
		if len(enc) > 1 {
			require.NotZero(last, "value %d: redundant trailing zero byte", v)
		}
	}
}

func TestULEBDecodeErrors(t *testing.T) {
	t.Run("Truncated", func(t *testing.T) {
		require := require.New(t)
		for _, raw := range [][]byte{nil, {0x80}, {0x80, 0x80}, {0xFF, 0xFF, 0xFF}} {
			_, _, err := ULEBDecode(raw)
			require.ErrorIs(err, ErrTruncatedInput, "input % x", raw)
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		require := require.New(t)

		// 10th byte may only carry bit 63.
		tooWide := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}
		_, _, err := ULEBDecode(tooWide)
		require.ErrorIs(err, ErrOverflow)

		// An 11th byte never fits.
		tooLong := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
		_, _, err = ULEBDecode(tooLong)
		require.ErrorIs(err, ErrOverflow)
	})
}

// TestULEBNonMinimal covers the reference-compatible default (padded input
// accepted) and the strict mode that rejects it.
func TestULEBNonMinimal(t *testing.T) {
	padded := map[uint64][]byte{
		0:   {0x80, 0x00},
		5:   {0x85, 0x80, 0x00},
		300: {0xAC, 0x82, 0x00},
	}

	t.Run("Accepted by default", func(t *testing.T) {
		require := require.New(t)
		for exp, raw := range padded {
			v, n, err := ULEBDecode(raw)
			require.NoError(err, "input % x", raw)
			require.Equal(exp, v)
			require.Equal(len(raw), n)
		}
	})

	t.Run("Rejected in strict mode", func(t *testing.T) {
		require := require.New(t)
		for _, raw := range padded {
			r := NewReader(raw)
			r.Strict = true
			require.PanicsWithError(
				(&DecodeError{Kind: ErrInvalidValue, Schema: "uleb128", Offset: 0, Detail: "non-minimal encoding"}).Error(),
				func() { r.ULEB() },
			)
		}
	})

	t.Run("Minimal input passes strict mode", func(t *testing.T) {
		require := require.New(t)
		for _, tc := range ulebVectors {
			r := NewReader(tc.enc)
			r.Strict = true
			require.Equal(tc.v, r.ULEB())
		}
	})
}
