package bcs

// ULEB128: each byte carries seven payload bits, low group first; the high
// bit flags a continuation. Encoders always emit the minimal form — the last
// byte of a multi-byte encoding is never zero — because BCS output feeds
// hashes and signatures, and two spellings of the same length would break
// canonicality.

// maxULEB64Bytes is the longest minimal encoding of a 64-bit value,
// ceil(64/7).
const maxULEB64Bytes = 10

// ULEBEncode returns the minimal ULEB128 encoding of v.
// Zero encodes to the single byte 0x00.
func ULEBEncode(v uint64) []byte {
	if v < 0x80 {
		return []byte{byte(v)}
	}
	out := make([]byte, 0, maxULEB64Bytes)
	for {
		chunk := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			chunk |= 0x80
		}
		out = append(out, chunk)
		if v == 0 {
			return out
		}
	}
}

// ULEBDecode decodes a ULEB128 value from the front of b, returning the
// value and the number of bytes consumed. It accepts non-minimal input, like
// the reference implementation; wrap a Reader with Strict set to reject it.
func ULEBDecode(b []byte) (v uint64, n int, err error) {
	n, err = UnmarshalPrefix(b, func(r *Reader) error {
		v = r.ULEB()
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return v, n, nil
}
