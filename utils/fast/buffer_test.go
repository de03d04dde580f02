package fast

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randBytes(n int) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

// TestBuffer_Integration verifies the complete write-then-read lifecycle.
func TestBuffer_Integration(t *testing.T) {
	const N = 100
	var (
		w         *Writer
		extraData = []byte{0, 0, 0xFF, 9, 0}
	)

	t.Run("Writer", func(t *testing.T) {
		require := require.New(t)

		w = NewWriter(make([]byte, 0, N/2))
		for i := byte(0); i < N; i++ {
			w.WriteByte(i)
		}
		require.Equal(N, w.Len())

		w.Write(extraData)
		require.Equal(N+len(extraData), w.Len())
		require.Equal(w.Len(), len(w.Bytes()))
	})

	t.Run("Reader", func(t *testing.T) {
		require := require.New(t)

		r := NewReader(w.Bytes())
		require.False(r.Empty())
		require.Equal(0, r.Position())
		require.Equal(N+len(extraData), r.Remaining())

		for exp := byte(0); exp < N; exp++ {
			require.Equal(exp, r.ReadByte(), "index %d", exp)
		}
		require.Equal(N, r.Position())

		require.Equal(extraData, r.Read(len(extraData)))
		require.True(r.Empty())
		require.Zero(r.Remaining())
	})
}

func TestBuffer_CursorOps(t *testing.T) {
	require := require.New(t)

	payload := randBytes(32)
	r := NewReader(payload)

	r.Skip(10)
	require.Equal(10, r.Position())
	require.Equal(22, r.Remaining())

	chunk := r.Read(6)
	require.Equal(payload[10:16], chunk)

	tail := r.ReadRemaining()
	require.Equal(payload[16:], tail)
	require.True(r.Empty())
	require.Equal(len(payload), r.Position())
}

func TestBuffer_WriterReset(t *testing.T) {
	require := require.New(t)

	w := NewWriter(make([]byte, 0, 8))
	w.Write([]byte{1, 2, 3})
	require.Equal(3, w.Len())

	w.Reset()
	require.Equal(0, w.Len())

	w.WriteByte(9)
	require.Equal([]byte{9}, w.Bytes())
}

func TestBuffer_Boundaries(t *testing.T) {
	t.Run("Empty buffer", func(t *testing.T) {
		require := require.New(t)
		r := NewReader(nil)
		require.True(r.Empty())
		require.Zero(r.Remaining())
		require.Equal(0, r.Position())
	})

	t.Run("Overread panics", func(t *testing.T) {
		require := require.New(t)
		r := NewReader([]byte{1})
		require.Panics(func() { r.Read(2) })

		r2 := NewReader(nil)
		require.Panics(func() { r2.ReadByte() })

		r3 := NewReader([]byte{1, 2})
		require.Panics(func() { r3.Skip(3) })
	})

	t.Run("Read aliases buffer", func(t *testing.T) {
		require := require.New(t)
		buf := []byte{1, 2, 3}
		r := NewReader(buf)
		view := r.Read(2)
		view[0] = 0xAA
		require.Equal(byte(0xAA), buf[0])
	})
}
