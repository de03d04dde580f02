package bcs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	require := require.New(t)

	t.Run("Empty", func(t *testing.T) {
		require.Equal("(empty)\n", Dump(nil))
	})

	t.Run("Single row", func(t *testing.T) {
		out := Dump([]byte{0x01, 0x61})
		require.True(strings.HasPrefix(out, "00000000  01 61 "))
		require.True(strings.HasSuffix(out, "|.a|\n"))
	})

	t.Run("Multi row", func(t *testing.T) {
		payload := EncodeString("Big Wallet Guy") // 15 bytes
		payload = append(payload, 0xFF, 0x00)     // force a second row
		out := Dump(payload)

		require.Contains(out, "00000000  0e 42 69 67 20 57 61 6c  6c 65 74 20 47 75 79 ff")
		require.Contains(out, "00000010  00")
		require.Contains(out, "|.Big Wallet Guy.|")
	})
}
