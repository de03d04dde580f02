package bcs

import (
	"fmt"
	"strings"
)

// Dump formats b as a classic hex dump for debugging: an offset column,
// sixteen hex bytes, and the printable-ASCII view. BCS payloads are opaque
// without their schema, so this is usually the first tool out when two
// implementations disagree on a byte.
func Dump(b []byte) string {
	if len(b) == 0 {
		return "(empty)\n"
	}
	var sb strings.Builder
	for off := 0; off < len(b); off += 16 {
		row := b[off:]
		if len(row) > 16 {
			row = row[:16]
		}
		fmt.Fprintf(&sb, "%08x  ", off)
		for i := 0; i < 16; i++ {
			if i == 8 {
				sb.WriteByte(' ')
			}
			if i < len(row) {
				fmt.Fprintf(&sb, "%02x ", row[i])
			} else {
				sb.WriteString("   ")
			}
		}
		sb.WriteString(" |")
		for _, c := range row {
			if c < 0x20 || c > 0x7e {
				c = '.'
			}
			sb.WriteByte(c)
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
