package sql

import (
	"fmt"
	"strings"
)

// ToBinary encodes raw bytes using octal escaping: printable ASCII in
// 0x20-0x7E passes through verbatim, except the quote (0x27) and
// backslash (0x5C) which, like all other bytes, render as a
// backslash-escaped three-digit octal sequence. The rule is symmetric:
// decoding the output byte-by-byte reproduces the input exactly.
func (b *base) ToBinary(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, c := range data {
		if c >= 0x20 && c <= 0x7e && c != 0x27 && c != 0x5c {
			sb.WriteByte(c)
			continue
		}
		fmt.Fprintf(&sb, `\%03o`, c)
	}
	return sb.String()
}

// BinaryLiteral renders raw bytes as a hexadecimal literal, the form
// understood by MySQL and SQLite. Engines with their own binary literal
// syntax override this.
func (b *base) BinaryLiteral(data []byte) string {
	return fmt.Sprintf("X'%X'", data)
}
