// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

const hexDigit = "0123456789abcdef"

// Quote appends to dst the escaped form of src, suitable for the text of a
// JSON string. The enclosing quotation marks are not added.
func Quote(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)

		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				dst = append(dst, '\\', b)
			} else {
				dst = append(dst, '\\', 'u', '0', '0', hexDigit[r>>4], hexDigit[r&15])
			}
		case r == '\\' || r == '"':
			dst = append(dst, '\\', byte(r))
		case r < utf8.RuneSelf:
			dst = append(dst, byte(r))
		case r == utf8.RuneError, r == '\u2028', r == '\u2029':
			dst = append(dst, '\\', 'u')
			for shift := 12; shift >= 0; shift -= 4 {
				dst = append(dst, hexDigit[(r>>shift)&15])
			}
		default:
			dst = utf8.AppendRune(dst, r)
		}
	}
	return dst
}
