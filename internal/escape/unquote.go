// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles quoting and unquoting of JSON string text.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// unescaped maps the byte following a backslash to its decoded value.
var unescaped = [256]byte{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// Unquote decodes the text of a JSON string, without its enclosing quotation
// marks. Escape sequences are replaced with their unescaped equivalents.
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src mem.RO) ([]byte, error) {
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(nil, src), nil
	}
	dec := make([]byte, 0, src.Len())
	for i >= 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		c := src.At(0)
		src = src.SliceFrom(1)
		if c == 'u' {
			if src.Len() < 4 {
				return nil, errors.New("incomplete Unicode escape")
			}
			v, err := parseHex(src.SliceTo(4))
			if err != nil {
				v = utf8.RuneError
			}
			dec = utf8.AppendRune(dec, v)
			src = src.SliceFrom(4)
		} else if d := unescaped[c]; d != 0 {
			dec = append(dec, d)
		} else {
			dec = utf8.AppendRune(dec, utf8.RuneError)
			if c >= utf8.RuneSelf {
				// Skip the remainder of a multi-byte rune.
				for src.Len() > 0 && !utf8.RuneStart(src.At(0)) {
					src = src.SliceFrom(1)
				}
			}
		}
		i = mem.IndexByte(src, '\\')
	}
	return mem.Append(dec, src), nil
}

func parseHex(data mem.RO) (rune, error) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += rune(b - '0')
		case 'a' <= b && b <= 'f':
			v += rune(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += rune(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
