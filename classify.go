// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jstream

// isSpace reports the bytes treated as insignificant whitespace.
var isSpace = [256]bool{
	' ':  true,
	'\n': true,
	'\t': true,
	'\r': true,
}

// isNumBody reports the bytes that may occur anywhere in a number literal.
// The decimal point is not included, since at most one is permitted.
var isNumBody = [256]bool{
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'+': true, '-': true, 'e': true, 'E': true,
}
