/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package protocol

// tokenTable flags the RFC 7230 tchar set:
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
var tokenTable = [256]bool{
	'!': true, '#': true, '$': true, '%': true, '&': true, '\'': true,
	'*': true, '+': true, '-': true, '.': true, '^': true, '_': true,
	'`': true, '|': true, '~': true,
	'0': true, '1': true, '2': true, '3': true, '4': true,
	'5': true, '6': true, '7': true, '8': true, '9': true,
	'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'J': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'O': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'U': true, 'V': true, 'W': true, 'X': true,
	'Y': true, 'Z': true,
	'a': true, 'b': true, 'c': true, 'd': true, 'e': true, 'f': true,
	'g': true, 'h': true, 'i': true, 'j': true, 'k': true, 'l': true,
	'm': true, 'n': true, 'o': true, 'p': true, 'q': true, 'r': true,
	's': true, 't': true, 'u': true, 'v': true, 'w': true, 'x': true,
	'y': true, 'z': true,
}

// uriTable flags the bytes accepted inside a request target: every printable
// US-ASCII character except SP and DEL, plus all high-bit octets which are
// carried opaque.
var uriTable = func() [256]bool {
	var t [256]bool
	for i := 0x21; i <= 0x7E; i++ {
		t[i] = true
	}
	for i := 0x80; i <= 0xFF; i++ {
		t[i] = true
	}
	return t
}()

// IsToken reports whether b belongs to the RFC 7230 tchar set.
func IsToken(b byte) bool {
	return tokenTable[b]
}

// IsURIChar reports whether b is accepted inside a request target.
func IsURIChar(b byte) bool {
	return uriTable[b]
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlpha reports whether b is an ASCII letter, either case.
func IsAlpha(b byte) bool {
	c := b | 0x20
	return c >= 'a' && c <= 'z'
}

// IsAlnum reports whether b is an ASCII letter or digit.
func IsAlnum(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

// IsSchemeChar reports whether b may appear in a URI scheme.
func IsSchemeChar(b byte) bool {
	return IsAlnum(b) || b == '+' || b == '-' || b == '.'
}

// IsHostChar reports whether b may appear in a host identifier.
func IsHostChar(b byte) bool {
	return IsAlnum(b) || b == '-' || b == '.'
}

// IsOWS reports whether b is optional whitespace (SP or HTAB).
func IsOWS(b byte) bool {
	return b == ' ' || b == '\t'
}

// Lower folds an ASCII letter to lowercase and leaves every other byte as is.
func Lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b | 0x20
	}
	return b
}
