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

// Version identifies the protocol version carried on the start line.
type Version uint8

const (
	VersionUnknown Version = iota
	VersionHTTP10
	VersionHTTP11
	VersionHTTP20
	VersionHTTP30
)

func (v Version) String() string {
	switch v {
	case VersionHTTP10:
		return "HTTP/1.0"
	case VersionHTTP11:
		return "HTTP/1.1"
	case VersionHTTP20:
		return "HTTP/2.0"
	case VersionHTTP30:
		return "HTTP/3.0"
	default:
		return "HTTP/unknown"
	}
}

// ParseVersionDigits maps a major.minor digit pair to a Version. Pairs
// outside {1.0, 1.1, 2.0, 3.0} yield VersionUnknown; the syntax around the
// digits is the caller's concern.
func ParseVersionDigits(major, minor byte) Version {
	switch {
	case major == '1' && minor == '0':
		return VersionHTTP10
	case major == '1' && minor == '1':
		return VersionHTTP11
	case major == '2' && minor == '0':
		return VersionHTTP20
	case major == '3' && minor == '0':
		return VersionHTTP30
	default:
		return VersionUnknown
	}
}
