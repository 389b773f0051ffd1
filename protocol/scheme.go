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

// Scheme identifies the URI scheme of an absolute-form request target.
type Scheme uint8

const (
	SchemeUnknown Scheme = iota
	SchemeHTTP
	SchemeHTTPS
)

func (s Scheme) String() string {
	switch s {
	case SchemeHTTP:
		return "http"
	case SchemeHTTPS:
		return "https"
	default:
		return "unknown"
	}
}

// DefaultPort returns the well-known port for the scheme, 80 when the scheme
// is unknown or absent.
func (s Scheme) DefaultPort() uint16 {
	if s == SchemeHTTPS {
		return 443
	}
	return 80
}

// ParseScheme matches a scheme token case-insensitively against "http" and
// "https". Any other token yields SchemeUnknown.
func ParseScheme(p []byte) Scheme {
	if len(p) == 4 &&
		p[0]|0x20 == 'h' && p[1]|0x20 == 't' && p[2]|0x20 == 't' && p[3]|0x20 == 'p' {
		return SchemeHTTP
	}
	if len(p) == 5 &&
		p[0]|0x20 == 'h' && p[1]|0x20 == 't' && p[2]|0x20 == 't' && p[3]|0x20 == 'p' && p[4]|0x20 == 's' {
		return SchemeHTTPS
	}
	return SchemeUnknown
}
