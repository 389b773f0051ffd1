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

// Method identifies an HTTP request method. The zero value is MethodGet;
// unrecognized tokens map to MethodUnknown. The numeric value of a method is
// also its bit index in a MethodMask.
type Method uint8

const (
	MethodGet Method = iota
	MethodHead
	MethodPost
	MethodPut
	MethodDelete
	MethodTrace
	MethodControl
	MethodPurge
	MethodOptions
	MethodConnect
	MethodUnknown
)

// MethodCount is the number of recognized methods, MethodUnknown excluded.
const MethodCount = int(MethodUnknown)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodHead:
		return "HEAD"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodTrace:
		return "TRACE"
	case MethodControl:
		return "CONTROL"
	case MethodPurge:
		return "PURGE"
	case MethodOptions:
		return "OPTIONS"
	case MethodConnect:
		return "CONNECT"
	default:
		return "UNKNOWN"
	}
}

// ParseMethod maps a method token to its Method value. The match is exact
// and case-sensitive, dispatched on length first so that each candidate is
// compared at most once.
func ParseMethod(p []byte) Method {
	switch len(p) {
	case 3:
		if p[0] == 'G' && p[1] == 'E' && p[2] == 'T' {
			return MethodGet
		}
		if p[0] == 'P' && p[1] == 'U' && p[2] == 'T' {
			return MethodPut
		}
	case 4:
		if p[0] == 'P' && p[1] == 'O' && p[2] == 'S' && p[3] == 'T' {
			return MethodPost
		}
		if p[0] == 'H' && p[1] == 'E' && p[2] == 'A' && p[3] == 'D' {
			return MethodHead
		}
	case 5:
		if p[0] == 'T' && p[1] == 'R' && p[2] == 'A' && p[3] == 'C' && p[4] == 'E' {
			return MethodTrace
		}
		if p[0] == 'P' && p[1] == 'U' && p[2] == 'R' && p[3] == 'G' && p[4] == 'E' {
			return MethodPurge
		}
	case 6:
		if string(p) == "DELETE" {
			return MethodDelete
		}
	case 7:
		if string(p) == "OPTIONS" {
			return MethodOptions
		}
		if string(p) == "CONTROL" {
			return MethodControl
		}
		if string(p) == "CONNECT" {
			return MethodConnect
		}
	}
	return MethodUnknown
}
