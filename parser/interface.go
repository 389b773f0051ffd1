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

package parser

import (
	liberr "github.com/nabbar/golib/errors"

	"github/sabouaram/httpcore/message"
)

// State is the top-level parser state.
type State uint8

const (
	StateNothingYet State = iota
	StateStartLine
	StateExpectingNewline
	StateHeader
	StateBody
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateNothingYet:
		return "nothing_yet"
	case StateStartLine:
		return "start_line"
	case StateExpectingNewline:
		return "expecting_newline"
	case StateHeader:
		return "header"
	case StateBody:
		return "body"
	case StateCompleted:
		return "completed"
	default:
		return "invalid"
	}
}

// RequestParser parses one request message incrementally. It is not safe for
// concurrent use: one connection owns one parser.
type RequestParser interface {
	// Attach points the parser at the request to populate and resets all
	// parse state.
	Attach(msg *message.Request)

	// Reset returns the parser to nothing_yet, keeping the attached message.
	Reset()

	// Parse consumes a prefix of p and returns the consumed byte count.
	// An ErrorNeedMore result is non-terminal: consumed bytes must not be
	// presented again, remaining bytes must be, extended with fresh input.
	// Any other error is terminal and reports zero consumed.
	Parse(p []byte) (int, liberr.Error)

	// State returns the current top-level state.
	State() State

	// IsCompleted reports whether the message is fully parsed.
	IsCompleted() bool
}

// ResponseParser parses one response message incrementally, with the same
// contract as RequestParser.
type ResponseParser interface {
	Attach(msg *message.Response)
	Reset()
	Parse(p []byte) (int, liberr.Error)
	State() State
	IsCompleted() bool
}

// NewRequest returns a request parser in nothing_yet, not yet attached.
func NewRequest() RequestParser {
	return &reqParser{}
}

// NewResponse returns a response parser in nothing_yet, not yet attached.
func NewResponse() ResponseParser {
	return &rspParser{}
}
