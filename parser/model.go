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
	"strconv"

	liberr "github.com/nabbar/golib/errors"

	"github/sabouaram/httpcore/header"
	"github/sabouaram/httpcore/protocol"
)

const headerContentLength = "Content-Length"

type headerState uint8

const (
	hdrName headerState = iota
	hdrSpacesBeforeValue
	hdrValue
	hdrLineEnding
)

// parseBuf tracks one Parse call: the presented bytes and how many of them
// are committed as consumed. Composite productions scan past parsed without
// committing until they complete.
type parseBuf struct {
	dat    []byte
	parsed int
}

// rest returns the bytes not yet committed.
func (b *parseBuf) rest() []byte {
	return b.dat[b.parsed:]
}

// core carries the state shared by the request and the response parser:
// the top-level state, the header line sub-machine and the body reader.
// The message fields it fills are attached as pointers so the same code
// serves both message types.
type core struct {
	st  State
	hst headerState

	// inn counts bytes scanned inside the current composite production
	// (header line or URI), relative to parsed. It is committed only when
	// the production completes.
	inn int

	// name is the scratch copy of a header name whose value has not been
	// seen yet, verbatim casing.
	name []byte

	hdrs *header.Header
	clen *uint64
	body *[]byte

	// post is the message-specific hook chain run after Content-Length
	// framing at the body transition.
	post func() liberr.Error
}

func (o *core) resetCore() {
	o.st = StateNothingYet
	o.hst = hdrName
	o.inn = 0
	o.name = o.name[:0]
}

func (o *core) State() State {
	return o.st
}

func (o *core) IsCompleted() bool {
	return o.st == StateCompleted
}

// ret converts a sub-parser error into the Parse result: need-more commits
// what was consumed so far, anything else is fatal and consumes nothing.
func (o *core) ret(b *parseBuf, e liberr.Error) (int, liberr.Error) {
	if IsNeedMore(e) {
		return b.parsed, e
	}
	return 0, e
}

// parseExpectingNewline decides between another header line and the body:
// a blank CRLF line ends the header section, any other byte re-enters the
// header machine. A carriage return not followed by a line feed is a framing
// error.
func (o *core) parseExpectingNewline(b *parseBuf) liberr.Error {
	r := b.rest()
	if len(r) < 2 {
		return ErrorNeedMore.Error(nil)
	}

	if r[0] != '\r' {
		o.st = StateHeader
		return nil
	}

	if r[1] != '\n' {
		return ErrorBadLineEnding.Error(nil)
	}

	if e := o.finalizeHeaders(); e != nil {
		return e
	}

	b.parsed += 2
	o.st = StateBody

	return nil
}

// parseHeaderLine parses one field line, `name ":" OWS value OWS CRLF`,
// committing the whole line at once when its ending is seen.
func (o *core) parseHeaderLine(b *parseBuf) liberr.Error {
	for {
		var e liberr.Error

		switch o.hst {
		case hdrName:
			e = o.parseHeaderName(b)
		case hdrSpacesBeforeValue:
			e = o.parseHeaderSpaces(b)
		case hdrValue:
			e = o.parseHeaderValue(b)
		case hdrLineEnding:
			return o.parseHeaderLineEnding(b)
		}

		if e != nil {
			return e
		}
	}
}

func (o *core) parseHeaderName(b *parseBuf) liberr.Error {
	r := b.rest()
	for i := o.inn; i < len(r); i++ {
		if r[i] == ':' {
			if i == o.inn {
				return ErrorEmptyHeaderName.Error(nil)
			}
			o.name = append(o.name[:0], r[o.inn:i]...)
			o.inn = i + 1
			o.hst = hdrSpacesBeforeValue
			return nil
		}
		if !protocol.IsToken(r[i]) {
			return ErrorBadHeaderName.Error(nil)
		}
	}
	return ErrorNeedMore.Error(nil)
}

func (o *core) parseHeaderSpaces(b *parseBuf) liberr.Error {
	r := b.rest()
	i := o.inn

	for i < len(r) && protocol.IsOWS(r[i]) {
		i++
	}
	if i == len(r) {
		return ErrorNeedMore.Error(nil)
	}

	o.inn = i
	o.hst = hdrValue

	return nil
}

func (o *core) parseHeaderValue(b *parseBuf) liberr.Error {
	r := b.rest()
	for i := o.inn; i < len(r); i++ {
		if r[i] != '\r' {
			continue
		}

		// Strip trailing optional whitespace.
		j := i
		for j > o.inn && protocol.IsOWS(r[j-1]) {
			j--
		}
		if j == o.inn {
			return ErrorEmptyHeaderValue.Error(nil)
		}

		o.hdrs.Add(string(o.name), string(r[o.inn:j]))
		o.inn = i
		o.hst = hdrLineEnding
		return nil
	}
	return ErrorNeedMore.Error(nil)
}

func (o *core) parseHeaderLineEnding(b *parseBuf) liberr.Error {
	r := b.rest()
	if len(r)-o.inn < 2 {
		return ErrorNeedMore.Error(nil)
	}
	if r[o.inn] != '\r' || r[o.inn+1] != '\n' {
		return ErrorBadLineEnding.Error(nil)
	}

	b.parsed += o.inn + 2
	o.inn = 0
	o.name = o.name[:0]
	o.hst = hdrName
	o.st = StateExpectingNewline

	return nil
}

// finalizeHeaders runs the special-header post-processing at the body
// transition: Content-Length framing here, Host and Connection hooks on the
// request side.
func (o *core) finalizeHeaders() liberr.Error {
	switch o.hdrs.Count(headerContentLength) {
	case 0:
		*o.clen = 0

	case 1:
		v, _ := o.hdrs.Get(headerContentLength)
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return ErrorBadContentLength.ErrorParent(err)
		}
		*o.clen = n

	default:
		return ErrorMultipleContentLength.Error(nil)
	}

	if o.post != nil {
		return o.post()
	}
	return nil
}

// parseBody reads exactly Content-Length bytes. Bytes beyond that stay with
// the caller: they are neither consumed nor discarded.
func (o *core) parseBody(b *parseBuf) liberr.Error {
	n := *o.clen
	if n == 0 {
		o.st = StateCompleted
		return nil
	}

	r := b.rest()
	if uint64(len(r)) < n {
		return ErrorNeedMore.Error(nil)
	}

	*o.body = append((*o.body)[:0], r[:n]...)
	b.parsed += int(n)
	o.st = StateCompleted

	return nil
}
