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
	"github/sabouaram/httpcore/protocol"
)

type statusLineState uint8

const (
	slVersion statusLineState = iota
	slStatusCode
	slReason
)

type rspParser struct {
	core

	sls statusLineState
	msg *message.Response
}

func (o *rspParser) Attach(msg *message.Response) {
	o.msg = msg
	o.Reset()
}

func (o *rspParser) Reset() {
	o.resetCore()
	o.sls = slVersion

	if o.msg != nil {
		o.hdrs = &o.msg.Headers
		o.clen = &o.msg.ContentLength
		o.body = &o.msg.Body
		o.post = nil
	}
}

func (o *rspParser) Parse(p []byte) (int, liberr.Error) {
	if o.msg == nil {
		return 0, ErrorParserDetached.Error(nil)
	}
	if o.st == StateCompleted {
		return 0, nil
	}

	b := &parseBuf{dat: p}
	for {
		var e liberr.Error

		switch o.st {
		case StateNothingYet, StateStartLine:
			e = o.parseStatusLine(b)
		case StateExpectingNewline:
			e = o.parseExpectingNewline(b)
		case StateHeader:
			e = o.parseHeaderLine(b)
		case StateBody:
			e = o.parseBody(b)
		case StateCompleted:
			return b.parsed, nil
		}

		if e != nil {
			return o.ret(b, e)
		}
	}
}

// parseStatusLine drives `HTTP-version SP status-code SP reason CRLF`.
func (o *rspParser) parseStatusLine(b *parseBuf) liberr.Error {
	o.st = StateStartLine
	for {
		var e liberr.Error

		switch o.sls {
		case slVersion:
			e = o.parseResponseVersion(b)
		case slStatusCode:
			e = o.parseStatusCode(b)
		case slReason:
			return o.parseReason(b)
		}

		if e != nil {
			return e
		}
	}
}

// parseResponseVersion matches `HTTP/` DIGIT `.` DIGIT SP: like the request
// version literal but terminated by the separating space instead of CRLF.
func (o *rspParser) parseResponseVersion(b *parseBuf) liberr.Error {
	r := b.rest()
	if len(r) < 9 {
		return ErrorNeedMore.Error(nil)
	}

	if r[0] != 'H' || r[1] != 'T' || r[2] != 'T' || r[3] != 'P' || r[4] != '/' ||
		!protocol.IsDigit(r[5]) || r[6] != '.' || !protocol.IsDigit(r[7]) ||
		r[8] != ' ' {
		return ErrorBadVersion.Error(nil)
	}

	o.msg.Version = protocol.ParseVersionDigits(r[5], r[7])
	b.parsed += 9
	o.sls = slStatusCode

	return nil
}

// parseStatusCode matches 3DIGIT SP. Three valid digits outside the
// catalogue are an unknown status; anything non-digit is a bad one.
func (o *rspParser) parseStatusCode(b *parseBuf) liberr.Error {
	r := b.rest()
	if len(r) < 4 {
		return ErrorNeedMore.Error(nil)
	}

	if r[3] != ' ' {
		return ErrorBadStatus.Error(nil)
	}

	c, ok := protocol.ParseStatusCode(r[:3])
	if !ok {
		return ErrorBadStatus.Error(nil)
	}
	if c == protocol.StatusUnknown {
		return ErrorUnknownStatus.Error(nil)
	}

	o.msg.StatusCode = c
	b.parsed += 4
	o.sls = slReason

	return nil
}

// parseReason collects the textual phrase up to CRLF, verbatim.
func (o *rspParser) parseReason(b *parseBuf) liberr.Error {
	r := b.rest()
	for i := 0; i < len(r); i++ {
		if r[i] != '\r' {
			continue
		}

		if i+1 >= len(r) {
			return ErrorNeedMore.Error(nil)
		}
		if r[i+1] != '\n' {
			return ErrorBadLineEnding.Error(nil)
		}

		o.msg.Reason = string(r[:i])
		b.parsed += i + 2
		o.sls = slVersion
		o.st = StateExpectingNewline
		return nil
	}
	return ErrorNeedMore.Error(nil)
}
