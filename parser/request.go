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

type requestLineState uint8

const (
	rlMethod requestLineState = iota
	rlSpacesBeforeURI
	rlURI
	rlSpacesBeforeVersion
	rlVersion
)

type uriState uint8

const (
	uriInitial uriState = iota
	uriScheme
	uriHost
	uriPort
	uriPath
	uriParams
	uriCompleted
)

type paramState uint8

const (
	prmName paramState = iota
	prmValue
	prmCompleted
)

type reqParser struct {
	core

	rls requestLineState
	uls uriState
	pls paramState

	// pname is the scratch copy of a query parameter name whose value has
	// not been seen yet.
	pname []byte

	msg *message.Request
}

func (o *reqParser) Attach(msg *message.Request) {
	o.msg = msg
	o.Reset()
}

func (o *reqParser) Reset() {
	o.resetCore()
	o.rls = rlMethod
	o.uls = uriInitial
	o.pls = prmName
	o.pname = o.pname[:0]

	if o.msg != nil {
		o.hdrs = &o.msg.Headers
		o.clen = &o.msg.ContentLength
		o.body = &o.msg.Body
		o.post = o.headersDone
	}
}

func (o *reqParser) Parse(p []byte) (int, liberr.Error) {
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
			e = o.parseRequestLine(b)
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

// parseRequestLine drives `method SP request-target SP HTTP-version CRLF`.
func (o *reqParser) parseRequestLine(b *parseBuf) liberr.Error {
	o.st = StateStartLine
	for {
		var e liberr.Error

		switch o.rls {
		case rlMethod:
			e = o.parseMethod(b)
		case rlSpacesBeforeURI:
			e = o.parseSpaces(b, rlURI)
		case rlURI:
			e = o.parseURI(b)
		case rlSpacesBeforeVersion:
			e = o.parseSpaces(b, rlVersion)
		case rlVersion:
			return o.parseRequestVersion(b)
		}

		if e != nil {
			return e
		}
	}
}

// parseMethod collects token bytes until the first separating space. The
// token must match one of the recognized methods exactly.
func (o *reqParser) parseMethod(b *parseBuf) liberr.Error {
	r := b.rest()
	for i := 0; i < len(r); i++ {
		if protocol.IsToken(r[i]) {
			continue
		}

		if r[i] != ' ' {
			return ErrorBadMethod.Error(nil)
		}
		if i == 0 {
			return ErrorEmptyMethod.Error(nil)
		}

		m := protocol.ParseMethod(r[:i])
		if m == protocol.MethodUnknown {
			return ErrorUnknownMethod.Error(nil)
		}

		o.msg.Method = m
		b.parsed += i
		o.rls = rlSpacesBeforeURI
		return nil
	}
	return ErrorNeedMore.Error(nil)
}

// parseSpaces skips the one-or-more whitespace run between request line
// tokens, then moves to the next sub-state.
func (o *reqParser) parseSpaces(b *parseBuf, next requestLineState) liberr.Error {
	r := b.rest()
	i := 0

	for i < len(r) && protocol.IsOWS(r[i]) {
		i++
	}
	if i == len(r) {
		return ErrorNeedMore.Error(nil)
	}

	b.parsed += i
	o.rls = next

	return nil
}

// parseURI drives the request-target sub-machine. The whole target is
// rescanned from its first byte on every attempt — nothing inside it is
// committed until the terminating space is seen — so the URI-derived fields
// are cleared on entry and the verbatim target stays contiguous for the
// final URI capture.
func (o *reqParser) parseURI(b *parseBuf) liberr.Error {
	r := b.rest()
	if len(r) == 0 {
		return ErrorNeedMore.Error(nil)
	}

	o.uls = uriInitial
	for {
		var e liberr.Error

		switch o.uls {
		case uriInitial:
			o.msg.Scheme = protocol.SchemeUnknown
			o.msg.Host = ""
			o.msg.Port = 0
			o.msg.Path = ""
			o.msg.URI = ""
			o.msg.Params.Reset()
			o.inn = 0
			o.pname = o.pname[:0]

			if r[0] == '/' {
				o.msg.Port = 80
				o.uls = uriPath
			} else {
				o.uls = uriScheme
			}
		case uriScheme:
			e = o.parseScheme(r)
		case uriHost:
			e = o.parseHost(r)
		case uriPort:
			e = o.parsePort(r)
		case uriPath:
			e = o.parsePath(r)
		case uriParams:
			e = o.parseParams(r)
		case uriCompleted:
			o.msg.URI = string(r[:o.inn])
			b.parsed += o.inn
			o.inn = 0
			o.rls = rlSpacesBeforeVersion
			return nil
		}

		if e != nil {
			return e
		}
	}
}

// parseScheme reads `scheme "://"`. The scheme matches "http"/"https"
// case-insensitively, any other token is carried as unknown.
func (o *reqParser) parseScheme(r []byte) liberr.Error {
	for i := o.inn; i < len(r); i++ {
		if protocol.IsSchemeChar(r[i]) {
			continue
		}

		if len(r)-i < 3 {
			return ErrorNeedMore.Error(nil)
		}
		if r[i] != ':' || r[i+1] != '/' || r[i+2] != '/' {
			return ErrorBadScheme.Error(nil)
		}

		o.msg.Scheme = protocol.ParseScheme(r[o.inn:i])
		o.inn = i + 3
		o.uls = uriHost
		return nil
	}
	return ErrorNeedMore.Error(nil)
}

// parseHost reads the host identifier up to one of its terminators. An empty
// host is forbidden for the http and https schemes.
func (o *reqParser) parseHost(r []byte) liberr.Error {
	for i := o.inn; i < len(r); i++ {
		if protocol.IsHostChar(r[i]) {
			continue
		}

		if r[i] != ':' && r[i] != '/' && r[i] != '?' && r[i] != ' ' {
			return ErrorBadHost.Error(nil)
		}

		if i == o.inn &&
			(o.msg.Scheme == protocol.SchemeHTTP || o.msg.Scheme == protocol.SchemeHTTPS) {
			return ErrorEmptyHost.Error(nil)
		}

		o.msg.Host = string(r[o.inn:i])

		switch r[i] {
		case ':':
			o.inn = i + 1
			o.uls = uriPort
		case '/':
			o.msg.Port = o.msg.Scheme.DefaultPort()
			o.inn = i
			o.uls = uriPath
		case '?':
			o.msg.Port = o.msg.Scheme.DefaultPort()
			o.inn = i + 1
			o.uls = uriParams
		case ' ':
			o.msg.Port = o.msg.Scheme.DefaultPort()
			o.inn = i
			o.uls = uriCompleted
		}
		return nil
	}
	return ErrorNeedMore.Error(nil)
}

// parsePort accumulates decimal digits, leading zeros permitted. A value
// over 65535 is rejected; a value of zero falls back to the scheme default.
func (o *reqParser) parsePort(r []byte) liberr.Error {
	var acc uint32

	for i := o.inn; i < len(r); i++ {
		if protocol.IsDigit(r[i]) {
			acc = acc*10 + uint32(r[i]-'0')
			if acc > 65535 {
				return ErrorTooBigPort.Error(nil)
			}
			continue
		}

		if r[i] != '/' && r[i] != '?' && r[i] != ' ' {
			return ErrorBadPort.Error(nil)
		}

		if acc == 0 {
			acc = uint32(o.msg.Scheme.DefaultPort())
		}
		o.msg.Port = uint16(acc)

		switch r[i] {
		case '/':
			o.inn = i
			o.uls = uriPath
		case '?':
			o.inn = i + 1
			o.uls = uriParams
		case ' ':
			o.inn = i
			o.uls = uriCompleted
		}
		return nil
	}

	return ErrorNeedMore.Error(nil)
}

// parsePath reads the path up to '?' or the terminating space.
func (o *reqParser) parsePath(r []byte) liberr.Error {
	for i := o.inn; i < len(r); i++ {
		if r[i] == '?' {
			o.msg.Path = string(r[o.inn:i])
			o.inn = i + 1
			o.uls = uriParams
			return nil
		}
		if r[i] == ' ' {
			o.msg.Path = string(r[o.inn:i])
			o.inn = i
			o.uls = uriCompleted
			return nil
		}
		if !protocol.IsURIChar(r[i]) {
			return ErrorBadPath.Error(nil)
		}
	}
	return ErrorNeedMore.Error(nil)
}

// parseParams drives `name[=value](&name[=value])*` until the terminating
// space. Adjacent ampersands are collapsed; an empty name is only accepted
// when an explicit '=' introduces the value; duplicates are preserved in
// insertion order.
func (o *reqParser) parseParams(r []byte) liberr.Error {
	o.pls = prmName
	for {
		var e liberr.Error

		switch o.pls {
		case prmName:
			e = o.parseParamName(r)
		case prmValue:
			e = o.parseParamValue(r)
		case prmCompleted:
			o.pname = o.pname[:0]
			o.uls = uriCompleted
			return nil
		}

		if e != nil {
			return e
		}
	}
}

func (o *reqParser) parseParamName(r []byte) liberr.Error {
	for i := o.inn; i < len(r); i++ {
		switch {
		case r[i] == '&':
			if i == o.inn {
				// Empty segment from "?&" or "&&": skip it.
				o.inn = i + 1
				return nil
			}
			o.msg.Params.Add(string(r[o.inn:i]), "")
			o.inn = i + 1
			return nil

		case r[i] == '=':
			o.pname = append(o.pname[:0], r[o.inn:i]...)
			o.inn = i + 1
			o.pls = prmValue
			return nil

		case r[i] == ' ':
			if i > o.inn {
				o.msg.Params.Add(string(r[o.inn:i]), "")
			}
			o.inn = i
			o.pls = prmCompleted
			return nil

		case !protocol.IsURIChar(r[i]):
			return ErrorBadParams.Error(nil)
		}
	}
	return ErrorNeedMore.Error(nil)
}

func (o *reqParser) parseParamValue(r []byte) liberr.Error {
	for i := o.inn; i < len(r); i++ {
		switch {
		case r[i] == '&':
			o.msg.Params.Add(string(o.pname), string(r[o.inn:i]))
			o.inn = i + 1
			o.pls = prmName
			return nil

		case r[i] == ' ':
			o.msg.Params.Add(string(o.pname), string(r[o.inn:i]))
			o.inn = i
			o.pls = prmCompleted
			return nil

		case !protocol.IsURIChar(r[i]):
			return ErrorBadParams.Error(nil)
		}
	}
	return ErrorNeedMore.Error(nil)
}

// parseRequestVersion matches the literal `HTTP/` DIGIT `.` DIGIT CRLF.
// The digit pair maps onto the known versions, anything else is carried as
// unknown; any syntax deviation is fatal.
func (o *reqParser) parseRequestVersion(b *parseBuf) liberr.Error {
	r := b.rest()
	if len(r) < 10 {
		return ErrorNeedMore.Error(nil)
	}

	if r[0] != 'H' || r[1] != 'T' || r[2] != 'T' || r[3] != 'P' || r[4] != '/' ||
		!protocol.IsDigit(r[5]) || r[6] != '.' || !protocol.IsDigit(r[7]) ||
		r[8] != '\r' || r[9] != '\n' {
		return ErrorBadVersion.Error(nil)
	}

	o.msg.Version = protocol.ParseVersionDigits(r[5], r[7])
	b.parsed += 10
	o.rls = rlMethod
	o.st = StateExpectingNewline

	return nil
}

// headersDone is the request-side hook run at the body transition. Host and
// Connection are reserved for semantic extraction here; the core keep-alive
// policy only tests header presence, so both hooks stay empty.
func (o *reqParser) headersDone() liberr.Error {
	o.parseHeaderHost()
	o.parseHeaderConnection()
	return nil
}

func (o *reqParser) parseHeaderHost() {
}

func (o *reqParser) parseHeaderConnection() {
}
