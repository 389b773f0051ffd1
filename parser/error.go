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

import liberr "github.com/nabbar/golib/errors"

const (
	// ErrorNeedMore is the only non-terminal parse error: the message is
	// incomplete and the caller must supply more bytes.
	ErrorNeedMore liberr.CodeError = iota + liberr.MinAvailable + 10
	ErrorParserDetached
	ErrorBadMethod
	ErrorEmptyMethod
	ErrorUnknownMethod
	ErrorBadScheme
	ErrorEmptyHost
	ErrorBadHost
	ErrorTooBigPort
	ErrorBadPort
	ErrorBadPath
	ErrorBadParams
	ErrorBadVersion
	ErrorBadStatus
	ErrorUnknownStatus
	ErrorBadLineEnding
	ErrorBadHeaderName
	ErrorEmptyHeaderName
	ErrorEmptyHeaderValue
	ErrorBadContentLength
	ErrorMultipleContentLength
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorNeedMore)
	liberr.RegisterIdFctMessage(ErrorNeedMore, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case liberr.UnknownError:
		return liberr.NullMessage
	case ErrorNeedMore:
		return "need more"
	case ErrorParserDetached:
		return "parser is not attached to a message"
	case ErrorBadMethod:
		return "bad method"
	case ErrorEmptyMethod:
		return "empty method"
	case ErrorUnknownMethod:
		return "unknown method"
	case ErrorBadScheme:
		return "bad scheme"
	case ErrorEmptyHost:
		return "empty host"
	case ErrorBadHost:
		return "bad host"
	case ErrorTooBigPort:
		return "too big port"
	case ErrorBadPort:
		return "bad port"
	case ErrorBadPath:
		return "bad path"
	case ErrorBadParams:
		return "bad params"
	case ErrorBadVersion:
		return "bad version"
	case ErrorBadStatus:
		return "bad status"
	case ErrorUnknownStatus:
		return "unknown status"
	case ErrorBadLineEnding:
		return "bad line ending"
	case ErrorBadHeaderName:
		return "bad header name"
	case ErrorEmptyHeaderName:
		return "empty header name"
	case ErrorEmptyHeaderValue:
		return "empty header value"
	case ErrorBadContentLength:
		return "bad content length"
	case ErrorMultipleContentLength:
		return "multiple content length"
	}

	return liberr.NullMessage
}

// IsNeedMore reports whether e is the non-terminal need-more signal.
func IsNeedMore(e liberr.Error) bool {
	return e != nil && e.IsCode(ErrorNeedMore)
}
