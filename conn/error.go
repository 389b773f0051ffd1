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

package conn

import liberr "github.com/nabbar/golib/errors"

const (
	ErrorEndOfStream liberr.CodeError = iota + liberr.MinAvailable + 70
	ErrorStreamRead
	ErrorStreamWrite
	ErrorRecvTimeoutNothing
	ErrorRecvTimeoutLine
	ErrorRecvTimeoutHeaders
	ErrorRecvTimeoutBody
	ErrorSendTimeout
	ErrorInvalidResponse
	ErrorConnParams
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = liberr.ExistInMapMessage(ErrorEndOfStream)
	liberr.RegisterIdFctMessage(ErrorEndOfStream, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case liberr.UnknownError:
		return liberr.NullMessage
	case ErrorEndOfStream:
		return "end of stream"
	case ErrorStreamRead:
		return "stream read error"
	case ErrorStreamWrite:
		return "stream write error"
	case ErrorRecvTimeoutNothing:
		return "receive request timeout with nothing"
	case ErrorRecvTimeoutLine:
		return "receive request line timeout"
	case ErrorRecvTimeoutHeaders:
		return "receive request headers timeout"
	case ErrorRecvTimeoutBody:
		return "receive request body timeout"
	case ErrorSendTimeout:
		return "send timeout"
	case ErrorInvalidResponse:
		return "invalid response"
	case ErrorConnParams:
		return "invalid connection parameters"
	}

	return liberr.NullMessage
}
