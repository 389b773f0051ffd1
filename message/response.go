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

package message

import (
	"github/sabouaram/httpcore/header"
	"github/sabouaram/httpcore/metric"
	"github/sabouaram/httpcore/protocol"
)

// Response is one response message. Handlers populate Version, StatusCode,
// Headers and Body; the send stage serializes and accounts it. The same
// struct is also the target when parsing a response off the wire, in which
// case Reason carries the received phrase.
type Response struct {
	Version       protocol.Version
	StatusCode    protocol.StatusCode
	Reason        string
	Body          []byte
	ContentLength uint64
	Headers       header.Header
	Metric        metric.IOMetric

	// NeedKeepAlive mirrors the keep-alive decision taken at dispatch so
	// handlers can see it.
	NeedKeepAlive bool
}

// Reset clears the response for reuse on the same connection, keeping the
// header storage allocated.
func (r *Response) Reset() {
	r.Version = protocol.VersionUnknown
	r.StatusCode = protocol.StatusUnknown
	r.Reason = ""
	r.Body = r.Body[:0]
	r.ContentLength = 0
	r.Headers.Reset()
	r.Metric.Reset()
	r.NeedKeepAlive = false
}
