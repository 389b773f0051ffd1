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

// Request is one parsed request message. The parser fills every field except
// Metric, which the receive stage updates around each read.
type Request struct {
	Method  protocol.Method
	Scheme  protocol.Scheme
	Version protocol.Version

	// Port is the target port: explicit from an absolute-form target, else
	// the scheme default, else 80.
	Port uint16

	Host string
	Path string

	// URI is the verbatim request target as received.
	URI string

	Body          []byte
	ContentLength uint64
	Headers       header.Header
	Params        header.Params
	Metric        metric.IOMetric
}

// Reset clears the request for reuse on the same connection, keeping the
// header and parameter storage allocated.
func (r *Request) Reset() {
	r.Method = protocol.MethodUnknown
	r.Scheme = protocol.SchemeUnknown
	r.Version = protocol.VersionUnknown
	r.Port = 0
	r.Host = ""
	r.Path = ""
	r.URI = ""
	r.Body = r.Body[:0]
	r.ContentLength = 0
	r.Headers.Reset()
	r.Params.Reset()
	r.Metric.Reset()
}
