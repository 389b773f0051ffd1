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

import (
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"

	"github/sabouaram/httpcore/buffer"
	"github/sabouaram/httpcore/clock"
	"github/sabouaram/httpcore/message"
	"github/sabouaram/httpcore/metric"
	"github/sabouaram/httpcore/option"
	"github/sabouaram/httpcore/parser"
	"github/sabouaram/httpcore/protocol"
	"github/sabouaram/httpcore/socket"
)

type conn struct {
	id  uint64
	kac uint64
	nka bool

	sck  socket.Socket
	rbuf buffer.Buffer
	sbuf buffer.Buffer
	prs  parser.RequestParser

	req *message.Request
	rsp *message.Response
	opt option.Option

	rmt metric.IOMetric
	smt metric.IOMetric

	clk clock.Clock
	log liblog.FuncLog
}

func (o *conn) logger() liblog.Logger {
	if o.log == nil {
		return liblog.GetDefault()
	} else if l := o.log(); l == nil {
		return liblog.GetDefault()
	} else {
		return l
	}
}

func (o *conn) ID() uint64 {
	return o.id
}

func (o *conn) KeepAliveCount() uint64 {
	return o.kac
}

func (o *conn) NeedKeepAlive() bool {
	return o.nka
}

func (o *conn) SetNeedKeepAlive(flag bool) {
	o.nka = flag
	o.rsp.NeedKeepAlive = flag
}

func (o *conn) Request() *message.Request {
	return o.req
}

func (o *conn) Response() *message.Response {
	return o.rsp
}

func (o *conn) Option() option.Option {
	return o.opt
}

func (o *conn) RecvMetric() *metric.IOMetric {
	return &o.rmt
}

func (o *conn) SendMetric() *metric.IOMetric {
	return &o.smt
}

func (o *conn) ValidResponse() liberr.Error {
	if o.rsp.StatusCode == protocol.StatusUnknown {
		return ErrorInvalidResponse.Error(nil)
	}
	if o.rsp.Version == protocol.VersionUnknown {
		return ErrorInvalidResponse.Error(nil)
	}
	return nil
}

func (o *conn) Reset() {
	o.req.Reset()
	o.rsp.Reset()
	o.prs.Reset()

	// Surplus bytes of a following request stay buffered; empty buffers
	// return their cursors to zero.
	if o.rbuf.ReadableSize() == 0 {
		o.rbuf.Reset()
	}
	if o.sbuf.ReadableSize() == 0 {
		o.sbuf.Reset()
	}

	o.kac++
	o.opt.NeedKeepAlive = o.nka
	o.nka = false
}

func (o *conn) Close() error {
	return o.sck.Close()
}
