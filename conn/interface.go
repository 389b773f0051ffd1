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
	"context"
	"sync/atomic"

	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"

	"github/sabouaram/httpcore/buffer"
	"github/sabouaram/httpcore/clock"
	"github/sabouaram/httpcore/message"
	"github/sabouaram/httpcore/metric"
	"github/sabouaram/httpcore/option"
	"github/sabouaram/httpcore/parser"
	"github/sabouaram/httpcore/socket"
)

var connID atomic.Uint64

// Connection drives one conversation: receive a request, let a handler
// build the response, send it, then either reset for keep-alive reuse or
// close. It is owned by a single goroutine.
type Connection interface {
	// ID returns the connection identifier, unique per process.
	ID() uint64

	// KeepAliveCount returns how many times the connection was reused.
	KeepAliveCount() uint64

	// NeedKeepAlive returns the keep-alive decision of the last dispatch.
	NeedKeepAlive() bool

	// SetNeedKeepAlive stores the keep-alive decision for this exchange.
	SetNeedKeepAlive(flag bool)

	// Request returns the request of the current exchange.
	Request() *message.Request

	// Response returns the response of the current exchange.
	Response() *message.Response

	// Option returns the connection options.
	Option() option.Option

	// RecvMetric returns the receive-direction totals across every
	// exchange of this connection.
	RecvMetric() *metric.IOMetric

	// SendMetric returns the send-direction totals across every exchange
	// of this connection.
	SendMetric() *metric.IOMetric

	// Recv reads and parses one complete request under the receive
	// deadline. The non-terminal need-more of the parser never escapes:
	// any returned error ends the conversation.
	Recv(ctx context.Context) liberr.Error

	// ValidResponse fails when the handler left the response version or
	// status code unknown.
	ValidResponse() liberr.Error

	// Send serializes the response and writes it out under the send
	// deadline.
	Send(ctx context.Context) liberr.Error

	// Reset prepares the connection for the next exchange: request,
	// response and parser cleared in place, keep-alive counter bumped,
	// socket, options and buffered surplus carried forward.
	Reset()

	// Close releases the socket.
	Close() error
}

// New builds a connection over the given socket. Options are cleaned to
// defaults and sized buffers are allocated once for the connection's
// lifetime. A nil socket is refused; nil clock and logger select the system
// clock and the default logger.
func New(sck socket.Socket, opt option.Option, clk clock.Clock, log liblog.FuncLog) (Connection, liberr.Error) {
	if sck == nil {
		return nil, ErrorConnParams.Error(nil)
	}
	if clk == nil {
		clk = clock.New()
	}

	opt = opt.Clean()

	rb, err := buffer.New(opt.BufferSize, opt.BufferRequired)
	if err != nil {
		return nil, err
	}

	sb, err := buffer.New(opt.BufferSize, opt.BufferRequired)
	if err != nil {
		return nil, err
	}

	o := &conn{
		id:   connID.Add(1),
		sck:  sck,
		rbuf: rb,
		sbuf: sb,
		prs:  parser.NewRequest(),
		req:  &message.Request{},
		rsp:  &message.Response{},
		opt:  opt,
		clk:  clk,
		log:  log,
	}

	o.rmt.Connected = clk.Now()
	o.smt.Connected = o.rmt.Connected

	return o, nil
}
