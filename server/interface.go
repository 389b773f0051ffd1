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

package server

import (
	"context"

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"

	"github/sabouaram/httpcore/clock"
	"github/sabouaram/httpcore/conn"
	"github/sabouaram/httpcore/metric"
	"github/sabouaram/httpcore/option"
	"github/sabouaram/httpcore/protocol"
	"github/sabouaram/httpcore/socket"
)

// Server registers handlers, accepts sockets and drives one conversation
// per connection. Registration happens before Serve; the registry is
// treated as immutable while serving.
type Server interface {
	// RegisterHandler binds the handler to one method and URL. Several
	// registrations on the same method and URL are kept: the last one
	// matches.
	RegisterHandler(mth protocol.Method, url string, fct Handler) liberr.Error

	// RegisterHandlerMask binds the handler to every method of the mask.
	RegisterHandlerMask(msk protocol.MethodMask, url string, fct Handler) liberr.Error

	// Handle runs the dispatch stage on a received request: decides
	// keep-alive, selects the handler and invokes it.
	Handle(cn conn.Connection) liberr.Error

	// Serve accepts sockets until the context is cancelled or the acceptor
	// fails, spawning one conversation goroutine per connection, and waits
	// for running conversations before returning.
	Serve(ctx context.Context, acc socket.Acceptor) liberr.Error

	// IsRunning reports whether Serve is active.
	IsRunning() bool

	// Metric returns the aggregate counters of the server.
	Metric() metric.ServerMetric

	// SetLogger installs the logger indirection used by the error sink and
	// handed to every connection.
	SetLogger(fct liblog.FuncLog)
}

// New returns a server applying the given per-connection options, cleaned
// to defaults.
func New(opt option.Option) Server {
	run := libatm.NewValue[bool]()
	run.Store(false)

	return &srv{
		opt: opt.Clean(),
		hdl: make([][]pattern, protocol.MethodCount),
		met: metric.NewServerMetric(),
		clk: clock.New(),
		run: run,
	}
}
