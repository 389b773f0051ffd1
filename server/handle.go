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
	"fmt"

	liberr "github.com/nabbar/golib/errors"

	"github/sabouaram/httpcore/conn"
	"github/sabouaram/httpcore/message"
	"github/sabouaram/httpcore/protocol"
)

const headerConnection = "Connection"

// needKeepAlive applies the core negotiation: a Connection header present or
// a request version of 1.1 keeps the connection. The header value itself is
// not interpreted here.
func needKeepAlive(req *message.Request) bool {
	if req.Headers.Has(headerConnection) {
		return true
	}
	return req.Version == protocol.VersionHTTP11
}

func (o *srv) Handle(cn conn.Connection) liberr.Error {
	req := cn.Request()
	cn.SetNeedKeepAlive(needKeepAlive(req))

	lst := o.handlers(req.Method)
	if len(lst) == 0 {
		return ErrorNoHandler.Error(nil)
	}

	// Full-path equality, last registered equal match wins.
	idx := -1
	for i := range lst {
		if lst[i].url == req.Path {
			idx = i
		}
	}
	if idx < 0 {
		return ErrorNoRoute.Error(nil)
	}

	return o.invoke(lst[idx].fct, cn)
}

// invoke runs the handler synchronously, converting a panic into the
// handler error so one conversation cannot take the executor down.
func (o *srv) invoke(fct Handler, cn conn.Connection) (err liberr.Error) {
	defer func() {
		if rec := recover(); rec != nil {
			//nolint goerr113
			err = ErrorHandlerPanic.ErrorParent(fmt.Errorf("%v", rec))
		}
	}()

	fct(cn)
	return nil
}
