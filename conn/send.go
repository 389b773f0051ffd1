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
	"errors"

	liberr "github.com/nabbar/golib/errors"

	"github/sabouaram/httpcore/buffer"
	"github/sabouaram/httpcore/clock"
	"github/sabouaram/httpcore/message"
	"github/sabouaram/httpcore/protocol"
)

// FillResponseBuffer serializes the response into the buffer: status line,
// each header line in insertion order with duplicates, a blank line, then
// the body verbatim. The HTTP/1.1 path appends a precomputed status line;
// any other version assembles the line field by field.
func FillResponseBuffer(rsp *message.Response, buf buffer.Buffer) liberr.Error {
	var err liberr.Error

	w := func(s string) {
		if err == nil {
			err = buf.WriteString(s)
		}
	}

	if l, ok := rsp.StatusCode.Line11(); ok && rsp.Version == protocol.VersionHTTP11 {
		w(l)
		w("\r\n")
	} else {
		w(rsp.Version.String())
		w(" ")
		w(rsp.StatusCode.String())
		w(" ")
		if rsp.Reason != "" {
			w(rsp.Reason)
		} else {
			w(rsp.StatusCode.Reason())
		}
		w("\r\n")
	}

	rsp.Headers.Each(func(name, value string) bool {
		w(name)
		w(": ")
		w(value)
		w("\r\n")
		return err == nil
	})

	w("\r\n")

	if err == nil && len(rsp.Body) > 0 {
		err = buf.Write(rsp.Body)
	}

	return err
}

func (o *conn) Send(ctx context.Context) liberr.Error {
	if err := FillResponseBuffer(o.rsp, o.sbuf); err != nil {
		return err
	}

	bdg := clock.NewBudget(o.opt.TotalSendTimeout.Time())

	for o.sbuf.ReadableSize() > 0 {
		if bdg.Exhausted() {
			return ErrorSendTimeout.Error(nil)
		}

		wctx, cnl := context.WithTimeout(ctx, bdg.Remaining())
		start := o.clk.Now()
		n, err := o.sck.WriteSome(wctx, o.sbuf.Readable())
		stop := o.clk.Now()
		cnl()

		if n <= 0 && err != nil {
			switch {
			case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
				return ErrorSendTimeout.Error(nil)
			default:
				return ErrorStreamWrite.ErrorParent(err)
			}
		}

		o.rsp.Metric.UpdateTime(start, stop)
		o.rsp.Metric.UpdateSize(n)
		o.smt.UpdateTime(start, stop)
		o.smt.UpdateSize(n)
		o.sbuf.Consume(n)
		bdg.Consume(stop.Sub(start))
	}

	return nil
}
