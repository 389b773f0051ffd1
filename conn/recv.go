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
	"io"
	"time"

	liberr "github.com/nabbar/golib/errors"

	"github/sabouaram/httpcore/clock"
	"github/sabouaram/httpcore/parser"
)

// recvBudget selects the receive deadline: the keep-alive timeout when the
// connection already served an exchange, the total receive timeout
// otherwise.
func (o *conn) recvBudget() *clock.Budget {
	var d time.Duration

	if o.kac > 0 {
		d = o.opt.KeepAliveTimeout.Time()
	} else {
		d = o.opt.TotalRecvTimeout.Time()
	}

	return clock.NewBudget(d)
}

// recvTimeout maps the parser state at the instant the deadline fired onto
// the reported timeout error.
func (o *conn) recvTimeout() liberr.Error {
	switch o.prs.State() {
	case parser.StateStartLine, parser.StateExpectingNewline:
		return ErrorRecvTimeoutLine.Error(nil)
	case parser.StateHeader:
		return ErrorRecvTimeoutHeaders.Error(nil)
	case parser.StateBody:
		return ErrorRecvTimeoutBody.Error(nil)
	default:
		return ErrorRecvTimeoutNothing.Error(nil)
	}
}

func (o *conn) Recv(ctx context.Context) liberr.Error {
	o.prs.Attach(o.req)
	bdg := o.recvBudget()

	for {
		if bdg.Exhausted() {
			return o.recvTimeout()
		}

		if err := o.rbuf.Prepare(); err != nil {
			return err
		}

		rctx, cnl := context.WithTimeout(ctx, bdg.Remaining())
		start := o.clk.Now()
		n, err := o.sck.ReadSome(rctx, o.rbuf.Writable())
		stop := o.clk.Now()
		cnl()

		if n <= 0 {
			switch {
			case err == nil:
				return ErrorEndOfStream.Error(nil)
			case errors.Is(err, io.EOF):
				return ErrorEndOfStream.Error(nil)
			case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
				return o.recvTimeout()
			default:
				return ErrorStreamRead.ErrorParent(err)
			}
		}

		o.req.Metric.UpdateTime(start, stop)
		o.req.Metric.UpdateSize(n)
		o.rmt.UpdateTime(start, stop)
		o.rmt.UpdateSize(n)
		o.rbuf.Commit(n)
		bdg.Consume(stop.Sub(start))

		csm, per := o.prs.Parse(o.rbuf.Readable())
		o.rbuf.Consume(csm)

		if per == nil {
			// Completed: surplus past the framed body stays buffered.
			return nil
		}
		if !parser.IsNeedMore(per) {
			return per
		}
	}
}
