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
	"errors"

	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"
	"golang.org/x/sync/errgroup"

	"github/sabouaram/httpcore/conn"
	"github/sabouaram/httpcore/socket"
)

func (o *srv) Serve(ctx context.Context, acc socket.Acceptor) liberr.Error {
	if acc == nil {
		return ErrorServerParams.Error(nil)
	}

	o.run.Store(true)
	defer o.run.Store(false)

	grp, gtx := errgroup.WithContext(ctx)

	grp.Go(func() error {
		for {
			sck, err := acc.Accept(gtx)

			if err != nil {
				if gtx.Err() != nil || errors.Is(err, context.Canceled) {
					return nil
				}
				return ErrorAcceptFailed.ErrorParent(err)
			}

			grp.Go(func() error {
				o.conversation(gtx, sck)
				return nil
			})
		}
	})

	if err := grp.Wait(); err != nil {
		var e liberr.Error
		if errors.As(err, &e) {
			return e
		}
		return ErrorAcceptFailed.ErrorParent(err)
	}

	return nil
}

// conversation drives one connection until keep-alive ends or a stage
// fails. Every error lands in the classification sink; the socket always
// closes on the way out.
func (o *srv) conversation(ctx context.Context, sck socket.Socket) {
	cn, err := conn.New(sck, o.opt, o.clk, o.log)
	if err != nil {
		o.sink("setup", nil, err)
		_ = sck.Close()
		return
	}

	o.met.IncConnection()
	o.logger().Entry(liblog.DebugLevel, "connection accepted").FieldAdd("conn", cn.ID()).Log()

	defer func() {
		o.met.DecConnection()
		_ = cn.Close()
		o.logger().Entry(liblog.DebugLevel, "connection closed").FieldAdd("conn", cn.ID()).Log()
	}()

	for {
		if err = cn.Recv(ctx); err != nil {
			o.sink("recv", cn, err)
			return
		}
		o.met.AddRecv(cn.Request().Metric.Total)

		if err = o.Handle(cn); err != nil {
			o.sink("handle", cn, err)
			return
		}

		if err = cn.ValidResponse(); err != nil {
			o.sink("valid", cn, err)
			return
		}

		if err = cn.Send(ctx); err != nil {
			o.sink("send", cn, err)
			return
		}
		o.met.AddSend(cn.Response().Metric.Total)
		o.met.IncHandled()

		if !cn.NeedKeepAlive() {
			return
		}

		cn.Reset()
	}
}

// sink is the single error classification point of the lifecycle: an idle
// keep-alive peer hanging up is routine, anything else is a terminated
// conversation worth an error record.
func (o *srv) sink(stage string, cn conn.Connection, err liberr.Error) {
	lvl := liblog.ErrorLevel

	if err.IsCode(ErrorNoRoute) || err.IsCode(ErrorNoHandler) {
		lvl = liblog.WarnLevel
	}

	ent := o.logger().Entry(lvl, "conversation terminated").FieldAdd("stage", stage)

	if cn != nil {
		ent.FieldAdd("conn", cn.ID()).FieldAdd("keepalive", cn.KeepAliveCount())

		if err.IsCode(conn.ErrorEndOfStream) && cn.KeepAliveCount() > 0 {
			// Idle keep-alive close from the peer.
			ent.SetLevel(liblog.DebugLevel)
		}
	}

	ent.ErrorAdd(true, err).Check(liblog.NilLevel)
}
