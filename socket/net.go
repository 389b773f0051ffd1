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

package socket

import (
	"context"
	"net"
	"time"
)

// New adapts a net.Conn into a Socket. Context deadlines map onto the
// connection read and write deadlines; transport timeouts surface as
// context.DeadlineExceeded so the lifecycle classifies them uniformly.
func New(c net.Conn) Socket {
	return &netSck{c: c}
}

// NewAcceptor adapts a net.Listener into an Acceptor. Cancelling the
// context of a pending Accept closes the listener.
func NewAcceptor(l net.Listener) Acceptor {
	return &netAcc{l: l}
}

type netSck struct {
	c net.Conn
}

func (o *netSck) deadline(ctx context.Context) time.Time {
	if d, k := ctx.Deadline(); k {
		return d
	}
	return time.Time{}
}

// watch unblocks a pending transfer when the context is cancelled mid-call
// by forcing the matching deadline into the past. The returned function must
// be called once the transfer finished.
func (o *netSck) watch(ctx context.Context, set func(time.Time) error) func() {
	don := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
			_ = set(time.Unix(1, 0))
		case <-don:
		}
	}()

	return func() {
		close(don)
	}
}

func (o *netSck) ReadSome(ctx context.Context, p []byte) (int, error) {
	if e := ctx.Err(); e != nil {
		return 0, e
	}
	if e := o.c.SetReadDeadline(o.deadline(ctx)); e != nil {
		return 0, e
	}

	stp := o.watch(ctx, o.c.SetReadDeadline)
	n, e := o.c.Read(p)
	stp()

	if x := ctx.Err(); x != nil && e != nil {
		return n, x
	}
	if t, k := e.(net.Error); k && t.Timeout() {
		return n, context.DeadlineExceeded
	}
	return n, e
}

func (o *netSck) WriteSome(ctx context.Context, p []byte) (int, error) {
	if e := ctx.Err(); e != nil {
		return 0, e
	}
	if e := o.c.SetWriteDeadline(o.deadline(ctx)); e != nil {
		return 0, e
	}

	stp := o.watch(ctx, o.c.SetWriteDeadline)
	n, e := o.c.Write(p)
	stp()

	if x := ctx.Err(); x != nil && e != nil {
		return n, x
	}
	if t, k := e.(net.Error); k && t.Timeout() {
		return n, context.DeadlineExceeded
	}
	return n, e
}

func (o *netSck) RemoteAddr() net.Addr {
	return o.c.RemoteAddr()
}

func (o *netSck) Close() error {
	return o.c.Close()
}

type netAcc struct {
	l net.Listener
}

func (o *netAcc) Accept(ctx context.Context) (Socket, error) {
	if e := ctx.Err(); e != nil {
		return nil, e
	}

	var (
		don = make(chan struct{})
		res net.Conn
		err error
	)

	go func() {
		defer close(don)
		res, err = o.l.Accept()
	}()

	select {
	case <-ctx.Done():
		_ = o.l.Close()
		<-don
		if res != nil {
			_ = res.Close()
		}
		return nil, ctx.Err()

	case <-don:
		if err != nil {
			return nil, err
		}
		return New(res), nil
	}
}

func (o *netAcc) Addr() net.Addr {
	return o.l.Addr()
}

func (o *netAcc) Close() error {
	return o.l.Close()
}
