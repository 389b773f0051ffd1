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

// helper_test.go provides the scripted socket and the stepping clock used by
// the connection specs: reads are served chunk by chunk from a script, a nil
// chunk simulates a deadline firing, writes are captured and may be
// throttled to exercise the partial-write loop.
package conn_test

import (
	"bytes"
	"context"
	"io"
	"net"
	"time"
)

type fakeSocket struct {
	reads  [][]byte
	wrErr  error
	wrMax  int
	wrote  bytes.Buffer
	closed bool
}

func (o *fakeSocket) ReadSome(ctx context.Context, p []byte) (int, error) {
	if e := ctx.Err(); e != nil {
		return 0, e
	}

	if len(o.reads) == 0 {
		return 0, io.EOF
	}

	c := o.reads[0]
	o.reads = o.reads[1:]

	if c == nil {
		return 0, context.DeadlineExceeded
	}

	n := copy(p, c)
	if n < len(c) {
		o.reads = append([][]byte{c[n:]}, o.reads...)
	}

	return n, nil
}

func (o *fakeSocket) WriteSome(ctx context.Context, p []byte) (int, error) {
	if e := ctx.Err(); e != nil {
		return 0, e
	}
	if o.wrErr != nil {
		return 0, o.wrErr
	}

	n := len(p)
	if o.wrMax > 0 && n > o.wrMax {
		n = o.wrMax
	}

	o.wrote.Write(p[:n])
	return n, nil
}

func (o *fakeSocket) RemoteAddr() net.Addr {
	return nil
}

func (o *fakeSocket) Close() error {
	o.closed = true
	return nil
}

func reads(chunks ...string) [][]byte {
	r := make([][]byte, 0, len(chunks))
	for _, c := range chunks {
		if c == "<deadline>" {
			r = append(r, nil)
		} else {
			r = append(r, []byte(c))
		}
	}
	return r
}

// fakeClock advances by one step on every call, so each (start, stop)
// bracket observes exactly one step of elapsed time.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{
		now:  time.Unix(1000, 0),
		step: step,
	}
}

func (o *fakeClock) Now() time.Time {
	o.now = o.now.Add(o.step)
	return o.now
}
