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

// helper_test.go provides the dispatch-side fixtures: a scripted socket to
// build real connections from literal request bytes, and canned handlers.
package server_test

import (
	"bytes"
	"context"
	"io"
	"net"

	libcnn "github/sabouaram/httpcore/conn"
	libopt "github/sabouaram/httpcore/option"
	libptc "github/sabouaram/httpcore/protocol"

	. "github.com/onsi/gomega"
)

type fakeSocket struct {
	reads [][]byte
	wrote bytes.Buffer
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
	o.wrote.Write(p)
	return len(p), nil
}

func (o *fakeSocket) RemoteAddr() net.Addr {
	return nil
}

func (o *fakeSocket) Close() error {
	return nil
}

// recvConn builds a connection over the literal request bytes and drives the
// receive stage so the dispatch specs start from a parsed request.
func recvConn(raw string) libcnn.Connection {
	cn, err := libcnn.New(&fakeSocket{reads: [][]byte{[]byte(raw)}}, libopt.Default(), nil, nil)
	ExpectWithOffset(1, err).ToNot(HaveOccurred())
	ExpectWithOffset(1, cn.Recv(context.Background())).To(Succeed())
	return cn
}

// okHandler populates a minimal valid response with the given body.
func okHandler(body string) func(cn libcnn.Connection) {
	return func(cn libcnn.Connection) {
		rsp := cn.Response()
		rsp.Version = libptc.VersionHTTP11
		rsp.StatusCode = libptc.StatusOK
		rsp.Body = append(rsp.Body[:0], body...)
	}
}
