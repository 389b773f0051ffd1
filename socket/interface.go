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
)

// Socket is one accepted stream. ReadSome and WriteSome transfer whatever
// the transport accepts in one operation; the context deadline bounds the
// single operation and a deadline hit surfaces as context.DeadlineExceeded.
// A closed peer surfaces as io.EOF on read.
type Socket interface {
	// ReadSome reads up to len(p) bytes into p, blocking until at least one
	// byte or the deadline.
	ReadSome(ctx context.Context, p []byte) (int, error)

	// WriteSome writes some prefix of p, blocking until progress or the
	// deadline.
	WriteSome(ctx context.Context, p []byte) (int, error)

	// RemoteAddr returns the peer address, nil when unknown.
	RemoteAddr() net.Addr

	// Close releases the stream. Safe to call more than once.
	Close() error
}

// Acceptor yields accepted sockets until stopped. Accept honors context
// cancellation; a closed acceptor returns the transport error.
type Acceptor interface {
	// Accept blocks for the next socket.
	Accept(ctx context.Context) (Socket, error)

	// Addr returns the bound address, nil when unknown.
	Addr() net.Addr

	// Close stops accepting.
	Close() error
}
