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

package buffer

import liberr "github.com/nabbar/golib/errors"

const (
	// DefaultCapacity bounds one connection's buffered bytes.
	DefaultCapacity = 65535

	// DefaultRequired is the minimum contiguous writable size Prepare
	// guarantees, enough for the few-byte look-ahead of the parser
	// (version literal, CRLF).
	DefaultRequired = 512
)

// Buffer is a fixed-capacity flat buffer with a readable and a writable
// region. It is not safe for concurrent use: one connection owns one buffer.
type Buffer interface {
	// Capacity returns the fixed size of the underlying storage.
	Capacity() int

	// Required returns the minimum writable region size Prepare enforces.
	Required() int

	// ReadableSize returns the number of committed, unconsumed bytes.
	ReadableSize() int

	// WritableSize returns the number of free tail bytes.
	WritableSize() int

	// Readable returns the committed bytes. The slice aliases the buffer
	// storage and is invalidated by Commit, Consume, Prepare and Write.
	Readable() []byte

	// Writable returns the free tail region for I/O to fill. Bytes written
	// there become readable only after Commit.
	Writable() []byte

	// Commit moves the write cursor forward by min(n, free tail size).
	Commit(n int)

	// Consume removes n bytes from the front of the readable region. When n
	// reaches or exceeds the readable size, both cursors reset to zero.
	Consume(n int)

	// Prepare ensures the writable region is at least Required bytes: a
	// no-op when it already is, a compaction of the readable region to
	// offset zero when the total free space suffices, and an
	// ErrorBufferOverflow otherwise.
	Prepare() liberr.Error

	// Write appends p behind the readable region, compacting first when
	// needed, and commits it. It fails with ErrorBufferOverflow when p does
	// not fit in the remaining free space.
	Write(p []byte) liberr.Error

	// WriteString appends s like Write.
	WriteString(s string) liberr.Error

	// Reset drops all content and returns both cursors to zero.
	Reset()
}

// New returns a Buffer of the given capacity enforcing the given required
// writable threshold. Non-positive values select the defaults; a capacity
// smaller than the threshold fails with ErrorBufferParams.
func New(capacity, required int) (Buffer, liberr.Error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if required <= 0 {
		required = DefaultRequired
	}
	if capacity < required {
		return nil, ErrorBufferParams.Error(nil)
	}

	return &buf{
		dat: make([]byte, capacity),
		req: required,
	}, nil
}
