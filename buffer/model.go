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

type buf struct {
	dat []byte
	req int
	rd  int
	wr  int
}

func (o *buf) Capacity() int {
	return len(o.dat)
}

func (o *buf) Required() int {
	return o.req
}

func (o *buf) ReadableSize() int {
	return o.wr - o.rd
}

func (o *buf) WritableSize() int {
	return len(o.dat) - o.wr
}

func (o *buf) Readable() []byte {
	return o.dat[o.rd:o.wr]
}

func (o *buf) Writable() []byte {
	return o.dat[o.wr:]
}

func (o *buf) Commit(n int) {
	if n < 0 {
		return
	}
	if n > o.WritableSize() {
		n = o.WritableSize()
	}
	o.wr += n
}

func (o *buf) Consume(n int) {
	if n < 0 {
		return
	}
	if n >= o.ReadableSize() {
		o.rd = 0
		o.wr = 0
		return
	}
	o.rd += n
}

func (o *buf) Prepare() liberr.Error {
	if o.WritableSize() >= o.req {
		return nil
	}

	rsz := o.ReadableSize()
	if len(o.dat)-rsz < o.req {
		return ErrorBufferOverflow.Error(nil)
	}

	if rsz > 0 {
		copy(o.dat, o.dat[o.rd:o.wr])
	}
	o.rd = 0
	o.wr = rsz

	return nil
}

func (o *buf) Write(p []byte) liberr.Error {
	if len(p) == 0 {
		return nil
	}
	if len(p) > o.WritableSize() {
		rsz := o.ReadableSize()
		if len(p) > len(o.dat)-rsz {
			return ErrorBufferOverflow.Error(nil)
		}
		copy(o.dat, o.dat[o.rd:o.wr])
		o.rd = 0
		o.wr = rsz
	}

	copy(o.dat[o.wr:], p)
	o.wr += len(p)

	return nil
}

func (o *buf) WriteString(s string) liberr.Error {
	if len(s) == 0 {
		return nil
	}
	if len(s) > o.WritableSize() {
		rsz := o.ReadableSize()
		if len(s) > len(o.dat)-rsz {
			return ErrorBufferOverflow.Error(nil)
		}
		copy(o.dat, o.dat[o.rd:o.wr])
		o.rd = 0
		o.wr = rsz
	}

	copy(o.dat[o.wr:], s)
	o.wr += len(s)

	return nil
}

func (o *buf) Reset() {
	o.rd = 0
	o.wr = 0
}
