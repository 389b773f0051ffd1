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

// Package conn owns all per-conversation state: the socket, the receive and
// send buffers, the parser, the request and response being exchanged, the
// options and the per-direction metrics. One goroutine drives one
// connection; nothing here is shared.
//
// The receive stage loops partial reads and incremental parses under a
// single saturating deadline budget: the total receive timeout on a fresh
// connection, the keep-alive timeout on a reused one. When the budget runs
// out the parser state at that instant selects the reported timeout error.
// Bytes past a completed request stay buffered for the next exchange.
//
// The send stage serializes the response into the send buffer — status
// line, header lines in insertion order, blank line, body — and loops
// partial writes until drained, under the total send timeout.
package conn
