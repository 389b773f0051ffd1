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

// Package server holds the handler registry, the dispatch stage and the
// acceptor loop. Handlers are registered before serving and the registry is
// immutable while serving: connections read it without locking.
//
// Dispatch selects the handler list of the request method and scans it for
// URL matches by full-path equality, retaining the last equal match. The
// keep-alive decision is taken here: a Connection header present or a
// request version of 1.1 keeps the connection.
//
// The acceptor loop drives one conversation goroutine per accepted socket:
// receive, dispatch, validate, send, then loop while keep-alive holds. All
// stage errors flow into one classification sink that logs a structured
// diagnostic and closes the socket; an idle keep-alive peer hanging up is
// expected and logged at debug level only.
package server
