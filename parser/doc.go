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

// Package parser implements the incremental HTTP/1.0 and HTTP/1.1 message
// parser: a request-line parser and a status-line parser sharing the header
// and body machinery, driven by a hierarchical state machine.
//
// Parse consumes a prefix of the given bytes and returns how many were
// consumed. The distinguished ErrorNeedMore is not fatal: the caller must
// append more bytes and call Parse again, never re-presenting the bytes
// already consumed. Any other error is terminal for the message.
//
// Restartability is the central contract: for every byte offset b of a valid
// message M, feeding M[0:b] then M[b:] yields the same parsed message as
// feeding M whole. All inter-call state is explicit in the parser — the
// top-level state, one sub-state per composite production (request line,
// URI, query, header line, status line) and a scratch copy of a name whose
// value has not been seen yet. Consumed counts only advance at production
// boundaries, so a production interrupted mid-way is rescanned from bytes
// the caller still holds.
//
// Top-level states:
//
//	nothing_yet ─► start_line ─► expecting_newline
//	                               │          │
//	                               ▼          ▼
//	                            header       body
//	                               │          │
//	                               └────► completed
//
// Once completed the parser is sticky: further Parse calls consume zero
// bytes and leave the message untouched. Surplus bytes past the framed body
// stay with the caller.
package parser
