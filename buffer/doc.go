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

// Package buffer provides the flat buffer backing every connection: a fixed
// capacity byte region split by two cursors into a readable region
// [read, write) and a writable region [write, capacity).
//
//	--------------------------------------------------
//	|          | readable region | writable region   |
//	--------------------------------------------------
//	0          read              write             capacity
//
// Prepare compacts the readable region to offset zero when the writable tail
// falls under the required threshold, guaranteeing the parser a minimum
// contiguous look-ahead; when even compaction cannot satisfy the threshold,
// the buffer reports overflow and the connection is torn down. There is no
// dynamic growth: the capacity bound is the back-pressure limit of one
// connection.
package buffer
