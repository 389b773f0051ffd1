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

package metric

import "time"

// IOMetric accumulates the cost of the I/O operations of one direction,
// either of one message exchange or, when never reset, of a whole
// connection: timestamps of the first and last operation, the
// summed elapsed time, the fastest and slowest single operation, total bytes
// and operation count.
type IOMetric struct {
	Connected time.Time
	First     time.Time
	Last      time.Time
	Min       time.Duration
	Max       time.Duration
	Elapsed   time.Duration
	Total     uint64
	Count     uint64
}

// UpdateTime records one operation bracketed by start and stop. Negative
// spans clamp to zero.
func (m *IOMetric) UpdateTime(start, stop time.Time) {
	e := stop.Sub(start)
	if e < 0 {
		e = 0
	}

	if m.First.IsZero() {
		m.First = start
	}
	m.Last = stop

	if m.Count == 0 || e < m.Min {
		m.Min = e
	}
	if e > m.Max {
		m.Max = e
	}

	m.Elapsed += e
}

// UpdateSize records the byte count of one operation.
func (m *IOMetric) UpdateSize(n int) {
	if n < 0 {
		return
	}
	m.Total += uint64(n)
	m.Count++
}

// Reset clears everything except the connection timestamp, which belongs to
// the connection, not the message exchange.
func (m *IOMetric) Reset() {
	m.First = time.Time{}
	m.Last = time.Time{}
	m.Min = 0
	m.Max = 0
	m.Elapsed = 0
	m.Total = 0
	m.Count = 0
}
