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

import "sync/atomic"

// ServerMetric aggregates bytes and connection counts across every
// connection of one server. Connections owned by different executor
// goroutines update it concurrently, so all counters are atomic.
type ServerMetric interface {
	// AddRecv adds n received bytes to the aggregate.
	AddRecv(n uint64)

	// AddSend adds n sent bytes to the aggregate.
	AddSend(n uint64)

	// IncConnection records one accepted connection.
	IncConnection()

	// DecConnection records one closed connection.
	DecConnection()

	// IncHandled records one completed request/response exchange.
	IncHandled()

	// Recv returns the aggregate received byte count.
	Recv() uint64

	// Send returns the aggregate sent byte count.
	Send() uint64

	// OpenConnections returns the number of currently open connections.
	OpenConnections() int64

	// Handled returns the number of completed exchanges.
	Handled() uint64
}

// NewServerMetric returns a zeroed aggregate.
func NewServerMetric() ServerMetric {
	return &srvMetric{}
}

type srvMetric struct {
	rcv atomic.Uint64
	snd atomic.Uint64
	opn atomic.Int64
	hnd atomic.Uint64
}

func (o *srvMetric) AddRecv(n uint64) {
	o.rcv.Add(n)
}

func (o *srvMetric) AddSend(n uint64) {
	o.snd.Add(n)
}

func (o *srvMetric) IncConnection() {
	o.opn.Add(1)
}

func (o *srvMetric) DecConnection() {
	o.opn.Add(-1)
}

func (o *srvMetric) IncHandled() {
	o.hnd.Add(1)
}

func (o *srvMetric) Recv() uint64 {
	return o.rcv.Load()
}

func (o *srvMetric) Send() uint64 {
	return o.snd.Load()
}

func (o *srvMetric) OpenConnections() int64 {
	return o.opn.Load()
}

func (o *srvMetric) Handled() uint64 {
	return o.hnd.Load()
}
