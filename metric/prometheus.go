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

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a ServerMetric as prometheus metrics. Register it on any
// prometheus.Registerer; the serving loop itself never touches prometheus.
type Collector struct {
	met ServerMetric

	dscRecv *prometheus.Desc
	dscSend *prometheus.Desc
	dscOpen *prometheus.Desc
	dscHndl *prometheus.Desc
}

// NewCollector wraps the given aggregate. The name labels every metric
// family with the server it belongs to.
func NewCollector(name string, met ServerMetric) *Collector {
	lbl := prometheus.Labels{"server": name}

	return &Collector{
		met: met,
		dscRecv: prometheus.NewDesc(
			"httpcore_recv_bytes_total",
			"Total bytes received by the server.",
			nil, lbl,
		),
		dscSend: prometheus.NewDesc(
			"httpcore_sent_bytes_total",
			"Total bytes sent by the server.",
			nil, lbl,
		),
		dscOpen: prometheus.NewDesc(
			"httpcore_open_connections",
			"Number of currently open connections.",
			nil, lbl,
		),
		dscHndl: prometheus.NewDesc(
			"httpcore_handled_requests_total",
			"Total completed request/response exchanges.",
			nil, lbl,
		),
	}
}

func (o *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- o.dscRecv
	ch <- o.dscSend
	ch <- o.dscOpen
	ch <- o.dscHndl
}

func (o *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(o.dscRecv, prometheus.CounterValue, float64(o.met.Recv()))
	ch <- prometheus.MustNewConstMetric(o.dscSend, prometheus.CounterValue, float64(o.met.Send()))
	ch <- prometheus.MustNewConstMetric(o.dscOpen, prometheus.GaugeValue, float64(o.met.OpenConnections()))
	ch <- prometheus.MustNewConstMetric(o.dscHndl, prometheus.CounterValue, float64(o.met.Handled()))
}
