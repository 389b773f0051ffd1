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

package metric_test

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	libmet "github/sabouaram/httpcore/metric"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IOMetric", func() {
	It("should track first, last, min, max and elapsed", func() {
		var (
			m  libmet.IOMetric
			t0 = time.Unix(100, 0)
		)

		m.UpdateTime(t0, t0.Add(3*time.Millisecond))
		m.UpdateSize(10)
		m.UpdateTime(t0.Add(time.Second), t0.Add(time.Second).Add(time.Millisecond))
		m.UpdateSize(4)

		Expect(m.First).To(Equal(t0))
		Expect(m.Last).To(Equal(t0.Add(time.Second).Add(time.Millisecond)))
		Expect(m.Min).To(Equal(time.Millisecond))
		Expect(m.Max).To(Equal(3 * time.Millisecond))
		Expect(m.Elapsed).To(Equal(4 * time.Millisecond))
		Expect(m.Total).To(Equal(uint64(14)))
		Expect(m.Count).To(Equal(uint64(2)))
	})

	It("should clamp a negative span to zero", func() {
		var (
			m  libmet.IOMetric
			t0 = time.Unix(100, 0)
		)

		m.UpdateTime(t0, t0.Add(-time.Second))
		Expect(m.Elapsed).To(Equal(time.Duration(0)))
	})

	It("should keep the connection timestamp across reset", func() {
		var m libmet.IOMetric

		m.Connected = time.Unix(42, 0)
		m.UpdateTime(time.Unix(100, 0), time.Unix(101, 0))
		m.UpdateSize(7)
		m.Reset()

		Expect(m.Connected).To(Equal(time.Unix(42, 0)))
		Expect(m.Total).To(Equal(uint64(0)))
		Expect(m.Count).To(Equal(uint64(0)))
		Expect(m.First.IsZero()).To(BeTrue())
	})
})

var _ = Describe("ServerMetric", func() {
	It("should aggregate counters atomically across goroutines", func() {
		var (
			met = libmet.NewServerMetric()
			wg  sync.WaitGroup
		)

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 1000; j++ {
					met.AddRecv(1)
					met.AddSend(2)
					met.IncHandled()
				}
			}()
		}
		wg.Wait()

		Expect(met.Recv()).To(Equal(uint64(8000)))
		Expect(met.Send()).To(Equal(uint64(16000)))
		Expect(met.Handled()).To(Equal(uint64(8000)))
	})

	It("should balance open connection counts", func() {
		met := libmet.NewServerMetric()

		met.IncConnection()
		met.IncConnection()
		met.DecConnection()

		Expect(met.OpenConnections()).To(Equal(int64(1)))
	})
})

var _ = Describe("Collector", func() {
	It("should expose the aggregate as prometheus metrics", func() {
		met := libmet.NewServerMetric()
		met.AddRecv(5)
		met.AddSend(7)
		met.IncConnection()
		met.IncHandled()

		reg := prometheus.NewRegistry()
		Expect(reg.Register(libmet.NewCollector("test", met))).To(Succeed())

		fam, err := reg.Gather()
		Expect(err).ToNot(HaveOccurred())
		Expect(fam).To(HaveLen(4))

		got := make(map[string]float64, len(fam))
		for _, f := range fam {
			got[f.GetName()] = f.GetMetric()[0].GetCounter().GetValue() + f.GetMetric()[0].GetGauge().GetValue()
		}

		Expect(got["httpcore_recv_bytes_total"]).To(Equal(float64(5)))
		Expect(got["httpcore_sent_bytes_total"]).To(Equal(float64(7)))
		Expect(got["httpcore_open_connections"]).To(Equal(float64(1)))
		Expect(got["httpcore_handled_requests_total"]).To(Equal(float64(1)))
	})
})
