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

package header_test

import (
	libhdr "github/sabouaram/httpcore/header"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Header", func() {
	var hdr libhdr.Header

	BeforeEach(func() {
		hdr = libhdr.Header{}
	})

	It("should compare names case-insensitively", func() {
		hdr.Add("Content-Type", "text/plain")

		v, ok := hdr.Get("content-type")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("text/plain"))
		Expect(hdr.Has("CONTENT-TYPE")).To(BeTrue())
	})

	It("should preserve duplicates in insertion order", func() {
		hdr.Add("Set-Cookie", "a=1")
		hdr.Add("X-Other", "x")
		hdr.Add("Set-Cookie", "b=2")

		Expect(hdr.Count("set-cookie")).To(Equal(2))
		Expect(hdr.Values("Set-Cookie")).To(Equal([]string{"a=1", "b=2"}))
	})

	It("should emit original casing in insertion order", func() {
		hdr.Add("Host", "x")
		hdr.Add("X-MiXeD", "y")

		var names []string
		hdr.Each(func(name, _ string) bool {
			names = append(names, name)
			return true
		})

		Expect(names).To(Equal([]string{"Host", "X-MiXeD"}))
	})

	It("should combine repeated accept-encoding values on lookup", func() {
		hdr.Add("Accept-Encoding", "gzip")
		hdr.Add("Accept-Encoding", "br")

		v, ok := hdr.GetCombined("accept-encoding")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("gzip,br"))

		hdr.Add("X-Other", "1")
		hdr.Add("X-Other", "2")
		v, ok = hdr.GetCombined("x-other")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("1"))
	})

	It("should reset in place", func() {
		hdr.Add("Host", "x")
		hdr.Reset()

		Expect(hdr.Len()).To(Equal(0))
		Expect(hdr.Has("host")).To(BeFalse())
	})
})

var _ = Describe("Params", func() {
	var prm libhdr.Params

	BeforeEach(func() {
		prm = libhdr.Params{}
	})

	It("should compare names case-sensitively", func() {
		prm.Add("Key", "1")

		_, ok := prm.Get("key")
		Expect(ok).To(BeFalse())

		v, ok := prm.Get("Key")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("1"))
	})

	It("should preserve duplicates and return the last occurrence", func() {
		prm.Add("a", "1")
		prm.Add("a", "2")

		Expect(prm.Len()).To(Equal(2))
		Expect(prm.Values("a")).To(Equal([]string{"1", "2"}))

		v, ok := prm.Get("a")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("2"))
	})

	It("should iterate in insertion order", func() {
		prm.Add("b", "2")
		prm.Add("a", "1")

		var names []string
		prm.Each(func(name, _ string) bool {
			names = append(names, name)
			return true
		})

		Expect(names).To(Equal([]string{"b", "a"}))
	})
})
