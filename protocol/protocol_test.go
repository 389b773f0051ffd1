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

package protocol_test

import (
	libptc "github/sabouaram/httpcore/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Method", func() {
	It("should match every recognized token exactly", func() {
		Expect(libptc.ParseMethod([]byte("GET"))).To(Equal(libptc.MethodGet))
		Expect(libptc.ParseMethod([]byte("PUT"))).To(Equal(libptc.MethodPut))
		Expect(libptc.ParseMethod([]byte("POST"))).To(Equal(libptc.MethodPost))
		Expect(libptc.ParseMethod([]byte("HEAD"))).To(Equal(libptc.MethodHead))
		Expect(libptc.ParseMethod([]byte("TRACE"))).To(Equal(libptc.MethodTrace))
		Expect(libptc.ParseMethod([]byte("PURGE"))).To(Equal(libptc.MethodPurge))
		Expect(libptc.ParseMethod([]byte("DELETE"))).To(Equal(libptc.MethodDelete))
		Expect(libptc.ParseMethod([]byte("OPTIONS"))).To(Equal(libptc.MethodOptions))
		Expect(libptc.ParseMethod([]byte("CONTROL"))).To(Equal(libptc.MethodControl))
		Expect(libptc.ParseMethod([]byte("CONNECT"))).To(Equal(libptc.MethodConnect))
	})

	It("should reject case and length variants", func() {
		Expect(libptc.ParseMethod([]byte("get"))).To(Equal(libptc.MethodUnknown))
		Expect(libptc.ParseMethod([]byte("GETT"))).To(Equal(libptc.MethodUnknown))
		Expect(libptc.ParseMethod([]byte(""))).To(Equal(libptc.MethodUnknown))
		Expect(libptc.ParseMethod([]byte("PATCH"))).To(Equal(libptc.MethodUnknown))
	})
})

var _ = Describe("Scheme", func() {
	It("should match http and https case-insensitively", func() {
		Expect(libptc.ParseScheme([]byte("http"))).To(Equal(libptc.SchemeHTTP))
		Expect(libptc.ParseScheme([]byte("HtTp"))).To(Equal(libptc.SchemeHTTP))
		Expect(libptc.ParseScheme([]byte("https"))).To(Equal(libptc.SchemeHTTPS))
		Expect(libptc.ParseScheme([]byte("HTTPS"))).To(Equal(libptc.SchemeHTTPS))
		Expect(libptc.ParseScheme([]byte("ftp"))).To(Equal(libptc.SchemeUnknown))
	})

	It("should expose the well-known ports", func() {
		Expect(libptc.SchemeHTTP.DefaultPort()).To(Equal(uint16(80)))
		Expect(libptc.SchemeHTTPS.DefaultPort()).To(Equal(uint16(443)))
		Expect(libptc.SchemeUnknown.DefaultPort()).To(Equal(uint16(80)))
	})
})

var _ = Describe("Version", func() {
	It("should map the known digit pairs", func() {
		Expect(libptc.ParseVersionDigits('1', '0')).To(Equal(libptc.VersionHTTP10))
		Expect(libptc.ParseVersionDigits('1', '1')).To(Equal(libptc.VersionHTTP11))
		Expect(libptc.ParseVersionDigits('2', '0')).To(Equal(libptc.VersionHTTP20))
		Expect(libptc.ParseVersionDigits('3', '0')).To(Equal(libptc.VersionHTTP30))
		Expect(libptc.ParseVersionDigits('1', '2')).To(Equal(libptc.VersionUnknown))
	})

	It("should render the wire token", func() {
		Expect(libptc.VersionHTTP10.String()).To(Equal("HTTP/1.0"))
		Expect(libptc.VersionHTTP11.String()).To(Equal("HTTP/1.1"))
	})
})

var _ = Describe("StatusCode", func() {
	It("should parse catalogued codes from digits", func() {
		c, ok := libptc.ParseStatusCode([]byte("200"))
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(libptc.StatusOK))

		c, ok = libptc.ParseStatusCode([]byte("404"))
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(libptc.StatusNotFound))
	})

	It("should flag non-digits and uncatalogued values", func() {
		_, ok := libptc.ParseStatusCode([]byte("2x0"))
		Expect(ok).To(BeFalse())

		c, ok := libptc.ParseStatusCode([]byte("299"))
		Expect(ok).To(BeTrue())
		Expect(c).To(Equal(libptc.StatusUnknown))
	})

	It("should carry canonical reasons and precomputed 1.1 lines", func() {
		Expect(libptc.StatusFound.Reason()).To(Equal("Found"))
		Expect(libptc.StatusOK.Reason()).To(Equal("OK"))

		l, ok := libptc.StatusOK.Line11()
		Expect(ok).To(BeTrue())
		Expect(l).To(Equal("HTTP/1.1 200 OK"))

		_, ok = libptc.StatusUnknown.Line11()
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Byte classes", func() {
	It("should accept tchar and reject separators", func() {
		Expect(libptc.IsToken('a')).To(BeTrue())
		Expect(libptc.IsToken('Z')).To(BeTrue())
		Expect(libptc.IsToken('7')).To(BeTrue())
		Expect(libptc.IsToken('-')).To(BeTrue())
		Expect(libptc.IsToken('!')).To(BeTrue())
		Expect(libptc.IsToken(':')).To(BeFalse())
		Expect(libptc.IsToken(' ')).To(BeFalse())
		Expect(libptc.IsToken('(')).To(BeFalse())
		Expect(libptc.IsToken(0x80)).To(BeFalse())
	})

	It("should treat the URI class as printable plus high-bit octets", func() {
		Expect(libptc.IsURIChar('/')).To(BeTrue())
		Expect(libptc.IsURIChar('~')).To(BeTrue())
		Expect(libptc.IsURIChar(0x80)).To(BeTrue())
		Expect(libptc.IsURIChar(0xFF)).To(BeTrue())
		Expect(libptc.IsURIChar(' ')).To(BeFalse())
		Expect(libptc.IsURIChar(0x7F)).To(BeFalse())
		Expect(libptc.IsURIChar('\r')).To(BeFalse())
	})
})

var _ = Describe("MethodMask", func() {
	It("should hold the methods it was built with", func() {
		m := libptc.NewMethodMask(libptc.MethodGet, libptc.MethodPost)

		Expect(m.Has(libptc.MethodGet)).To(BeTrue())
		Expect(m.Has(libptc.MethodPost)).To(BeTrue())
		Expect(m.Has(libptc.MethodPut)).To(BeFalse())
		Expect(m.Count()).To(Equal(2))
	})

	It("should place bit i at the enum index of method i", func() {
		m := libptc.NewMethodMaskBits(1<<uint(libptc.MethodHead) | 1<<uint(libptc.MethodDelete))

		Expect(m.Has(libptc.MethodHead)).To(BeTrue())
		Expect(m.Has(libptc.MethodDelete)).To(BeTrue())
		Expect(m.Has(libptc.MethodGet)).To(BeFalse())
	})

	It("should iterate in enum order", func() {
		var got []libptc.Method

		m := libptc.NewMethodMask(libptc.MethodOptions, libptc.MethodGet, libptc.MethodPut)
		m.Each(func(mt libptc.Method) {
			got = append(got, mt)
		})

		Expect(got).To(Equal([]libptc.Method{libptc.MethodGet, libptc.MethodPut, libptc.MethodOptions}))
	})

	It("should ignore the unknown method", func() {
		m := libptc.NewMethodMask(libptc.MethodUnknown)
		Expect(m.Count()).To(Equal(0))
	})
})
