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

package parser_test

import (
	liberr "github.com/nabbar/golib/errors"

	libmsg "github/sabouaram/httpcore/message"
	libprs "github/sabouaram/httpcore/parser"
	libptc "github/sabouaram/httpcore/protocol"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func parseResponse(in string) (*libmsg.Response, int, liberr.Error) {
	var (
		rsp = &libmsg.Response{}
		prs = libprs.NewResponse()
	)

	prs.Attach(rsp)
	n, err := prs.Parse([]byte(in))
	return rsp, n, err
}

var _ = Describe("Response Parser", func() {
	It("should parse a complete response with body", func() {
		in := "HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhi"
		rsp, n, err := parseResponse(in)

		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(len(in)))
		Expect(rsp.Version).To(Equal(libptc.VersionHTTP11))
		Expect(rsp.StatusCode).To(Equal(libptc.StatusOK))
		Expect(rsp.Reason).To(Equal("OK"))
		Expect(rsp.ContentLength).To(Equal(uint64(2)))
		Expect(string(rsp.Body)).To(Equal("hi"))
	})

	It("should accept an empty reason phrase", func() {
		rsp, _, err := parseResponse("HTTP/1.0 204 \r\n\r\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(rsp.StatusCode).To(Equal(libptc.StatusNoContent))
		Expect(rsp.Reason).To(Equal(""))
	})

	It("should keep a multi-word reason verbatim", func() {
		rsp, _, err := parseResponse("HTTP/1.1 404 Not Found\r\n\r\n")

		Expect(err).ToNot(HaveOccurred())
		Expect(rsp.Reason).To(Equal("Not Found"))
	})

	It("should reject a malformed status line", func() {
		_, n, err := parseResponse("HTTP/1.1 20 OK\r\n\r\n")
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(libprs.ErrorBadStatus)).To(BeTrue())
		Expect(n).To(Equal(0))

		_, _, err = parseResponse("HTTP/1.1 2x0 OK\r\n\r\n")
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(libprs.ErrorBadStatus)).To(BeTrue())

		_, _, err = parseResponse("HTTP_1.1 200 OK\r\n\r\n")
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(libprs.ErrorBadVersion)).To(BeTrue())
	})

	It("should flag a numeric code outside the catalogue", func() {
		_, _, err := parseResponse("HTTP/1.1 299 Whatever\r\n\r\n")
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(libprs.ErrorUnknownStatus)).To(BeTrue())
	})

	It("should reject a reason line without line feed", func() {
		_, _, err := parseResponse("HTTP/1.1 200 OK\rX\r\n\r\n")
		Expect(err).To(HaveOccurred())
		Expect(err.IsCode(libprs.ErrorBadLineEnding)).To(BeTrue())
	})

	It("should parse identically when fed byte by byte", func() {
		var (
			in  = "HTTP/1.1 503 Service Unavailable\r\nRetry-After: 1\r\n\r\n"
			rsp = &libmsg.Response{}
			prs = libprs.NewResponse()
			buf []byte
			tot int
		)

		prs.Attach(rsp)

		for i := 0; i < len(in); i++ {
			buf = append(buf, in[i])

			n, err := prs.Parse(buf)
			tot += n
			buf = buf[n:]

			if err != nil {
				Expect(libprs.IsNeedMore(err)).To(BeTrue())
			}
		}

		Expect(prs.IsCompleted()).To(BeTrue())
		Expect(tot).To(Equal(len(in)))
		Expect(rsp.StatusCode).To(Equal(libptc.StatusServiceUnavailable))
		Expect(rsp.Reason).To(Equal("Service Unavailable"))

		v, ok := rsp.Headers.Get("retry-after")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal("1"))
	})
})
