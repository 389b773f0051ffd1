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

package socket_test

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	libsck "github/sabouaram/httpcore/socket"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Net Adapter", func() {
	var (
		cli net.Conn
		srv net.Conn
		sck libsck.Socket
	)

	BeforeEach(func() {
		cli, srv = net.Pipe()
		sck = libsck.New(srv)
	})

	AfterEach(func() {
		_ = cli.Close()
		_ = sck.Close()
	})

	It("should deliver written bytes to ReadSome", func() {
		go func() {
			_, _ = cli.Write([]byte("ping"))
		}()

		buf := make([]byte, 16)
		n, err := sck.ReadSome(context.Background(), buf)

		Expect(err).ToNot(HaveOccurred())
		Expect(string(buf[:n])).To(Equal("ping"))
	})

	It("should surface the peer close as EOF", func() {
		go func() {
			_ = cli.Close()
		}()

		buf := make([]byte, 16)
		_, err := sck.ReadSome(context.Background(), buf)

		Expect(errors.Is(err, io.EOF)).To(BeTrue())
	})

	It("should map a context deadline onto DeadlineExceeded", func() {
		ctx, cnl := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cnl()

		buf := make([]byte, 16)
		_, err := sck.ReadSome(ctx, buf)

		Expect(errors.Is(err, context.DeadlineExceeded)).To(BeTrue())
	})

	It("should refuse an already cancelled context", func() {
		ctx, cnl := context.WithCancel(context.Background())
		cnl()

		_, err := sck.ReadSome(ctx, make([]byte, 1))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("should write some bytes to the peer", func() {
		don := make(chan []byte, 1)
		go func() {
			buf := make([]byte, 16)
			n, _ := cli.Read(buf)
			don <- buf[:n]
		}()

		n, err := sck.WriteSome(context.Background(), []byte("pong"))
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(4))
		Eventually(don).Should(Receive(Equal([]byte("pong"))))
	})
})

var _ = Describe("Net Acceptor", func() {
	It("should accept a TCP connection and stop on cancel", func() {
		lst, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())

		acc := libsck.NewAcceptor(lst)
		defer func() {
			_ = acc.Close()
		}()

		go func() {
			con, der := net.Dial("tcp", lst.Addr().String())
			if der == nil {
				defer func() {
					_ = con.Close()
				}()
				_, _ = con.Write([]byte("x"))
				time.Sleep(50 * time.Millisecond)
			}
		}()

		sck, err := acc.Accept(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(sck).ToNot(BeNil())
		Expect(sck.RemoteAddr()).ToNot(BeNil())
		_ = sck.Close()

		ctx, cnl := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cnl()
		}()

		_, err = acc.Accept(ctx)
		Expect(err).To(HaveOccurred())
	})
})
