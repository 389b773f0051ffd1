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

package buffer_test

import (
	libbuf "github/sabouaram/httpcore/buffer"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Flat Buffer", func() {
	var buf libbuf.Buffer

	BeforeEach(func() {
		var err error
		buf, err = libbuf.New(64, 16)
		Expect(err).ToNot(HaveOccurred())
	})

	Context("creation", func() {
		It("should apply defaults for non-positive sizes", func() {
			b, err := libbuf.New(0, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(b.Capacity()).To(Equal(libbuf.DefaultCapacity))
			Expect(b.Required()).To(Equal(libbuf.DefaultRequired))
		})

		It("should refuse a capacity below the required threshold", func() {
			_, err := libbuf.New(8, 16)
			Expect(err).To(HaveOccurred())
			Expect(err.IsCode(libbuf.ErrorBufferParams)).To(BeTrue())
		})
	})

	Context("commit and consume", func() {
		It("should expose committed bytes as readable", func() {
			copy(buf.Writable(), "hello")
			buf.Commit(5)

			Expect(buf.ReadableSize()).To(Equal(5))
			Expect(string(buf.Readable())).To(Equal("hello"))
			Expect(buf.WritableSize()).To(Equal(59))
		})

		It("should clamp commit to the writable size", func() {
			buf.Commit(1000)
			Expect(buf.ReadableSize()).To(Equal(64))
			Expect(buf.WritableSize()).To(Equal(0))
		})

		It("should advance the read cursor on partial consume", func() {
			copy(buf.Writable(), "hello")
			buf.Commit(5)
			buf.Consume(2)

			Expect(buf.ReadableSize()).To(Equal(3))
			Expect(string(buf.Readable())).To(Equal("llo"))
		})

		It("should reset both cursors when consuming everything", func() {
			copy(buf.Writable(), "hello")
			buf.Commit(5)
			buf.Consume(5)

			Expect(buf.ReadableSize()).To(Equal(0))
			Expect(buf.WritableSize()).To(Equal(64))
		})

		It("should reset both cursors when consuming more than readable", func() {
			copy(buf.Writable(), "hello")
			buf.Commit(5)
			buf.Consume(99)

			Expect(buf.ReadableSize()).To(Equal(0))
			Expect(buf.WritableSize()).To(Equal(64))
		})
	})

	Context("prepare", func() {
		It("should be a no-op when the tail is large enough", func() {
			copy(buf.Writable(), "abc")
			buf.Commit(3)

			Expect(buf.Prepare()).To(Succeed())
			Expect(string(buf.Readable())).To(Equal("abc"))
		})

		It("should compact the readable region to offset zero", func() {
			copy(buf.Writable(), make([]byte, 60))
			buf.Commit(60)

			// Two bytes readable at the very end of storage.
			copy(buf.Writable(), "zz")
			buf.Commit(2)
			buf.Consume(60)

			Expect(buf.WritableSize()).To(BeNumerically("<", buf.Required()))
			Expect(buf.Prepare()).To(Succeed())
			Expect(string(buf.Readable())).To(Equal("zz"))
			Expect(buf.WritableSize()).To(Equal(62))
		})

		It("should fail with overflow when compaction cannot help", func() {
			copy(buf.Writable(), make([]byte, 64))
			buf.Commit(64)
			buf.Consume(4)

			err := buf.Prepare()
			Expect(err).To(HaveOccurred())
			Expect(err.IsCode(libbuf.ErrorBufferOverflow)).To(BeTrue())
		})
	})

	Context("write", func() {
		It("should append behind the readable region", func() {
			Expect(buf.WriteString("head")).To(Succeed())
			Expect(buf.Write([]byte("+tail"))).To(Succeed())
			Expect(string(buf.Readable())).To(Equal("head+tail"))
		})

		It("should compact before appending when the tail is short", func() {
			copy(buf.Writable(), make([]byte, 64))
			buf.Commit(64)
			buf.Consume(60)

			Expect(buf.WriteString("123456")).To(Succeed())
			Expect(buf.ReadableSize()).To(Equal(10))
		})

		It("should fail with overflow when content cannot fit", func() {
			copy(buf.Writable(), make([]byte, 60))
			buf.Commit(60)

			err := buf.Write(make([]byte, 10))
			Expect(err).To(HaveOccurred())
			Expect(err.IsCode(libbuf.ErrorBufferOverflow)).To(BeTrue())
		})
	})
})
