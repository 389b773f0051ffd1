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

package protocol

import "github.com/bits-and-blooms/bitset"

// MethodMask is a set of methods used for bulk handler registration: bit i
// holds the method whose enum index is i.
type MethodMask struct {
	b *bitset.BitSet
}

// NewMethodMask builds a mask holding the given methods. MethodUnknown is
// ignored.
func NewMethodMask(m ...Method) MethodMask {
	r := MethodMask{
		b: bitset.New(uint(MethodCount)),
	}
	for _, v := range m {
		r = r.Add(v)
	}
	return r
}

// NewMethodMaskBits builds a mask from a raw bit pattern, bit i at the enum
// index of method i. Bits beyond the last recognized method are dropped.
func NewMethodMaskBits(bits uint64) MethodMask {
	r := MethodMask{
		b: bitset.From([]uint64{bits}),
	}
	for i := uint(MethodCount); i < r.b.Len(); i++ {
		r.b.Clear(i)
	}
	return r
}

// Add returns the mask with the method set. MethodUnknown is ignored.
func (m MethodMask) Add(mt Method) MethodMask {
	if m.b == nil {
		m.b = bitset.New(uint(MethodCount))
	}
	if mt < MethodUnknown {
		m.b.Set(uint(mt))
	}
	return m
}

// Has reports whether the method is in the mask.
func (m MethodMask) Has(mt Method) bool {
	if m.b == nil || mt >= MethodUnknown {
		return false
	}
	return m.b.Test(uint(mt))
}

// Each calls f for every method in the mask in enum order.
func (m MethodMask) Each(f func(Method)) {
	if m.b == nil {
		return
	}
	for i, e := m.b.NextSet(0); e && i < uint(MethodCount); i, e = m.b.NextSet(i + 1) {
		f(Method(i))
	}
}

// Count returns the number of methods in the mask.
func (m MethodMask) Count() int {
	if m.b == nil {
		return 0
	}
	return int(m.b.Count())
}
