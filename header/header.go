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

package header

import "strings"

// Names whose repeated values are combined on lookup.
const nameAcceptEncoding = "accept-encoding"

type hdrEntry struct {
	name string // casing as received, used for emission
	norm string // lowercase comparison key
	val  string
}

// Header is an ordered multimap of field lines. Lookups compare on the
// lowercase-normalized name; emission iterates entries in insertion order
// with their original casing.
type Header struct {
	lst []hdrEntry
}

// Add appends a field line, preserving duplicates and insertion order.
func (h *Header) Add(name, value string) {
	h.lst = append(h.lst, hdrEntry{
		name: name,
		norm: strings.ToLower(name),
		val:  value,
	})
}

// Len returns the number of stored field lines, duplicates included.
func (h *Header) Len() int {
	return len(h.lst)
}

// Has reports whether at least one field line carries the given name.
func (h *Header) Has(name string) bool {
	n := strings.ToLower(name)
	for i := range h.lst {
		if h.lst[i].norm == n {
			return true
		}
	}
	return false
}

// Count returns how many field lines carry the given name.
func (h *Header) Count(name string) int {
	var (
		c int
		n = strings.ToLower(name)
	)

	for i := range h.lst {
		if h.lst[i].norm == n {
			c++
		}
	}

	return c
}

// Get returns the first value stored for the name.
func (h *Header) Get(name string) (string, bool) {
	n := strings.ToLower(name)
	for i := range h.lst {
		if h.lst[i].norm == n {
			return h.lst[i].val, true
		}
	}
	return "", false
}

// Values returns every value stored for the name, in insertion order.
func (h *Header) Values(name string) []string {
	var (
		r []string
		n = strings.ToLower(name)
	)

	for i := range h.lst {
		if h.lst[i].norm == n {
			r = append(r, h.lst[i].val)
		}
	}

	return r
}

// GetCombined returns the value for the name, joining repeated entries with
// commas for the names that are defined as lists (Accept-Encoding). For any
// other name it behaves like Get.
func (h *Header) GetCombined(name string) (string, bool) {
	n := strings.ToLower(name)
	if n != nameAcceptEncoding {
		return h.Get(name)
	}

	v := h.Values(name)
	if len(v) == 0 {
		return "", false
	}

	return strings.Join(v, ","), true
}

// Each calls f for every field line in insertion order with its original
// casing, stopping when f returns false.
func (h *Header) Each(f func(name, value string) bool) {
	for i := range h.lst {
		if !f(h.lst[i].name, h.lst[i].val) {
			return
		}
	}
}

// Reset drops all entries but keeps the allocated storage for reuse.
func (h *Header) Reset() {
	h.lst = h.lst[:0]
}
