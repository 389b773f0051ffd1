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

type prmEntry struct {
	name string
	val  string
}

// Params is an ordered multimap of query parameters. Names are
// case-sensitive; duplicates are preserved in insertion order.
type Params struct {
	lst []prmEntry
}

// Add appends a parameter.
func (p *Params) Add(name, value string) {
	p.lst = append(p.lst, prmEntry{
		name: name,
		val:  value,
	})
}

// Len returns the number of stored parameters, duplicates included.
func (p *Params) Len() int {
	return len(p.lst)
}

// Get returns the value of the last occurrence of the name.
func (p *Params) Get(name string) (string, bool) {
	for i := len(p.lst) - 1; i >= 0; i-- {
		if p.lst[i].name == name {
			return p.lst[i].val, true
		}
	}
	return "", false
}

// Values returns every value stored for the name, in insertion order.
func (p *Params) Values(name string) []string {
	var r []string
	for i := range p.lst {
		if p.lst[i].name == name {
			r = append(r, p.lst[i].val)
		}
	}
	return r
}

// Each calls f for every parameter in insertion order, stopping when f
// returns false.
func (p *Params) Each(f func(name, value string) bool) {
	for i := range p.lst {
		if !f(p.lst[i].name, p.lst[i].val) {
			return
		}
	}
}

// Reset drops all entries but keeps the allocated storage for reuse.
func (p *Params) Reset() {
	p.lst = p.lst[:0]
}
