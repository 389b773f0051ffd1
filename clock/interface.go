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

// Package clock brackets every I/O operation with timestamps and carries the
// remaining time budget of a lifecycle stage. Budgets are saturating:
// consuming more than remains leaves zero, never a negative value.
package clock

import "time"

// Clock supplies timestamps around I/O operations. The interface exists so
// the conn tests can drive deterministic time.
type Clock interface {
	// Now returns the current instant. Successive calls are monotonic
	// non-decreasing for the system implementation.
	Now() time.Time
}

// New returns the system clock.
func New() Clock {
	return clk{}
}

type clk struct{}

func (clk) Now() time.Time {
	return time.Now()
}

// Budget tracks the remaining time of one stage. The zero value is an
// exhausted budget.
type Budget struct {
	rem time.Duration
}

// NewBudget returns a budget holding d. Negative values clamp to zero.
func NewBudget(d time.Duration) *Budget {
	if d < 0 {
		d = 0
	}
	return &Budget{rem: d}
}

// Remaining returns the time left.
func (b *Budget) Remaining() time.Duration {
	return b.rem
}

// Consume subtracts elapsed from the budget, saturating at zero. Negative
// elapsed values are ignored.
func (b *Budget) Consume(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	if elapsed >= b.rem {
		b.rem = 0
		return
	}
	b.rem -= elapsed
}

// Exhausted reports whether no time remains.
func (b *Budget) Exhausted() bool {
	return b.rem <= 0
}
