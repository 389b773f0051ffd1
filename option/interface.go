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

package option

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	libdur "github.com/nabbar/golib/duration"
	liberr "github.com/nabbar/golib/errors"

	"github/sabouaram/httpcore/buffer"
)

const (
	DefaultTotalRecvTimeout = 600 * time.Second
	DefaultKeepAliveTimeout = 120 * time.Second
	DefaultTotalSendTimeout = 600 * time.Second
)

// Option is the per-connection configuration, set before the first receive.
type Option struct {
	// TotalRecvTimeout bounds the whole receive stage of one request on a
	// fresh connection.
	TotalRecvTimeout libdur.Duration `mapstructure:"total_recv_timeout" json:"total_recv_timeout" yaml:"total_recv_timeout" toml:"total_recv_timeout"`

	// KeepAliveTimeout bounds the receive stage when the connection is
	// reused after a completed exchange.
	KeepAliveTimeout libdur.Duration `mapstructure:"keepalive_timeout" json:"keepalive_timeout" yaml:"keepalive_timeout" toml:"keepalive_timeout"`

	// TotalSendTimeout bounds the whole send stage of one response.
	TotalSendTimeout libdur.Duration `mapstructure:"total_send_timeout" json:"total_send_timeout" yaml:"total_send_timeout" toml:"total_send_timeout"`

	// NeedKeepAlive is informational: each keep-alive reset of the
	// connection overwrites it with the decision of the exchange just done.
	NeedKeepAlive bool `mapstructure:"need_keepalive" json:"need_keepalive" yaml:"need_keepalive" toml:"need_keepalive"`

	// BufferSize bounds the bytes buffered for one connection per
	// direction. Framing that exceeds it ends the conversation.
	BufferSize int `mapstructure:"buffer_size" json:"buffer_size" yaml:"buffer_size" toml:"buffer_size" validate:"omitempty,gte=512"`

	// BufferRequired is the contiguous writable size the buffer guarantees
	// to each read.
	BufferRequired int `mapstructure:"buffer_required" json:"buffer_required" yaml:"buffer_required" toml:"buffer_required" validate:"omitempty,gte=16"`
}

// Default returns the documented default option set.
func Default() Option {
	return Option{
		TotalRecvTimeout: libdur.ParseDuration(DefaultTotalRecvTimeout),
		KeepAliveTimeout: libdur.ParseDuration(DefaultKeepAliveTimeout),
		TotalSendTimeout: libdur.ParseDuration(DefaultTotalSendTimeout),
		NeedKeepAlive:    false,
		BufferSize:       buffer.DefaultCapacity,
		BufferRequired:   buffer.DefaultRequired,
	}
}

// Clean substitutes the default for every unset field.
func (o Option) Clean() Option {
	d := Default()

	if o.TotalRecvTimeout == 0 {
		o.TotalRecvTimeout = d.TotalRecvTimeout
	}
	if o.KeepAliveTimeout == 0 {
		o.KeepAliveTimeout = d.KeepAliveTimeout
	}
	if o.TotalSendTimeout == 0 {
		o.TotalSendTimeout = d.TotalSendTimeout
	}
	if o.BufferSize == 0 {
		o.BufferSize = d.BufferSize
	}
	if o.BufferRequired == 0 {
		o.BufferRequired = d.BufferRequired
	}

	return o
}

// Validate checks the field constraints and folds every violation into one
// returned error.
func (o Option) Validate() liberr.Error {
	err := validator.New().Struct(o)

	if e, k := err.(*validator.InvalidValidationError); k {
		return ErrorValidatorError.ErrorParent(e)
	}

	out := ErrorOptionInvalid.Error(nil)

	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			//nolint goerr113
			out.AddParent(fmt.Errorf("config field '%s' is not validated by constraint '%s'", e.Namespace(), e.ActualTag()))
		}
	}

	if o.BufferSize != 0 && o.BufferRequired != 0 && o.BufferSize < o.BufferRequired {
		//nolint goerr113
		out.AddParent(fmt.Errorf("config field 'BufferSize' is lower than 'BufferRequired'"))
	}

	if out.HasParent() {
		return out
	}

	return nil
}
