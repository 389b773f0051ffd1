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
	"github.com/mitchellh/mapstructure"
	libdur "github.com/nabbar/golib/duration"
	liberr "github.com/nabbar/golib/errors"
	"github.com/spf13/viper"
)

// ViperDecoderHook composes the decode hooks needed to unmarshal an Option
// from viper: duration strings plus the standard string conversions.
func ViperDecoderHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		libdur.ViperDecoderHook(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// FromViper unmarshals the option found at the given key of the viper
// instance, cleans unset fields to their defaults and validates the result.
func FromViper(vpr *viper.Viper, key string) (Option, liberr.Error) {
	var o Option

	if vpr == nil {
		return Default(), nil
	}

	if err := vpr.UnmarshalKey(key, &o, viper.DecodeHook(ViperDecoderHook())); err != nil {
		return o, ErrorConfigUnmarshal.ErrorParent(err)
	}

	o = o.Clean()

	if err := o.Validate(); err != nil {
		return o, err
	}

	return o, nil
}
