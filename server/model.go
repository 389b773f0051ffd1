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

package server

import (
	"sync"

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"

	"github/sabouaram/httpcore/clock"
	"github/sabouaram/httpcore/metric"
	"github/sabouaram/httpcore/option"
	"github/sabouaram/httpcore/protocol"
)

type srv struct {
	m   sync.RWMutex
	opt option.Option
	hdl [][]pattern
	met metric.ServerMetric
	clk clock.Clock
	log liblog.FuncLog
	run libatm.Value[bool]
}

func (o *srv) logger() liblog.Logger {
	o.m.RLock()
	defer o.m.RUnlock()

	if o.log == nil {
		return liblog.GetDefault()
	} else if l := o.log(); l == nil {
		return liblog.GetDefault()
	} else {
		return l
	}
}

func (o *srv) SetLogger(fct liblog.FuncLog) {
	o.m.Lock()
	defer o.m.Unlock()
	o.log = fct
}

func (o *srv) Metric() metric.ServerMetric {
	return o.met
}

func (o *srv) IsRunning() bool {
	return o.run.Load()
}

func (o *srv) RegisterHandler(mth protocol.Method, url string, fct Handler) liberr.Error {
	if mth >= protocol.MethodUnknown || url == "" || fct == nil {
		return ErrorServerParams.Error(nil)
	}

	o.m.Lock()
	defer o.m.Unlock()

	o.hdl[mth] = append(o.hdl[mth], pattern{
		url: url,
		fct: fct,
	})

	return nil
}

func (o *srv) RegisterHandlerMask(msk protocol.MethodMask, url string, fct Handler) liberr.Error {
	var err liberr.Error

	msk.Each(func(mth protocol.Method) {
		if e := o.RegisterHandler(mth, url, fct); e != nil && err == nil {
			err = e
		}
	})

	return err
}

// handlers returns the pattern list of one method. The registry is immutable
// while serving, so the read lock only guards against late registration.
func (o *srv) handlers(mth protocol.Method) []pattern {
	if mth >= protocol.MethodUnknown {
		return nil
	}

	o.m.RLock()
	defer o.m.RUnlock()
	return o.hdl[mth]
}
