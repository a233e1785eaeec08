// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// Interceptor exposes the two asynchronous hooks threaded through one
// dispatch: Before runs during the forward phase (queue order), After
// runs during the reverse phase (stack-unwind order). Either may mutate
// ctx.Coeffects, ctx.Effects, ctx.Queue, or ctx.Stack; either may suspend
// by returning a [Future] that does not resolve synchronously.
//
// Implementations that only need one of the two hooks should embed
// [Identity] to get the default (resolve immediately, unchanged context)
// behavior for the other.
type Interceptor interface {
	Before(ctx *Context) Future[*Context]
	After(ctx *Context) Future[*Context]
}

// Identity provides the default identity implementation of both Before
// and After. Embed it in an interceptor struct that only overrides one of
// the two hooks.
type Identity struct{}

// Before resolves immediately with the unchanged context.
func (Identity) Before(ctx *Context) Future[*Context] { return ctx.Next() }

// After resolves immediately with the unchanged context.
func (Identity) After(ctx *Context) Future[*Context] { return ctx.Next() }

// InterceptorFunc pair lets a plain function pair satisfy Interceptor
// without a named type, useful for small test fixtures and one-off
// interceptors.
type InterceptorFunc struct {
	BeforeFunc func(ctx *Context) Future[*Context]
	AfterFunc  func(ctx *Context) Future[*Context]
}

// Before calls BeforeFunc if set, otherwise resolves immediately.
func (f InterceptorFunc) Before(ctx *Context) Future[*Context] {
	if f.BeforeFunc == nil {
		return ctx.Next()
	}
	return f.BeforeFunc(ctx)
}

// After calls AfterFunc if set, otherwise resolves immediately.
func (f InterceptorFunc) After(ctx *Context) Future[*Context] {
	if f.AfterFunc == nil {
		return ctx.Next()
	}
	return f.AfterFunc(ctx)
}
