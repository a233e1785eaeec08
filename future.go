// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// Future is a continuation-passing computation that resolves exactly once,
// with either a value or an error. It is how an Interceptor's before/after
// hooks report their result: calling a Future invokes resume synchronously
// if the work is already done, or defers invoking it until some later tick
// of the owning reactor if the work suspends — callers never poll, they are
// called back.
//
// A Future must call resume exactly once. Interceptor authors who need a
// suspension point (e.g. a real asynchronous read) construct one directly
// with [Suspend]; everything else is built out of [Resolved], [Failed],
// [Bind], and [Then].
type Future[A any] func(resume func(A, error))

// Resolved returns a Future that resolves immediately with a, matching
// the default identity behavior an Interceptor hook has when it does not
// override before/after.
func Resolved[A any](a A) Future[A] {
	return func(resume func(A, error)) { resume(a, nil) }
}

// Failed returns a Future that resolves immediately with err and the zero
// value of A. A failed hook short-circuits the pipeline; the zero value is
// never inspected by the driver once err is non-nil.
func Failed[A any](err error) Future[A] {
	return func(resume func(A, error)) {
		var zero A
		resume(zero, err)
	}
}

// Suspend constructs a Future from a raw CPS function, for interceptors
// that need to defer resumption (e.g. onto a reactor) rather than resolve
// synchronously.
func Suspend[A any](f func(resume func(A, error))) Future[A] {
	return Future[A](f)
}

// Bind sequences two futures: it resolves m, and if that succeeds, passes
// the result into f to obtain the next Future. An error from m or from the
// future f produces short-circuits the chain without running f again.
func Bind[A, B any](m Future[A], f func(A) Future[B]) Future[B] {
	return func(resume func(B, error)) {
		m(func(a A, err error) {
			if err != nil {
				var zero B
				resume(zero, err)
				return
			}
			f(a)(resume)
		})
	}
}

// Then sequences two futures, discarding the first result: n is run only
// if m succeeds, and an error from m short-circuits past it.
func Then[A, B any](m Future[A], n Future[B]) Future[B] {
	return Bind(m, func(A) Future[B] { return n })
}
