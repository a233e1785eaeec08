// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

import "sync/atomic"

// Affine wraps a plain function with one-shot enforcement: it can be
// invoked at most once, and a second invocation panics (Resume) or
// reports failure (TryResume) instead of running the function again.
// [EventBridge] uses it to guard the handler it wraps, since an event
// value's ownership transfers into the handler on the first (only)
// dispatch.
type Affine[R, A any] struct {
	used atomic.Bool
	fn   func(A) R
}

// Once wraps fn as an Affine that may be invoked at most once.
func Once[R, A any](fn func(A) R) *Affine[R, A] {
	return &Affine[R, A]{fn: fn}
}

// Resume invokes fn with v. Panics if already used.
func (a *Affine[R, A]) Resume(v A) R {
	if a.used.Swap(true) {
		panic("interceptor: affine function invoked twice")
	}
	return a.fn(v)
}

// TryResume invokes fn with v, returning (result, true) on success or
// (zero, false) if already used.
func (a *Affine[R, A]) TryResume(v A) (R, bool) {
	if a.used.Swap(true) {
		var zero R
		return zero, false
	}
	return a.fn(v), true
}

// Discard marks the Affine as used without invoking fn.
func (a *Affine[R, A]) Discard() {
	a.used.Store(true)
}
