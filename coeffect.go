// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// CoeffectProducer is implemented by coeffect seeds that need to produce a
// fresh instance on every Before call rather than share the stored value
// directly — e.g. a clock that should read "now" at injection time. Most
// coeffects (state cell handles, dispatcher handles) are themselves cheap
// to copy and do not need this; [CoeffectInjector] falls back to a direct
// value copy of the seed when T does not implement CoeffectProducer.
type CoeffectProducer[T any] interface {
	NewCoeffect() T
}

// CoeffectInjector is an [Interceptor] whose Before hook inserts a value
// into ctx.Coeffects; its After hook is the identity. It is the chain
// entry every event's default interceptors prepend so handlers can read
// application state, a clock, or a dispatcher without importing them
// directly.
type CoeffectInjector[T any] struct {
	Identity
	seed T
}

// NewCoeffectInjector returns a CoeffectInjector that inserts seed (or, if
// seed implements [CoeffectProducer], a freshly produced instance) into
// ctx.Coeffects on every Before call.
func NewCoeffectInjector[T any](seed T) *CoeffectInjector[T] {
	return &CoeffectInjector[T]{seed: seed}
}

// Before inserts the coeffect value into ctx.Coeffects and resolves
// immediately; it never fails.
func (ci *CoeffectInjector[T]) Before(ctx *Context) Future[*Context] {
	if p, ok := any(ci.seed).(CoeffectProducer[T]); ok {
		InsertBag(ctx.Coeffects, p.NewCoeffect())
	} else {
		InsertBag(ctx.Coeffects, ci.seed)
	}
	return ctx.Next()
}
