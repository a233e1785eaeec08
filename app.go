// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// App wires a [Registry], a [StateCell], and a [Dispatcher] together as a
// convenience that prepends a standard default interceptor prefix.
// Registering an event through App automatically prepends the coeffect
// injectors for state and dispatcher, then the [EffectRunner], ahead of
// any interceptors the caller supplies — chain order is significant:
// injectors first, effect runner next, user interceptors after,
// [EventBridge] last.
type App[S any] struct {
	Registry   *Registry
	State      StateCell[S]
	Dispatcher Dispatcher
}

// NewApp constructs an App with a fresh [Registry] seeded with initial
// state, bound to reactor for nested dispatch.
func NewApp[S any](reactor Spawner, initial S, opts ...RegistryOption) *App[S] {
	registry := NewRegistry(opts...)
	return &App[S]{
		Registry:   registry,
		State:      NewStateCell(initial),
		Dispatcher: NewDispatcher(reactor, registry),
	}
}

// DefaultInterceptors returns the standard prefix every registered event
// chain starts with: a coeffect injector for the app's state cell, a
// coeffect injector for its dispatcher, and an [EffectRunner].
func (a *App[S]) DefaultInterceptors() []Interceptor {
	return []Interceptor{
		NewCoeffectInjector(a.State),
		NewCoeffectInjector(a.Dispatcher),
		NewEffectRunner(),
	}
}

// RegisterEvent registers event type E with only the default interceptor
// prefix — no additional user interceptors.
func RegisterEvent[S any, E Event](a *App[S]) error {
	return Register[E](a.Registry, a.DefaultInterceptors())
}

// RegisterEventWith registers event type E with the default interceptor
// prefix followed by extra.
func RegisterEventWith[S any, E Event](a *App[S], extra []Interceptor) error {
	chain := append(a.DefaultInterceptors(), extra...)
	return Register[E](a.Registry, chain)
}

// dispatchDone is the no-op done callback [DispatchEvent] uses when the
// caller passes nil.
func (a *App[S]) dispatchDone(_ *Context, _ error) {}

// DispatchEvent runs event through a's registry to completion, invoking
// done (defaulting to a no-op when nil) with the final context and any
// error.
func DispatchEvent[S any, E Event](a *App[S], event E, done func(*Context, error)) {
	if done == nil {
		done = a.dispatchDone
	}
	Dispatch(a.Registry, event, done)
}
