// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

import (
	"weak"

	"github.com/sirupsen/logrus"
)

// Spawner is the single hook the core requires of its host reactor:
// schedule fn to run on the reactor's own thread at some later tick.
// [Dispatcher] uses it to re-enter the pipeline for a nested dispatch
// without doing so from inside the parent dispatch's own call stack.
type Spawner interface {
	Spawn(fn func())
}

// Dispatcher is a cheap-clone coeffect handle that lets a handler enqueue
// a nested dispatch without re-entering the driver synchronously. It
// holds a weak, non-owning back-reference to the [Registry] that installs
// it as a coeffect — so a Dispatcher outliving its Registry simply
// becomes inert rather than keeping the registry (and every chain it
// holds) alive, collapsing what would otherwise be a reference cycle.
//
// A single Dispatcher value serves every event type: [DispatchNested]
// carries the type parameter per nested-dispatch call, rather than the
// Dispatcher itself being parameterized — Go has no generic methods, so a
// Dispatcher generic over one event type could never nest-dispatch any
// other.
type Dispatcher struct {
	reactor  Spawner
	registry weak.Pointer[Registry]
	log      *logrus.Entry
}

// NewDispatcher returns a Dispatcher bound to reactor and a weak
// reference to registry.
func NewDispatcher(reactor Spawner, registry *Registry) Dispatcher {
	return Dispatcher{
		reactor:  reactor,
		registry: weak.Make(registry),
		log:      logrus.NewEntry(logrus.StandardLogger()),
	}
}

// NewCoeffect returns d unchanged, satisfying [CoeffectProducer]: the
// Dispatcher handle is already cheap to copy, so no extra cloning step is
// needed when it is distributed as a coeffect.
func (d Dispatcher) NewCoeffect() Dispatcher { return d }

// DispatchNested returns a [DispatchEvent] effect carrying event. When the
// effect's Action runs — during an [EffectRunner] pass, on the reverse
// phase of whichever dispatch pushed it — it schedules an independent,
// fire-and-forget re-entry into the registry's pipeline via the reactor.
func DispatchNested[E Event](d Dispatcher, event E) *DispatchEvent[E] {
	return &DispatchEvent[E]{dispatcher: d, event: event}
}

// DispatchEvent is the [Effect] that performs a nested dispatch. Its
// Action is a no-op if the owning Registry has already been collected
// (the weak back-reference resolved to nil) — there is nothing left to
// dispatch into.
type DispatchEvent[E Event] struct {
	dispatcher Dispatcher
	event      E
}

// Action schedules the nested dispatch on the reactor. It does not block
// the current After call, and it does not propagate the nested dispatch's
// own result or error back to the parent — the parent's dispatch future
// already resolved before this nested handler even begins.
func (e *DispatchEvent[E]) Action() {
	registry := e.dispatcher.registry.Value()
	if registry == nil {
		e.dispatcher.log.Warn("nested dispatch dropped: registry no longer alive")
		return
	}
	event := e.event
	e.dispatcher.reactor.Spawn(func() {
		Dispatch(registry, event, func(*Context, error) {})
	})
}
