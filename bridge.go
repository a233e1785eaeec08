// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// Event is any value whose type is registered with a [Registry] and that
// implements Handle, the operation invoked by its [EventBridge] once every
// upstream coeffect injector has run.
type Event interface {
	Handle(ctx *Context) Future[*Context]
}

// EventBridge wraps a single event as the terminal interceptor of a
// dispatch chain. Its Before hook consumes the event exactly once — a
// second call panics — and invokes Handle; its After hook is the
// identity. [Dispatch] always appends a fresh EventBridge as the
// last element of a chain, so by the time it runs every upstream Before
// has already injected its coeffect.
//
// The one-shot consume-then-panic-on-reuse discipline is built on
// [Affine]: ownership of the event value transfers into the bridge on
// construction and is surrendered to the handler on the first (only)
// Before call.
type EventBridge struct {
	Identity
	handle *Affine[Future[*Context], *Context]
}

// NewEventBridge constructs an EventBridge that will invoke event.Handle
// on its first Before call.
func NewEventBridge(event Event) *EventBridge {
	return &EventBridge{handle: Once(event.Handle)}
}

// Before consumes the wrapped event and invokes its handler. Panics if
// called more than once on the same EventBridge.
func (b *EventBridge) Before(ctx *Context) Future[*Context] {
	return b.handle.Resume(ctx)
}
