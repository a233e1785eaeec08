// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package interceptor is a re-frame-style event-processing core: an
// application dispatches a typed event, the core threads a mutable
// [Context] through an ordered chain of [Interceptor] values (a symmetric
// before/after pipeline), and a handler for that event type produces
// [Effect] values describing side-effect intent without performing them.
//
// # Design Philosophy
//
// The core separates three concerns that are usually tangled together in
// handler code:
//
//   - Coeffects: ambient inputs (state, clock, dispatcher) injected before
//     a handler runs, carried in a [TypedBag] keyed by runtime type.
//   - Effects: side-effect intent produced by a handler and executed only
//     during the chain's reverse phase, in the order they were pushed.
//   - Interceptors: the symmetric before/after hooks that inject
//     coeffects, execute effects, and bridge events into handlers.
//
// # Pipeline
//
// [Register] stores an interceptor chain under an event type;
// [Dispatch] clones that chain, appends an [EventBridge] for the
// specific event value, and drives it forward across [Context.Queue] then
// backward across [Context.Stack] via [Future] suspension points. See
// [Dispatch] for the full forward/reverse state machine.
//
// # Core Operations
//
//   - [NewContext]: construct a context from a resolved interceptor queue.
//   - [Context.PushEffect]: append an effect, consumed on the reverse pass.
//   - [NewRegistry], [Register], [Dispatch]: the event
//     registry and dispatch entry point.
//   - [NewStateCell], [StateCell.Borrow], [StateCell.Mutate]: shared
//     single-owner application state.
//   - [NewDispatcher]: a cheap-clone handle for nested dispatch from
//     within an effect.
//
// # Stepping Boundary
//
// [Future] models one asynchronous suspension point: a value that
// resolves exactly once, with either a result or an error, possibly after
// the calling goroutine has yielded control back to a reactor. Hook
// results are delivered through a [Future], and a dispatch's final result
// through the done callback passed to [Dispatch], rather than polled — this
// is the continuation-passing rendering of the forward/reverse/done state
// machine driving every dispatch.
//
// # Affine Resumption
//
// An [EventBridge] consumes its event exactly once: a second call to its
// Before hook panics, mirroring the ownership-transfer semantics of the
// handler it wraps — see [Dispatch].
package interceptor
