// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// EffectRunner is the [Interceptor] whose After hook drains ctx.Effects
// and runs each one's Action in insertion order. Its Before hook is the
// identity. It is normally the last of an event's default interceptors
// (after the coeffect injectors, before any user interceptors), so that
// every effect a handler or a later interceptor pushes during the forward
// phase still gets executed on the way back out.
//
// EffectRunner drains a snapshot: any effect pushed onto ctx.Effects by a
// later After hook (running after EffectRunner's own After has already
// returned) is not retried — this is intentional, not a missed flush.
type EffectRunner struct {
	Identity
}

// NewEffectRunner returns an EffectRunner.
func NewEffectRunner() *EffectRunner { return &EffectRunner{} }

// After atomically swaps ctx.Effects with nil and runs each drained
// effect's Action in order. Actions are fire-and-forget: a panicking
// Action propagates to the caller (the reactor's task boundary) — effect
// actions that can fail should report failure through their own side
// channel, not by returning an error here.
func (*EffectRunner) After(ctx *Context) Future[*Context] {
	effects := ctx.Effects
	ctx.Effects = nil
	for _, e := range effects {
		e.Action()
	}
	return ctx.Next()
}
