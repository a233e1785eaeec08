// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// Effect is a deferred side-effect object: constructed by a handler,
// placed onto ctx.Effects, and consumed exactly once by [EffectRunner]
// during the reverse phase. Action performs the side effect; it has no
// return value because effect actions are fire-and-forget — an effect that
// cannot run is a bug class, not a recoverable outcome.
type Effect interface {
	Action()
}

// EffectFunc adapts a plain function to the Effect interface.
type EffectFunc func()

// Action calls f.
func (f EffectFunc) Action() { f() }
