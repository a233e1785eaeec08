// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// StateCell is the shared, single-owner cell holding application-defined
// state S. It is created once at program start, distributed to handlers
// by clone as a coeffect (copying the cell handle, not S), and mutated
// only through a [MutateState] effect whose closure runs in the reverse
// phase.
//
// StateCell assumes a single-threaded cooperative scheduling model: there
// is no internal locking, because the reactor never runs two dispatches'
// effects concurrently and mutation is confined to the reverse phase.
// Callers must drop any value returned by Borrow before calling
// ctx.Next() — Borrow returns a pointer precisely so that discipline is
// the caller's to keep, not the type's to enforce.
type StateCell[S any] struct {
	state *S
}

// NewStateCell creates a StateCell seeded with initial.
func NewStateCell[S any](initial S) StateCell[S] {
	s := initial
	return StateCell[S]{state: &s}
}

// NewCoeffect returns a cheap clone of the cell handle — copying the
// pointer, not the underlying S — satisfying [CoeffectProducer] so a
// [CoeffectInjector] distributes the same shared cell to every dispatch.
func (c StateCell[S]) NewCoeffect() StateCell[S] { return c }

// Borrow returns a short-lived read pointer into the state. It must not be
// held across a suspension point (see the StateCell doc comment).
func (c StateCell[S]) Borrow() *S { return c.state }

// Mutate constructs a MutateState effect closing over this cell and f.
// When the effect runs — always during the reverse phase, after
// EffectRunner drains ctx.Effects — it applies f to the state in place.
func (c StateCell[S]) Mutate(f func(*S)) *MutateState[S] {
	return &MutateState[S]{cell: c, mutate: f}
}

// MutateState is the [Effect] that applies a state mutation. Constructed
// by [StateCell.Mutate], pushed onto ctx.Effects by a handler, and
// consumed exactly once by [EffectRunner].
type MutateState[S any] struct {
	cell   StateCell[S]
	mutate func(*S)
}

// Action applies the stored mutation function to the cell's state.
func (m *MutateState[S]) Action() {
	m.mutate(m.cell.state)
}
