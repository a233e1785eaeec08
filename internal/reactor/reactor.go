// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package reactor provides a single-threaded cooperative task queue: every
// scheduled function runs on the same goroutine, one at a time, in the
// order it was spawned. It satisfies interceptor.Spawner, giving a
// Dispatcher somewhere to schedule a nested dispatch without re-entering
// the pipeline from inside the parent dispatch's own call stack.
package reactor

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrStopped is the value Spawn panics with once the reactor has been
// stopped.
var ErrStopped = errors.New("reactor: stopped")

// Reactor runs scheduled functions one at a time on a dedicated goroutine.
// It is not safe to share across multiple concurrently-running reactors;
// it is, however, safe for any number of other goroutines to call Spawn
// concurrently — tasks are handed off over a channel and executed in
// receipt order.
type Reactor struct {
	tasks chan func()
	done  chan struct{}
	log   *logrus.Entry
}

// Option configures a Reactor at construction time.
type Option func(*Reactor)

// WithLogger overrides the structured logger a Reactor uses for lifecycle
// diagnostics. Defaults to logrus.StandardLogger().
func WithLogger(log *logrus.Entry) Option {
	return func(r *Reactor) { r.log = log }
}

// WithQueueSize sets the task channel's buffer depth. Defaults to 64.
func WithQueueSize(n int) Option {
	return func(r *Reactor) { r.tasks = make(chan func(), n) }
}

// New constructs a Reactor. Call Run to start draining its task queue, and
// Stop to terminate it.
func New(opts ...Option) *Reactor {
	r := &Reactor{
		tasks: make(chan func(), 64),
		done:  make(chan struct{}),
		log:   logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Spawn schedules fn to run on the reactor's own goroutine. It never runs
// fn synchronously, even if called from the reactor's own goroutine — the
// call always enqueues. Spawn panics if called after Stop; callers racing
// shutdown should recover or check Stopped first.
func (r *Reactor) Spawn(fn func()) {
	select {
	case <-r.done:
		panic(ErrStopped)
	default:
	}
	select {
	case r.tasks <- fn:
	case <-r.done:
		panic(ErrStopped)
	}
}

// Run drains the task queue until Stop is called, running each scheduled
// function to completion before dequeuing the next. A panicking task
// propagates out of Run — the caller decides whether to recover and keep
// the reactor alive or let the process crash.
func (r *Reactor) Run() {
	for {
		select {
		case fn := <-r.tasks:
			fn()
		case <-r.done:
			r.drain()
			return
		}
	}
}

// drain runs any tasks already buffered in the channel at the moment Stop
// was observed, so a Spawn that raced Stop but still made it into the
// channel is not silently dropped.
func (r *Reactor) drain() {
	for {
		select {
		case fn := <-r.tasks:
			fn()
		default:
			return
		}
	}
}

// Stop signals Run to return once the currently buffered tasks have been
// drained. Safe to call more than once; subsequent calls are no-ops.
func (r *Reactor) Stop() {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
	r.log.Debug("reactor stopping")
}

// Stopped reports whether Stop has been called.
func (r *Reactor) Stopped() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}
