// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tododemo

import (
	"io"

	"github.com/RadicalZephyr/tokio-interceptor"
	"github.com/RadicalZephyr/tokio-interceptor/internal/reactor"
)

// App wires an [interceptor.App] with the writer coeffect the demo's
// handlers need, and owns the channel the stdin bridge listens on for
// "read another line" requests.
type App struct {
	core      *interceptor.App[List]
	requestCh chan struct{}
	quitCh    chan error
}

// New constructs an App backed by react and writing output to out, seeded
// with initial.
func New(react *reactor.Reactor, out io.Writer, initial List) *App {
	core := interceptor.NewApp[List](react, initial)
	a := &App{
		core:      core,
		requestCh: make(chan struct{}, 1),
		quitCh:    make(chan error, 1),
	}
	a.register(out)
	return a
}

// RequestChannel returns the channel a stdin bridge should block on: a
// value arrives each time the demo is ready for another line of input.
func (a *App) RequestChannel() <-chan struct{} {
	return a.requestCh
}

// QuitChannel delivers the error Quit's handler resolves with (see
// errQuit, surfaced through [ErrQuit]) once a "quit" command has been
// processed.
func (a *App) QuitChannel() <-chan error {
	return a.quitCh
}

// Start dispatches the opening ShowMenu/ShowPrompt pair, kicking off the
// first read request.
func (a *App) Start() {
	interceptor.DispatchEvent(a.core, ShowMenu{}, nil)
	interceptor.DispatchEvent(a.core, ShowPrompt{}, nil)
}

// DispatchLine dispatches one line of stdin input as an Input event. A
// Quit result is forwarded to QuitChannel; anything else — success or a
// parse/range error from the command itself — re-dispatches ShowPrompt so
// the prompt/read cycle repeats and the stdin bridge is asked for another
// line.
func (a *App) DispatchLine(line string) {
	interceptor.DispatchEvent(a.core, Input{Line: line}, func(_ *interceptor.Context, err error) {
		if err != nil && ErrQuit(err) {
			select {
			case a.quitCh <- err:
			default:
			}
			return
		}
		interceptor.DispatchEvent(a.core, ShowPrompt{}, nil)
	})
}

// Tasks returns the current task list, for diagnostics or tests.
func (a *App) Tasks() List {
	return *a.core.State.Borrow()
}

// register installs the chains for every event type actually reached
// through [interceptor.Dispatch]: ShowMenu and ShowPrompt (the
// startup pair), ReadLine (nested-dispatched by RequestNextLine), and
// Input (dispatched by the stdin bridge for every line). AddTask,
// CompleteTask, RemoveTask, ListTasks, and Quit are never looked up by
// type — Input.Handle wraps them directly as an [interceptor.EventBridge]
// and splices that bridge into the in-flight dispatch's own queue, so
// they inherit the coeffects Input's own chain already injected.
func (a *App) register(out io.Writer) {
	w := Writer{Out: out}
	writerInjector := interceptor.NewCoeffectInjector(w)

	must(interceptor.RegisterEventWith[List, ShowMenu](a.core, []interceptor.Interceptor{writerInjector}))
	must(interceptor.RegisterEventWith[List, ShowPrompt](a.core, []interceptor.Interceptor{
		writerInjector,
		RequestNextLine{RequestCh: a.requestCh},
	}))
	must(interceptor.RegisterEventWith[List, ReadLine](a.core, nil))
	must(interceptor.RegisterEventWith[List, Input](a.core, []interceptor.Interceptor{writerInjector}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
