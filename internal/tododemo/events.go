// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tododemo

import (
	"io"
	"strconv"
	"strings"

	"github.com/RadicalZephyr/tokio-interceptor"
)

const menuText = `
1) list
2) add <text>
3) complete <n>
4) remove <n>
5) quit
`

const promptText = "> "

// Writer is the coeffect carrying the demo's output stream. It is cheap
// to copy, so the default direct-copy coeffect injection applies — it
// does not need to implement CoeffectProducer.
type Writer struct {
	Out io.Writer
}

// ShowMenu prints the static command menu.
type ShowMenu struct{}

func (ShowMenu) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	w, _ := interceptor.GetBag[Writer](ctx.Coeffects)
	ctx.PushEffect(Print{W: w.Out, Text: menuText})
	return ctx.Next()
}

// ShowPrompt prints the input prompt. Registered with a trailing
// RequestNextLine interceptor so that, once the prompt has actually been
// flushed by the effect runner, a nested ReadLine dispatch asks the stdin
// bridge for the next line.
type ShowPrompt struct{}

func (ShowPrompt) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	w, _ := interceptor.GetBag[Writer](ctx.Coeffects)
	ctx.PushEffect(Print{W: w.Out, Text: promptText})
	return ctx.Next()
}

// RequestNextLine is the trailing interceptor in ShowPrompt's chain. Its
// After hook pushes a nested ReadLine dispatch onto ctx.Effects — run by
// the effect runner earlier in the chain's reverse order, alongside
// ShowPrompt's own Print effect — so the stdin bridge is only asked for
// another line once the prompt is actually on screen.
type RequestNextLine struct {
	interceptor.Identity
	RequestCh chan<- struct{}
}

func (r RequestNextLine) After(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	d, _ := interceptor.GetBag[interceptor.Dispatcher](ctx.Coeffects)
	ctx.PushEffect(interceptor.DispatchNested(d, ReadLine{RequestCh: r.RequestCh}))
	return ctx.Next()
}

// ReadLine asks the stdin bridge (via RequestCh) for the next line of
// input. It carries no list-affecting behavior of its own.
type ReadLine struct {
	RequestCh chan<- struct{}
}

func (r ReadLine) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	select {
	case r.RequestCh <- struct{}{}:
	default:
	}
	return ctx.Next()
}

// Input is dispatched by the stdin bridge for every line read. Its Handle
// parses the line into a command and performs a runtime queue rewrite:
// depending on the parsed command, it prepends the matching handler's
// EventBridge to ctx.Queue so that handler's Before/After run as part of
// this same dispatch — the ParseMenuChoice step of the chain, expressed
// as the terminal handler's own routing rather than a separate
// interceptor, since only the handler has the dispatch-specific line text
// in scope. For "complete"/"remove", ParseIndex is prepended ahead of the
// handler's own bridge — not after it — so its Before runs first and the
// Index coeffect it inserts is already present by the time the handler's
// Before runs.
type Input struct {
	Line string
}

func (in Input) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	w, _ := interceptor.GetBag[Writer](ctx.Coeffects)
	fields := strings.Fields(in.Line)
	if len(fields) == 0 {
		return ctx.Next()
	}

	var prefix []interceptor.Interceptor
	switch strings.ToLower(fields[0]) {
	case "list", "1":
		prefix = []interceptor.Interceptor{interceptor.NewEventBridge(ListTasks{})}
	case "add", "2":
		prefix = []interceptor.Interceptor{interceptor.NewEventBridge(AddTask{Text: strings.TrimSpace(strings.TrimPrefix(in.Line, fields[0]))})}
	case "complete", "3":
		prefix = []interceptor.Interceptor{ParseIndex{Args: fields[1:]}, interceptor.NewEventBridge(CompleteTask{})}
	case "remove", "4":
		prefix = []interceptor.Interceptor{ParseIndex{Args: fields[1:]}, interceptor.NewEventBridge(RemoveTask{})}
	case "quit", "5":
		prefix = []interceptor.Interceptor{interceptor.NewEventBridge(Quit{})}
	default:
		ctx.PushEffect(Print{W: w.Out, Text: "unrecognized command: " + fields[0]})
		return ctx.Next()
	}
	ctx.Queue = append(prefix, ctx.Queue...)
	return ctx.Next()
}

// Index is the coeffect ParseIndex inserts: the parsed, 1-based task
// index from a "complete"/"remove" command's arguments.
type Index struct {
	N int
}

// ParseIndex parses a 1-based index out of its Args and inserts it as an
// Index coeffect for RemoveTask/CompleteTask to consume.
type ParseIndex struct {
	interceptor.Identity
	Args []string
}

func (p ParseIndex) Before(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	if len(p.Args) == 0 {
		return interceptor.Failed[*interceptor.Context](errIndexMissing)
	}
	n, err := strconv.Atoi(p.Args[0])
	if err != nil {
		return interceptor.Failed[*interceptor.Context](errIndexNotANumber)
	}
	interceptor.InsertBag(ctx.Coeffects, Index{N: n})
	return ctx.Next()
}

// AddTask appends a new, not-done task to the list.
type AddTask struct {
	Text string
}

func (a AddTask) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	state, _ := interceptor.GetBag[interceptor.StateCell[List]](ctx.Coeffects)
	ctx.PushEffect(state.Mutate(func(l *List) {
		*l = append(*l, Task{Text: a.Text})
	}))
	return ctx.Next()
}

// CompleteTask marks the task at the Index coeffect's (1-based) position
// as done.
type CompleteTask struct{}

func (CompleteTask) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	idx, _ := interceptor.GetBag[Index](ctx.Coeffects)
	state, _ := interceptor.GetBag[interceptor.StateCell[List]](ctx.Coeffects)
	i := idx.N - 1
	if i < 0 || i >= len(*state.Borrow()) {
		return interceptor.Failed[*interceptor.Context](errIndexOutOfRange)
	}
	ctx.PushEffect(state.Mutate(func(l *List) {
		(*l)[i].Done = true
	}))
	return ctx.Next()
}

// RemoveTask removes the task at the Index coeffect's (1-based) position.
type RemoveTask struct{}

func (RemoveTask) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	idx, _ := interceptor.GetBag[Index](ctx.Coeffects)
	state, _ := interceptor.GetBag[interceptor.StateCell[List]](ctx.Coeffects)
	i := idx.N - 1
	if i < 0 || i >= len(*state.Borrow()) {
		return interceptor.Failed[*interceptor.Context](errIndexOutOfRange)
	}
	ctx.PushEffect(state.Mutate(func(l *List) {
		*l = append((*l)[:i], (*l)[i+1:]...)
	}))
	return ctx.Next()
}

// ListTasks renders the current task list.
type ListTasks struct{}

func (ListTasks) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	w, _ := interceptor.GetBag[Writer](ctx.Coeffects)
	state, _ := interceptor.GetBag[interceptor.StateCell[List]](ctx.Coeffects)

	var b strings.Builder
	for i, task := range *state.Borrow() {
		mark := " "
		if task.Done {
			mark = "x"
		}
		b.WriteString("[" + mark + "] ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(task.Text)
		b.WriteString("\n")
	}

	ctx.PushEffect(Print{W: w.Out, Text: b.String()})
	return ctx.Next()
}

// Quit is the designed termination signal: its Handle resolves to an
// error, which the reactor's host loop surfaces as the process's exit
// condition.
type Quit struct{}

func (Quit) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	return interceptor.Failed[*interceptor.Context](errQuit)
}
