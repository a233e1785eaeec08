// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// Context is the mutable value threaded through one dispatch: the typed
// Coeffects bag, the accumulated Effects list, the pending Queue of
// interceptors still to run, and the Stack of interceptors that have
// already had Before invoked.
//
// Queue and Stack are plain slices rather than a dedicated deque type: the
// driver only ever pops from the front of Queue and pushes onto the back
// of Stack, both O(1) slice operations, and moves the whole Stack into
// Queue once when the forward phase ends; handlers add to either end of
// Queue or clear it. A slice keeps the zero-dependency, inspectable shape the
// teacher favors over an abstract container.
type Context struct {
	Coeffects *TypedBag
	Effects   []Effect
	Queue     []Interceptor
	Stack     []Interceptor
}

// NewContext constructs a Context from an already-resolved interceptor
// queue (as produced by [Dispatch]), with empty Stack, Effects,
// and Coeffects.
func NewContext(queue []Interceptor) *Context {
	return &Context{
		Coeffects: NewTypedBag(),
		Effects:   nil,
		Queue:     queue,
		Stack:     nil,
	}
}

// PushEffect appends e to the context's effect list. Effects are consumed
// in this order by [EffectRunner] during the reverse phase; pushing after
// the reverse phase has already drained the list has no observable effect —
// intentional, not a bug.
func (c *Context) PushEffect(e Effect) {
	c.Effects = append(c.Effects, e)
}

// Next returns a Future that resolves immediately with c, the idiomatic
// way for a handler to hand control back to the driver once it has
// finished pushing coeffects, effects, and queue rewrites.
func (c *Context) Next() Future[*Context] {
	return Resolved(c)
}

// popQueueFront removes and returns the front of Queue.
func (c *Context) popQueueFront() (Interceptor, bool) {
	if len(c.Queue) == 0 {
		return nil, false
	}
	ic := c.Queue[0]
	c.Queue = c.Queue[1:]
	return ic, true
}

// pushStack pushes ic onto the top of Stack.
func (c *Context) pushStack(ic Interceptor) {
	c.Stack = append(c.Stack, ic)
}

// reverseStackIntoQueue drains Stack into Queue in most-recent-first
// order (top of Stack first) — the forward-to-reverse phase transition —
// and empties Stack.
func (c *Context) reverseStackIntoQueue() {
	n := len(c.Stack)
	reversed := make([]Interceptor, n)
	for i := 0; i < n; i++ {
		reversed[i] = c.Stack[n-1-i]
	}
	c.Queue = reversed
	c.Stack = nil
}

// ClearQueue discards every queued-but-unstarted interceptor, short-
// circuiting the remainder of the forward phase. Every
// interceptor already on Stack still gets its After invoked.
func (c *Context) ClearQueue() {
	c.Queue = nil
}
