// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor

// runPipeline drives ctx through the forward phase (pop ctx.Queue front to
// back, invoking Before, pushing each popped interceptor onto ctx.Stack)
// then the reverse phase (pop the drained, order-reversed stack, invoking
// After), calling done exactly once when the stack empties or a hook
// fails. This is a Forward/Reverse/Done state machine expressed as
// continuation-passing recursion instead of an explicit poll loop: each
// step's [Future] resume callback *is* the "next poll".
//
// A before hook that appends to ctx.Queue lets those interceptors join
// this forward phase (so their After runs in this same reverse phase); a
// before hook that clears ctx.Queue ends the forward phase immediately,
// and reverse begins over whatever is already on ctx.Stack. An after hook
// that appends to ctx.Queue (a nested-dispatch-on-confirm pattern, for
// example) is processed as more After calls in this same reverse
// traversal, not as a new forward phase — see forward/reverse below,
// which share the same queue-popping loop shape but call different
// hooks.
func runPipeline(ctx *Context, done func(*Context, error)) {
	forward(ctx, done)
}

func forward(ctx *Context, done func(*Context, error)) {
	ic, ok := ctx.popQueueFront()
	if !ok {
		ctx.reverseStackIntoQueue()
		reverse(ctx, done)
		return
	}
	ctx.pushStack(ic)
	ic.Before(ctx)(func(next *Context, err error) {
		if err != nil {
			done(next, err)
			return
		}
		forward(next, done)
	})
}

func reverse(ctx *Context, done func(*Context, error)) {
	ic, ok := ctx.popQueueFront()
	if !ok {
		done(ctx, nil)
		return
	}
	ic.After(ctx)(func(next *Context, err error) {
		if err != nil {
			done(next, err)
			return
		}
		reverse(next, done)
	})
}
