// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor_test

import (
	"errors"
	"testing"

	"github.com/RadicalZephyr/tokio-interceptor"
)

type recordingInterceptor struct {
	name string
	log  *[]string
}

func (r recordingInterceptor) Before(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	*r.log = append(*r.log, "before:"+r.name)
	return ctx.Next()
}

func (r recordingInterceptor) After(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	*r.log = append(*r.log, "after:"+r.name)
	return ctx.Next()
}

type pingEvent struct{ log *[]string }

func (e pingEvent) Handle(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	*e.log = append(*e.log, "handle")
	return ctx.Next()
}

func TestDispatchRunsForwardThenReverseInMirroredOrder(t *testing.T) {
	var log []string
	r := interceptor.NewRegistry()
	err := interceptor.Register[pingEvent](r, []interceptor.Interceptor{
		recordingInterceptor{name: "a", log: &log},
		recordingInterceptor{name: "b", log: &log},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	done := false
	interceptor.Dispatch(r, pingEvent{log: &log}, func(_ *interceptor.Context, err error) {
		done = true
		if err != nil {
			t.Fatalf("unexpected dispatch error: %v", err)
		}
	})
	if !done {
		t.Fatal("expected done to be called")
	}

	want := []string{"before:a", "before:b", "handle", "after:b", "after:a"}
	if !slicesEqual(log, want) {
		t.Fatalf("got %v, want %v", log, want)
	}
}

type failingInterceptor struct{ err error }

func (f failingInterceptor) Before(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	return interceptor.Failed[*interceptor.Context](f.err)
}

func (f failingInterceptor) After(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	return ctx.Next()
}

func TestDispatchShortCircuitsOnBeforeError(t *testing.T) {
	var log []string
	want := errors.New("before failed")
	r := interceptor.NewRegistry()
	err := interceptor.Register[pingEvent](r, []interceptor.Interceptor{
		failingInterceptor{err: want},
		recordingInterceptor{name: "unreached", log: &log},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	var gotErr error
	interceptor.Dispatch(r, pingEvent{log: &log}, func(_ *interceptor.Context, err error) {
		gotErr = err
	})

	if gotErr != want {
		t.Fatalf("got %v, want %v", gotErr, want)
	}
	if len(log) != 0 {
		t.Fatalf("expected downstream interceptors and handler to not run, got %v", log)
	}
}

func TestDispatchOfUnregisteredEventIsANoOp(t *testing.T) {
	r := interceptor.NewRegistry()
	called := false
	var gotErr error
	interceptor.Dispatch(r, pingEvent{log: &[]string{}}, func(_ *interceptor.Context, err error) {
		called = true
		gotErr = err
	})
	if !called {
		t.Fatal("expected done to be called even with no registered chain")
	}
	if gotErr != nil {
		t.Fatalf("got %v, want nil", gotErr)
	}
}

type queueRewriteInterceptor struct {
	inject interceptor.Interceptor
}

func (q queueRewriteInterceptor) Before(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	ctx.Queue = append([]interceptor.Interceptor{q.inject}, ctx.Queue...)
	return ctx.Next()
}

func (q queueRewriteInterceptor) After(ctx *interceptor.Context) interceptor.Future[*interceptor.Context] {
	return ctx.Next()
}

func TestBeforeHookCanRewriteQueue(t *testing.T) {
	var log []string
	r := interceptor.NewRegistry()
	err := interceptor.Register[pingEvent](r, []interceptor.Interceptor{
		queueRewriteInterceptor{inject: recordingInterceptor{name: "injected", log: &log}},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	interceptor.Dispatch(r, pingEvent{log: &log}, func(*interceptor.Context, error) {})

	want := []string{"before:injected", "handle", "after:injected"}
	if !slicesEqual(log, want) {
		t.Fatalf("got %v, want %v", log, want)
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
