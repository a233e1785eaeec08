// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor_test

import (
	"testing"

	"github.com/RadicalZephyr/tokio-interceptor"
)

func TestIdentityResolvesUnchanged(t *testing.T) {
	ctx := interceptor.NewContext(nil)
	id := interceptor.Identity{}

	var gotBefore, gotAfter *interceptor.Context
	id.Before(ctx)(func(c *interceptor.Context, err error) { gotBefore = c })
	id.After(ctx)(func(c *interceptor.Context, err error) { gotAfter = c })

	if gotBefore != ctx || gotAfter != ctx {
		t.Fatal("expected Identity hooks to resolve with the same context")
	}
}

func TestInterceptorFuncFallsBackToIdentity(t *testing.T) {
	ctx := interceptor.NewContext(nil)
	f := interceptor.InterceptorFunc{}

	var got *interceptor.Context
	f.Before(ctx)(func(c *interceptor.Context, err error) { got = c })
	if got != ctx {
		t.Fatal("expected unset BeforeFunc to fall back to identity")
	}
}

func TestInterceptorFuncCallsOverride(t *testing.T) {
	ctx := interceptor.NewContext(nil)
	called := false
	f := interceptor.InterceptorFunc{
		AfterFunc: func(c *interceptor.Context) interceptor.Future[*interceptor.Context] {
			called = true
			return c.Next()
		},
	}

	f.After(ctx)(func(*interceptor.Context, error) {})
	if !called {
		t.Fatal("expected AfterFunc to be invoked")
	}
}
