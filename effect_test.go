// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor_test

import (
	"testing"

	"github.com/RadicalZephyr/tokio-interceptor"
)

func TestEffectFuncRunsClosure(t *testing.T) {
	called := false
	e := interceptor.EffectFunc(func() { called = true })
	e.Action()
	if !called {
		t.Fatal("expected Action to invoke the wrapped function")
	}
}
