// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor_test

import (
	"testing"

	"github.com/RadicalZephyr/tokio-interceptor"
)

func TestEffectRunnerRunsInOrder(t *testing.T) {
	ctx := interceptor.NewContext(nil)
	var ran []int
	ctx.PushEffect(interceptor.EffectFunc(func() { ran = append(ran, 1) }))
	ctx.PushEffect(interceptor.EffectFunc(func() { ran = append(ran, 2) }))
	ctx.PushEffect(interceptor.EffectFunc(func() { ran = append(ran, 3) }))

	runner := interceptor.NewEffectRunner()
	runner.After(ctx)(func(*interceptor.Context, error) {})

	if len(ran) != 3 || ran[0] != 1 || ran[1] != 2 || ran[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", ran)
	}
}

func TestEffectRunnerDrainsSnapshotOnly(t *testing.T) {
	ctx := interceptor.NewContext(nil)
	runner := interceptor.NewEffectRunner()

	ctx.PushEffect(interceptor.EffectFunc(func() {
		ctx.PushEffect(interceptor.EffectFunc(func() {
			t.Fatal("effect pushed during drain must not run in the same pass")
		}))
	}))

	runner.After(ctx)(func(*interceptor.Context, error) {})

	if len(ctx.Effects) != 1 {
		t.Fatalf("got %d leftover effects, want 1 (pushed-during-drain is not retried)", len(ctx.Effects))
	}
}

func TestEffectRunnerBeforeIsIdentity(t *testing.T) {
	ctx := interceptor.NewContext(nil)
	runner := interceptor.NewEffectRunner()

	var got *interceptor.Context
	runner.Before(ctx)(func(c *interceptor.Context, err error) { got = c })
	if got != ctx {
		t.Fatal("expected Before to resolve with the unchanged context")
	}
}
