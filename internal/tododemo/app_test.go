// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tododemo_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/RadicalZephyr/tokio-interceptor/internal/reactor"
	"github.com/RadicalZephyr/tokio-interceptor/internal/tododemo"
)

func newRunningDemo(t *testing.T) (*tododemo.App, *reactor.Reactor) {
	t.Helper()
	react := reactor.New()
	go react.Run()
	t.Cleanup(react.Stop)

	demo := tododemo.New(react, &bytes.Buffer{}, nil)
	demo.Start()
	waitForRequest(t, demo)
	return demo, react
}

func waitForRequest(t *testing.T, demo *tododemo.App) {
	t.Helper()
	select {
	case <-demo.RequestChannel():
	case <-time.After(time.Second):
		t.Fatal("demo never requested a line of input")
	}
}

func TestAddListCompleteRemoveRoundTrip(t *testing.T) {
	demo, _ := newRunningDemo(t)

	demo.DispatchLine("add write tests")
	waitForRequest(t, demo)

	tasks := demo.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "write tests" || tasks[0].Done {
		t.Fatalf("got %+v, want one not-done task \"write tests\"", tasks)
	}

	demo.DispatchLine("complete 1")
	waitForRequest(t, demo)
	if !demo.Tasks()[0].Done {
		t.Fatal("expected task 1 to be marked done")
	}

	demo.DispatchLine("remove 1")
	waitForRequest(t, demo)
	if len(demo.Tasks()) != 0 {
		t.Fatalf("got %d tasks, want 0 after remove", len(demo.Tasks()))
	}
}

func TestQuitSurfacesOnQuitChannel(t *testing.T) {
	demo, _ := newRunningDemo(t)

	demo.DispatchLine("quit")

	select {
	case err := <-demo.QuitChannel():
		if !tododemo.ErrQuit(err) {
			t.Fatalf("got %v, want the quit sentinel", err)
		}
	case <-time.After(time.Second):
		t.Fatal("quit never surfaced on QuitChannel")
	}
}

func TestCompleteOutOfRangeIndexDoesNotPanic(t *testing.T) {
	demo, _ := newRunningDemo(t)

	demo.DispatchLine("complete 99")
	waitForRequest(t, demo)

	if len(demo.Tasks()) != 0 {
		t.Fatalf("got %d tasks, want 0 (no mutation on bad index)", len(demo.Tasks()))
	}
}
