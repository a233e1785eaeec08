// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package interceptor_test

import (
	"testing"

	"github.com/RadicalZephyr/tokio-interceptor"
)

type clockCoeffect struct{ now int64 }

type loggerCoeffect struct{ level string }

func TestBagInsertGet(t *testing.T) {
	bag := interceptor.NewTypedBag()
	interceptor.InsertBag(bag, clockCoeffect{now: 42})

	got, ok := interceptor.GetBag[clockCoeffect](bag)
	if !ok {
		t.Fatal("expected value to be present")
	}
	if got.now != 42 {
		t.Fatalf("got %d, want 42", got.now)
	}
}

func TestBagGetMissing(t *testing.T) {
	bag := interceptor.NewTypedBag()
	_, ok := interceptor.GetBag[clockCoeffect](bag)
	if ok {
		t.Fatal("expected no value for unset type")
	}
}

func TestBagInsertReplaces(t *testing.T) {
	bag := interceptor.NewTypedBag()
	interceptor.InsertBag(bag, clockCoeffect{now: 1})
	interceptor.InsertBag(bag, clockCoeffect{now: 2})

	got, _ := interceptor.GetBag[clockCoeffect](bag)
	if got.now != 2 {
		t.Fatalf("got %d, want 2", got.now)
	}
}

func TestBagDistinctTypesDoNotCollide(t *testing.T) {
	bag := interceptor.NewTypedBag()
	interceptor.InsertBag(bag, clockCoeffect{now: 7})
	interceptor.InsertBag(bag, loggerCoeffect{level: "debug"})

	gotClock, ok := interceptor.GetBag[clockCoeffect](bag)
	if !ok || gotClock.now != 7 {
		t.Fatalf("got (%v, %v), want (7, true)", gotClock, ok)
	}
	gotLog, ok := interceptor.GetBag[loggerCoeffect](bag)
	if !ok || gotLog.level != "debug" {
		t.Fatalf("got (%v, %v), want (debug, true)", gotLog, ok)
	}
}

func TestBagRemove(t *testing.T) {
	bag := interceptor.NewTypedBag()
	interceptor.InsertBag(bag, clockCoeffect{now: 5})

	got, ok := interceptor.RemoveBag[clockCoeffect](bag)
	if !ok || got.now != 5 {
		t.Fatalf("got (%v, %v), want (5, true)", got, ok)
	}

	_, ok = interceptor.GetBag[clockCoeffect](bag)
	if ok {
		t.Fatal("expected value to be gone after Remove")
	}
}

func TestBagRemoveMissing(t *testing.T) {
	bag := interceptor.NewTypedBag()
	_, ok := interceptor.RemoveBag[clockCoeffect](bag)
	if ok {
		t.Fatal("expected Remove of unset type to report false")
	}
}
