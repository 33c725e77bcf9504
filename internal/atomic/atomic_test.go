// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomic_test

import (
	"testing"

	"code.hybscloud.com/ck/internal/atomic"
)

func TestUint32LoadStoreCAS(t *testing.T) {
	var a atomic.Uint32
	a.StoreRelease(5)
	if v := a.LoadAcquire(); v != 5 {
		t.Fatalf("LoadAcquire: got %d, want 5", v)
	}
	if !a.CompareAndSwapAcqRel(5, 9) {
		t.Fatalf("CompareAndSwapAcqRel(5, 9): got false, want true")
	}
	if v := a.LoadRelaxed(); v != 9 {
		t.Fatalf("LoadRelaxed after CAS: got %d, want 9", v)
	}
	if a.CompareAndSwapRelaxed(5, 1) {
		t.Fatalf("CompareAndSwapRelaxed(5, 1) with stale old: got true, want false")
	}
	if v := a.AddAcqRel(1); v != 10 {
		t.Fatalf("AddAcqRel(1): got %d, want 10", v)
	}
	if v := a.SwapAcqRel(0); v != 10 {
		t.Fatalf("SwapAcqRel(0): got %d, want old value 10", v)
	}
}

func TestUint64LoadStoreCAS(t *testing.T) {
	var a atomic.Uint64
	a.StoreRelaxed(100)
	if !a.CompareAndSwapAcqRel(100, 200) {
		t.Fatalf("CompareAndSwapAcqRel(100, 200): got false, want true")
	}
	if v := a.AddRelaxed(1); v != 201 {
		t.Fatalf("AddRelaxed(1): got %d, want 201", v)
	}
}

func TestInt32LoadStoreCAS(t *testing.T) {
	var a atomic.Int32
	a.StoreRelease(-5)
	if v := a.LoadAcquire(); v != -5 {
		t.Fatalf("LoadAcquire: got %d, want -5", v)
	}
	if !a.CompareAndSwapRelaxed(-5, 3) {
		t.Fatalf("CompareAndSwapRelaxed(-5, 3): got false, want true")
	}
	if v := a.AddAcqRel(-3); v != 0 {
		t.Fatalf("AddAcqRel(-3): got %d, want 0", v)
	}
}

func TestInt64LoadStoreCAS(t *testing.T) {
	var a atomic.Int64
	a.StoreRelaxed(42)
	if !a.CompareAndSwapAcqRel(42, -42) {
		t.Fatalf("CompareAndSwapAcqRel(42, -42): got false, want true")
	}
	if v := a.LoadRelaxed(); v != -42 {
		t.Fatalf("LoadRelaxed: got %d, want -42", v)
	}
}

func TestUintptrLoadStoreCAS(t *testing.T) {
	var a atomic.Uintptr
	a.StoreRelease(0xabc)
	if v := a.LoadAcquire(); v != 0xabc {
		t.Fatalf("LoadAcquire: got %#x, want 0xabc", v)
	}
	if !a.CompareAndSwapAcqRel(0xabc, 0) {
		t.Fatalf("CompareAndSwapAcqRel(0xabc, 0): got false, want true")
	}
	if v := a.LoadRelaxed(); v != 0 {
		t.Fatalf("LoadRelaxed after CAS to 0: got %#x, want 0", v)
	}
}

func TestBoolLoadStoreCAS(t *testing.T) {
	var a atomic.Bool
	if a.LoadAcquire() {
		t.Fatalf("zero-value LoadAcquire: got true, want false")
	}
	a.StoreRelease(true)
	if !a.LoadRelaxed() {
		t.Fatalf("LoadRelaxed after StoreRelease(true): got false, want true")
	}
	if !a.CompareAndSwapAcqRel(true, false) {
		t.Fatalf("CompareAndSwapAcqRel(true, false): got false, want true")
	}
	if a.LoadAcquire() {
		t.Fatalf("LoadAcquire after CAS to false: got true, want false")
	}
}

func TestPointerLoadStoreCAS(t *testing.T) {
	var p atomic.Pointer[int]
	x, y := 1, 2

	p.StoreRelease(&x)
	if got := p.LoadAcquire(); got != &x {
		t.Fatalf("LoadAcquire: got %p, want %p", got, &x)
	}
	if !p.CompareAndSwapAcqRel(&x, &y) {
		t.Fatalf("CompareAndSwapAcqRel(&x, &y): got false, want true")
	}
	if got := p.LoadRelaxed(); got != &y {
		t.Fatalf("LoadRelaxed after CAS: got %p, want %p", got, &y)
	}
	if old := p.SwapAcqRel(nil); old != &y {
		t.Fatalf("SwapAcqRel(nil): got old %p, want %p", old, &y)
	}
	if got := p.LoadAcquire(); got != nil {
		t.Fatalf("LoadAcquire after SwapAcqRel(nil): got %p, want nil", got)
	}
}

// TestFencesDoNotPanic exercises the fence vocabulary. These functions
// carry no hardware-observable effect on Go's memory model; the property
// under test is only that they are safe to call from any goroutine and
// compose with concurrent atomic access to the same sink.
func TestFencesDoNotPanic(t *testing.T) {
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			atomic.FenceAcquire()
			atomic.FenceRelease()
			atomic.FenceAcqRel()
			atomic.Fence()
			atomic.CompilerFence()
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		atomic.Fence()
	}
	<-done
}
