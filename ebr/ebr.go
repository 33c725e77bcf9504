// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ebr implements epoch-based reclamation: a process-global epoch
// counter and a lock-free linked list of per-thread records, each with
// three garbage buckets indexed by epoch mod 3.
//
// Unlike a thread-local-storage based design, participation is represented
// by an explicit [Guard] the caller registers and holds for the lifetime
// of its participation. This keeps the engine portable across execution
// models that don't offer OS thread-local storage (green threads, fibers).
package ebr

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// Grace is the number of epochs a garbage item must survive before it is
// eligible for reclamation: an item deferred at epoch e is freed no
// earlier than the first time the global epoch reaches e+Grace with every
// active record observed at epoch >= e.
const Grace = 2

const numBuckets = 3

type garbageItem struct {
	free func()
	next *garbageItem
}

// Guard is a thread's (or goroutine's) registration with an [Engine]. Its
// lifetime represents that thread's participation: construct one with
// [Engine.Register] and reuse it across critical sections.
type Guard struct {
	localEpoch atomic.Uint64
	active     atomic.Uint32 // in-critical-section count
	buckets    [numBuckets]atomic.Pointer[garbageItem]
	next       atomic.Pointer[Guard]
	engine     *Engine
}

// Enter begins a critical section: pins the guard's local epoch to the
// current global epoch. Critical sections may nest; Leave must be called
// once per Enter.
func (g *Guard) Enter() {
	if g.active.LoadRelaxed() == 0 {
		g.localEpoch.StoreRelaxed(g.engine.global.LoadAcquire())
	}
	g.active.AddAcqRel(1)
}

// Leave ends a critical section begun by Enter.
func (g *Guard) Leave() {
	g.active.AddAcqRel(^uint32(0)) // -1
}

// DeferFree schedules free to run once no active guard can still observe
// the epoch at which it was deferred. Must be called from within an Enter
// / Leave critical section of g.
func (g *Guard) DeferFree(free func()) {
	e := g.localEpoch.LoadRelaxed()
	item := &garbageItem{free: free}
	bucket := &g.buckets[e%numBuckets]
	for {
		head := bucket.LoadRelaxed()
		item.next = head
		if bucket.CompareAndSwapAcqRel(head, item) {
			return
		}
	}
}

// Engine owns the global epoch counter and the list of registered guards.
// It is an ordinary object the caller instantiates and shares; it is not
// a process-wide singleton.
type Engine struct {
	global     atomic.Uint64
	guardsHead atomic.Pointer[Guard]
}

// NewEngine returns a new reclamation engine at epoch 0.
func NewEngine() *Engine {
	return &Engine{}
}

// Register allocates a new guard and links it lock-free onto the engine's
// guard list.
func (e *Engine) Register() *Guard {
	g := &Guard{engine: e}
	for {
		head := e.guardsHead.LoadRelaxed()
		g.next.StoreRelaxed(head)
		if e.guardsHead.CompareAndSwapAcqRel(head, g) {
			return g
		}
	}
}

// TryAdvance attempts to advance the global epoch by one. It succeeds
// only if every active guard (active count >= 1) has its local epoch
// equal to the current global epoch; otherwise it returns false and
// leaves the epoch unchanged.
func (e *Engine) TryAdvance() bool {
	cur := e.global.LoadAcquire()
	for g := e.guardsHead.LoadAcquire(); g != nil; g = g.next.LoadAcquire() {
		if g.active.LoadAcquire() > 0 && g.localEpoch.LoadAcquire() != cur {
			return false
		}
	}
	return e.global.CompareAndSwapAcqRel(cur, cur+1)
}

// TryReclaim frees every item in the bucket that is now guaranteed
// unreachable: at current global epoch e, bucket (e-Grace) mod 3 is safe
// because any guard pinned that old an epoch must have since advanced or
// left. Returns the number of items freed.
func (e *Engine) TryReclaim() int {
	cur := e.global.LoadAcquire()
	if cur < Grace {
		return 0
	}
	idx := (cur - Grace) % numBuckets
	n := 0
	for g := e.guardsHead.LoadAcquire(); g != nil; g = g.next.LoadAcquire() {
		bucket := &g.buckets[idx]
		item := bucket.SwapAcqRel(nil)
		for item != nil {
			item.free()
			item = item.next
			n++
		}
	}
	return n
}

// Quiesce is a convenience loop that repeatedly calls TryAdvance and
// TryReclaim with backoff until one full advance-and-reclaim cycle has
// completed, or maxAttempts spins have been exhausted. It is intended for
// callers that want to force progress (e.g. in tests), not a requirement
// of the reclamation protocol itself: readers that merely Enter/Leave
// need never call it.
func (e *Engine) Quiesce(maxAttempts int) {
	bo := spin.New()
	for i := 0; i < maxAttempts; i++ {
		if e.TryAdvance() {
			e.TryReclaim()
			return
		}
		bo.Spin()
	}
}
