// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hp implements hazard pointers: a per-thread record of K
// protected addresses plus a retire list, with scan-and-reclaim driven by
// a retire-list length threshold.
//
// As with [code.hybscloud.com/ck/ebr], participation is an explicit
// [Guard] rather than thread-local state.
package hp

import "code.hybscloud.com/ck/internal/atomic"

// K is the number of hazard slots per guard.
const K = 4

// scanThreshold is the retire-list length at which Retire triggers a scan.
// This is 2*K as an approximation of the textbook 2*K*maxThreads bound;
// the true bound needs a registry of live thread counts this package
// deliberately doesn't keep (see [Engine]).
const scanThreshold = 2 * K

// Protected is anything that can be retired once no hazard slot protects
// it. Close is the destructor invoked by Scan.
type Protected interface {
	Close()
}

type retired struct {
	ptr  Protected
	addr uintptr
	next *retired
}

// Guard is a thread's registration with an [Engine]: K hazard slots and a
// private retire list.
type Guard struct {
	hazards [K]atomic.Uintptr
	retireN int
	retireH *retired
	next    atomic.Pointer[Guard]
	engine  *Engine
}

// Protect advertises ptr as in-use in the given slot. The caller must
// then re-read the source location the pointer came from and, if it has
// changed, call Protect again with the new value (the "safe pointer
// loading loop") before trusting the pointer is not concurrently freed.
func (g *Guard) Protect(slot int, ptr uintptr) {
	g.hazards[slot].StoreRelease(ptr)
}

// Clear removes the protection on a single slot.
func (g *Guard) Clear(slot int) {
	g.hazards[slot].StoreRelease(0)
}

// ClearAll removes protection on every slot held by this guard.
func (g *Guard) ClearAll() {
	for i := range g.hazards {
		g.hazards[i].StoreRelease(0)
	}
}

// Retire schedules ptr for reclamation via value.Close once no guard's
// hazard slot protects it. addr must be the address identity of value
// (e.g. derived from an unsafe.Pointer to the same node) so Scan can
// compare it against live hazard slots.
func (g *Guard) Retire(addr uintptr, value Protected) {
	g.retireH = &retired{ptr: value, addr: addr, next: g.retireH}
	g.retireN++
	if g.retireN >= scanThreshold {
		g.Scan()
	}
}

// Scan snapshots every active hazard slot across every registered guard,
// then walks this guard's retire list: anything whose address appears in
// the snapshot survives, everything else is closed and dropped.
func (g *Guard) Scan() {
	live := make(map[uintptr]struct{})
	for gg := g.engine.guardsHead.LoadAcquire(); gg != nil; gg = gg.next.LoadAcquire() {
		for i := range gg.hazards {
			if a := gg.hazards[i].LoadAcquire(); a != 0 {
				live[a] = struct{}{}
			}
		}
	}

	var kept *retired
	keptN := 0
	for r := g.retireH; r != nil; {
		next := r.next
		if _, ok := live[r.addr]; ok {
			r.next = kept
			kept = r
			keptN++
		} else {
			r.ptr.Close()
		}
		r = next
	}
	g.retireH = kept
	g.retireN = keptN
}

// Engine owns the list of registered guards. An ordinary caller-owned
// object, not a process singleton.
type Engine struct {
	guardsHead atomic.Pointer[Guard]
}

// NewEngine returns a new hazard-pointer engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Register allocates a new guard and links it lock-free onto the
// engine's guard list.
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
