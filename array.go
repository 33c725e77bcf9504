// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/ebr"
	"code.hybscloud.com/ck/internal/atomic"
)

// Array is a single-writer/multi-reader dynamic array. The writer
// publishes a new backing slice by atomic pointer swap; readers obtain a
// snapshot by an acquire load and never observe a half-initialized one.
//
// Single-writer is a requirement on the caller: Array does not enforce
// it, and concurrent writers are undefined behavior.
//
// The source this is modeled on leaks every prior backing slice on push
// ("freed when readers are done, in a real implementation use EBR"). That
// leak is closed here: old snapshots are retired through an [ebr.Engine]
// and reclaimed once no reader can still be holding one.
type Array[T any] struct {
	cur    atomic.Pointer[[]T]
	engine *ebr.Engine
}

// NewArray returns an empty array reclaiming old snapshots through
// engine.
func NewArray[T any](engine *ebr.Engine) *Array[T] {
	empty := []T{}
	a := &Array[T]{engine: engine}
	a.cur.StoreRelease(&empty)
	return a
}

// Engine returns the reclamation engine old snapshots are retired
// through.
func (a *Array[T]) Engine() *ebr.Engine { return a.engine }

// Snapshot returns the array's current backing slice. The caller must
// wrap the read in guard.Enter()/guard.Leave() (or an equivalent external
// guarantee) so the snapshot isn't reclaimed while still in use.
func (a *Array[T]) Snapshot() []T {
	return *a.cur.LoadAcquire()
}

// Len returns the current snapshot's length. Like Snapshot, callers
// needing a consistent read across multiple calls should bracket them in
// a guard's critical section.
func (a *Array[T]) Len() int {
	return len(*a.cur.LoadAcquire())
}

// Push appends value, publishing a new backing slice and retiring the old
// one through guard. Single-writer only.
func (a *Array[T]) Push(guard *ebr.Guard, value T) {
	old := a.cur.LoadAcquire()
	next := make([]T, len(*old)+1)
	copy(next, *old)
	next[len(*old)] = value
	a.cur.StoreRelease(&next)
	guard.DeferFree(func() { _ = old })
}

// Set replaces the element at index i, publishing a new backing slice
// and retiring the old one through guard. Single-writer only.
func (a *Array[T]) Set(guard *ebr.Guard, i int, value T) {
	old := a.cur.LoadAcquire()
	next := make([]T, len(*old))
	copy(next, *old)
	next[i] = value
	a.cur.StoreRelease(&next)
	guard.DeferFree(func() { _ = old })
}
