// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomic

import "sync/atomic"

// sink is touched by the fence functions below so they are not optimized
// away entirely; its value is never meaningful.
var sink atomic.Uint32

// FenceAcquire is an acquire fence: later reads/writes are not reordered
// before it. On Go's memory model this is subsumed by the acquire load
// that would normally accompany it; it exists so algorithms ported from a
// source with an explicit fence step keep the same shape.
func FenceAcquire() { sink.Load() }

// FenceRelease is a release fence: earlier reads/writes are not reordered
// after it.
func FenceRelease() { sink.Store(0) }

// FenceAcqRel combines FenceAcquire and FenceRelease.
func FenceAcqRel() { sink.Add(0) }

// Fence is a full sequentially consistent fence.
func Fence() { sink.CompareAndSwap(0, 0) }

// CompilerFence prevents the compiler from reordering surrounding code
// across this point, without emitting a hardware memory barrier. Go's
// compiler does not reorder across atomic operations, so this is the
// same primitive as the others; kept distinct so call sites document
// intent precisely.
func CompilerFence() { sink.Load() }
