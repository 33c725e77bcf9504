// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ck is a portable toolkit of concurrency primitives for
// high-performance, multi-threaded systems software: fair locks,
// lock-free containers, and the safe memory reclamation schemes the
// lock-free containers rely on.
//
// # Layers
//
// Components are layered leaves-first; each layer only depends on the
// ones above it in this list:
//
//   - Seqlock, ticket lock, phase-fair RW lock: fair mutual exclusion
//     and optimistic versioning ([SeqLock], [TicketLock], [PFLock]).
//   - Treiber stack, SPSC ring, Michael-Scott FIFO: lock-free containers
//     ([Stack], [Ring], [FIFO]).
//   - Epoch-based reclamation and hazard pointers: deferred-free schemes
//     ([code.hybscloud.com/ck/ebr], [code.hybscloud.com/ck/hp]).
//   - HP-protected stack and FIFO: [Stack]/[FIFO] combined with [hp] for
//     reclamation safe against concurrent pop/dequeue ([HPStack], [HPFIFO]).
//   - Single-writer/multi-reader containers: [Array], [HashSet],
//     [HashTable], reclaiming superseded snapshots through [ebr].
//
// # Quick Start
//
// Plain [Stack] and [FIFO] are expert-only primitives (see their doc
// comments for why): most callers should reach for the hazard-pointer
// protected variants instead.
//
//	engine := hp.NewEngine()
//	guard := engine.Register()
//	s := ck.NewHPStack[Event](engine)
//
//	s.Push(&ck.StackNode[Event]{Value: ev})
//	if n := s.Pop(guard); n != nil {
//	    process(n.Value)
//	    s.Retire(guard, n, nil)
//	}
//
// # Backpressure
//
// Bounded containers signal backpressure with [ErrWouldBlock] rather than
// blocking:
//
//	bo := spin.New()
//	for {
//	    err := r.Enqueue(&value)
//	    if err == nil {
//	        break
//	    }
//	    if ck.IsWouldBlock(err) {
//	        bo.Snooze()
//	        continue
//	    }
//	    panic(err) // unexpected
//	}
//
// # Scheduling model
//
// There is no task scheduler here and no OS wait-queue integration: every
// operation runs on the caller's own goroutine, and anything that "waits"
// does so by bounded spin with exponential backoff. There are no
// cancellation or timeout parameters; try_* style operations (TryLock,
// TryAdvance) are the only non-blocking form, returning immediately with
// a failure result on contention.
package ck
