// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// FIFONode is an intrusive FIFO entry. Ownership passes to the queue on
// [FIFO.Enqueue]. A successful [FIFO.Dequeue] hands the caller a node
// carrying the dequeued Value; because of the sentinel-node design that
// node is the previous dummy, generally not the node the value was
// enqueued in, which stays in the queue as the new dummy.
type FIFONode[T any] struct {
	next  atomic.Pointer[FIFONode[T]]
	Value T
}

// FIFO is a lock-free multi-producer/multi-consumer queue of intrusive
// entries, after Michael & Scott.
//
// A FIFO always holds one extra "dummy" node beyond its logical contents
// (sentinel-node design): head always points at the dummy, and the first
// real element is dummy.next. This keeps enqueue and dequeue from ever
// contending on the same pointer.
//
// Like [Stack], plain FIFO is unsafe against concurrent reclamation, an
// expert-only primitive. Most callers want [HPFIFO].
type FIFO[T any] struct {
	_    pad
	head atomic.Pointer[FIFONode[T]]
	_    pad
	tail atomic.Pointer[FIFONode[T]]
}

// NewFIFO returns an empty FIFO.
func NewFIFO[T any]() *FIFO[T] {
	dummy := &FIFONode[T]{}
	q := &FIFO[T]{}
	q.head.StoreRelaxed(dummy)
	q.tail.StoreRelaxed(dummy)
	return q
}

// Enqueue appends entry to the tail of the queue.
func (q *FIFO[T]) Enqueue(entry *FIFONode[T]) {
	entry.next.StoreRelaxed(nil)
	bo := spin.New()
	for {
		tail := q.tail.LoadAcquire()
		next := tail.next.LoadAcquire()
		if tail != q.tail.LoadAcquire() {
			continue // tail moved under us; reload
		}
		if next == nil {
			if tail.next.CompareAndSwapAcqRel(nil, entry) {
				// Best-effort tail swing; failure is benign, the next
				// enqueuer or dequeuer helper-advances it instead.
				q.tail.CompareAndSwapAcqRel(tail, entry)
				return
			}
		} else {
			// Tail lags by one node; help it catch up before retrying.
			q.tail.CompareAndSwapAcqRel(tail, next)
		}
		bo.Spin()
	}
}

// Dequeue removes and returns the entry at the head of the queue, or nil
// if the queue is empty.
func (q *FIFO[T]) Dequeue() *FIFONode[T] {
	bo := spin.New()
	for {
		head := q.head.LoadAcquire()
		tail := q.tail.LoadAcquire()
		next := head.next.LoadAcquire()
		if head != q.head.LoadAcquire() {
			continue
		}
		if head == tail {
			if next == nil {
				return nil // genuinely empty
			}
			// Tail lags behind head; help-advance before retrying.
			q.tail.CompareAndSwapAcqRel(tail, next)
			bo.Spin()
			continue
		}
		if next == nil {
			bo.Spin()
			continue
		}
		value := next.Value
		if q.head.CompareAndSwapAcqRel(head, next) {
			// head is now the retired dummy; next becomes the new dummy.
			// Reuse head as a return handle carrying the dequeued value,
			// matching the intrusive-node ownership contract: the caller
			// gets back a node it can retire or recycle.
			head.Value = value
			head.next.StoreRelaxed(nil)
			return head
		}
		bo.Spin()
	}
}
