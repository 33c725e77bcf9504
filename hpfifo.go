// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"unsafe"

	"code.hybscloud.com/ck/hp"
	"code.hybscloud.com/ck/internal/spin"
)

func fifoNodeAddr[T any](n *FIFONode[T]) uintptr {
	return uintptr(unsafe.Pointer(n))
}

// HPFIFO is a [FIFO] whose Dequeue is safe against concurrent
// reclamation: the same Michael-Scott algorithm, with the tail protected
// during Enqueue and the head protected during Dequeue.
type HPFIFO[T any] struct {
	fifo   *FIFO[T]
	engine *hp.Engine
}

// NewHPFIFO returns an empty HP-protected FIFO using engine for
// reclamation.
func NewHPFIFO[T any](engine *hp.Engine) *HPFIFO[T] {
	return &HPFIFO[T]{fifo: NewFIFO[T](), engine: engine}
}

// Engine returns the hazard-pointer engine this FIFO reclaims through.
func (q *HPFIFO[T]) Engine() *hp.Engine { return q.engine }

// Enqueue appends entry to the tail of the queue, protecting the observed
// tail node with guard's slot 0 while reading and CASing its next field.
func (q *HPFIFO[T]) Enqueue(guard *hp.Guard, entry *FIFONode[T]) {
	entry.next.StoreRelaxed(nil)
	bo := spin.New()
	for {
		tail := q.fifo.tail.LoadAcquire()
		guard.Protect(0, fifoNodeAddr(tail))
		if q.fifo.tail.LoadAcquire() != tail {
			bo.Spin()
			continue
		}
		next := tail.next.LoadAcquire()
		if tail != q.fifo.tail.LoadAcquire() {
			bo.Spin()
			continue
		}
		if next == nil {
			if tail.next.CompareAndSwapAcqRel(nil, entry) {
				q.fifo.tail.CompareAndSwapAcqRel(tail, entry)
				guard.Clear(0)
				return
			}
		} else {
			q.fifo.tail.CompareAndSwapAcqRel(tail, next)
		}
		bo.Spin()
	}
}

// Dequeue removes and returns the entry at the head of the queue,
// protecting the observed head with guard's slot 0, or nil if the queue
// is empty. The caller owns the returned node and should eventually call
// guard.Retire on it rather than reusing it directly.
func (q *HPFIFO[T]) Dequeue(guard *hp.Guard) *FIFONode[T] {
	bo := spin.New()
	for {
		head := q.fifo.head.LoadAcquire()
		guard.Protect(0, fifoNodeAddr(head))
		if q.fifo.head.LoadAcquire() != head {
			bo.Spin()
			continue
		}
		tail := q.fifo.tail.LoadAcquire()
		next := head.next.LoadAcquire()
		if head != q.fifo.head.LoadAcquire() {
			bo.Spin()
			continue
		}
		if head == tail {
			if next == nil {
				guard.Clear(0)
				return nil
			}
			q.fifo.tail.CompareAndSwapAcqRel(tail, next)
			bo.Spin()
			continue
		}
		if next == nil {
			bo.Spin()
			continue
		}
		value := next.Value
		if q.fifo.head.CompareAndSwapAcqRel(head, next) {
			guard.Clear(0)
			head.Value = value
			head.next.StoreRelaxed(nil)
			return head
		}
		bo.Spin()
	}
}

// Retire schedules entry for reclamation once no guard protects it,
// invoking onClose (which may be nil) once that happens.
func (q *HPFIFO[T]) Retire(guard *hp.Guard, entry *FIFONode[T], onClose func()) {
	if onClose == nil {
		onClose = func() {}
	}
	guard.Retire(fifoNodeAddr(entry), closeFunc(onClose))
}
