// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
)

// Ring is a bounded, wait-free single-producer/single-consumer queue.
//
// Based on Lamport's ring buffer with cached index optimization: the
// producer caches the consumer's dequeue index and vice versa, reducing
// cross-core cache line traffic on the hot path.
//
// Usable capacity is N-1 for a ring sized to N slots: one slot is
// sacrificed to disambiguate full from empty without a separate counter.
type Ring[T any] struct {
	_          pad
	head       atomic.Uint64 // consumer reads from here
	_          pad
	cachedTail uint64 // consumer's cached view of tail
	_          pad
	tail       atomic.Uint64 // producer writes here
	_          pad
	cachedHead uint64 // producer's cached view of head
	_          pad
	buffer     []T
	mask       uint64
}

// NewRing creates a ring of the given capacity, rounded up to the next
// power of 2. Usable capacity is one less than the rounded value.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 2 {
		panic("ck: capacity must be >= 2")
	}
	n := uint64(roundToPow2(capacity))
	return &Ring[T]{
		buffer: make([]T, n),
		mask:   n - 1,
	}
}

// Enqueue adds an element to the ring. Producer-only: calling Enqueue from
// more than one goroutine concurrently is undefined behavior.
//
// Returns [ErrWouldBlock] if the ring is full.
func (r *Ring[T]) Enqueue(elem *T) error {
	tail := r.tail.LoadRelaxed()
	next := (tail + 1) & r.mask
	if next == r.cachedHead {
		r.cachedHead = r.head.LoadAcquire()
		if next == r.cachedHead {
			return ErrWouldBlock
		}
	}
	r.buffer[tail&r.mask] = *elem
	r.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element. Consumer-only: calling Dequeue
// from more than one goroutine concurrently is undefined behavior.
//
// Returns the zero value and [ErrWouldBlock] if the ring is empty.
func (r *Ring[T]) Dequeue() (T, error) {
	head := r.head.LoadRelaxed()
	if r.cachedTail == head {
		r.cachedTail = r.tail.LoadAcquire()
		if r.cachedTail == head {
			var zero T
			return zero, ErrWouldBlock
		}
	}
	elem := r.buffer[head&r.mask]
	var zero T
	r.buffer[head&r.mask] = zero
	r.head.StoreRelease((head + 1) & r.mask)
	return elem, nil
}

// Cap returns the ring's usable capacity (N-1 physical slots).
func (r *Ring[T]) Cap() int {
	return int(r.mask)
}
