// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/ebr"
	"code.hybscloud.com/ck/internal/atomic"
)

const hashSetMaxLoad = 0.75

type hashSetSlot[T comparable] struct {
	value    T
	occupied bool
	dist     uint32 // Robin Hood probe distance, for scan locality only
}

type hashSetTable[T comparable] struct {
	slots []hashSetSlot[T]
	mask  uint64
	count int
}

// HashSet is a single-writer/multi-reader open-addressed hash set using
// Robin Hood probing: each slot records how far it sits from its ideal
// bucket, which keeps the variance of probe lengths low, but the
// observable concurrency contract is identical to a plain open-addressed
// set. It is a scan-locality optimization, not a correctness one.
//
// As with [Array], single-writer is a caller requirement; old table
// snapshots are retired through an [ebr.Engine].
type HashSet[T comparable] struct {
	cur    atomic.Pointer[hashSetTable[T]]
	hash   func(T) uint64
	engine *ebr.Engine
}

// NewHashSet returns an empty set with the given initial capacity
// (rounded up to a power of 2), using hash to place elements and engine
// to reclaim superseded tables.
func NewHashSet[T comparable](engine *ebr.Engine, capacity int, hash func(T) uint64) *HashSet[T] {
	if capacity < 2 {
		capacity = 2
	}
	n := uint64(roundToPow2(capacity))
	t := &hashSetTable[T]{slots: make([]hashSetSlot[T], n), mask: n - 1}
	s := &HashSet[T]{hash: hash, engine: engine}
	s.cur.StoreRelease(t)
	return s
}

// Engine returns the reclamation engine superseded tables are retired
// through.
func (s *HashSet[T]) Engine() *ebr.Engine { return s.engine }

// Contains reports whether value is present in the set's current
// snapshot.
func (s *HashSet[T]) Contains(value T) bool {
	t := s.cur.LoadAcquire()
	return hashSetFind(t, value, s.hash(value)) >= 0
}

// Len returns the current snapshot's element count.
func (s *HashSet[T]) Len() int {
	return s.cur.LoadAcquire().count
}

func hashSetFind[T comparable](t *hashSetTable[T], value T, h uint64) int {
	i := h & t.mask
	for dist := uint32(0); ; dist++ {
		slot := &t.slots[i]
		if !slot.occupied {
			return -1
		}
		if slot.dist < dist {
			return -1 // Robin Hood: would have been placed here by now
		}
		if slot.value == value {
			return int(i)
		}
		i = (i + 1) & t.mask
	}
}

func hashSetInsert[T comparable](t *hashSetTable[T], value T, h uint64) bool {
	i := h & t.mask
	entry := hashSetSlot[T]{value: value, occupied: true}
	for {
		slot := &t.slots[i]
		if !slot.occupied {
			*slot = entry
			return true
		}
		if slot.value == entry.value {
			return false // already present
		}
		if slot.dist < entry.dist {
			// Robin Hood swap: steal from the rich, the displaced entry
			// continues probing with its own (now larger) distance.
			*slot, entry = entry, *slot
		}
		entry.dist++
		i = (i + 1) & t.mask
	}
}

// Insert adds value to the set, publishing a new table snapshot and
// retiring the old one through guard. Returns false if value was already
// present (the table is left unchanged, no new snapshot is published).
// Single-writer only.
func (s *HashSet[T]) Insert(guard *ebr.Guard, value T) bool {
	old := s.cur.LoadAcquire()
	h := s.hash(value)
	if hashSetFind(old, value, h) >= 0 {
		return false
	}

	var next *hashSetTable[T]
	if float64(old.count+1) > hashSetMaxLoad*float64(len(old.slots)) {
		next = s.rehash(old, (old.mask+1)*2)
	} else {
		next = &hashSetTable[T]{
			slots: append([]hashSetSlot[T](nil), old.slots...),
			mask:  old.mask,
			count: old.count,
		}
	}
	hashSetInsert(next, value, h)
	next.count++
	s.cur.StoreRelease(next)
	guard.DeferFree(func() { _ = old })
	return true
}

// rehash builds a fresh table of size n, reinserting every occupied slot
// of t with its hash recomputed (Robin Hood distances are recomputed by
// probing, since they depend on the new table's bucket layout).
func (s *HashSet[T]) rehash(t *hashSetTable[T], n uint64) *hashSetTable[T] {
	next := &hashSetTable[T]{slots: make([]hashSetSlot[T], n), mask: n - 1}
	for i := range t.slots {
		if t.slots[i].occupied {
			hashSetInsert(next, t.slots[i].value, s.hash(t.slots[i].value))
			next.count++
		}
	}
	return next
}
