// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/ebr"
	"code.hybscloud.com/ck/internal/atomic"
)

const hashTableMaxLoad = 0.75

type hashTableSlot[K comparable, V any] struct {
	key      K
	value    V
	occupied bool
}

type hashTableBuckets[K comparable, V any] struct {
	slots []hashTableSlot[K, V]
	mask  uint64
	count int
}

// HashTable is a single-writer/multi-reader open-addressed hash table.
// The writer publishes a new bucket vector by atomic pointer swap;
// readers see either the old or the new vector, never a half-initialized
// one. Single-writer is a caller requirement; old bucket vectors are
// retired through an [ebr.Engine].
type HashTable[K comparable, V any] struct {
	cur    atomic.Pointer[hashTableBuckets[K, V]]
	hash   func(K) uint64
	engine *ebr.Engine
}

// NewHashTable returns an empty table with the given initial capacity
// (rounded up to a power of 2), using hash to place keys and engine to
// reclaim superseded bucket vectors.
func NewHashTable[K comparable, V any](engine *ebr.Engine, capacity int, hash func(K) uint64) *HashTable[K, V] {
	if capacity < 2 {
		capacity = 2
	}
	n := uint64(roundToPow2(capacity))
	b := &hashTableBuckets[K, V]{slots: make([]hashTableSlot[K, V], n), mask: n - 1}
	t := &HashTable[K, V]{hash: hash, engine: engine}
	t.cur.StoreRelease(b)
	return t
}

// Engine returns the reclamation engine superseded bucket vectors are
// retired through.
func (t *HashTable[K, V]) Engine() *ebr.Engine { return t.engine }

// Get returns the value for key in the table's current snapshot, and
// whether key was present.
func (t *HashTable[K, V]) Get(key K) (V, bool) {
	b := t.cur.LoadAcquire()
	i := hashTableFind(b, key, t.hash(key))
	if i < 0 {
		var zero V
		return zero, false
	}
	return b.slots[i].value, true
}

// Len returns the current snapshot's key count.
func (t *HashTable[K, V]) Len() int {
	return t.cur.LoadAcquire().count
}

func hashTableFind[K comparable, V any](b *hashTableBuckets[K, V], key K, h uint64) int {
	i := h & b.mask
	for probed := uint64(0); probed <= b.mask; probed++ {
		slot := &b.slots[i]
		if !slot.occupied {
			return -1
		}
		if slot.key == key {
			return int(i)
		}
		i = (i + 1) & b.mask
	}
	return -1
}

func hashTableInsert[K comparable, V any](b *hashTableBuckets[K, V], key K, value V, h uint64) bool {
	i := h & b.mask
	for {
		slot := &b.slots[i]
		if !slot.occupied {
			slot.key, slot.value, slot.occupied = key, value, true
			return true
		}
		if slot.key == key {
			slot.value = value
			return false // overwrite, not a new key
		}
		i = (i + 1) & b.mask
	}
}

// Set inserts or overwrites key -> value, publishing a new bucket vector
// and retiring the old one through guard. Single-writer only.
func (t *HashTable[K, V]) Set(guard *ebr.Guard, key K, value V) {
	old := t.cur.LoadAcquire()
	h := t.hash(key)

	var next *hashTableBuckets[K, V]
	if _, exists := t.Get(key); !exists && float64(old.count+1) > hashTableMaxLoad*float64(len(old.slots)) {
		next = t.rehash(old, (old.mask+1)*2)
	} else {
		next = &hashTableBuckets[K, V]{
			slots: append([]hashTableSlot[K, V](nil), old.slots...),
			mask:  old.mask,
			count: old.count,
		}
	}
	if hashTableInsert(next, key, value, h) {
		next.count++
	}
	t.cur.StoreRelease(next)
	guard.DeferFree(func() { _ = old })
}

func (t *HashTable[K, V]) rehash(b *hashTableBuckets[K, V], n uint64) *hashTableBuckets[K, V] {
	next := &hashTableBuckets[K, V]{slots: make([]hashTableSlot[K, V], n), mask: n - 1}
	for i := range b.slots {
		if b.slots[i].occupied {
			hashTableInsert(next, b.slots[i].key, b.slots[i].value, t.hash(b.slots[i].key))
			next.count++
		}
	}
	return next
}
