// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomic provides the typed atomic vocabulary the rest of ck is
// built on: fixed-width integers, booleans and generic pointers with named
// load/store/CAS variants instead of bare memory-order constants.
//
// Go's memory model gives every sync/atomic operation sequentially
// consistent behavior; there is no hardware-relaxed mode to opt into. The
// Relaxed/Acquire/Release/AcqRel method names below are retained anyway
// because they document the INTENT at each call site (what ordering the
// algorithm actually requires), which is what a reader auditing a lock-free
// algorithm needs to know, even though the compiler cannot use the
// intent to generate a cheaper instruction on this platform.
package atomic

import "sync/atomic"

// Uint32 is a 32-bit unsigned integer accessed atomically.
type Uint32 struct {
	v atomic.Uint32
}

func (a *Uint32) LoadRelaxed() uint32            { return a.v.Load() }
func (a *Uint32) LoadAcquire() uint32            { return a.v.Load() }
func (a *Uint32) StoreRelaxed(val uint32)        { a.v.Store(val) }
func (a *Uint32) StoreRelease(val uint32)        { a.v.Store(val) }
func (a *Uint32) AddRelaxed(delta uint32) uint32 { return a.v.Add(delta) }
func (a *Uint32) AddAcqRel(delta uint32) uint32  { return a.v.Add(delta) }
func (a *Uint32) SwapAcqRel(val uint32) uint32   { return a.v.Swap(val) }
func (a *Uint32) CompareAndSwapRelaxed(old, new uint32) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uint32) CompareAndSwapAcqRel(old, new uint32) bool {
	return a.v.CompareAndSwap(old, new)
}

// Uint64 is a 64-bit unsigned integer accessed atomically.
type Uint64 struct {
	v atomic.Uint64
}

func (a *Uint64) LoadRelaxed() uint64            { return a.v.Load() }
func (a *Uint64) LoadAcquire() uint64            { return a.v.Load() }
func (a *Uint64) StoreRelaxed(val uint64)        { a.v.Store(val) }
func (a *Uint64) StoreRelease(val uint64)        { a.v.Store(val) }
func (a *Uint64) AddRelaxed(delta uint64) uint64 { return a.v.Add(delta) }
func (a *Uint64) AddAcqRel(delta uint64) uint64  { return a.v.Add(delta) }
func (a *Uint64) SwapAcqRel(val uint64) uint64   { return a.v.Swap(val) }
func (a *Uint64) CompareAndSwapRelaxed(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uint64) CompareAndSwapAcqRel(old, new uint64) bool {
	return a.v.CompareAndSwap(old, new)
}

// Int32 is a 32-bit signed integer accessed atomically.
type Int32 struct {
	v atomic.Int32
}

func (a *Int32) LoadRelaxed() int32           { return a.v.Load() }
func (a *Int32) LoadAcquire() int32           { return a.v.Load() }
func (a *Int32) StoreRelaxed(val int32)       { a.v.Store(val) }
func (a *Int32) StoreRelease(val int32)       { a.v.Store(val) }
func (a *Int32) AddAcqRel(delta int32) int32  { return a.v.Add(delta) }
func (a *Int32) AddRelaxed(delta int32) int32 { return a.v.Add(delta) }
func (a *Int32) CompareAndSwapRelaxed(old, new int32) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Int32) CompareAndSwapAcqRel(old, new int32) bool {
	return a.v.CompareAndSwap(old, new)
}

// Int64 is a 64-bit signed integer accessed atomically.
type Int64 struct {
	v atomic.Int64
}

func (a *Int64) LoadRelaxed() int64           { return a.v.Load() }
func (a *Int64) LoadAcquire() int64           { return a.v.Load() }
func (a *Int64) StoreRelaxed(val int64)       { a.v.Store(val) }
func (a *Int64) StoreRelease(val int64)       { a.v.Store(val) }
func (a *Int64) AddAcqRel(delta int64) int64  { return a.v.Add(delta) }
func (a *Int64) AddRelaxed(delta int64) int64 { return a.v.Add(delta) }
func (a *Int64) CompareAndSwapRelaxed(old, new int64) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Int64) CompareAndSwapAcqRel(old, new int64) bool {
	return a.v.CompareAndSwap(old, new)
}

// Uintptr is a uintptr accessed atomically, used for indirect (offset or
// handle) payloads that must move through a lock-free container without
// the container holding a live pointer.
type Uintptr struct {
	v atomic.Uintptr
}

func (a *Uintptr) LoadRelaxed() uintptr     { return a.v.Load() }
func (a *Uintptr) LoadAcquire() uintptr     { return a.v.Load() }
func (a *Uintptr) StoreRelaxed(val uintptr) { a.v.Store(val) }
func (a *Uintptr) StoreRelease(val uintptr) { a.v.Store(val) }
func (a *Uintptr) CompareAndSwapRelaxed(old, new uintptr) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Uintptr) CompareAndSwapAcqRel(old, new uintptr) bool {
	return a.v.CompareAndSwap(old, new)
}

// Bool is a boolean flag accessed atomically.
type Bool struct {
	v atomic.Bool
}

func (a *Bool) LoadRelaxed() bool     { return a.v.Load() }
func (a *Bool) LoadAcquire() bool     { return a.v.Load() }
func (a *Bool) StoreRelaxed(val bool) { a.v.Store(val) }
func (a *Bool) StoreRelease(val bool) { a.v.Store(val) }
func (a *Bool) CompareAndSwapAcqRel(old, new bool) bool {
	return a.v.CompareAndSwap(old, new)
}

// Pointer is a generic atomically-accessed pointer to T.
type Pointer[T any] struct {
	v atomic.Pointer[T]
}

func (a *Pointer[T]) LoadRelaxed() *T { return a.v.Load() }
func (a *Pointer[T]) LoadAcquire() *T { return a.v.Load() }
func (a *Pointer[T]) StoreRelaxed(val *T) { a.v.Store(val) }
func (a *Pointer[T]) StoreRelease(val *T) { a.v.Store(val) }
func (a *Pointer[T]) SwapAcqRel(val *T) *T { return a.v.Swap(val) }
func (a *Pointer[T]) CompareAndSwapRelaxed(old, new *T) bool {
	return a.v.CompareAndSwap(old, new)
}
func (a *Pointer[T]) CompareAndSwapAcqRel(old, new *T) bool {
	return a.v.CompareAndSwap(old, new)
}
