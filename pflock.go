// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// Phase-fair RW lock state word layout: bit 0 is the writer
// waiting/holding flag; bits 2..31 count active readers. pfRInc is the
// per-reader increment; pfRMask clears the low two bits to isolate the
// reader count.
const (
	pfWBit  uint32 = 0x1
	pfRInc  uint32 = 0x4
	pfRMask uint32 = ^uint32(0x3)
)

// PFLock is a phase-fair reader/writer lock: once a writer has set its
// waiting bit, no new reader is admitted, which bounds writer wait time
// and prevents reader starvation of writers.
type PFLock struct {
	_     pad
	state atomic.Uint32
}

// RLock acquires a read lock, spinning with backoff while a writer holds
// or is waiting for the lock.
func (l *PFLock) RLock() {
	bo := spin.New()
	for {
		s := l.state.LoadAcquire()
		if s&pfWBit != 0 {
			bo.Spin()
			continue
		}
		if l.state.CompareAndSwapAcqRel(s, s+pfRInc) {
			return
		}
		bo.Spin()
	}
}

// RUnlock releases a read lock.
func (l *PFLock) RUnlock() {
	l.state.AddAcqRel(^(pfRInc - 1))
}

// Lock acquires the write lock: first claims the writer bit (excluding
// new readers and other writers), then waits for all readers admitted
// before the claim to drain.
func (l *PFLock) Lock() {
	bo := spin.New()
	for {
		s := l.state.LoadAcquire()
		if s&pfWBit != 0 {
			bo.Spin()
			continue
		}
		if l.state.CompareAndSwapAcqRel(s, s|pfWBit) {
			break
		}
		bo.Spin()
	}
	bo.Reset()
	for l.state.LoadAcquire()&pfRMask != 0 {
		bo.Spin()
	}
}

// Unlock releases the write lock.
func (l *PFLock) Unlock() {
	for {
		s := l.state.LoadAcquire()
		if l.state.CompareAndSwapAcqRel(s, s&^pfWBit) {
			return
		}
	}
}
