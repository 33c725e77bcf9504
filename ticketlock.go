// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// TicketLock is a strict-FIFO mutual exclusion lock: two counters,
// nextTicket and nowServing. Acquisition order among concurrent Lock
// callers matches the order in which each performed its fetch-add on
// nextTicket.
type TicketLock struct {
	_           pad
	nextTicket  atomic.Uint32
	_           pad
	nowServing  atomic.Uint32
}

// Lock acquires the lock, blocking (via spin with backoff) until it is
// this caller's turn.
func (t *TicketLock) Lock() {
	ticket := t.nextTicket.AddAcqRel(1) - 1
	bo := spin.New()
	for t.nowServing.LoadAcquire() != ticket {
		bo.Spin()
	}
}

// Unlock releases the lock, admitting the next waiter in FIFO order.
func (t *TicketLock) Unlock() {
	t.nowServing.AddAcqRel(1)
}

// TryLock acquires the lock only if it is immediately available (no
// waiters ahead), without blocking. Returns false on contention.
func (t *TicketLock) TryLock() bool {
	serving := t.nowServing.LoadAcquire()
	next := t.nextTicket.LoadAcquire()
	if next != serving {
		return false
	}
	return t.nextTicket.CompareAndSwapAcqRel(next, next+1)
}
