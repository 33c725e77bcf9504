// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spin implements the exponential backoff vocabulary used by every
// retry loop in ck: CAS retry in the stack and FIFO, spin-wait in the
// ticket lock and phase-fair lock, and the seqlock's read-retry loop.
//
// Go has no portable inline-assembly PAUSE/YIELD instruction available
// without per-architecture .s files; runtime.Gosched() is the idiomatic
// stand-in observed across the wider ecosystem (hand back the P to the
// scheduler instead of busy-looping the core) and is what Pause does here.
package spin

import "runtime"

// Pause yields the processor once. It is the Go equivalent of a hardware
// PAUSE/YIELD hint: cheaper than a context switch, but lets the scheduler
// run another goroutine if one is runnable.
func Pause() {
	runtime.Gosched()
}

// Backoff implements exponential spin backoff; it never sleeps.
//
// Two presets exist in the algorithms this package is modeled on: a cheap
// 1..128 spin-count preset for short critical sections (ticket lock, PF
// lock, seqlock retry), and a wider 512..2^20-1 preset for hot CAS retry
// loops (Treiber stack push/pop, MS FIFO enqueue/dequeue) that may be
// contended by many goroutines at once. New returns the first; NewWithCeiling
// lets a caller opt into the second or any other range.
type Backoff struct {
	initial uint32
	ceiling uint32
	current uint32
}

// New returns a Backoff with the default 1..128 preset.
func New() *Backoff {
	return &Backoff{initial: 1, ceiling: 128, current: 1}
}

// NewWithCeiling returns a Backoff starting at initial spins, doubling on
// every Spin up to ceiling spins.
func NewWithCeiling(initial, ceiling uint32) *Backoff {
	if initial == 0 {
		initial = 1
	}
	if ceiling < initial {
		ceiling = initial
	}
	return &Backoff{initial: initial, ceiling: ceiling, current: initial}
}

// Spin performs one backoff step: it calls Pause current times, then
// doubles current up to ceiling. Callers loop Spin inside their retry loop
// body until the operation succeeds.
func (b *Backoff) Spin() {
	for i := uint32(0); i < b.current; i++ {
		Pause()
	}
	if next := b.current * 2; next <= b.ceiling {
		b.current = next
	} else {
		b.current = b.ceiling
	}
}

// Snooze emits one pause without mutating state, distinct from Spin's
// escalating multi-pause step. Call sites that want to check a condition
// between individual pauses use Snooze instead of Spin.
func (b *Backoff) Snooze() {
	Pause()
}

// Reset returns the backoff to its initial spin count. Call after a
// successful operation so the next contention episode starts cheap again.
func (b *Backoff) Reset() {
	b.current = b.initial
}

// Wait is a single-field backoff helper matching the call shape
// `spin.Wait{}.Once()` found in retry loops that don't need Reset between
// iterations of the same loop, only across separate operations.
type Wait struct {
	n uint32
}

// Once performs one spin step and advances the internal spin count.
func (w *Wait) Once() {
	n := w.n
	if n == 0 {
		n = 1
	}
	for i := uint32(0); i < n; i++ {
		Pause()
	}
	if next := n * 2; next <= 1024 {
		w.n = next
	} else {
		w.n = 1024
	}
}
