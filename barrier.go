// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// Barrier is a centralized-counter barrier for a fixed number of
// participants. Barriers are an executive wrapper composing the atomic
// and backoff primitives elsewhere in this package, not a combining tree:
// every participant contends on the same counter and generation word.
type Barrier struct {
	_       pad
	n       uint32
	count   atomic.Uint32
	gen     atomic.Uint32
}

// NewBarrier returns a barrier for n participants. Panics if n == 0.
func NewBarrier(n uint32) *Barrier {
	if n == 0 {
		panic("ck: barrier needs at least one participant")
	}
	b := &Barrier{n: n}
	b.count.StoreRelaxed(n)
	return b
}

// Wait blocks the calling goroutine (spinning with backoff) until all n
// participants have called Wait, then releases them together.
func (b *Barrier) Wait() {
	gen := b.gen.LoadAcquire()
	if b.count.AddAcqRel(^uint32(0)) == 0 {
		b.count.StoreRelease(b.n)
		b.gen.AddAcqRel(1)
		return
	}
	bo := spin.New()
	for b.gen.LoadAcquire() == gen {
		bo.Spin()
	}
}
