// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// SeqLock is an optimistic reader / single-writer version counter.
//
// The counter is even while the protected data is stable and odd while a
// write is in progress. Writer exclusion is the caller's responsibility
// (typically an outer mutex serializing writers); SeqLock only arbitrates
// between a writer and any number of concurrent readers.
type SeqLock struct {
	_   pad
	seq atomic.Uint32
}

// ReadBegin spins with backoff until the sequence counter is observed
// even, then returns that value. The caller should read the protected
// data after ReadBegin returns and before calling [SeqLock.ReadRetry].
func (l *SeqLock) ReadBegin() uint32 {
	bo := spin.New()
	for {
		v := l.seq.LoadAcquire()
		if v&1 == 0 {
			return v
		}
		bo.Spin()
	}
}

// ReadRetry reports whether the reader must retry: it inserts an acquire
// fence, reloads the sequence counter, and returns true iff it differs
// from v, meaning a write completed (or started) during the read.
func (l *SeqLock) ReadRetry(v uint32) bool {
	atomic.FenceAcquire()
	return l.seq.LoadAcquire() != v
}

// WriteBegin marks the start of a write, making the counter odd. The
// increment is pre-fenced with a release fence so the odd value is never
// observed before any writes that logically precede it.
func (l *SeqLock) WriteBegin() {
	atomic.FenceRelease()
	l.seq.AddRelaxed(1)
}

// WriteEnd marks the end of a write, making the counter even again. The
// increment is post-fenced with a release fence so the even value is
// never observed before the write it closes out is visible.
func (l *SeqLock) WriteEnd() {
	l.seq.AddAcqRel(1)
	atomic.FenceRelease()
}
