// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/ck"
)

// TestPFLockReadersConcurrent allows many readers to hold the lock at
// once.
func TestPFLockReadersConcurrent(t *testing.T) {
	var l ck.PFLock
	var active int32
	var maxSeen int32
	var entered int32
	const readers = 16

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			l.RLock()
			atomic.AddInt32(&entered, 1)
			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxSeen)
				if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
					break
				}
			}
			// Hold the read lock until every reader has entered (bounded by
			// a deadline), so overlapping holders are observable even when
			// the scheduler would otherwise run each reader alone.
			deadline := time.Now().Add(2 * time.Second)
			for atomic.LoadInt32(&entered) < readers && time.Now().Before(deadline) {
				runtime.Gosched()
			}
			atomic.AddInt32(&active, -1)
			l.RUnlock()
		}()
	}
	close(start)
	wg.Wait()

	if maxSeen < 2 {
		t.Fatalf("max concurrent readers observed: got %d, want >= 2", maxSeen)
	}
}

// TestPFLockWriterExclusion verifies that a writer excludes other writers
// for the duration of its critical section.
func TestPFLockWriterExclusion(t *testing.T) {
	var l ck.PFLock
	shared := 0
	const writers, perWriter = 20, 500

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				l.Lock()
				shared++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	want := writers * perWriter
	if shared != want {
		t.Fatalf("shared: got %d, want %d", shared, want)
	}
}

// TestPFLockReaderThenWriter checks a writer can acquire after all
// readers release.
func TestPFLockReaderThenWriter(t *testing.T) {
	var l ck.PFLock
	l.RLock()
	l.RLock()
	l.RUnlock()
	l.RUnlock()

	done := make(chan struct{})
	go func() {
		l.Lock()
		l.Unlock()
		close(done)
	}()
	<-done
}
