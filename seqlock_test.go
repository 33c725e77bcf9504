// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck_test

import (
	"testing"

	"code.hybscloud.com/ck"
)

// TestSeqLockScenarioC verifies Scenario C: read_begin returns 0, a write
// makes read_retry(v1) report true, and a second read_begin with no
// intervening write reports false on retry.
func TestSeqLockScenarioC(t *testing.T) {
	var l ck.SeqLock

	v1 := l.ReadBegin()
	if v1 != 0 {
		t.Fatalf("ReadBegin: got %d, want 0", v1)
	}

	l.WriteBegin()
	l.WriteEnd()

	if !l.ReadRetry(v1) {
		t.Fatalf("ReadRetry(%d) after write: got false, want true", v1)
	}

	v2 := l.ReadBegin()
	if v2 != 2 {
		t.Fatalf("ReadBegin after write: got %d, want 2", v2)
	}
	if l.ReadRetry(v2) {
		t.Fatalf("ReadRetry(%d) with no further write: got true, want false", v2)
	}
}

// TestSeqLockReadBeginSpinsPastWrite checks that ReadBegin never returns
// an odd (write-in-progress) value.
func TestSeqLockReadBeginSpinsPastWrite(t *testing.T) {
	var l ck.SeqLock
	l.WriteBegin() // leave the counter odd

	done := make(chan uint32, 1)
	go func() {
		done <- l.ReadBegin()
	}()

	l.WriteEnd()

	if v := <-done; v%2 != 0 {
		t.Fatalf("ReadBegin returned odd value: %d", v)
	}
}
