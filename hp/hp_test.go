// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hp_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/ck/hp"
)

type closer struct {
	closed *bool
}

func (c closer) Close() { *c.closed = true }

// TestHPProtectedNotReclaimed verifies property 8 and Scenario F: an
// address protected in an active hazard slot is not reclaimed by Scan.
func TestHPProtectedNotReclaimed(t *testing.T) {
	e := hp.NewEngine()
	reader := e.Register()
	writer := e.Register()

	var closed bool
	value := &closed
	addr := uintptr(unsafe.Pointer(value))

	reader.Protect(0, addr)

	writer.Retire(addr, closer{closed: &closed})
	writer.Scan()

	if closed {
		t.Fatalf("protected address was reclaimed")
	}

	reader.Clear(0)
	writer.Scan()
	if !closed {
		t.Fatalf("address not reclaimed after protection cleared")
	}
}

// TestHPRetireThenScanIdempotent verifies the round-trip property:
// retire(p); scan(); if no slot holds p, p has been freed, and a second
// scan leaves every freed item freed.
func TestHPRetireThenScanIdempotent(t *testing.T) {
	e := hp.NewEngine()
	g := e.Register()

	const n = 10
	closedFlags := make([]bool, n)
	for i := 0; i < n; i++ {
		addr := uintptr(unsafe.Pointer(&closedFlags[i]))
		g.Retire(addr, closer{closed: &closedFlags[i]})
	}
	g.Scan()
	for i, closed := range closedFlags {
		if !closed {
			t.Fatalf("item %d not reclaimed after scan", i)
		}
	}

	// A second Scan with nothing new retired must be a no-op: every flag
	// is already true and stays true.
	g.Scan()
	for i, closed := range closedFlags {
		if !closed {
			t.Fatalf("item %d flipped back after idempotent scan", i)
		}
	}
}

// TestHPScanThresholdTriggersAutomatically checks that Retire eventually
// triggers a scan on its own once the retire list crosses the threshold,
// without the caller calling Scan explicitly.
func TestHPScanThresholdTriggersAutomatically(t *testing.T) {
	e := hp.NewEngine()
	g := e.Register()

	var closedCount int
	for i := 0; i < 2*hp.K+1; i++ {
		closed := false
		addr := uintptr(unsafe.Pointer(&closed))
		c := closer{closed: &closed}
		g.Retire(addr, c)
		if closed {
			closedCount++
		}
	}
	if closedCount == 0 {
		t.Fatalf("no items reclaimed after crossing the retire threshold")
	}
}
