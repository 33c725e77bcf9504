// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ebr_test

import (
	"testing"

	"code.hybscloud.com/ck/ebr"
)

// TestEBRReclaimAcrossGracePeriod verifies Scenario E: a guard pins epoch
// 0 and defers a free; after the global epoch advances twice and the
// guard exits its critical section, TryReclaim frees it. The case of a
// second guard pinned at epoch 0 is covered by TestEBRBlockedBySecondGuard.
func TestEBRReclaimAcrossGracePeriod(t *testing.T) {
	e := ebr.NewEngine()
	g := e.Register()

	freed := false
	g.Enter()
	g.DeferFree(func() { freed = true })
	g.Leave()

	if !e.TryAdvance() { // epoch 0 -> 1
		t.Fatalf("TryAdvance 0->1: got false, want true")
	}
	if !e.TryAdvance() { // epoch 1 -> 2
		t.Fatalf("TryAdvance 1->2: got false, want true")
	}

	e.TryReclaim()
	if !freed {
		t.Fatalf("item not freed after grace period elapsed")
	}
}

// TestEBRBlockedBySecondGuard verifies that a second guard pinned at epoch
// 0 lets the global epoch reach 1 (it is still current there) but then
// prevents the advance to 2, and therefore prevents reclamation.
func TestEBRBlockedBySecondGuard(t *testing.T) {
	e := ebr.NewEngine()
	g1 := e.Register()
	g2 := e.Register()

	freed := false
	g1.Enter()
	g1.DeferFree(func() { freed = true })
	g1.Leave()

	g2.Enter() // pins g2 at epoch 0 indefinitely

	if !e.TryAdvance() { // epoch 0 -> 1: g2 is at the current epoch
		t.Fatalf("TryAdvance 0->1: got false, want true")
	}
	if e.TryAdvance() { // epoch 1 -> 2: g2 still pinned at 0
		t.Fatalf("TryAdvance with pinned guard: got true, want false")
	}

	e.TryReclaim()
	if freed {
		t.Fatalf("item freed despite a guard pinned at its epoch")
	}

	g2.Leave()
}

// TestEBRNotReclaimedWhileActive verifies property 7: an address deferred
// at local epoch e is not reclaimed while any active record has local
// epoch in {e, e-1}.
func TestEBRNotReclaimedWhileActive(t *testing.T) {
	e := ebr.NewEngine()
	g := e.Register()

	freed := false
	g.Enter()
	g.DeferFree(func() { freed = true })

	// Still inside the critical section at epoch 0: nothing should be
	// reclaimable since epoch hasn't even advanced past Grace.
	e.TryReclaim()
	if freed {
		t.Fatalf("item freed before grace period elapsed")
	}
	g.Leave()
}
