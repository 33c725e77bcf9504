// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spin

import "testing"

// TestBackoffRoundTrip verifies the round-trip property: reset(); spin();
// reset(); ends in the initial state.
func TestBackoffRoundTrip(t *testing.T) {
	b := NewWithCeiling(1, 128)

	b.Reset()
	for i := 0; i < 10; i++ {
		b.Spin()
	}
	if b.current == b.initial {
		t.Fatalf("current after 10 Spins: got %d, want it to have escalated past initial %d", b.current, b.initial)
	}

	b.Reset()
	if b.current != b.initial {
		t.Fatalf("current after Reset: got %d, want %d", b.current, b.initial)
	}
}

// TestBackoffSpinEscalatesAndCaps verifies Spin doubles current on every
// call up to ceiling, then holds at ceiling.
func TestBackoffSpinEscalatesAndCaps(t *testing.T) {
	b := NewWithCeiling(1, 8)

	want := []uint32{2, 4, 8, 8, 8}
	for i, w := range want {
		b.Spin()
		if b.current != w {
			t.Fatalf("current after Spin #%d: got %d, want %d", i+1, b.current, w)
		}
	}
}

// TestSnoozeDoesNotMutate verifies Snooze's contract: it emits one pause
// without mutating state, unlike Spin which escalates current.
func TestSnoozeDoesNotMutate(t *testing.T) {
	b := NewWithCeiling(1, 128)
	b.Spin() // current is now 2

	before := b.current
	for i := 0; i < 5; i++ {
		b.Snooze()
	}
	if b.current != before {
		t.Fatalf("current after Snooze calls: got %d, want unchanged %d", b.current, before)
	}
}
