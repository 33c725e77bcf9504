// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck_test

import (
	"testing"

	"code.hybscloud.com/ck"
	"code.hybscloud.com/ck/ebr"
)

func TestHashTableSetGet(t *testing.T) {
	engine := ebr.NewEngine()
	writer := engine.Register()
	tbl := ck.NewHashTable[string, int](engine, 4, fnv1a)

	if _, ok := tbl.Get("x"); ok {
		t.Fatalf("Get(x) before Set: got ok=true, want false")
	}

	tbl.Set(writer, "x", 1)
	tbl.Set(writer, "y", 2)

	if v, ok := tbl.Get("x"); !ok || v != 1 {
		t.Fatalf("Get(x): got (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := tbl.Get("y"); !ok || v != 2 {
		t.Fatalf("Get(y): got (%d, %v), want (2, true)", v, ok)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", tbl.Len())
	}

	tbl.Set(writer, "x", 100) // overwrite, not a new key
	if v, _ := tbl.Get("x"); v != 100 {
		t.Fatalf("Get(x) after overwrite: got %d, want 100", v)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len after overwrite: got %d, want 2", tbl.Len())
	}
}

func TestHashTableGrowthPreservesEntries(t *testing.T) {
	engine := ebr.NewEngine()
	writer := engine.Register()
	tbl := ck.NewHashTable[int, int](engine, 2, func(i int) uint64 { return uint64(i) })

	const n = 200
	for i := 0; i < n; i++ {
		tbl.Set(writer, i, i*i)
	}
	if tbl.Len() != n {
		t.Fatalf("Len after growth: got %d, want %d", tbl.Len(), n)
	}
	for i := 0; i < n; i++ {
		v, ok := tbl.Get(i)
		if !ok || v != i*i {
			t.Fatalf("Get(%d) after growth: got (%d, %v), want (%d, true)", i, v, ok, i*i)
		}
	}
}
