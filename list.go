// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import "code.hybscloud.com/ck/internal/atomic"

// ListNode is a generic doubly-linked intrusive entry, usable as the
// backing node for [SList] or [DList]. The caller embeds or references it
// the same way [StackNode]/[FIFONode] are used: ownership of a ListNode
// passes to whichever list currently links it.
type ListNode[T any] struct {
	next  atomic.Pointer[ListNode[T]]
	prev  atomic.Pointer[ListNode[T]]
	Value T
}

// SList is the header of a singly-linked intrusive list: a head pointer
// and nothing else. It declares the shape only, out of core per this
// package's scope; no push/pop/traversal algorithm is implemented here.
// Callers needing a working singly-linked lock-free container should use
// [Stack] or [FIFO] instead.
type SList[T any] struct {
	head atomic.Pointer[ListNode[T]]
}

// DList is the header of a doubly-linked intrusive list: head and tail
// pointers. Like [SList], this is a types-only stub with no algorithmic
// core.
type DList[T any] struct {
	head atomic.Pointer[ListNode[T]]
	tail atomic.Pointer[ListNode[T]]
}
