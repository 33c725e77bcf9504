// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"code.hybscloud.com/ck/internal/atomic"
	"code.hybscloud.com/ck/internal/spin"
)

// StackNode is an intrusive stack entry: an application payload plus the
// next pointer the stack threads through. The caller owns a StackNode
// until it is pushed, and regains ownership when it is popped.
type StackNode[T any] struct {
	next atomic.Pointer[StackNode[T]]
	Value T
}

// Stack is a lock-free LIFO of intrusive entries, after Treiber.
//
// Plain Stack is unsafe against concurrent reclamation (see the ABA note on
// [Stack.Pop]): it is an expert-only primitive, useful as a "no-free" pool
// where popped nodes are never individually freed, only reused or leaked
// for the process lifetime. Most callers want [HPStack] instead, which
// bundles this exact algorithm with hazard-pointer protected reclamation.
type Stack[T any] struct {
	_    pad
	head atomic.Pointer[StackNode[T]]
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push adds entry to the top of the stack.
func (s *Stack[T]) Push(entry *StackNode[T]) {
	bo := spin.New()
	for {
		head := s.head.LoadRelaxed()
		entry.next.StoreRelaxed(head)
		if s.head.CompareAndSwapAcqRel(head, entry) {
			return
		}
		bo.Spin()
	}
}

// Pop removes and returns the top entry, or nil if the stack is empty.
//
// Hazard: between the load of head and the CAS, the popped node could be
// freed and a new allocation land at the same address (the ABA problem).
// Safe use requires either never freeing popped nodes, running inside an
// EBR pin, or using [HPStack].
func (s *Stack[T]) Pop() *StackNode[T] {
	bo := spin.New()
	for {
		head := s.head.LoadAcquire()
		if head == nil {
			return nil
		}
		next := head.next.LoadRelaxed()
		if s.head.CompareAndSwapAcqRel(head, next) {
			return head
		}
		bo.Spin()
	}
}

// PopAll atomically detaches and returns the entire chain, leaving the
// stack empty. The returned chain is ordered top-to-bottom (most recently
// pushed first), threaded through each node's next pointer as before.
func (s *Stack[T]) PopAll() *StackNode[T] {
	return s.head.SwapAcqRel(nil)
}

// Next returns the node pushed immediately before n, or nil if n was the
// bottom of its chain. Used to walk a chain returned by [Stack.PopAll].
func (n *StackNode[T]) Next() *StackNode[T] {
	return n.next.LoadRelaxed()
}
