// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"unsafe"

	"code.hybscloud.com/ck/hp"
	"code.hybscloud.com/ck/internal/spin"
)

// closeFunc adapts a plain func() to [hp.Protected].
type closeFunc func()

func (f closeFunc) Close() { f() }

func stackNodeAddr[T any](n *StackNode[T]) uintptr {
	return uintptr(unsafe.Pointer(n))
}

// HPStack is a [Stack] whose Pop is safe against concurrent reclamation:
// it wraps the same Treiber algorithm with hazard-pointer protection on
// the node a reader is about to dereference, closing the ABA hole plain
// [Stack] leaves open.
type HPStack[T any] struct {
	stack  Stack[T]
	engine *hp.Engine
}

// NewHPStack returns an empty HP-protected stack using engine for
// reclamation. Share one engine across every HP-protected container a
// set of threads participates in.
func NewHPStack[T any](engine *hp.Engine) *HPStack[T] {
	return &HPStack[T]{engine: engine}
}

// Engine returns the hazard-pointer engine this stack reclaims through.
func (s *HPStack[T]) Engine() *hp.Engine { return s.engine }

// Push adds entry to the top of the stack. Push needs no hazard
// protection: it never dereferences a node it doesn't already own.
func (s *HPStack[T]) Push(entry *StackNode[T]) {
	s.stack.Push(entry)
}

// Pop removes and returns the top entry, protecting it with guard's slot
// 0 for the duration of the dereference so a concurrent [hp.Guard.Retire] by
// another popper cannot recycle it out from under this read. Returns nil
// if the stack is empty. The caller owns the returned node afterward and
// should eventually call guard.Retire on it once done, rather than
// freeing or reusing it directly.
func (s *HPStack[T]) Pop(guard *hp.Guard) *StackNode[T] {
	bo := spin.New()
	for {
		head := s.stack.head.LoadAcquire()
		if head == nil {
			guard.Clear(0)
			return nil
		}
		guard.Protect(0, stackNodeAddr(head))
		if s.stack.head.LoadAcquire() != head {
			bo.Spin()
			continue
		}
		next := head.next.LoadAcquire()
		if s.stack.head.CompareAndSwapAcqRel(head, next) {
			guard.Clear(0)
			return head
		}
		bo.Spin()
	}
}

// Retire schedules entry for reclamation once no guard protects it,
// invoking onClose (which may be nil) once that happens.
func (s *HPStack[T]) Retire(guard *hp.Guard, entry *StackNode[T], onClose func()) {
	if onClose == nil {
		onClose = func() {}
	}
	guard.Retire(stackNodeAddr(entry), closeFunc(onClose))
}
