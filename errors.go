// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import "errors"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Push/Enqueue: the container is full (backpressure).
// For Pop/Dequeue: the container is empty (no data available).
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry the operation later (with backoff or yield) rather than propagating
// the error.
//
// Example:
//
//	bo := spin.New()
//	for {
//	    err := r.Enqueue(&item)
//	    if err == nil {
//	        bo.Reset()
//	        break
//	    }
//	    if ck.IsWouldBlock(err) {
//	        bo.Snooze()
//	        continue
//	    }
//	    return err // unexpected error
//	}
var ErrWouldBlock = errors.New("ck: would block")

// ErrOutOfMemory indicates an [Allocator] could not satisfy a request.
var ErrOutOfMemory = errors.New("ck: out of memory")

// ErrCannotResizeInPlace indicates [Allocator.Realloc] could not grow or
// shrink a block without moving it. Callers fall back to malloc+copy+free.
var ErrCannotResizeInPlace = errors.New("ck: cannot resize in place")

// IsWouldBlock reports whether err indicates the operation would block.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrWouldBlock)
}

// IsSemantic reports whether err is a control flow signal rather than a
// failure: currently this is exactly [ErrWouldBlock].
func IsSemantic(err error) bool {
	return IsWouldBlock(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or any semantic error.
func IsNonFailure(err error) bool {
	return err == nil || IsSemantic(err)
}
