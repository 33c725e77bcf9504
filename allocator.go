// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

// Allocator is the external allocation capability containers may be built
// against instead of the platform default. All three operations must be
// thread-safe when an Allocator is shared across goroutines.
type Allocator interface {
	// Malloc returns a byte slice of the requested size, or
	// [ErrOutOfMemory]. A zero-sized request returns a non-nil,
	// zero-length slice rather than an error.
	Malloc(size int) ([]byte, error)

	// Realloc resizes buf to newSize. If mayMove is true the
	// implementation may return a different backing array with buf's
	// contents copied over; if false and the block cannot be resized
	// without moving, it returns [ErrCannotResizeInPlace].
	Realloc(buf []byte, newSize int, mayMove bool) ([]byte, error)

	// Free releases buf. defer_ is a hint: when true, the allocator may
	// batch the release or integrate it with a reclamation engine
	// instead of freeing immediately.
	Free(buf []byte, defer_ bool)
}

// DefaultAllocator forwards to the Go runtime allocator. Free is a no-op:
// Go has no explicit free, so honoring the deferred-free hint means doing
// exactly what the garbage collector would do on its own.
type DefaultAllocator struct{}

var _ Allocator = DefaultAllocator{}

// Malloc returns a freshly made byte slice of the requested size.
func (DefaultAllocator) Malloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, ErrOutOfMemory
	}
	return make([]byte, size), nil
}

// Realloc reslices buf in place when newSize fits within its capacity.
// Otherwise it moves to a new backing array with buf's contents copied
// over (Go slices cannot be resized without copying once capacity is
// exhausted); mayMove=false with a size that exceeds buf's capacity
// returns [ErrCannotResizeInPlace].
func (DefaultAllocator) Realloc(buf []byte, newSize int, mayMove bool) ([]byte, error) {
	if newSize < 0 {
		return nil, ErrOutOfMemory
	}
	if newSize <= cap(buf) {
		return buf[:newSize], nil
	}
	if !mayMove {
		return nil, ErrCannotResizeInPlace
	}
	next := make([]byte, newSize)
	copy(next, buf)
	return next, nil
}

// Free does nothing: the slice becomes eligible for garbage collection
// once the caller drops its last reference.
func (DefaultAllocator) Free(buf []byte, defer_ bool) {}
