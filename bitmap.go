// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ck

import (
	"math/bits"

	"code.hybscloud.com/ck/internal/atomic"
)

const bitsPerWord = 32

// Bitmap is a fixed-size concurrent bit set backed by an array of
// atomically updated words.
type Bitmap struct {
	words []atomic.Uint32
	n     int
}

// NewBitmap returns a bitmap with room for at least n bits, all clear.
func NewBitmap(n int) *Bitmap {
	if n < 1 {
		panic("ck: bitmap capacity must be >= 1")
	}
	words := (n + bitsPerWord - 1) / bitsPerWord
	return &Bitmap{words: make([]atomic.Uint32, words), n: n}
}

// Cap returns the bit capacity passed to NewBitmap.
func (b *Bitmap) Cap() int { return b.n }

func (b *Bitmap) locate(i int) (word int, mask uint32) {
	if i < 0 || i >= b.n {
		panic("ck: bitmap index out of range")
	}
	return i / bitsPerWord, uint32(1) << uint(i%bitsPerWord)
}

// Set atomically sets bit i.
func (b *Bitmap) Set(i int) {
	word, mask := b.locate(i)
	w := &b.words[word]
	for {
		old := w.LoadRelaxed()
		if old&mask != 0 {
			return
		}
		if w.CompareAndSwapAcqRel(old, old|mask) {
			return
		}
	}
}

// Clear atomically clears bit i.
func (b *Bitmap) Clear(i int) {
	word, mask := b.locate(i)
	w := &b.words[word]
	for {
		old := w.LoadRelaxed()
		if old&mask == 0 {
			return
		}
		if w.CompareAndSwapAcqRel(old, old&^mask) {
			return
		}
	}
}

// Get reports whether bit i is set.
func (b *Bitmap) Get(i int) bool {
	word, mask := b.locate(i)
	return b.words[word].LoadAcquire()&mask != 0
}

// Popcount returns the number of set bits across the whole bitmap.
func (b *Bitmap) Popcount() int {
	n := 0
	for i := range b.words {
		n += bits.OnesCount32(b.words[i].LoadAcquire())
	}
	return n
}
