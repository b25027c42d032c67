// Package bitset provides a dynamic, fixed-width bitset over 64-bit words,
// used by the clique algorithms to encode vertex sets and neighborhoods.
//
// A Bitset is a semantic set of integer indices in [0, nbits). All binary
// operations (Union, Intersect, Difference) are in place on the receiver and
// require an operand of the same nbits. Bits at positions >= nbits are kept
// clear by construction; callers must not address them directly.
package bitset

import "math/bits"

// Bitset is a dense bit-per-index set backed by a slice of 64-bit words.
type Bitset struct {
	nbits int
	words []uint64
}

// New returns an empty Bitset able to hold indices in [0, nbits).
func New(nbits int) *Bitset {
	if nbits < 0 {
		nbits = 0
	}
	return &Bitset{
		nbits: nbits,
		words: make([]uint64, wordCount(nbits)),
	}
}

func wordCount(nbits int) int {
	return (nbits + 63) / 64
}

// Len returns nbits, the universe size this Bitset was constructed with.
func (b *Bitset) Len() int {
	return b.nbits
}

// Set marks i as present. It is a no-op if i is out of [0, nbits).
func (b *Bitset) Set(i int) {
	if i < 0 || i >= b.nbits {
		return
	}
	b.words[i/64] |= 1 << uint(i%64)
}

// Clear marks i as absent. It is a no-op if i is out of [0, nbits).
func (b *Bitset) Clear(i int) {
	if i < 0 || i >= b.nbits {
		return
	}
	b.words[i/64] &^= 1 << uint(i%64)
}

// Test reports whether i is present.
func (b *Bitset) Test(i int) bool {
	if i < 0 || i >= b.nbits {
		return false
	}
	return b.words[i/64]&(1<<uint(i%64)) != 0
}

// Clone returns an independent copy of b.
func (b *Bitset) Clone() *Bitset {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &Bitset{nbits: b.nbits, words: words}
}

// Union sets b to the union of b and other, in place.
func (b *Bitset) Union(other *Bitset) {
	for i := range b.words {
		b.words[i] |= other.words[i]
	}
}

// Intersect sets b to the intersection of b and other, in place.
func (b *Bitset) Intersect(other *Bitset) {
	for i := range b.words {
		b.words[i] &= other.words[i]
	}
}

// Difference removes from b every bit set in other, in place (b &^= other).
func (b *Bitset) Difference(other *Bitset) {
	for i := range b.words {
		b.words[i] &^= other.words[i]
	}
}

// Count returns the number of set bits (popcount).
func (b *Bitset) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether no bit is set.
func (b *Bitset) IsEmpty() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Each calls fn once for every set bit, in ascending index order, using
// trailing-zero-count scanning of each non-zero word.
func (b *Bitset) Each(fn func(i int)) {
	for wi, w := range b.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			fn(wi*64 + tz)
			w &= w - 1 // clear the lowest set bit
		}
	}
}

// Slice returns the set bits as a sorted []int. It is a convenience wrapper
// around Each for callers that need a materialized slice.
func (b *Bitset) Slice() []int {
	out := make([]int, 0, b.Count())
	b.Each(func(i int) { out = append(out, i) })
	return out
}

// And returns a new Bitset holding b ∩ other, leaving both operands intact.
func And(a, other *Bitset) *Bitset {
	r := a.Clone()
	r.Intersect(other)
	return r
}

// AndNot returns a new Bitset holding a \ other, leaving both operands intact.
func AndNot(a, other *Bitset) *Bitset {
	r := a.Clone()
	r.Difference(other)
	return r
}

// Or returns a new Bitset holding a ∪ other, leaving both operands intact.
func Or(a, other *Bitset) *Bitset {
	r := a.Clone()
	r.Union(other)
	return r
}
