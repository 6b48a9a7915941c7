package kmer

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/ibsamsky/helicase/base"
)

// BoundedKmer is a fixed-length window of arbitrary size backed by a
// multiword bit buffer. It reproduces Kmer's FIFO semantics for any k:
// Push shifts the whole 2k-bit buffer by one base and writes the new base
// into the freed low slot, so an update costs O(k). Use CircularKmer when
// update cost matters and Kmer when k <= MaxLen.
//
// The buffer is a little-endian multiword integer, the direct
// generalization of Kmer's uint64: the newest base occupies the low two
// bits of words[0] and the oldest occupies bits [2k-2, 2k). Bits above 2k
// in the top word are kept zero.
type BoundedKmer struct {
	words []uintptr
	k     int
}

// NewBounded returns a window of length k with every base base.C. k must
// be positive.
func NewBounded(k int) (*BoundedKmer, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "bounded kmer length %d", k)
	}
	return &BoundedKmer{words: make([]uintptr, wordsForBits(k*bitsPerBase)), k: k}, nil
}

// BoundedFromBytes builds a window of length 4*len(bytes) from packed
// byte data. Bytes are consumed in order, oldest bases first, and within
// each byte the two most significant bits hold that byte's oldest base.
func BoundedFromBytes(bytes []byte) (*BoundedKmer, error) {
	b, err := NewBounded(len(bytes) * basesPerByte)
	if err != nil {
		return nil, err
	}
	for i := 0; i < b.k; i++ {
		set2(b.words, b.offset(i), byteSlot(bytes, i))
	}
	return b, nil
}

// offset returns the bit offset of the i'th base, oldest first.
func (b *BoundedKmer) offset(i int) int { return (b.k - 1 - i) * bitsPerBase }

// Push drops the oldest base and appends nb as the newest, shifting every
// word of the buffer.
func (b *BoundedKmer) Push(nb base.Base) {
	carry := uintptr(nb)
	for i := range b.words {
		hi := b.words[i] >> uint(bitsPerWord-bitsPerBase)
		b.words[i] = b.words[i]<<bitsPerBase | carry
		carry = hi
	}
	// The shift pushed the old top base past the active window; clear it
	// so the buffer stays exactly 2k bits.
	if rem := (b.k * bitsPerBase) % bitsPerWord; rem != 0 {
		b.words[len(b.words)-1] &= 1<<uint(rem) - 1
	}
}

// Size returns the window length in bases.
func (b *BoundedKmer) Size() int { return b.k }

// Base returns the i'th base, oldest first.
func (b *BoundedKmer) Base(i int) base.Base {
	if i < 0 || i >= b.k {
		log.Panicf("bounded kmer: base index %d out of range for length %d", i, b.k)
	}
	return base.Base(get2(b.words, b.offset(i)))
}

// Bases returns a scanner over the bases, oldest first.
func (b *BoundedKmer) Bases() *Bases { return &Bases{src: b} }

// Inline converts the window to the uint64 representation. It fails when
// the window is longer than MaxLen bases.
func (b *BoundedKmer) Inline() (Kmer, error) {
	k, err := New(b.k)
	if err != nil {
		return Kmer{}, err
	}
	for i := 0; i < b.k; i++ {
		k.Push(b.Base(i))
	}
	return k, nil
}

func (b *BoundedKmer) String() string { return basesString(b) }
