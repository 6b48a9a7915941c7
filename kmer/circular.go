package kmer

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/ibsamsky/helicase/base"
)

// CircularKmer is a fixed-length window of arbitrary size backed by a
// circular bit buffer. Push overwrites the 2-bit slot holding the oldest
// base and advances the start offset past it, so an update touches one
// slot regardless of window length: O(1) where BoundedKmer pays O(k).
type CircularKmer struct {
	words []uintptr
	// nBits is the buffer length in bits, always 2 * Size().
	nBits int
	// start is the bit offset of the oldest base. It is always a multiple
	// of bitsPerBase and always in [0, nBits); together with the even word
	// width this guarantees a 2-bit read never straddles the wrap point or
	// a word boundary.
	start int
}

// NewCircular returns a window of length k with every base base.C. k must
// be positive.
func NewCircular(k int) (*CircularKmer, error) {
	if k < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "circular kmer length %d", k)
	}
	n := k * bitsPerBase
	return &CircularKmer{words: make([]uintptr, wordsForBits(n)), nBits: n}, nil
}

// CircularFromBytes builds a window of length 4*len(bytes) from packed
// byte data. Bytes are consumed in order, oldest bases first, and within
// each byte the two most significant bits hold that byte's oldest base.
func CircularFromBytes(bytes []byte) (*CircularKmer, error) {
	c, err := NewCircular(len(bytes) * basesPerByte)
	if err != nil {
		return nil, err
	}
	for i := 0; i < c.Size(); i++ {
		set2(c.words, i*bitsPerBase, byteSlot(bytes, i))
	}
	return c, nil
}

// Push drops the oldest base and appends b as the newest. The slot that
// held the oldest base becomes the newest logical slot once start
// advances past it; no other bits move.
func (c *CircularKmer) Push(b base.Base) {
	set2(c.words, c.start, byte(b))
	c.start += bitsPerBase
	if c.start == c.nBits {
		c.start = 0
	}
}

// Size returns the window length in bases.
func (c *CircularKmer) Size() int { return c.nBits / bitsPerBase }

// Base returns the i'th base, oldest first.
func (c *CircularKmer) Base(i int) base.Base {
	if i < 0 || i >= c.Size() {
		log.Panicf("circular kmer: base index %d out of range for length %d", i, c.Size())
	}
	off := c.start + i*bitsPerBase
	if off >= c.nBits {
		off -= c.nBits
	}
	return base.Base(get2(c.words, off))
}

// Bases returns a scanner over the bases, oldest first.
func (c *CircularKmer) Bases() *Bases { return &Bases{src: c} }

func (c *CircularKmer) String() string { return basesString(c) }

// CheckPanic verifies the buffer invariants, panicking on failure:
// * nBits is a positive multiple of bitsPerBase.
// * start is a multiple of bitsPerBase in [0, nBits).
// * the word buffer is exactly wide enough for nBits bits.
func (c *CircularKmer) CheckPanic(tag string) {
	if c.nBits < bitsPerBase || c.nBits%bitsPerBase != 0 {
		log.Panicf("circular kmer: bad buffer length %d bits, tag: %s", c.nBits, tag)
	}
	if c.start < 0 || c.start >= c.nBits || c.start%bitsPerBase != 0 {
		log.Panicf("circular kmer: bad start offset %d for %d bit buffer, tag: %s", c.start, c.nBits, tag)
	}
	if len(c.words) != wordsForBits(c.nBits) {
		log.Panicf("circular kmer: %d words for %d bits, tag: %s", len(c.words), c.nBits, tag)
	}
}
