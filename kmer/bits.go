package kmer

import (
	"github.com/grailbio/base/bitset"
)

const (
	bitsPerBase = 2
	// bitsPerWord is the width of the []uintptr words backing the bounded
	// and circular representations.
	bitsPerWord = bitset.BitsPerWord

	basesPerByte = 4
)

// wordsForBits returns the number of words needed to hold nBits bits.
func wordsForBits(nBits int) int {
	return (nBits + bitsPerWord - 1) / bitsPerWord
}

// get2 reads the 2-bit group at bit offset off. Offsets are always even
// and words are an even number of bits wide, so a group never straddles a
// word boundary.
func get2(words []uintptr, off int) byte {
	return byte(words[off/bitsPerWord]>>(uint(off)%uint(bitsPerWord))) & 3
}

// set2 overwrites the 2-bit group at bit offset off.
func set2(words []uintptr, off int, code byte) {
	w := off / bitsPerWord
	sh := uint(off) % uint(bitsPerWord)
	words[w] = words[w]&^(3<<sh) | uintptr(code)<<sh
}

// byteSlot extracts the i'th base code from a packed byte slice, oldest
// first: the two most significant bits of each byte hold that byte's
// first base.  This byte layout is the wire format for FromBytes; see the
// BoundedFromBytes and CircularFromBytes docs.
func byteSlot(bytes []byte, i int) byte {
	return bytes[i/basesPerByte] >> (6 - bitsPerBase*uint(i%basesPerByte)) & 3
}
