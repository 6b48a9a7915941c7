// Package base defines the four-letter nucleotide alphabet and its packed
// 2-bit encoding.
package base

import (
	"github.com/pkg/errors"
)

// Base is a nucleotide base, packed into two bits.
type Base byte

// The four bases and their numeric codes. The codes are load-bearing:
// they appear verbatim in every packed kmer and in the FromBytes byte
// layout, so they must never be reordered.
const (
	C Base = 0 // 0b00
	A Base = 1 // 0b01
	T Base = 2 // 0b10
	G Base = 3 // 0b11
)

// NumBases is the alphabet size.
const NumBases = 4

// ErrOutOfRange is returned by FromCode when a code is not a valid 2-bit
// base code.
var ErrOutOfRange = errors.New("base code out of range")

const invalidBase = Base(255)

// asciiToBaseTable maps ASCII bytes to bases, with invalidBase marking
// every byte that is not one of ACGT/acgt.
var asciiToBaseTable [256]Base

func init() {
	for i := range asciiToBaseTable {
		asciiToBaseTable[i] = invalidBase
	}
	asciiToBaseTable['C'] = C
	asciiToBaseTable['c'] = C
	asciiToBaseTable['A'] = A
	asciiToBaseTable['a'] = A
	asciiToBaseTable['T'] = T
	asciiToBaseTable['t'] = T
	asciiToBaseTable['G'] = G
	asciiToBaseTable['g'] = G
}

// baseToASCIITable is the Base -> ASCII mapping.
var baseToASCIITable = [NumBases]byte{'C', 'A', 'T', 'G'}

// FromCode converts a numeric code to a Base, failing with ErrOutOfRange
// when the code is outside [0, NumBases). Use it for codes arriving from
// untrusted input; a 2-bit group just extracted from a packed buffer is
// already known to be in range and may be converted with a plain Base()
// conversion instead.
func FromCode(code byte) (Base, error) {
	if code >= NumBases {
		return 0, errors.Wrapf(ErrOutOfRange, "code %d", code)
	}
	return Base(code), nil
}

// FromASCII converts an ASCII character to a Base. It recognizes exactly
// C/c, A/a, T/t and G/g; ok is false for every other byte.
func FromASCII(ch byte) (b Base, ok bool) {
	b = asciiToBaseTable[ch]
	if b == invalidBase {
		return 0, false
	}
	return b, true
}

// ASCII returns the upper-case ASCII letter for the base.
func (b Base) ASCII() byte { return baseToASCIITable[b] }

// Complement returns the Watson-Crick complement. The code table pairs
// complements at opposite ends (C with G, A with T), so the complement
// code is always 3-code.
func (b Base) Complement() Base { return G - b }

func (b Base) String() string { return string(baseToASCIITable[b]) }
