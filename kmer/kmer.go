package kmer

import (
	farm "github.com/dgryski/go-farm"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/ibsamsky/helicase/base"
)

// MaxLen is the number of bases that fit in an inline Kmer.
const MaxLen = 32

// ErrInvalidCapacity is returned when a requested window length is zero,
// negative, above a representation's maximum, or when a shrink or join
// target doesn't fit.
var ErrInvalidCapacity = errors.New("invalid kmer capacity")

// Kmer packs up to MaxLen bases into a single uint64, two bits per base,
// with the newest base in the low bits. Push shifts left without clearing
// anything, so the raw word accumulates stale bits above bit 2k-1; every
// read masks them off. The zero value of the backing word reads as k
// copies of base.C.
//
// Kmer is a value type: assignment and ShrinkTo produce independent
// snapshots.
type Kmer struct {
	bits uint64
	k    uint8
}

// New returns a Kmer of length k with every base base.C. k must be in
// [1, MaxLen].
func New(k int) (Kmer, error) {
	if k < 1 || k > MaxLen {
		return Kmer{}, errors.Wrapf(ErrInvalidCapacity, "inline kmer length %d", k)
	}
	return Kmer{k: uint8(k)}, nil
}

// FromBases builds a Kmer of length len(bases), equivalent to pushing the
// bases in order onto a fresh kmer.
func FromBases(bases []base.Base) (Kmer, error) {
	k, err := New(len(bases))
	if err != nil {
		return Kmer{}, err
	}
	for _, b := range bases {
		k.Push(b)
	}
	return k, nil
}

// FromString parses an ASCII base string, case-insensitively. The kmer
// length is len(s).
func FromString(s string) (Kmer, error) {
	k, err := New(len(s))
	if err != nil {
		return Kmer{}, err
	}
	for i := 0; i < len(s); i++ {
		b, ok := base.FromASCII(s[i])
		if !ok {
			return Kmer{}, errors.Errorf("invalid base %q at position %d", s[i], i)
		}
		k.Push(b)
	}
	return k, nil
}

// Push drops the oldest base and appends b as the newest.
func (k *Kmer) Push(b base.Base) {
	k.bits = k.bits<<bitsPerBase | uint64(b)
}

// Size returns the window length in bases.
func (k Kmer) Size() int { return int(k.k) }

// Raw returns the unmasked backing word. Bits at and above 2*Size() are
// stale leftovers from earlier pushes; use Masked for the canonical
// value.
func (k Kmer) Raw() uint64 { return k.bits }

// Masked returns the low 2*Size() bits of the backing word: the canonical
// packed value of the window, independent of how many bases were ever
// pushed.
func (k Kmer) Masked() uint64 {
	return k.bits & (^uint64(0) >> (64 - bitsPerBase*uint(k.k)))
}

// Base returns the i'th base, oldest first.
func (k Kmer) Base(i int) base.Base {
	if i < 0 || i >= int(k.k) {
		log.Panicf("kmer: base index %d out of range for length %d", i, k.k)
	}
	return base.Base(k.bits >> (bitsPerBase * uint(int(k.k)-1-i)) & 3)
}

// Bases returns a scanner over the bases, oldest first. The scanner holds
// a snapshot; later pushes don't affect it.
func (k Kmer) Bases() *Bases { return &Bases{src: k} }

// ShrinkTo reinterprets the window as one holding only the last l bases
// pushed. No bits move; the discarded prefix simply joins the stale bits
// above the active window.
func (k Kmer) ShrinkTo(l int) (Kmer, error) {
	if l < 1 || l > int(k.k) {
		return Kmer{}, errors.Wrapf(ErrInvalidCapacity, "shrink length %d to %d", k.k, l)
	}
	return Kmer{bits: k.bits, k: uint8(l)}, nil
}

// Join concatenates two windows into one, with hi's bases preceding lo's.
// The combined length must not exceed MaxLen.
func Join(hi, lo Kmer) (Kmer, error) {
	n := int(hi.k) + int(lo.k)
	if n > MaxLen {
		return Kmer{}, errors.Wrapf(ErrInvalidCapacity, "join lengths %d + %d", hi.k, lo.k)
	}
	return Kmer{bits: hi.bits<<(bitsPerBase*uint(lo.k)) | lo.Masked(), k: uint8(n)}, nil
}

// ReverseComplement returns the window read backwards with every base
// complemented.
func (k Kmer) ReverseComplement() Kmer {
	rc := Kmer{k: k.k}
	bits := k.bits
	for i := 0; i < int(k.k); i++ {
		comp := uint64(base.G) - bits&3
		rc.bits = rc.bits<<bitsPerBase | comp
		bits >>= bitsPerBase
	}
	return rc
}

// Hash returns a 64-bit farmhash of the masked value, suitable for
// sharding kmers across index or sketch buckets. Windows with equal bases
// hash equally regardless of push history.
func (k Kmer) Hash() uint64 {
	return farm.Hash64WithSeed(nil, k.Masked())
}

func (k Kmer) String() string { return basesString(k) }
