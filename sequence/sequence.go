// Package sequence provides an append-only stream of nucleotide bases and
// a sliding-window scanner that derives every consecutive k-mer from it.
package sequence

import (
	"github.com/grailbio/base/bitset"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/ibsamsky/helicase/base"
	"github.com/ibsamsky/helicase/kmer"
)

const (
	bitsPerBase  = 2
	basesPerWord = bitset.BitsPerWord / bitsPerBase
)

// Sequence is an append-only run of bases, packed two bits each. It only
// ever grows; windows derived from it are value snapshots that never
// observe later pushes.
type Sequence struct {
	words []uintptr
	n     int
}

// New returns an empty sequence.
func New() *Sequence { return &Sequence{} }

// FromString parses an ASCII base string, case-insensitively.
func FromString(s string) (*Sequence, error) {
	seq := New()
	for i := 0; i < len(s); i++ {
		b, ok := base.FromASCII(s[i])
		if !ok {
			return nil, errors.Errorf("invalid base %q at position %d", s[i], i)
		}
		seq.Push(b)
	}
	return seq, nil
}

// Push appends b to the end of the sequence.
func (s *Sequence) Push(b base.Base) {
	if s.n == len(s.words)*basesPerWord {
		s.words = append(s.words, 0)
	}
	sh := uint(s.n%basesPerWord) * bitsPerBase
	s.words[s.n/basesPerWord] |= uintptr(b) << sh
	s.n++
}

// Len returns the number of bases pushed so far.
func (s *Sequence) Len() int { return s.n }

// At returns the i'th base, in push order.
func (s *Sequence) At(i int) base.Base {
	if i < 0 || i >= s.n {
		log.Panicf("sequence: index %d out of range for length %d", i, s.n)
	}
	sh := uint(i%basesPerWord) * bitsPerBase
	return base.Base(s.words[i/basesPerWord] >> sh & 3)
}

func (s *Sequence) String() string {
	buf := make([]byte, s.n)
	for i := range buf {
		buf[i] = s.At(i).ASCII()
	}
	return string(buf)
}

// Kmers returns a scanner over every length-k window of the sequence,
// leftmost window first. A sequence shorter than k yields no windows. k
// must be in [1, kmer.MaxLen].
func (s *Sequence) Kmers(k int) (*Kmers, error) {
	w, err := kmer.New(k)
	if err != nil {
		return nil, err
	}
	return &Kmers{seq: s, cur: w, k: k}, nil
}

// Kmers scans the consecutive windows of a sequence: window i covers
// bases [i, i+k). Each window returned by Get is an independent value
// snapshot, safe to hold across later pushes. Bases pushed after the
// scanner was created are picked up by later Scan calls, so a drained
// scanner resumes when the sequence grows.
type Kmers struct {
	seq *Sequence
	cur kmer.Kmer
	k   int
	// next is the index of the next base to feed into cur. A window is
	// only yielded once k bases have been consumed, so a short sequence
	// yields nothing.
	next int
}

// Scan advances to the next window, returning false when none remain.
func (it *Kmers) Scan() bool {
	for it.next < it.seq.Len() {
		it.cur.Push(it.seq.At(it.next))
		it.next++
		if it.next >= it.k {
			return true
		}
	}
	return false
}

// Get returns the window most recently advanced to by Scan.
func (it *Kmers) Get() kmer.Kmer { return it.cur }
