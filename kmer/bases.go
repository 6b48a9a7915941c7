package kmer

import (
	"github.com/ibsamsky/helicase/base"
)

// baseSource is the read side shared by the three window representations.
type baseSource interface {
	// Size returns the window length in bases.
	Size() int
	// Base returns the i'th base, oldest first.
	Base(i int) base.Base
}

// Bases reads a window's bases back one at a time, oldest first:
//
//	for s := k.Bases(); s.Scan(); {
//		.. use s.Get() ..
//	}
//
// Each call to a window's Bases method returns a fresh scanner. A scanner
// over a Kmer holds a value snapshot; scanners over the buffer-backed
// representations read the live window, so don't push while one is in
// flight.
type Bases struct {
	src baseSource
	pos int
}

// Scan advances to the next base. It returns false once all Size() bases
// have been produced.
func (s *Bases) Scan() bool {
	if s.pos >= s.src.Size() {
		return false
	}
	s.pos++
	return true
}

// Get returns the base most recently advanced to by Scan.
func (s *Bases) Get() base.Base { return s.src.Base(s.pos - 1) }

func basesString(src baseSource) string {
	buf := make([]byte, src.Size())
	for i := range buf {
		buf[i] = src.Base(i).ASCII()
	}
	return string(buf)
}
