// Package kmer provides compact fixed-length windows ("k-mers") over the
// four-base nucleotide alphabet, two bits per base.
//
// Three representations share the same FIFO semantics:
//
//   - Kmer packs up to 32 bases into a single uint64. Push and read are
//     O(1); this is the default whenever the window is short enough.
//   - BoundedKmer stores a window of any length in a fixed word buffer.
//     Push shifts the whole buffer, so it costs O(k).
//   - CircularKmer stores a window of any length behind a rotating start
//     offset. Push overwrites a single 2-bit slot, so it costs O(1)
//     regardless of window length.
//
// A window's length is fixed at construction and all slots start out as
// base.C. Pushing evicts the oldest base and appends the new one; the
// bases can be read back oldest first at any time.
package kmer
