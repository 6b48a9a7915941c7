package kmer_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ibsamsky/helicase/base"
	"github.com/ibsamsky/helicase/kmer"
)

func TestNewCircular(t *testing.T) {
	for _, k := range []int{1, 2, 31, 32, 33, 47, 200} {
		c, err := kmer.NewCircular(k)
		require.NoError(t, err, "k=%d", k)
		expect.EQ(t, c.Size(), k)
		expect.EQ(t, c.String(), strings.Repeat("C", k))
		c.CheckPanic("new")
	}
	for _, k := range []int{0, -1} {
		_, err := kmer.NewCircular(k)
		require.Error(t, err, "k=%d", k)
		expect.EQ(t, errors.Cause(err), kmer.ErrInvalidCapacity)
	}
}

func TestCircularSingleSlot(t *testing.T) {
	c, err := kmer.NewCircular(1)
	require.NoError(t, err)
	expect.EQ(t, c.String(), "C")
	c.Push(base.A)
	expect.EQ(t, c.String(), "A")
	c.Push(base.T)
	expect.EQ(t, c.String(), "T")
	c.CheckPanic("single slot")
}

// TestCircularMatchesBounded pushes the same random bases through the
// circular and bounded representations and requires identical reads after
// every push, across several full trips around the circular buffer.
func TestCircularMatchesBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 50; iter++ {
		k := rng.Intn(130) + 1
		circular, err := kmer.NewCircular(k)
		require.NoError(t, err)
		bounded, err := kmer.NewBounded(k)
		require.NoError(t, err)
		for i := 0; i < 4*k+3; i++ {
			b := base.Base(rng.Intn(base.NumBases))
			circular.Push(b)
			bounded.Push(b)
			circular.CheckPanic("push")
			if circular.String() != bounded.String() {
				t.Fatalf("k=%d: representations diverged after %d pushes: circular %q, bounded %q",
					k, i+1, circular.String(), bounded.String())
			}
		}
	}
}

func TestCircularScanner(t *testing.T) {
	c, err := kmer.NewCircular(7)
	require.NoError(t, err)
	for _, b := range []base.Base{base.A, base.T, base.A, base.T, base.A, base.T, base.C, base.G} {
		c.Push(b)
	}
	expect.EQ(t, collectBases(c.Bases()), []base.Base{base.T, base.A, base.T, base.A, base.T, base.C, base.G})
}

func TestCircularFromBytes(t *testing.T) {
	c, err := kmer.CircularFromBytes([]byte{0x1b})
	require.NoError(t, err)
	expect.EQ(t, c.Size(), 4)
	expect.EQ(t, c.String(), "CATG")
	c.CheckPanic("from bytes")

	// Pushing after construction rotates normally.
	c.Push(base.A)
	expect.EQ(t, c.String(), "ATGA")

	c, err = kmer.CircularFromBytes([]byte{0x1b, 0xe4})
	require.NoError(t, err)
	expect.EQ(t, c.String(), "CATGGTAC")

	_, err = kmer.CircularFromBytes(nil)
	require.Error(t, err)
	expect.EQ(t, errors.Cause(err), kmer.ErrInvalidCapacity)
}

func TestCircularBaseOutOfRangePanics(t *testing.T) {
	c, err := kmer.NewCircular(2)
	require.NoError(t, err)
	require.Panics(t, func() { c.Base(2) })
	require.Panics(t, func() { c.Base(-1) })
}
