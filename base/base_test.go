package base_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/ibsamsky/helicase/base"
)

func TestFromCode(t *testing.T) {
	for code, want := range []base.Base{base.C, base.A, base.T, base.G} {
		b, err := base.FromCode(byte(code))
		assert.NoError(t, err)
		assert.Equal(t, want, b, "code %d", code)
	}
	for _, code := range []byte{4, 5, 17, 255} {
		_, err := base.FromCode(code)
		assert.Error(t, err, "code %d", code)
		assert.Equal(t, base.ErrOutOfRange, errors.Cause(err), "code %d", code)
	}
}

func TestFromASCII(t *testing.T) {
	tests := []struct {
		ch   byte
		want base.Base
		ok   bool
	}{
		{'C', base.C, true},
		{'c', base.C, true},
		{'A', base.A, true},
		{'a', base.A, true},
		{'T', base.T, true},
		{'t', base.T, true},
		{'G', base.G, true},
		{'g', base.G, true},
		{'N', 0, false},
		{'n', 0, false},
		{'U', 0, false},
		{'X', 0, false},
		{' ', 0, false},
		{0, 0, false},
		{255, 0, false},
	}
	for _, test := range tests {
		b, ok := base.FromASCII(test.ch)
		assert.Equal(t, test.ok, ok, "char %q", test.ch)
		if test.ok {
			assert.Equal(t, test.want, b, "char %q", test.ch)
		}
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	for _, b := range []base.Base{base.C, base.A, base.T, base.G} {
		got, ok := base.FromASCII(b.ASCII())
		assert.True(t, ok)
		assert.Equal(t, b, got)
		assert.Equal(t, string(b.ASCII()), b.String())
	}
}

func TestComplement(t *testing.T) {
	pairs := map[base.Base]base.Base{
		base.C: base.G,
		base.A: base.T,
		base.T: base.A,
		base.G: base.C,
	}
	for b, want := range pairs {
		assert.Equal(t, want, b.Complement(), "base %s", b)
		assert.Equal(t, b, b.Complement().Complement(), "base %s", b)
	}
}
