package alphabet

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	upper      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	upperLower = "ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz"
)

func TestNew(t *testing.T) {
	dna, err := New("AGCT")
	require.NoError(t, err)

	assert.Equal(t, uint64(4), dna.Radix())
	assert.Equal(t, 4, dna.Len())
	assert.Equal(t, "AGCT", dna.Symbols())

	expected := map[rune]uint64{'A': 0, 'G': 1, 'C': 2, 'T': 3}
	assert.Equal(t, expected, dna.digits)

	full, err := New(upper)
	require.NoError(t, err)
	for i, r := range upper {
		d, ok := full.Digit(r)
		assert.True(t, ok)
		assert.Equal(t, uint64(i), d)
	}

	_, ok := full.Digit('a')
	assert.False(t, ok)
}

func TestNewDuplicateSymbol(t *testing.T) {
	_, err := New("ACGTA")
	assert.True(t, errors.Is(err, ErrDuplicateSymbol))
	assert.Contains(t, err.Error(), "positions 0 and 4")
}

func TestNewEmpty(t *testing.T) {
	_, err := New("")
	assert.Equal(t, ErrEmptyAlphabet, err)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		symbols string
		input   string
		want    []uint64
	}{
		{"AGCT", "ACTGCTA", []uint64{0, 2, 3, 1, 2, 3, 0}},
		{upper, "ZAKU", []uint64{25, 0, 10, 20}},
		{upperLower, "no Zaku", []uint64{40, 41, 26, 25, 27, 37, 47}},
		{"αβγ", "γαβ", []uint64{2, 0, 1}},
		{upper, "", []uint64{}},
	}

	for _, tt := range tests {
		a, err := New(tt.symbols)
		require.NoError(t, err)

		got, err := a.Encode(tt.input)
		require.NoError(t, err)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Encode(%q) over %q (-want, +got):\n%s", tt.input, tt.symbols, diff)
		}
	}
}

func TestEncodeUnknownSymbol(t *testing.T) {
	a, err := New("AGCT")
	require.NoError(t, err)

	_, err = a.Encode("GATTACA!")
	assert.True(t, errors.Is(err, ErrUnknownSymbol))
	assert.Contains(t, err.Error(), "position 7")
}

func TestString(t *testing.T) {
	a, err := New("AB")
	require.NoError(t, err)
	assert.Equal(t, `alphabet{'A':0, 'B':1} radix=2`, a.String())
}
