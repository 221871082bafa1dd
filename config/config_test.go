package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	data := `alphabet: "AGCT"
Modulus: 1000003
`
	config, err := ReadConfig(strings.NewReader(data))
	require.NoError(t, err)

	expected := &Config{Alphabet: "AGCT", Modulus: 1000003}
	if diff := pretty.Diff(expected, config); len(diff) != 0 {
		t.Errorf("unexpected config: %v", diff)
	}
}

func TestReadConfigDefaults(t *testing.T) {
	config, err := ReadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)

	config, err = ReadConfig(strings.NewReader("modulus: 97\nlegacy: true\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAlphabet, config.Alphabet)
	assert.Equal(t, uint64(97), config.Modulus)
}

func TestReadConfigInvalid(t *testing.T) {
	_, err := ReadConfig(strings.NewReader("modulus: -5\n"))
	assert.Error(t, err)

	_, err = ReadConfig(strings.NewReader("modulus: 0\n"))
	assert.True(t, errors.Is(err, ErrZeroModulus))

	_, err = ReadConfig(strings.NewReader("alphabet: ''\n"))
	assert.True(t, errors.Is(err, ErrEmptyAlphabet))

	_, err = ReadConfig(strings.NewReader("- alphabet\n- modulus\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "karprabin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("alphabet: \"01\"\nmodulus: 7\n"), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Alphabet: "01", Modulus: 7}, config)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
