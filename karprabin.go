// Package karprabin finds the leftmost occurrence of a pattern in a text
// with the Karp-Rabin algorithm. A rolling hash of each text window is
// compared against the hash of the pattern, and every equal hash is
// confirmed symbol by symbol before it is reported.
package karprabin

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/AppImageCrafters/libkarprabin-go/alphabet"
	"github.com/AppImageCrafters/libkarprabin-go/config"
	"github.com/AppImageCrafters/libkarprabin-go/rollinghash"
)

// NoMatch is returned by Match when the pattern does not occur in the text.
const NoMatch = -1

var ErrInvalidInput = errors.New("invalid input")

// A Matcher searches texts written in one alphabet. Its alphabet and modulus
// are fixed at construction.
type Matcher struct {
	alphabet *alphabet.Alphabet
	modulus  uint64

	reporter Reporter
}

func NewMatcher(a *alphabet.Alphabet, modulus uint64) (*Matcher, error) {
	if err := rollinghash.CheckBounds(a.Radix(), modulus); err != nil {
		return nil, err
	}

	return &Matcher{
		alphabet: a,
		modulus:  modulus,
		reporter: NewDummyReporter(),
	}, nil
}

func NewMatcherFromConfig(c *config.Config) (*Matcher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	a, err := alphabet.New(c.Alphabet)
	if err != nil {
		return nil, err
	}

	return NewMatcher(a, c.Modulus)
}

func (m *Matcher) Alphabet() *alphabet.Alphabet {
	return m.alphabet
}

func (m *Matcher) Modulus() uint64 {
	return m.modulus
}

// SetReporter installs r to observe subsequent searches. A Matcher with a
// reporter must not be shared between goroutines unless r is safe for
// concurrent use.
func (m *Matcher) SetReporter(r Reporter) {
	if r == nil {
		r = NewDummyReporter()
	}
	m.reporter = r
}

// Match returns the offset, in symbols, of the leftmost occurrence of
// pattern in text, or NoMatch.
func (m *Matcher) Match(pattern, text string) (int, error) {
	patternSymbols, textSymbols := []rune(pattern), []rune(text)
	n := len(patternSymbols)
	if n == 0 {
		return NoMatch, fmt.Errorf("%w: empty pattern", ErrInvalidInput)
	}
	if n > len(textSymbols) {
		return NoMatch, fmt.Errorf("%w: pattern length %d exceeds text length %d",
			ErrInvalidInput, n, len(textSymbols))
	}

	p, err := m.alphabet.Encode(pattern)
	if err != nil {
		return NoMatch, fmt.Errorf("pattern: %w", err)
	}
	t, err := m.alphabet.Encode(text)
	if err != nil {
		return NoMatch, fmt.Errorf("text: %w", err)
	}

	hash, err := rollinghash.New(m.alphabet.Radix(), m.modulus, n)
	if err != nil {
		return NoMatch, err
	}

	patternHash := hash.Initial(p)
	windowHash := hash.Initial(t)

	last := len(t) - n
	m.reporter.SetTotal(int64(last + 1))

	for s := 0; s <= last; s++ {
		m.reporter.SetProgress(int64(s))

		if windowHash == patternHash {
			if slices.Equal(textSymbols[s:s+n], patternSymbols) {
				return s, nil
			}
			m.reporter.Collision(int64(s))
		}

		if s < last {
			windowHash = hash.Update(t[s+n], t[s])
		}
	}

	return NoMatch, nil
}

// Fingerprints returns every window of s that is window symbols long,
// paired with its hash, in order of increasing offset.
func (m *Matcher) Fingerprints(s string, window int) (iter.Seq2[string, uint64], error) {
	symbols := []rune(s)
	if window < 1 || window > len(symbols) {
		return nil, fmt.Errorf("%w: window length %d for a sequence of %d symbols",
			ErrInvalidInput, window, len(symbols))
	}

	digits, err := m.alphabet.Encode(s)
	if err != nil {
		return nil, err
	}

	hash, err := rollinghash.New(m.alphabet.Radix(), m.modulus, window)
	if err != nil {
		return nil, err
	}

	return func(yield func(string, uint64) bool) {
		for start, h := range hash.Fingerprints(digits) {
			if !yield(string(symbols[start:start+window]), h) {
				return
			}
		}
	}, nil
}

// DirectFingerprint hashes all of s without rolling.
func (m *Matcher) DirectFingerprint(s string) (uint64, error) {
	digits, err := m.alphabet.Encode(s)
	if err != nil {
		return 0, err
	}
	return rollinghash.Direct(m.alphabet.Radix(), m.modulus, digits), nil
}

// Match searches text for pattern under rollinghash.DefaultModulus.
func Match(pattern, text string, a *alphabet.Alphabet) (int, error) {
	m, err := NewMatcher(a, rollinghash.DefaultModulus)
	if err != nil {
		return NoMatch, err
	}
	return m.Match(pattern, text)
}

func Fingerprints(s string, window int, a *alphabet.Alphabet) (iter.Seq2[string, uint64], error) {
	m, err := NewMatcher(a, rollinghash.DefaultModulus)
	if err != nil {
		return nil, err
	}
	return m.Fingerprints(s, window)
}

func DirectFingerprint(s string, a *alphabet.Alphabet) (uint64, error) {
	m, err := NewMatcher(a, rollinghash.DefaultModulus)
	if err != nil {
		return 0, err
	}
	return m.DirectFingerprint(s)
}
