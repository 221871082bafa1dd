/*
Package alphabet maps the symbols of a fixed alphabet to digit values.
The digit of a symbol is its position in the alphabet, so an alphabet of n
symbols encodes text as base-n digits.
*/
package alphabet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyAlphabet   = errors.New("alphabet has no symbols")
	ErrDuplicateSymbol = errors.New("duplicate symbol in alphabet")
	ErrUnknownSymbol   = errors.New("symbol not in alphabet")
)

// Alphabet is immutable once built and may be shared between goroutines.
type Alphabet struct {
	symbols []rune
	digits  map[rune]uint64
}

func New(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	digits := make(map[rune]uint64, len(runes))
	for i, r := range runes {
		if prev, ok := digits[r]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateSymbol, r, prev, i)
		}
		digits[r] = uint64(i)
	}

	return &Alphabet{symbols: runes, digits: digits}, nil
}

// Radix is the polynomial base used when hashing digits of this alphabet.
func (a *Alphabet) Radix() uint64 {
	return uint64(len(a.symbols))
}

func (a *Alphabet) Len() int {
	return len(a.symbols)
}

func (a *Alphabet) Symbols() string {
	return string(a.symbols)
}

func (a *Alphabet) Digit(r rune) (uint64, bool) {
	d, ok := a.digits[r]
	return d, ok
}

// Encode translates s into digit values, one per symbol.
func (a *Alphabet) Encode(s string) ([]uint64, error) {
	digits := make([]uint64, 0, len(s))
	pos := 0
	for _, r := range s {
		d, ok := a.digits[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownSymbol, r, pos)
		}
		digits = append(digits, d)
		pos++
	}

	return digits, nil
}

func (a *Alphabet) String() string {
	var sb strings.Builder
	sb.WriteString("alphabet{")
	for i, r := range a.symbols {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%q:%d", r, i)
	}
	fmt.Fprintf(&sb, "} radix=%d", len(a.symbols))
	return sb.String()
}
