package rollinghash

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/bits"
)

// DefaultModulus bounds hash values when no other modulus is configured.
const DefaultModulus = 26900927

var (
	ErrInvalidRadix   = errors.New("radix must be positive")
	ErrInvalidModulus = errors.New("modulus must be positive")
	ErrInvalidWindow  = errors.New("window length must be positive")
	ErrOverflow       = errors.New("radix and modulus overflow 64-bit arithmetic")
)

// RollingHash is a base-radix polynomial hash of a fixed length window,
// reduced modulo modulus. Digits must be smaller than radix.
type RollingHash struct {
	radix   uint64
	modulus uint64
	window  int

	// radix^(window-1) mod modulus, the weight of the leading digit
	highWeight uint64

	sum uint64
}

// CheckBounds reports whether hashing with radix and modulus stays inside
// 64 bits. The largest intermediate value is radix*(modulus-1) + radix-1.
func CheckBounds(radix, modulus uint64) error {
	if radix == 0 {
		return ErrInvalidRadix
	}
	if modulus == 0 {
		return ErrInvalidModulus
	}
	if modulus == math.MaxUint64 {
		return fmt.Errorf("%w: radix %d, modulus %d", ErrOverflow, radix, modulus)
	}
	if hi, _ := bits.Mul64(radix, modulus+1); hi != 0 {
		return fmt.Errorf("%w: radix %d, modulus %d", ErrOverflow, radix, modulus)
	}
	return nil
}

func New(radix, modulus uint64, window int) (*RollingHash, error) {
	if err := CheckBounds(radix, modulus); err != nil {
		return nil, err
	}
	if window < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}

	highWeight := 1 % modulus
	for i := 1; i < window; i++ {
		highWeight = highWeight * radix % modulus
	}

	return &RollingHash{
		radix:      radix,
		modulus:    modulus,
		window:     window,
		highWeight: highWeight,
	}, nil
}

func (r *RollingHash) Window() int {
	return r.window
}

func (r *RollingHash) Sum64() uint64 {
	return r.sum
}

func (r *RollingHash) Reset() {
	r.sum = 0
}

// Append shifts d into the least significant position (one Horner step).
func (r *RollingHash) Append(d uint64) {
	r.sum = (r.radix*r.sum + d) % r.modulus
}

// Initial hashes the first window digits and makes it the running value.
// digits must hold at least Window() values.
func (r *RollingHash) Initial(digits []uint64) uint64 {
	r.sum = r.horner(digits[:r.window])
	return r.sum
}

func (r *RollingHash) horner(digits []uint64) uint64 {
	var h uint64
	for _, d := range digits {
		h = (r.radix*h + d) % r.modulus
	}
	return h
}

// Advance returns the hash of the window that follows the one hashed to
// current, after dropping outgoing from the front and adding incoming.
func (r *RollingHash) Advance(current, outgoing, incoming uint64) uint64 {
	lead := outgoing * r.highWeight % r.modulus

	// current - lead, pinned to [0, modulus)
	var rest uint64
	if current >= lead {
		rest = current - lead
	} else {
		rest = current + (r.modulus - lead)
	}
	return (r.radix*rest + incoming) % r.modulus
}

// Update slides the running hash by one digit.
func (r *RollingHash) Update(incoming, outgoing uint64) uint64 {
	r.sum = r.Advance(r.sum, outgoing, incoming)
	return r.sum
}

// Fingerprints yields the start offset and hash of every window of digits,
// the last one included. Each range over the result rehashes from the start
// and leaves the running value of r untouched.
func (r *RollingHash) Fingerprints(digits []uint64) iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		if len(digits) < r.window {
			return
		}

		h := r.horner(digits[:r.window])
		last := len(digits) - r.window
		for s := 0; s <= last; s++ {
			if !yield(s, h) {
				return
			}
			if s < last {
				h = r.Advance(h, digits[s], digits[s+r.window])
			}
		}
	}
}
