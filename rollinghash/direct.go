package rollinghash

import "math/bits"

// Direct computes the hash of digits from the definition
// sum(d[i] * radix^(len-1-i)) mod modulus, without any rolling state.
// Products are taken at 128 bits, so it holds for any positive modulus.
func Direct(radix, modulus uint64, digits []uint64) uint64 {
	var sum uint64
	for i, d := range digits {
		term := mulmod(d%modulus, expmod(radix, uint64(len(digits)-1-i), modulus), modulus)
		sum = addmod(sum, term, modulus)
	}
	return sum
}

func addmod(a, b, m uint64) uint64 {
	if a >= m-b {
		return a - (m - b)
	}
	return a + b
}

func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// expmod(b, e, m) computes b**e modulo m.
func expmod(b, e, m uint64) uint64 {
	s := 1 % m
	b %= m
	for e != 0 {
		if e&1 == 1 {
			s = mulmod(s, b, m)
		}
		b = mulmod(b, b, m)
		e >>= 1
	}
	return s
}
