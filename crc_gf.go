package yenc

import (
	"errors"
	"math"
)

// ErrExponentOverflow is returned by Shift and Pow2 when the magnitude of
// the requested exponent isn't representable in int64 (only math.MinInt64
// triggers this — every other int64 has a representable absolute value).
var ErrExponentOverflow = errors.New("yenc: exponent magnitude overflows int64")

// gfOne is the multiplicative identity of GF(2)[x]/P(x) in this package's
// reflected bit convention: reflected CRCs store the constant-term
// coefficient in the top bit, so the polynomial "1" is 0x80000000, not 1.
const gfOne uint32 = 0x80000000

// mulByX multiplies a single GF(2)[x]/P(x) element by x, reduced mod the
// reversed IEEE-802.3 polynomial — this is exactly the inner step of the
// classic reflected CRC-32 bit-at-a-time table build.
func mulByX(a uint32) uint32 {
	if a&1 != 0 {
		return (a >> 1) ^ 0xEDB88320
	}
	return a >> 1
}

// Multiply computes the carry-less product of a and b reduced mod P(x):
// the field multiplication that every other GF operation in this file is
// built from.
//
// Because this package's reflected bit convention puts the x^0 coefficient
// in the top bit (gfOne == 0x80000000, not 1), the bits of b are walked
// from the top down — each one selects whether the next successive power
// of x times a contributes to the product.
func Multiply(a, b uint32) uint32 {
	var product uint32
	for i := 0; i < 32; i++ {
		if b&0x80000000 != 0 {
			product ^= a
		}
		a = mulByX(a)
		b <<= 1
	}
	return product
}

// xpow computes x^e mod P(x) by square-and-multiply, where e is a bit
// exponent already reduced modulo the field's multiplicative order
// (2^32 - 1). It never needs more than 32 squarings.
func xpow(e uint32) uint32 {
	result := gfOne
	base := mulByX(gfOne) // x^1
	for e != 0 {
		if e&1 != 0 {
			result = Multiply(result, base)
		}
		base = Multiply(base, base)
		e >>= 1
	}
	return result
}

// powmod reduces n modulo 2^32 - 1 using the standard carry-fold trick:
// since 2^32 ≡ 1 (mod 2^32-1), summing the high and low 32-bit halves
// (twice, to absorb the carry out of the first sum) computes n mod
// (2^32-1) without a division.
func powmod(n uint64) uint32 {
	r := (n >> 32) + (n & 0xffffffff)
	r += r >> 32
	return uint32(r)
}

// bytepow computes powmod(8*n) without forming 8*n, which could overflow
// for n near 2^64: reduce n first, then multiply the (much smaller)
// reduced value by 8. Because 2^32 ≡ 1 (mod 2^32-1), 8 = 2^3 reduces to a
// left rotate by 3 bits on the 32-bit residue, which can't overflow.
func bytepow(n uint64) uint32 {
	r := powmod(n)
	return r<<3 | r>>29
}

// reduceExp turns a signed bit exponent into the unsigned, field-order-
// reduced exponent xpow expects, using the identity x^(2^32-1) = 1 to
// represent negative exponents: a bitwise complement of the reduced
// magnitude gives the reduced negative exponent, because the field's
// multiplicative order is exactly 2^32-1 = 0xFFFFFFFF.
func reduceExp(n int64) (uint32, error) {
	if n == math.MinInt64 {
		return 0, ErrExponentOverflow
	}
	neg := n < 0
	abs := n
	if neg {
		abs = -n
	}
	e := powmod(uint64(abs))
	if neg {
		e = ^e
	}
	return e, nil
}

// Shift computes a * x^n mod P(x) for a signed bit exponent n.
func Shift(a uint32, n int64) (uint32, error) {
	e, err := reduceExp(n)
	if err != nil {
		return 0, err
	}
	return Multiply(a, xpow(e)), nil
}

// Pow2 computes x^n mod P(x) for a signed bit exponent n.
func Pow2(n int64) (uint32, error) {
	return Shift(gfOne, n)
}

// Pow256 computes x^(8n) mod P(x) for an unsigned byte-length n, using
// bytepow to stay overflow-safe for n near 2^64.
func Pow256(n uint64) uint32 {
	return xpow(bytepow(n))
}

// Combine returns the CRC of the concatenation of two streams, given the
// CRC of each piece and the byte length of the second piece.
func Combine(crc1, crc2 uint32, len2 uint64) uint32 {
	return Multiply(crc1, Pow256(len2)) ^ crc2
}

// Zeros returns the CRC of data followed by length zero bytes, given the
// CRC of data alone.
func Zeros(crc uint32, length uint64) uint32 {
	return ^Multiply(^crc, Pow256(length))
}

// Unzero inverts Zeros: given the CRC of data followed by length zero
// bytes, it returns the CRC of data alone.
func Unzero(crc uint32, length uint64) uint32 {
	return ^Multiply(^crc, xpow(^bytepow(length)))
}
