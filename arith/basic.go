// Package arith implements the modular-arithmetic primitives RSA and DSA are
// built from: the extended/binary gcd family, bit-length and fixed-width
// random sampling, and the Mod modular-residue type with its full operator
// set (including Jacobi symbol, halving, and CRT combination).
package arith

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// ErrNotInvertible is returned when a Mod value has no multiplicative inverse
// in its modulus (i.e. gcd(value, modulus) != 1).
var ErrNotInvertible = errors.New("arith: value has no inverse in this modulus")

// ErrModulusMismatch is returned when a binary Mod operation is attempted on
// two residues carrying different moduli.
var ErrModulusMismatch = errors.New("arith: operands have different moduli")

// ErrZeroModulus is returned when a Mod value is constructed with a zero
// modulus.
var ErrZeroModulus = errors.New("arith: modulus is zero")

// Lcm returns the least common multiple of a and b. Both must be positive.
func Lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	q := new(big.Int).Div(a, g)
	return q.Mul(q, b)
}

// CeilDiv returns ceil(a/b) for non-negative a and positive b.
func CeilDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, bigOne)
	}
	return q
}

// TrailingZeros returns the number of trailing zero bits of a's binary
// representation, or 0 when a is zero.
func TrailingZeros(a *big.Int) int {
	if a.Sign() == 0 {
		return 0
	}
	return int(new(big.Int).Abs(a).TrailingZeroBits())
}

// IntLen returns the bit length of positive a (i.e. floor(log2(a)) + 1).
// The caller must ensure a > 0; IntLen(0) is defined as 0 for convenience.
func IntLen(a *big.Int) int {
	return a.BitLen()
}

// ExtGCD implements the extended Euclidean algorithm: it returns (d, x, y)
// such that d = gcd(a, b) = a*x + b*y and d >= 0.
func ExtGCD(a, b *big.Int) (d, x, y *big.Int) {
	d = new(big.Int)
	x = new(big.Int)
	y = new(big.Int)
	d.GCD(x, y, new(big.Int).Abs(a), new(big.Int).Abs(b))
	if a.Sign() < 0 {
		x.Neg(x)
	}
	if b.Sign() < 0 {
		y.Neg(y)
	}
	return
}

// BinaryGCD computes gcd(a, b) using the classical binary GCD algorithm.
// BinaryGCD(a, 0) == |a|.
func BinaryGCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	if y.Sign() == 0 {
		return x
	}
	if x.Sign() == 0 {
		return y
	}
	if x.Cmp(y) < 0 {
		x, y = y, x
	}
	r := TrailingZeros(x)
	s := TrailingZeros(y)
	x.Rsh(x, uint(r))
	y.Rsh(y, uint(s))
	shift := r
	if s < shift {
		shift = s
	}
	for x.Cmp(y) != 0 {
		if x.Cmp(y) < 0 {
			x, y = y, x
		}
		x.Sub(x, y)
		x.Rsh(x, uint(TrailingZeros(x)))
	}
	return x.Lsh(x, uint(shift))
}

// FixedRandBits uniformly samples a k-bit integer with the top bit forced to
// 1, optionally also forcing the low bit to 1 (requireOdd). It reads from
// crypto/rand.Reader, since this is used to draw key material and prime
// candidates.
func FixedRandBits(k int, requireOdd bool) (*big.Int, error) {
	return fixedRandBits(rand.Reader, k, requireOdd)
}

func fixedRandBits(r io.Reader, k int, requireOdd bool) (*big.Int, error) {
	if k <= 0 {
		return nil, errors.New("arith: bit length must be positive")
	}
	nbytes := (k + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	x := new(big.Int).SetBytes(buf)
	// mask down to exactly k bits, then force the top bit of the k-bit range
	x.Mod(x, new(big.Int).Lsh(bigOne, uint(k)))
	x.SetBit(x, k-1, 1)
	if requireOdd {
		x.SetBit(x, 0, 1)
	}
	return x, nil
}

// IsPerfectSquare reports whether a is a perfect square, using Newton's
// method to compute floor(sqrt(a)) and checking its square against a. The
// original Python source (arith/basic.py: isperfectsuqare) referenced an
// undefined name at its return statement; this is the Newton-iteration
// primality-test helper spec.md's Open Questions section says to supply.
func IsPerfectSquare(a *big.Int) bool {
	if a.Sign() < 0 {
		return false
	}
	if a.Sign() == 0 {
		return true
	}
	root := new(big.Int).Sqrt(a)
	check := new(big.Int).Mul(root, root)
	return check.Cmp(a) == 0
}
