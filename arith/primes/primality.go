package primes

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/weiz0823/cryptogo/arith"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
)

// ErrGenerationFailed is returned by STRandomPrime when its bounded retry
// budget is exhausted without finding a suitable prime. RandomPrime has no
// retry budget and never returns it.
var ErrGenerationFailed = errors.New("primes: exhausted retry budget without finding a prime")

// ErrBitLenTooSmall is returned by generators that require a minimum bit
// length (2 bits, the smallest value that can be prime in this API).
var ErrBitLenTooSmall = errors.New("primes: bit length must be at least 2")

// IsPrime checks primality, dispatching by size exactly as spec.md describes:
// below 2^16 it binary-searches the sieve, below 2^32 it trial-divides
// through the sieve, and above that it falls back to Miller-Rabin with small
// fixed bases (MillerRabinQuick).
func IsPrime(n *big.Int) bool {
	if n.BitLen() > 32 {
		return MillerRabinQuick(n, 10)
	}
	v := n.Int64()
	if v < 65536 {
		return binarySearchSieve(v)
	}
	for _, p := range sieve16 {
		if p*p > v {
			return true
		}
		if v%p == 0 {
			return false
		}
	}
	return true
}

func binarySearchSieve(n int64) bool {
	l, r := -1, len(sieve16)
	for r-l > 1 {
		m := (l + r) >> 1
		switch {
		case sieve16[m] < n:
			l = m
		case sieve16[m] > n:
			r = m
		default:
			return true
		}
	}
	return false
}

// MillerRabin is the randomized Miller-Rabin compositeness test: it
// decomposes w-1 = 2^a*m and performs iters independent trials with a
// uniformly random base in [2, w-2].
func MillerRabin(w *big.Int, iters int) bool {
	if w.Sign() < 0 {
		w = new(big.Int).Neg(w)
	}
	if w.Cmp(bigTwo) < 0 {
		return false
	}
	if w.Cmp(bigTwo) == 0 {
		return true
	}
	t := new(big.Int).Sub(w, bigOne)
	a := arith.TrailingZeros(t)
	m := new(big.Int).Rsh(t, uint(a))
	upper := new(big.Int).Sub(w, bigTwo) // base in [2, w-2] -> offset in [0, w-4]
	span := new(big.Int).Sub(upper, bigOne)
	for i := 0; i < iters; i++ {
		if !millerRabinTrial(w, t, m, a, randomBase(span)) {
			return false
		}
	}
	return true
}

func randomBase(span *big.Int) *big.Int {
	if span.Sign() <= 0 {
		return big.NewInt(2)
	}
	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		// crypto/rand failing is unrecoverable for any caller relying on
		// this for security-sensitive primality; there is no sane
		// fallback, so surface it as a panic rather than silently
		// downgrading to a weaker witness.
		panic(err)
	}
	return r.Add(r, bigTwo)
}

func millerRabinTrial(w, t, m *big.Int, a int, b *big.Int) bool {
	z := new(big.Int).Exp(b, m, w)
	if z.Cmp(bigOne) == 0 || z.Cmp(t) == 0 {
		return true
	}
	for j := 0; j < a-1; j++ {
		z.Mul(z, z)
		z.Mod(z, w)
		if z.Cmp(t) == 0 {
			return true
		}
		if z.Cmp(bigOne) == 0 {
			return false
		}
	}
	return false
}

// MillerRabinQuick runs Miller-Rabin using the first iters primes of the
// sieve as fixed bases, after first trial-dividing by those same small
// primes. It is deterministic (no randomness), matching the original
// source's miller_rabin_quick.
func MillerRabinQuick(w *big.Int, iters int) bool {
	if w.Sign() < 0 {
		w = new(big.Int).Neg(w)
	}
	if w.Cmp(bigTwo) < 0 {
		return false
	}
	if w.Cmp(bigTwo) == 0 {
		return true
	}
	for i := 0; i < iters && i < len(sieve16); i++ {
		b := big.NewInt(sieve16[i])
		switch w.Cmp(b) {
		case -1:
			return false
		case 0:
			return true
		}
		if new(big.Int).Mod(w, b).Sign() == 0 {
			return false
		}
	}
	t := new(big.Int).Sub(w, bigOne)
	a := arith.TrailingZeros(t)
	m := new(big.Int).Rsh(t, uint(a))
	for i := 0; i < iters && i < len(sieve16); i++ {
		b := big.NewInt(sieve16[i])
		if !millerRabinTrial(w, t, m, a, b) {
			return false
		}
	}
	return true
}

// GeneralLucasTest is the strong Lucas probable-prime test with
// Selfridge-chosen parameters: it searches the sequence D = 5, -7, 9, -11, ...
// for the first D with Jacobi(D/n) = -1, then walks the corresponding Lucas
// sequence U, V (P=1, Q=(1-D)/4) bit-by-bit over n+1, accepting iff
// U_{n+1} === 0 (mod n).
func GeneralLucasTest(n *big.Int) bool {
	if n.Bit(0) == 0 {
		return n.Cmp(bigTwo) == 0
	}
	if arith.IsPerfectSquare(n) {
		return false
	}
	d := big.NewInt(5)
	j := arith.NewMod(d, n).Jacobi()
	for j != -1 {
		// a shared factor proves n composite unless that factor is n itself
		// (|D| == n), in which case the search simply moves on
		if j == 0 && new(big.Int).Abs(d).Cmp(n) != 0 {
			return false
		}
		if d.Sign() > 0 {
			d = new(big.Int).Add(new(big.Int).Neg(d), big.NewInt(-2))
		} else {
			d = new(big.Int).Add(new(big.Int).Neg(d), bigTwo)
		}
		j = arith.NewMod(d, n).Jacobi()
	}

	m := new(big.Int).Add(n, bigOne)
	u := arith.NewMod(bigOne, n)
	v := arith.NewMod(bigOne, n)
	for i := m.BitLen() - 2; i >= 0; i-- {
		// k -> 2k
		uu, _ := u.Mul(u)
		vv, _ := v.Mul(v)
		term := uu.MulInt(d)
		newVpre, _ := vv.Add(term)
		newU, _ := u.Mul(v)
		newV := mustHalf(newVpre)
		u, v = newU, newV

		if m.Bit(i) == 1 {
			// 2k -> 2k+1, from P=1
			sum, _ := u.Add(v)
			term2 := u.MulInt(d)
			sum2, _ := v.Add(term2)
			u, v = mustHalf(sum), mustHalf(sum2)
		}
	}
	return u.IsZero()
}

func mustHalf(m *arith.Mod) *arith.Mod {
	h, err := m.Half()
	if err != nil {
		// n is guaranteed odd by GeneralLucasTest's caller guard, so Half
		// always takes the odd-modulus branch and cannot fail.
		panic(err)
	}
	return h
}

// BailliePSW is the Baillie-PSW compositeness test: small-prime trial
// division, a single Miller-Rabin trial on base 2, then the strong Lucas
// test. No known composite passes it.
func BailliePSW(n *big.Int) bool {
	const trialIters = 10
	const mrIters = 1
	if n.BitLen() <= 32 && n.Int64() <= sieve16[mrIters-1] {
		return IsPrime(n)
	}
	for i := mrIters; i < trialIters; i++ {
		p := big.NewInt(sieve16[i])
		switch n.Cmp(p) {
		case -1:
			return false
		case 0:
			return true
		}
		if new(big.Int).Mod(n, p).Sign() == 0 {
			return false
		}
	}
	if !MillerRabinQuick(n, 1) {
		return false
	}
	return GeneralLucasTest(n)
}

// ToNextPrime returns the smallest odd probable prime >= max(3, a|1).
func ToNextPrime(a *big.Int) *big.Int {
	if a.Cmp(bigTwo) <= 0 {
		return big.NewInt(3)
	}
	c := new(big.Int).Set(a)
	c.SetBit(c, 0, 1)
	for !MillerRabinQuick(c, 10) {
		c.Add(c, bigTwo)
	}
	return c
}

// RandomPrime draws a uniformly random odd bitlen-bit candidate and jumps to
// the next probable prime, retrying whenever the jump changes the bit
// length.
func RandomPrime(bitlen int) (*big.Int, error) {
	if bitlen < 2 {
		return nil, ErrBitLenTooSmall
	}
	if bitlen == 2 {
		return randomRange(2, 3)
	}
	for {
		cand, err := arith.FixedRandBits(bitlen, true)
		if err != nil {
			return nil, err
		}
		p := ToNextPrime(cand)
		if p.BitLen() == bitlen {
			return p, nil
		}
	}
}

func randomRange(lo, hi int64) (*big.Int, error) {
	span := big.NewInt(hi - lo + 1)
	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return r.Add(r, big.NewInt(lo)), nil
}

// STRandomPrime constructs a bitlen-bit provable prime using the
// Shawe-Taylor algorithm (FIPS 186-4 Appendix C.6). When factor is non-nil,
// the returned prime p satisfies (p-1) mod factor == 0; factor's bit length
// must be smaller than (bitlen-5)/2.
func STRandomPrime(bitlen int, factor *big.Int) (*big.Int, error) {
	if bitlen < 2 {
		return nil, ErrBitLenTooSmall
	}
	if bitlen == 2 {
		return randomRange(2, 3)
	}
	if bitlen < 33 {
		for i := 0; i < bitlen<<2; i++ {
			p, err := arith.FixedRandBits(bitlen, true)
			if err != nil {
				return nil, err
			}
			if IsPrime(p) {
				return p, nil
			}
		}
		return nil, ErrGenerationFailed
	}
	if factor != nil && factor.BitLen() >= (bitlen-5)>>1 {
		return nil, errors.New("primes: required factor too large")
	}

	p0, err := STRandomPrime((bitlen+3)>>1, nil)
	if err != nil {
		return nil, err
	}

	p2 := new(big.Int).Lsh(p0, 1) // 2*p0
	exp := bigTwo
	if factor != nil {
		p2.Mul(p2, factor)
		exp = new(big.Int).Lsh(factor, 1) // 2*factor, used in the a^(2t*factor) exponent below
	}

	x, err := arith.FixedRandBits(bitlen, false)
	if err != nil {
		return nil, err
	}
	t := arith.CeilDiv(x, p2)

	for i := 0; i < bitlen<<2; i++ {
		p := new(big.Int).Add(new(big.Int).Mul(p2, t), bigOne)
		if p.BitLen() != bitlen {
			fallback := new(big.Int).Lsh(bigOne, uint(bitlen-1))
			t = arith.CeilDiv(fallback, p2)
			p = new(big.Int).Add(new(big.Int).Mul(p2, t), bigOne)
		}

		a, err := randomRangeBig(bigTwo, new(big.Int).Sub(p, bigTwo))
		if err != nil {
			return nil, err
		}

		var zExp *big.Int
		if factor != nil {
			zExp = new(big.Int).Mul(exp, t) // (2t)*factor, exp already holds 2*factor
		} else {
			zExp = new(big.Int).Mul(t, bigTwo)
		}
		z := new(big.Int).Exp(a, zExp, p)

		zm1 := new(big.Int).Sub(z, bigOne)
		g := new(big.Int).GCD(nil, nil, zm1, p)
		if g.Cmp(bigOne) == 0 && new(big.Int).Exp(z, p0, p).Cmp(bigOne) == 0 {
			return p, nil
		}
		t = new(big.Int).Add(t, bigOne)
	}
	return nil, ErrGenerationFailed
}

func randomRangeBig(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)
	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return r.Add(r, lo), nil
}
