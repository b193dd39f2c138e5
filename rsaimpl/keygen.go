package rsaimpl

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/weiz0823/cryptogo/arith"
	"github.com/weiz0823/cryptogo/arith/primes"
	"github.com/weiz0823/cryptogo/seclog"
)

// ErrKeyTooSmall flags a requested modulus size this package refuses to
// generate (it cannot even fit two distinct same-size primes).
var ErrKeyTooSmall = errors.New("rsaimpl: bitlen too small to generate a key")

// eMin and eMax bound the public exponent draw: e is uniform in
// [eMin, eMax), i.e. [2^16, 2^256).
var (
	eMin = new(big.Int).Lsh(bigOne, 16)
	eMax = new(big.Int).Lsh(bigOne, 256)
)

// GenerateKey produces a fresh bitlen-bit two-prime RSA key pair: p and q
// are independently drawn probable primes of ceil(bitlen/2) bits (retried until
// their product is exactly bitlen bits), and e is drawn uniformly from odd
// values in [2^16, 2^256) until one is invertible mod lambda(n) =
// lcm(p-1, q-1). Generating a key shorter than 1024 bits is allowed but
// logs a security warning.
func GenerateKey(bitlen int) (*PrivateKey, error) {
	if bitlen < 16 {
		return nil, ErrKeyTooSmall
	}
	if bitlen < 1024 {
		seclog.Warnf("generating a %d-bit RSA key; bitlen < 1024 is insecure", bitlen)
	}
	pbit := (bitlen + 1) >> 1

	var p, q, n *big.Int
	for {
		var err error
		p, err = primes.RandomPrime(pbit)
		if err != nil {
			return nil, err
		}
		q, err = primes.RandomPrime(pbit)
		if err != nil {
			return nil, err
		}
		n = new(big.Int).Mul(p, q)
		if n.BitLen() == bitlen {
			break
		}
	}

	pm1 := new(big.Int).Sub(p, bigOne)
	qm1 := new(big.Int).Sub(q, bigOne)
	lambda := arith.Lcm(pm1, qm1)

	eSpan := new(big.Int).Sub(eMax, eMin)
	var e, d *big.Int
	for d == nil {
		r, err := rand.Int(rand.Reader, eSpan)
		if err != nil {
			return nil, err
		}
		e = new(big.Int).Add(r, eMin)
		e.SetBit(e, 0, 1)
		inv, invErr := arith.NewMod(e, lambda).Inv()
		if invErr == nil {
			d = inv.Value
		}
	}

	return NewPrivateKey(p, q, e, d), nil
}
