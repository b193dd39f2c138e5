package dsa

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/weiz0823/cryptogo/arith/primes"
)

// ErrDomainTooSmall is returned by DomainGen when l is shorter than the
// smallest length FIPS 186-4 permits for DSA.
var ErrDomainTooSmall = errors.New("dsa: modulus length below 1024 bits is insecure")

var (
	bigOne = big.NewInt(1)
	bigTwo = big.NewInt(2)
)

// DomainGen constructs fresh DSA domain parameters with an L-bit modulus P
// and an N-bit subgroup order Q, following the Shawe-Taylor provable-prime
// construction of FIPS 186-4 Appendix A.1.2.
//
// Q is generated first as a provable N-bit prime; P is then generated as a
// provable L-bit prime with Q required to divide P-1. G is found as h^((P-1)/Q)
// mod P for a random h in [2, P-2], retried until G != 1.
func DomainGen(l, n int) (*Domain, error) {
	if l < 1024 {
		return nil, ErrDomainTooSmall
	}
	q, err := primes.STRandomPrime(n, nil)
	if err != nil {
		return nil, err
	}
	p, err := primes.STRandomPrime(l, q)
	if err != nil {
		return nil, err
	}
	e := new(big.Int).Sub(p, bigOne)
	e.Div(e, q)

	pMinus2 := new(big.Int).Sub(p, bigTwo)
	g := bigOne
	for g.Cmp(bigOne) == 0 {
		h, err := randomRange(bigTwo, pMinus2)
		if err != nil {
			return nil, err
		}
		g = new(big.Int).Exp(h, e, p)
	}
	return &Domain{L: l, N: n, P: p, Q: q, G: g}, nil
}

// randomRange returns a uniform random integer in [lo, hi], inclusive.
func randomRange(lo, hi *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)
	r, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, err
	}
	return r.Add(r, lo), nil
}
