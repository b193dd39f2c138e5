// Package dsa implements the Digital Signature Algorithm: domain parameter
// generation, key generation, and FIPS 186-4 sign/verify, built on the
// arbitrary-precision primitives in arith and arith/primes.
package dsa

import (
	"errors"
	"math/big"

	"github.com/weiz0823/cryptogo/derasn1"
	"github.com/weiz0823/cryptogo/hashid"
	"github.com/weiz0823/cryptogo/seclog"
)

var idX957Algorithm = derasn1.NewOID("1.2.840.10040.4", "/ISO/Member-Body/US/X9-57/X9Algorithm")

// IDDSA is the X9.57 object identifier for the DSA algorithm.
var IDDSA = idX957Algorithm.Subnode("1", "DSA")

var (
	// ErrInvalidSignature is returned by Verify when s has no inverse mod q.
	// An r or s outside the range (0, q) is reported as (false, nil)
	// instead.
	ErrInvalidSignature = errors.New("dsa: signature out of range")
	// ErrDomainMismatch names a public and private key pair, or a key and
	// domain, that don't agree. No function in this package returns it.
	ErrDomainMismatch = errors.New("dsa: key does not match domain parameters")
)

// Domain holds the shared DSA domain parameters: prime modulus P, prime
// order Q dividing P-1, and generator G of the order-Q subgroup of Z*_p.
type Domain struct {
	L, N    int
	P, Q, G *big.Int
}

// Encode returns the DER SEQUENCE{p, q, g} encoding of the domain
// parameters, as used inside an AlgorithmIdentifier for dsaWithSHA*.
func (d *Domain) Encode() []byte {
	return derasn1.Sequence{
		derasn1.NewInt(d.P),
		derasn1.NewInt(d.Q),
		derasn1.NewInt(d.G),
	}.Encode()
}

// PublicKey is a DSA public key: the domain parameters plus the public
// value Y = G^X mod P.
type PublicKey struct {
	Domain *Domain
	Y      *big.Int
}

// Encode returns the DER INTEGER encoding of the public value Y.
func (pub *PublicKey) Encode() []byte {
	return derasn1.NewInt(pub.Y).Encode()
}

// PrivateKey is a DSA private key: the domain parameters, the secret
// exponent X, and the corresponding public value Y.
type PrivateKey struct {
	Domain *Domain
	X, Y   *big.Int
}

// Public returns the PublicKey half of priv.
func (priv *PrivateKey) Public() *PublicKey {
	return &PublicKey{Domain: priv.Domain, Y: priv.Y}
}

// Encode returns the DER INTEGER encoding of the private exponent X.
func (priv *PrivateKey) Encode() []byte {
	return derasn1.NewInt(priv.X).Encode()
}

// SecureLN returns the (L, N) bit-length pair — modulus size and subgroup
// order size — whose DSA security strength is at least as great as
// strength, per NIST SP 800-57 Part 1, Table 2.
func SecureLN(strength int) (l, n int) {
	switch {
	case strength <= 80:
		return 1024, 160
	case strength <= 112:
		return 2048, 224
	case strength <= 128:
		return 3072, 256
	case strength <= 192:
		return 7680, 384
	case strength <= 256:
		return 15360, 512
	default:
		seclog.Warnf("maximum security strength for DSA is 256 for (L,N)=(15360,512); got %d", strength)
		return 15360, 512
	}
}

func hashToExponent(domain *Domain, hashAlg hashid.Algorithm, msg []byte) *big.Int {
	hashid.CheckDomainBound(hashAlg, len(msg))
	h := hashAlg.Invoke(msg)
	klen := domain.N >> 3
	if klen < len(h) {
		h = h[:klen]
	}
	return new(big.Int).SetBytes(h)
}
