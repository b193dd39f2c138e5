// Package rsaimpl implements RSA from its number-theoretic primitives up:
// RSAEP/RSADP/RSASP/RSAVP, CRT-accelerated decryption with blinding,
// PKCS#1 v1.5 encryption and signatures, RSAES-OAEP, RSASSA-PSS, and
// PKCS#1 DER key import/export. It never calls into crypto/rsa; the only
// stdlib crypto surface it touches is crypto/rand (for blinding and
// padding randomness) and crypto/subtle (for constant-time comparisons).
package rsaimpl

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/weiz0823/cryptogo/arith"
)

// PublicKey is an RSA public key: modulus n and public exponent e.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// BitLen returns the bit length of the modulus.
func (k *PublicKey) BitLen() int { return k.N.BitLen() }

// Size returns the modulus length in octets, rounding up.
func (k *PublicKey) Size() int { return (k.BitLen() + 7) >> 3 }

func (k *PublicKey) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- begin RSA-%d public key ---\n", k.BitLen())
	fmt.Fprintf(&b, "Modulus n = %s\n", k.N.String())
	fmt.Fprintf(&b, "Public exponent e = %s\n", k.E.String())
	fmt.Fprintf(&b, "--- end RSA-%d public key ---", k.BitLen())
	return b.String()
}

// PrivateKey is an RSA private key in two-prime CRT form.
type PrivateKey struct {
	PublicKey
	D    *big.Int
	P, Q *big.Int
	// DP, DQ, QInv are the CRT parameters: d mod (p-1), d mod (q-1), and
	// q^-1 mod p.
	DP, DQ, QInv *big.Int
}

// NewPrivateKey builds a PrivateKey from p, q, e and d, deriving the CRT
// parameters. It does not verify that p and q are prime or that d is e's
// inverse mod lambda(n); callers that build keys from untrusted material
// should validate those properties first.
func NewPrivateKey(p, q, e, d *big.Int) *PrivateKey {
	n := new(big.Int).Mul(p, q)
	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	qm1 := new(big.Int).Sub(q, big.NewInt(1))
	dp := new(big.Int).Mod(d, pm1)
	dq := new(big.Int).Mod(d, qm1)
	qinv, err := arith.NewMod(q, p).Inv()
	if err != nil {
		// p, q are supposed to be distinct primes; a non-invertible q mod
		// p means the caller handed us a malformed key pair.
		panic(err)
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
		P:         p, Q: q,
		DP: dp, DQ: dq, QInv: qinv.Value,
	}
}

func (k *PrivateKey) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- begin RSA-%d private key ---\n", k.BitLen())
	fmt.Fprintf(&b, "Prime p = %s\n", k.P.String())
	fmt.Fprintf(&b, "Prime q = %s\n", k.Q.String())
	fmt.Fprintf(&b, "Modulus n = %s\n", k.N.String())
	fmt.Fprintf(&b, "Public exponent e = %s\n", k.E.String())
	fmt.Fprintf(&b, "Private exponent d = %s\n", k.D.String())
	b.WriteString("Additional information for CRT:\n")
	fmt.Fprintf(&b, "dp = d mod (p-1) = %s\n", k.DP.String())
	fmt.Fprintf(&b, "dq = d mod (q-1) = %s\n", k.DQ.String())
	fmt.Fprintf(&b, "qinv = q^-1 mod p = %s\n", k.QInv.String())
	fmt.Fprintf(&b, "--- end RSA-%d private key ---", k.BitLen())
	return b.String()
}
