package dsa

import (
	"math/big"

	"github.com/weiz0823/cryptogo/arith"
	"github.com/weiz0823/cryptogo/derasn1"
	"github.com/weiz0823/cryptogo/hashid"
)

// Signature is a DSA signature pair (r, s).
type Signature struct {
	R, S *big.Int
}

// Encode returns the DER SEQUENCE{r, s} encoding of the signature, the
// conventional wire format for a DSA signature.
func (sig Signature) Encode() []byte {
	return derasn1.Sequence{derasn1.NewInt(sig.R), derasn1.NewInt(sig.S)}.Encode()
}

// Sign computes a DSA signature over msg under priv, hashing msg with
// hashAlg first. If hashAlg's digest is wider than priv.Domain's subgroup
// order, the digest is truncated to the leftmost N bits before use, per
// FIPS 186-4 §4.6.
func Sign(priv *PrivateKey, hashAlg hashid.Algorithm, msg []byte) (*Signature, error) {
	domain := priv.Domain
	h := hashToExponent(domain, hashAlg, msg)

	r := big.NewInt(0)
	s := big.NewInt(0)
	qMinus1 := new(big.Int).Sub(domain.Q, bigOne)
	for r.Sign() == 0 || s.Sign() == 0 {
		k, err := randomRange(bigOne, qMinus1)
		if err != nil {
			return nil, err
		}
		kInv, err := arith.NewMod(k, domain.Q).Inv()
		if err != nil {
			continue
		}
		r = new(big.Int).Exp(domain.G, k, domain.P)
		r.Mod(r, domain.Q)

		xr := new(big.Int).Mul(priv.X, r)
		xr.Add(xr, h)
		s = kInv.MulInt(xr).Value
	}
	return &Signature{R: r, S: s}, nil
}
