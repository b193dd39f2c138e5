package dsa

import (
	"math/big"

	"github.com/weiz0823/cryptogo/arith"
	"github.com/weiz0823/cryptogo/hashid"
)

// Verify reports whether sig is a valid DSA signature over msg under pub,
// hashing msg with hashAlg (which must match the algorithm used to sign).
// It returns (false, nil) for a malformed or simply invalid signature,
// including an R or S outside (0, Q), and only returns ErrInvalidSignature
// when an in-range S has no inverse mod Q.
func Verify(pub *PublicKey, hashAlg hashid.Algorithm, msg []byte, sig *Signature) (bool, error) {
	domain := pub.Domain
	if sig.R.Sign() <= 0 || sig.R.Cmp(domain.Q) >= 0 {
		return false, nil
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(domain.Q) >= 0 {
		return false, nil
	}

	w, err := arith.NewMod(sig.S, domain.Q).Inv()
	if err != nil {
		return false, ErrInvalidSignature
	}
	h := hashToExponent(domain, hashAlg, msg)

	u1 := w.MulInt(h).Value
	u2 := w.MulInt(sig.R).Value

	v1 := new(big.Int).Exp(domain.G, u1, domain.P)
	v2 := new(big.Int).Exp(pub.Y, u2, domain.P)
	v := new(big.Int).Mul(v1, v2)
	v.Mod(v, domain.P)
	v.Mod(v, domain.Q)

	return v.Cmp(sig.R) == 0, nil
}
