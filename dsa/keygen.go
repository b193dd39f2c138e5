package dsa

import "math/big"

// Keygen draws a secret exponent X uniformly from [1, Q-1] and computes the
// corresponding public value Y = G^X mod P, returning the public/private
// pair bound to domain.
func Keygen(domain *Domain) (*PublicKey, *PrivateKey, error) {
	qMinus1 := new(big.Int).Sub(domain.Q, bigOne)
	x, err := randomRange(bigOne, qMinus1)
	if err != nil {
		return nil, nil, err
	}
	y := new(big.Int).Exp(domain.G, x, domain.P)
	priv := &PrivateKey{Domain: domain, X: x, Y: y}
	return priv.Public(), priv, nil
}
