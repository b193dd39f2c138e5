package rsaimpl

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"

	"github.com/weiz0823/cryptogo/arith"
)

// ErrMessageTooLong is returned when a padding scheme cannot fit its
// message and overhead into the key's modulus size.
var ErrMessageTooLong = errors.New("rsaimpl: message too long for modulus")

// ErrDecryption is a deliberately generic error for any RSADP/unpadding
// failure, returned instead of a more specific cause to avoid turning a
// padding oracle into an error-message oracle.
var ErrDecryption = errors.New("rsaimpl: decryption error")

// ErrVerification is returned when a signature fails to verify. Like
// ErrDecryption, it carries no detail about which check failed.
var ErrVerification = errors.New("rsaimpl: verification error")

var bigOne = big.NewInt(1)

// RSAEP is the RSA encryption primitive: m^e mod n. m must satisfy
// 0 <= m < n.
func RSAEP(pub *PublicKey, m *big.Int) (*big.Int, error) {
	if m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, errors.New("rsaimpl: message representative out of range")
	}
	return new(big.Int).Exp(m, pub.E, pub.N), nil
}

// RSAVP is the RSA verification primitive, identical to RSAEP: s^e mod n.
func RSAVP(pub *PublicKey, s *big.Int) (*big.Int, error) {
	return RSAEP(pub, s)
}

// RSADPPlain is the RSA decryption primitive computed directly as
// c^d mod n, without the CRT shortcut. It exists for cross-checking RSADP
// and for keys that (unusually) lack CRT parameters.
func RSADPPlain(priv *PrivateKey, c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, errors.New("rsaimpl: ciphertext representative out of range")
	}
	return new(big.Int).Exp(c, priv.D, priv.N), nil
}

// RSASP is the RSA signature primitive, identical to RSADP: c^d mod n via
// CRT.
func RSASP(priv *PrivateKey, c *big.Int) (*big.Int, error) {
	return RSADP(nil, priv, c)
}

// RSADP is the RSA decryption primitive computed via CRT recombination:
//
//	mp = c^dp mod p
//	mq = c^dq mod q
//	m  = CRT(mq, mp, qinv)
//
// If random is non-nil, the exponentiation is blinded against timing
// side-channels by multiplying c by a random r^e before exponentiating and
// dividing the result by r afterward. Pass crypto/rand.Reader for blinding,
// or nil to skip it (e.g. in tests where determinism matters more than
// side-channel resistance).
func RSADP(random io.Reader, priv *PrivateKey, c *big.Int) (*big.Int, error) {
	if c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
		return nil, errors.New("rsaimpl: ciphertext representative out of range")
	}

	var unblind *big.Int
	cc := c
	if random != nil {
		var r, rInv *big.Int
		for {
			var err error
			r, err = rand.Int(random, priv.N)
			if err != nil {
				return nil, err
			}
			if r.Sign() == 0 {
				r = bigOne
			}
			rInv = new(big.Int).ModInverse(r, priv.N)
			if rInv != nil {
				break
			}
		}
		rpowe := new(big.Int).Exp(r, priv.E, priv.N)
		cc = new(big.Int).Mul(c, rpowe)
		cc.Mod(cc, priv.N)
		unblind = rInv
	}

	mp, err := arith.NewMod(cc, priv.P).Pow(priv.DP)
	if err != nil {
		return nil, err
	}
	mq, err := arith.NewMod(cc, priv.Q).Pow(priv.DQ)
	if err != nil {
		return nil, err
	}
	combined, err := arith.CRT(mq, mp, priv.QInv)
	if err != nil {
		return nil, err
	}
	m := combined.Value

	if unblind != nil {
		m.Mul(m, unblind)
		m.Mod(m, priv.N)
	}
	return m, nil
}
