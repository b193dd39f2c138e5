package rsaimpl

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/weiz0823/cryptogo/derasn1"
)

// ErrKeyFormat is returned when DER key material doesn't match the
// expected PKCS#1 shape.
var ErrKeyFormat = errors.New("rsaimpl: malformed PKCS#1 key")

// EncodePublicKeyPKCS1 renders pub as the PKCS#1 RSAPublicKey SEQUENCE
// { n INTEGER, e INTEGER }.
func EncodePublicKeyPKCS1(pub *PublicKey) []byte {
	seq := derasn1.Sequence{derasn1.NewInt(pub.N), derasn1.NewInt(pub.E)}
	return seq.Encode()
}

// DecodePublicKeyPKCS1 parses a PKCS#1 RSAPublicKey SEQUENCE.
func DecodePublicKeyPKCS1(der []byte) (*PublicKey, error) {
	ints, err := decodeIntSequence(der, 2)
	if err != nil {
		return nil, err
	}
	return &PublicKey{N: ints[0], E: ints[1]}, nil
}

// EncodePrivateKeyPKCS1 renders priv as the PKCS#1 RSAPrivateKey SEQUENCE
// { version 0, n, e, d, p, q, dp, dq, qinv }, the two-prime form (version 0
// — multi-prime keys use version 1 and are out of scope here).
func EncodePrivateKeyPKCS1(priv *PrivateKey) []byte {
	seq := derasn1.Sequence{
		derasn1.NewInt(big.NewInt(0)),
		derasn1.NewInt(priv.N),
		derasn1.NewInt(priv.E),
		derasn1.NewInt(priv.D),
		derasn1.NewInt(priv.P),
		derasn1.NewInt(priv.Q),
		derasn1.NewInt(priv.DP),
		derasn1.NewInt(priv.DQ),
		derasn1.NewInt(priv.QInv),
	}
	return seq.Encode()
}

// DecodePrivateKeyPKCS1 parses a PKCS#1 RSAPrivateKey SEQUENCE, requiring
// the two-prime version (0).
func DecodePrivateKeyPKCS1(der []byte) (*PrivateKey, error) {
	ints, err := decodeIntSequence(der, 9)
	if err != nil {
		return nil, err
	}
	if ints[0].Sign() != 0 {
		return nil, fmt.Errorf("%w: multi-prime version not implemented", ErrKeyFormat)
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: ints[1], E: ints[2]},
		D:         ints[3],
		P:         ints[4], Q: ints[5],
		DP: ints[6], DQ: ints[7], QInv: ints[8],
	}, nil
}

func decodeIntSequence(der []byte, want int) ([]*big.Int, error) {
	v, n, err := derasn1.Decode(der)
	if err != nil {
		return nil, err
	}
	if n != len(der) {
		return nil, fmt.Errorf("%w: trailing data after SEQUENCE", ErrKeyFormat)
	}
	seq, ok := v.(derasn1.Sequence)
	if !ok {
		return nil, fmt.Errorf("%w: expected SEQUENCE", ErrKeyFormat)
	}
	if len(seq) != want {
		return nil, fmt.Errorf("%w: expected %d elements, got %d", ErrKeyFormat, want, len(seq))
	}
	out := make([]*big.Int, want)
	for i, elem := range seq {
		iv, ok := elem.(derasn1.Int)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is not an INTEGER", ErrKeyFormat, i)
		}
		out[i] = iv.Int
	}
	return out, nil
}
