package rsaimpl

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
	"math/big"

	"github.com/weiz0823/cryptogo/hashid"
)

// EncryptPKCS1v15 implements RSAES-PKCS1-V1_5-ENCRYPT (RFC 8017 7.2.1): it
// pads message as EB = 0x00 || 0x02 || PS || 0x00 || message, where PS is
// nonzero random padding filling the rest of the k-octet block, then applies
// RSAEP.
func EncryptPKCS1v15(random io.Reader, pub *PublicKey, message []byte) ([]byte, error) {
	k := pub.Size()
	if len(message) > k-11 {
		return nil, ErrMessageTooLong
	}

	eb := make([]byte, k)
	eb[1] = 2
	ps := eb[2 : k-len(message)-1]
	if err := fillNonZero(random, ps); err != nil {
		return nil, err
	}
	copy(eb[k-len(message):], message)

	m := new(big.Int).SetBytes(eb)
	c, err := RSAEP(pub, m)
	if err != nil {
		return nil, err
	}
	out := make([]byte, k)
	c.FillBytes(out)
	return out, nil
}

func fillNonZero(random io.Reader, b []byte) error {
	if random == nil {
		random = rand.Reader
	}
	for i := 0; i < len(b); {
		chunk := make([]byte, len(b)-i)
		if _, err := io.ReadFull(random, chunk); err != nil {
			return err
		}
		for _, c := range chunk {
			if c != 0 {
				b[i] = c
				i++
			}
		}
	}
	return nil
}

// DecryptPKCS1v15 implements RSAES-PKCS1-V1_5-DECRYPT (RFC 8017 7.2.2),
// unpadding EB = 0x00 || 0x02 || PS || 0x00 || message. It reports the
// single ErrDecryption for every failure (short ciphertext, bad leading
// bytes, a missing 0x00 separator) to avoid leaking which check failed.
func DecryptPKCS1v15(random io.Reader, priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	k := priv.Size()
	if len(ciphertext) != k || k < 11 {
		return nil, ErrDecryption
	}
	c := new(big.Int).SetBytes(ciphertext)
	m, err := RSADP(random, priv, c)
	if err != nil {
		return nil, ErrDecryption
	}
	eb := make([]byte, k)
	m.FillBytes(eb)

	ok := subtle.ConstantTimeByteEq(eb[0], 0)
	ok &= subtle.ConstantTimeByteEq(eb[1], 2)
	sepIndex := 0
	found := 0
	for i := 2; i < k; i++ {
		isZero := subtle.ConstantTimeByteEq(eb[i], 0)
		first := found ^ 1
		found |= isZero
		sepIndex = subtle.ConstantTimeSelect(first&isZero, i, sepIndex)
	}
	ok &= found
	ok &= subtle.ConstantTimeLessOrEq(2+8, sepIndex) // at least 8 bytes of padding
	if ok != 1 {
		return nil, ErrDecryption
	}
	return eb[sepIndex+1:], nil
}

// hashPrefix is the DER encoding of DigestInfo's AlgorithmIdentifier
// (everything up to, but not including, the digest octets): SEQUENCE {
// SEQUENCE { algorithm, NULL }, OCTET STRING digest }, truncated before
// the digest.
func hashPrefix(alg hashid.Algorithm) []byte {
	algID := []byte{0x30}
	body := alg.OID.Encode()
	body = append(body, 0x05, 0x00) // NULL
	algID = append(algID, encodeASN1Length(len(body))...)
	algID = append(algID, body...)

	digestField := []byte{0x04}
	digestField = append(digestField, encodeASN1Length(alg.HLen)...)

	outer := []byte{0x30}
	innerLen := len(algID) + len(digestField) + alg.HLen
	outer = append(outer, encodeASN1Length(innerLen)...)
	outer = append(outer, algID...)
	outer = append(outer, digestField...)
	return outer
}

// encodeASN1Length renders DER length octets for n, following the same
// short/long form rules as derasn1's length encoding.
func encodeASN1Length(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var rev []byte
	for n > 0 {
		rev = append(rev, byte(n&0xFF))
		n >>= 8
	}
	out := []byte{0x80 | byte(len(rev))}
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// SignPKCS1v15 implements RSASSA-PKCS1-V1_5-SIGN (RFC 8017 8.2.1): it
// builds EM = 0x00 || 0x01 || PS(0xFF) || 0x00 || DigestInfo(hashAlg, hashed)
// and applies RSASP. hashed must already be the hashAlg digest of the
// message.
func SignPKCS1v15(random io.Reader, priv *PrivateKey, hashAlg hashid.Algorithm, hashed []byte) ([]byte, error) {
	if len(hashed) != hashAlg.HLen {
		return nil, ErrMessageTooLong
	}
	prefix := hashPrefix(hashAlg)
	tLen := len(prefix) + hashAlg.HLen
	k := priv.Size()
	if k < tLen+11 {
		return nil, ErrMessageTooLong
	}

	em := make([]byte, k)
	em[1] = 1
	for i := 2; i < k-tLen-1; i++ {
		em[i] = 0xFF
	}
	copy(em[k-tLen:k-hashAlg.HLen], prefix)
	copy(em[k-hashAlg.HLen:], hashed)

	m := new(big.Int).SetBytes(em)
	c, err := RSASP(priv, m)
	if err != nil {
		return nil, err
	}
	out := make([]byte, k)
	c.FillBytes(out)
	return out, nil
}

// VerifyPKCS1v15 implements RSASSA-PKCS1-V1_5-VERIFY (RFC 8017 8.2.2).
func VerifyPKCS1v15(pub *PublicKey, hashAlg hashid.Algorithm, hashed, sig []byte) error {
	prefix := hashPrefix(hashAlg)
	tLen := len(prefix) + hashAlg.HLen
	k := pub.Size()
	if k < tLen+11 || k != len(sig) {
		return ErrVerification
	}

	c := new(big.Int).SetBytes(sig)
	m, err := RSAVP(pub, c)
	if err != nil {
		return ErrVerification
	}
	em := make([]byte, k)
	m.FillBytes(em)

	ok := subtle.ConstantTimeByteEq(em[0], 0)
	ok &= subtle.ConstantTimeByteEq(em[1], 1)
	ok &= subtle.ConstantTimeCompare(em[k-hashAlg.HLen:k], hashed)
	ok &= subtle.ConstantTimeCompare(em[k-tLen:k-hashAlg.HLen], prefix)
	ok &= subtle.ConstantTimeByteEq(em[k-tLen-1], 0)
	for i := 2; i < k-tLen-1; i++ {
		ok &= subtle.ConstantTimeByteEq(em[i], 0xFF)
	}
	if ok != 1 {
		return ErrVerification
	}
	return nil
}
