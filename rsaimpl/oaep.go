package rsaimpl

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
	"math/big"

	"github.com/weiz0823/cryptogo/hashid"
	"github.com/weiz0823/cryptogo/mgf"
)

// EncryptOAEP implements RSAES-OAEP-ENCRYPT (RFC 8017 7.1.1). label is the
// optional encoding parameter P (pass nil for the empty label); hashAlg is
// both the hash used on the label and MGF1's underlying hash.
func EncryptOAEP(random io.Reader, pub *PublicKey, hashAlg hashid.Algorithm, message, label []byte) ([]byte, error) {
	if random == nil {
		random = rand.Reader
	}
	k := pub.Size()
	hLen := hashAlg.HLen
	if len(message) > k-2*hLen-2 {
		return nil, ErrMessageTooLong
	}

	lHash := hashAlg.Invoke(label)
	psLen := k - len(message) - 2*hLen - 2
	db := make([]byte, 0, k-hLen-1)
	db = append(db, lHash...)
	db = append(db, make([]byte, psLen)...)
	db = append(db, 0x01)
	db = append(db, message...)

	seed := make([]byte, hLen)
	if _, err := io.ReadFull(random, seed); err != nil {
		return nil, err
	}

	dbMask, err := mgf.MGF1(seed, k-hLen-1, hashAlg)
	if err != nil {
		return nil, err
	}
	maskedDB := xorBytes(db, dbMask)

	seedMask, err := mgf.MGF1(maskedDB, hLen, hashAlg)
	if err != nil {
		return nil, err
	}
	maskedSeed := xorBytes(seed, seedMask)

	em := make([]byte, 0, k)
	em = append(em, 0x00)
	em = append(em, maskedSeed...)
	em = append(em, maskedDB...)

	m := new(big.Int).SetBytes(em)
	c, err := RSAEP(pub, m)
	if err != nil {
		return nil, err
	}
	out := make([]byte, k)
	c.FillBytes(out)
	return out, nil
}

// DecryptOAEP implements RSAES-OAEP-DECRYPT (RFC 8017 7.1.2). Every failure
// — wrong ciphertext length, bad leading octet, label-hash mismatch, a
// missing 0x01 separator — collapses to the single ErrDecryption, checked
// in constant time where practical, so OAEP's own Manger-attack mitigation
// isn't undone by a more talkative error.
func DecryptOAEP(random io.Reader, priv *PrivateKey, hashAlg hashid.Algorithm, ciphertext, label []byte) ([]byte, error) {
	k := priv.Size()
	hLen := hashAlg.HLen
	if len(ciphertext) != k || k < 2*hLen+2 {
		return nil, ErrDecryption
	}

	c := new(big.Int).SetBytes(ciphertext)
	m, err := RSADP(random, priv, c)
	if err != nil {
		return nil, ErrDecryption
	}
	em := make([]byte, k)
	m.FillBytes(em)

	maskedSeed := em[1 : 1+hLen]
	maskedDB := em[1+hLen:]

	seedMask, err := mgf.MGF1(maskedDB, hLen, hashAlg)
	if err != nil {
		return nil, ErrDecryption
	}
	seed := xorBytes(maskedSeed, seedMask)

	dbMask, err := mgf.MGF1(seed, k-hLen-1, hashAlg)
	if err != nil {
		return nil, ErrDecryption
	}
	db := xorBytes(maskedDB, dbMask)

	lHash := hashAlg.Invoke(label)
	gotLHash := db[:hLen]

	ok := subtle.ConstantTimeByteEq(em[0], 0)
	ok &= subtle.ConstantTimeCompare(gotLHash, lHash)

	rest := db[hLen:]
	sepIndex := 0
	found := 0
	badPadding := 0
	for i := 0; i < len(rest); i++ {
		isOne := subtle.ConstantTimeByteEq(rest[i], 1)
		isZero := subtle.ConstantTimeByteEq(rest[i], 0)
		first := (found ^ 1) & isOne
		sepIndex = subtle.ConstantTimeSelect(first, i, sepIndex)
		found |= isOne
		badPadding |= (found ^ 1) &^ isZero // a non-zero byte before the separator
	}
	ok &= found
	ok &= badPadding ^ 1
	if ok != 1 {
		return nil, ErrDecryption
	}
	return rest[sepIndex+1:], nil
}

func xorBytes(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}
