package rsaimpl

import (
	"crypto/rand"
	"crypto/subtle"
	"io"
	"math/big"

	"github.com/weiz0823/cryptogo/hashid"
	"github.com/weiz0823/cryptogo/mgf"
)

// SignPSS implements RSASSA-PSS-SIGN (RFC 8017 9.1.1): it builds the
// probabilistic signature EM = maskedDB || H || 0xBC, where H is the hash
// of an 8-zero-byte padding, the message hash, and a random salt of
// saltLen bytes, then applies RSASP.
func SignPSS(random io.Reader, priv *PrivateKey, hashAlg hashid.Algorithm, message []byte, saltLen int) ([]byte, error) {
	if random == nil {
		random = rand.Reader
	}
	emBits := priv.BitLen() - 1
	emLen := (emBits + 7) >> 3
	hLen := hashAlg.HLen
	if emLen < hLen+saltLen+2 {
		return nil, ErrMessageTooLong
	}

	hashid.CheckDomainBound(hashAlg, len(message))
	mHash := hashAlg.Invoke(message)
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(random, salt); err != nil {
		return nil, err
	}

	mPrime := make([]byte, 0, 8+hLen+saltLen)
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, mHash...)
	mPrime = append(mPrime, salt...)
	h := hashAlg.Invoke(mPrime)

	psLen := emLen - saltLen - hLen - 2
	db := make([]byte, 0, emLen-hLen-1)
	db = append(db, make([]byte, psLen)...)
	db = append(db, 0x01)
	db = append(db, salt...)

	dbMask, err := mgf.MGF1(h, emLen-hLen-1, hashAlg)
	if err != nil {
		return nil, err
	}
	maskedDB := xorBytes(db, dbMask)
	clearTopBits(maskedDB, 8*emLen-emBits)

	em := make([]byte, 0, emLen)
	em = append(em, maskedDB...)
	em = append(em, h...)
	em = append(em, 0xBC)

	m := new(big.Int).SetBytes(em)
	c, err := RSASP(priv, m)
	if err != nil {
		return nil, err
	}
	out := make([]byte, priv.Size())
	c.FillBytes(out)
	return out, nil
}

// VerifyPSS implements RSASSA-PSS-VERIFY (RFC 8017 9.1.2). It returns
// (false, nil) for any malformed-but-not-erroring signature (wrong length,
// bad trailer byte, hash mismatch) and only returns a non-nil error for
// genuinely exceptional conditions (the representative out of range for
// RSAVP), matching the spec's contract that signature verification never
// signals failure through an error.
func VerifyPSS(pub *PublicKey, hashAlg hashid.Algorithm, message, sig []byte, saltLen int) (bool, error) {
	k := pub.Size()
	if len(sig) != k {
		return false, nil
	}
	c := new(big.Int).SetBytes(sig)
	m, err := RSAVP(pub, c)
	if err != nil {
		return false, err
	}

	emBits := pub.BitLen() - 1
	emLen := (emBits + 7) >> 3
	em := make([]byte, emLen)
	mBytes := m.Bytes()
	if len(mBytes) > emLen {
		return false, nil
	}
	copy(em[emLen-len(mBytes):], mBytes)

	hLen := hashAlg.HLen
	if emLen < hLen+saltLen+2 {
		return false, nil
	}
	if em[emLen-1] != 0xBC {
		return false, nil
	}

	maskedDB := em[:emLen-hLen-1]
	h := em[emLen-hLen-1 : emLen-1]

	topBits := 8*emLen - emBits
	if topBits > 0 && em[0]>>(8-topBits) != 0 {
		return false, nil
	}

	dbMask, err := mgf.MGF1(h, emLen-hLen-1, hashAlg)
	if err != nil {
		return false, nil
	}
	db := xorBytes(maskedDB, dbMask)
	clearTopBits(db, topBits)

	psLen := emLen - saltLen - hLen - 2
	for i := 0; i < psLen; i++ {
		if db[i] != 0 {
			return false, nil
		}
	}
	if db[psLen] != 0x01 {
		return false, nil
	}
	salt := db[len(db)-saltLen:]

	hashid.CheckDomainBound(hashAlg, len(message))
	mHash := hashAlg.Invoke(message)
	mPrime := make([]byte, 0, 8+hLen+saltLen)
	mPrime = append(mPrime, make([]byte, 8)...)
	mPrime = append(mPrime, mHash...)
	mPrime = append(mPrime, salt...)
	hPrime := hashAlg.Invoke(mPrime)

	return subtle.ConstantTimeCompare(h, hPrime) == 1, nil
}

// clearTopBits zeroes the top n bits of b's first byte, used to keep the
// masked data block's representative strictly below the modulus.
func clearTopBits(b []byte, n int) {
	if len(b) == 0 || n <= 0 {
		return
	}
	b[0] &= 0xFF >> uint(n)
}
