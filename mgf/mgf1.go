// Package mgf implements MGF1, the mask generation function PKCS#1
// Appendix B.2.1 defines for use in OAEP and PSS.
package mgf

import (
	"encoding/binary"
	"errors"

	"github.com/weiz0823/cryptogo/derasn1"
	"github.com/weiz0823/cryptogo/hashid"
)

// ErrMaskTooLong is returned when maskLen exceeds the hash's output
// capacity (2^32 * hLen bytes, the limit RFC 8017 B.2.1 imposes).
var ErrMaskTooLong = errors.New("mgf: mask too long")

// MGF1 generates a maskLen-byte mask from seed using hashalg, per
// RFC 8017 Appendix B.2.1: it hashes seed concatenated with a 4-byte
// big-endian counter running from 0, concatenating outputs until there is
// enough mask material, then truncates to maskLen.
func MGF1(seed []byte, maskLen int, hashalg hashid.Algorithm) ([]byte, error) {
	if int64(maskLen) > (int64(1)<<32)*int64(hashalg.HLen) {
		return nil, ErrMaskTooLong
	}
	count := (maskLen + hashalg.HLen - 1) / hashalg.HLen
	out := make([]byte, 0, count*hashalg.HLen)
	var counter [4]byte
	for i := 0; i < count; i++ {
		binary.BigEndian.PutUint32(counter[:], uint32(i))
		out = append(out, hashalg.Invoke(append(append([]byte{}, seed...), counter[:]...))...)
	}
	return out[:maskLen], nil
}

// idMGF1 is the PKCS#1 MGF1 algorithm identifier,
// 1.2.840.113549.1.1.8 under the PKCS#1 arc.
var idMGF1 = derasn1.NewOID("1.2.840.113549.1.1.8", "PKCS1/MGF1")

// AlgorithmIdentifier returns the DER AlgorithmIdentifier SEQUENCE
// { mgf1, AlgorithmIdentifier(hashalg) } describing "MGF1 using hashalg",
// as embedded in RSAES-OAEP-params and RSASSA-PSS-params.
func AlgorithmIdentifier(hashalg hashid.Algorithm) derasn1.Sequence {
	return derasn1.Sequence{
		idMGF1,
		derasn1.Sequence{hashalg.OID, derasn1.Null{}},
	}
}
