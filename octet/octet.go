// Package octet converts between arbitrary-precision integers and octet
// strings (big-endian byte slices), in both the signed two's-complement form
// RSA/DSA material is built out of and the unsigned form PKCS#1 padding uses.
package octet

import (
	"errors"
	"math/big"
)

// ErrFixedLength is returned by I2OSPFixed when a negative value is asked to
// be truncated, or a non-negative value does not fit (after truncation rules)
// in the requested length.
var ErrFixedLength = errors.New("octet: value does not fit in requested length")

// I2OSP returns the shortest two's-complement big-endian octet string
// representing i. The high bit of the first byte carries the sign: a
// non-negative i whose minimal unsigned encoding has its top bit set gets an
// extra 0x00 byte prepended, and a negative i whose minimal encoding has its
// top bit clear gets an extra 0xFF byte prepended.
func I2OSP(i *big.Int) []byte {
	if i.Sign() == 0 {
		return []byte{0}
	}
	if i.Sign() > 0 {
		b := i.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	// negative: encode abs(i+1) = abs(i)-1, complement, i.e. two's complement.
	// two's complement of a k-byte magnitude m (m = abs(i)) is (1<<(8k) - m).
	mag := new(big.Int).Neg(i) // positive magnitude
	nbits := mag.BitLen()
	nbytes := (nbits + 7) / 8
	if nbytes == 0 {
		nbytes = 1
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(nbytes*8))
	twos := new(big.Int).Sub(mod, mag)
	b := twos.Bytes()
	for len(b) < nbytes {
		b = append([]byte{0}, b...)
	}
	if b[0]&0x80 == 0 {
		b = append([]byte{0xFF}, b...)
	}
	return b
}

// I2OSPFixed returns the two's-complement encoding of i padded on the left
// with zero bytes to exactly k octets, or truncated from the left to k
// octets. Truncation only makes sense for non-negative i: if i is negative,
// or i does not fit in k octets after truncation (i.e. k is too small to
// hold it even ignoring the sign byte), ErrFixedLength is returned.
func I2OSPFixed(i *big.Int, k int) ([]byte, error) {
	if i.Sign() < 0 {
		return nil, ErrFixedLength
	}
	b := i.Bytes()
	if len(b) > k {
		return nil, ErrFixedLength
	}
	out := make([]byte, k)
	copy(out[k-len(b):], b)
	return out, nil
}

// OS2IP decodes osp as a signed two's-complement big-endian octet string:
// the top bit of the first byte is the sign, and decoding sign-extends from
// it. An empty input decodes to zero.
func OS2IP(osp []byte) *big.Int {
	if len(osp) == 0 {
		return big.NewInt(0)
	}
	if osp[0]&0x80 == 0 {
		return new(big.Int).SetBytes(osp)
	}
	// negative: value = unsigned(osp) - (1 << (8*len(osp)))
	u := new(big.Int).SetBytes(osp)
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*len(osp)))
	return u.Sub(u, mod)
}

// OS2UI decodes osp as an unsigned non-negative big-endian integer.
func OS2UI(osp []byte) *big.Int {
	return new(big.Int).SetBytes(osp)
}
