// Package hashid treats hash functions as external collaborators reached
// through a narrow capability interface: an OID for identifying the
// algorithm in DER, the digest length, and the function itself. It does not
// reimplement any digest algorithm; it wires the standard library (and, for
// SHA-3/SHAKE, golang.org/x/crypto/sha3) behind one common shape so RSA/DSA
// signing code never needs to know which concrete package a hash lives in.
package hashid

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"

	"golang.org/x/crypto/sha3"

	"github.com/weiz0823/cryptogo/derasn1"
	"github.com/weiz0823/cryptogo/seclog"
)

// Algorithm is a hash function paired with its DER identity and strength
// figures (all in bits, except HLen and BlockBytes, which are in bytes).
type Algorithm struct {
	OID             *derasn1.OID
	Invoke          func(message []byte) []byte
	HLen            int
	CollisionResist int
	ExtensionResist int
	// BlockBytes is the compression function's block size in bytes (64 for
	// the Merkle-Damgard MD5/SHA-1/SHA-256 family, 128 for SHA-512's), used
	// to find the hash's documented domain bound. Zero means the algorithm
	// has no such bound (the SHA-3/SHAKE sponge family).
	BlockBytes int
}

// SecurityStrength reports the algorithm's collision-resistance strength in
// bits, the figure RSA/DSA key-size selection is measured against.
func (a Algorithm) SecurityStrength() int {
	return a.CollisionResist
}

// domainBound61 is 2^61, the byte-length input bound for a 512-bit-block
// (64-byte) Merkle-Damgard hash, per spec.md §7. It fits in an int64
// (max 2^63-1), unlike the 2^125 bound for 1024-bit-block hashes, which no
// representable Go byte slice length can ever reach.
const domainBound61 = int64(1) << 61

// DomainBoundExceeded reports whether hashing a message of messageLen bytes
// with a would exceed its documented domain bound: 2^61 bytes for a
// 512-bit-block hash, 2^125 for a 1024-bit-block hash (practically
// unreachable with a Go slice length), or never for a BlockBytes == 0
// algorithm such as the SHA-3/SHAKE family.
func DomainBoundExceeded(a Algorithm, messageLen int) bool {
	switch a.BlockBytes {
	case 64:
		return int64(messageLen) >= domainBound61
	default:
		return false
	}
}

// CheckDomainBound emits a seclog warning if hashing messageLen bytes with a
// would exceed its documented domain bound.
func CheckDomainBound(a Algorithm, messageLen int) {
	if DomainBoundExceeded(a, messageLen) {
		seclog.Warnf("hashing %d bytes with %s exceeds its documented domain bound", messageLen, a.OID.Description)
	}
}

var (
	idDigestAlg = derasn1.NewOID("1.2.840.113549.2", "RSADSI/DigestAlgorithm")
	idNistHash  = derasn1.NewOID("2.16.840.1.101.3.4.2", "NIST/HashAlgs")
	idSecsigAlg = derasn1.NewOID("1.3.14.3.2", "OIW/SecSIG/Algorithms")
)

func md5Sum(message []byte) []byte    { d := md5.Sum(message); return d[:] }
func sha1Sum(message []byte) []byte   { d := sha1.Sum(message); return d[:] }
func sha224Sum(message []byte) []byte { d := sha256.Sum224(message); return d[:] }
func sha256Sum(message []byte) []byte { d := sha256.Sum256(message); return d[:] }
func sha384Sum(message []byte) []byte { d := sha512.Sum384(message); return d[:] }
func sha512Sum(message []byte) []byte { d := sha512.Sum512(message); return d[:] }
func sha512t224Sum(message []byte) []byte {
	d := sha512.Sum512_224(message)
	return d[:]
}
func sha512t256Sum(message []byte) []byte {
	d := sha512.Sum512_256(message)
	return d[:]
}
func sha3_224Sum(message []byte) []byte { d := sha3.Sum224(message); return d[:] }
func sha3_256Sum(message []byte) []byte { d := sha3.Sum256(message); return d[:] }
func sha3_384Sum(message []byte) []byte { d := sha3.Sum384(message); return d[:] }
func sha3_512Sum(message []byte) []byte { d := sha3.Sum512(message); return d[:] }

func shake128Sum(message []byte) []byte {
	out := make([]byte, 32)
	sha3.ShakeSum128(out, message)
	return out
}

func shake256Sum(message []byte) []byte {
	out := make([]byte, 64)
	sha3.ShakeSum256(out, message)
	return out
}

// MD5, SHA1, and the SHA-2/SHA-3/SHAKE family: every entry the original
// table carried, so the hashes usable by the DigestInfo wrapper in PKCS#1
// v1.5 signatures and OAEP/PSS's hash parameter match the spec's table
// exactly.
var (
	MD5 = Algorithm{
		OID: idDigestAlg.Subnode("5", "MD5"), Invoke: md5Sum,
		HLen: 16, CollisionResist: 18, ExtensionResist: 0, BlockBytes: 64,
	}
	SHA1 = Algorithm{
		OID: idSecsigAlg.Subnode("26", "SHA1"), Invoke: sha1Sum,
		HLen: 20, CollisionResist: 62, ExtensionResist: 0, BlockBytes: 64,
	}
	SHA224 = Algorithm{
		OID: idNistHash.Subnode("4", "SHA224"), Invoke: sha224Sum,
		HLen: 28, CollisionResist: 112, ExtensionResist: 32, BlockBytes: 64,
	}
	SHA256 = Algorithm{
		OID: idNistHash.Subnode("1", "SHA256"), Invoke: sha256Sum,
		HLen: 32, CollisionResist: 128, ExtensionResist: 0, BlockBytes: 64,
	}
	SHA384 = Algorithm{
		OID: idNistHash.Subnode("2", "SHA384"), Invoke: sha384Sum,
		HLen: 48, CollisionResist: 192, ExtensionResist: 128, BlockBytes: 128,
	}
	SHA512 = Algorithm{
		OID: idNistHash.Subnode("3", "SHA512"), Invoke: sha512Sum,
		HLen: 64, CollisionResist: 256, ExtensionResist: 0, BlockBytes: 128,
	}
	SHA512_224 = Algorithm{
		OID: idNistHash.Subnode("5", "SHA512-224"), Invoke: sha512t224Sum,
		HLen: 28, CollisionResist: 112, ExtensionResist: 288, BlockBytes: 128,
	}
	SHA512_256 = Algorithm{
		OID: idNistHash.Subnode("6", "SHA512-256"), Invoke: sha512t256Sum,
		HLen: 32, CollisionResist: 128, ExtensionResist: 256, BlockBytes: 128,
	}
	SHA3_224 = Algorithm{
		OID: idNistHash.Subnode("7", "SHA3-224"), Invoke: sha3_224Sum,
		HLen: 28, CollisionResist: 112, ExtensionResist: 448,
	}
	SHA3_256 = Algorithm{
		OID: idNistHash.Subnode("8", "SHA3-256"), Invoke: sha3_256Sum,
		HLen: 32, CollisionResist: 128, ExtensionResist: 512,
	}
	SHA3_384 = Algorithm{
		OID: idNistHash.Subnode("9", "SHA3-384"), Invoke: sha3_384Sum,
		HLen: 48, CollisionResist: 192, ExtensionResist: 768,
	}
	SHA3_512 = Algorithm{
		OID: idNistHash.Subnode("10", "SHA3-512"), Invoke: sha3_512Sum,
		HLen: 64, CollisionResist: 256, ExtensionResist: 1024,
	}
	// SHAKE128/SHAKE256 are fixed at the original table's default output
	// lengths (256 and 512 bits); variable-length output belongs to a
	// dedicated XOF interface this toolkit doesn't expose.
	SHAKE128 = Algorithm{
		OID: idNistHash.Subnode("11", "SHAKE128"), Invoke: shake128Sum,
		HLen: 32, CollisionResist: 128, ExtensionResist: 256,
	}
	SHAKE256 = Algorithm{
		OID: idNistHash.Subnode("12", "SHAKE256"), Invoke: shake256Sum,
		HLen: 64, CollisionResist: 256, ExtensionResist: 512,
	}
)

// ByOID returns the registered Algorithm whose OID.Identifier matches id,
// used when decoding a DigestInfo or AlgorithmIdentifier off the wire.
func ByOID(id string) (Algorithm, bool) {
	for _, a := range All() {
		if a.OID.Identifier == id {
			return a, true
		}
	}
	return Algorithm{}, false
}

// All returns every algorithm this package registers, in table order.
func All() []Algorithm {
	return []Algorithm{
		MD5, SHA1, SHA224, SHA256, SHA384, SHA512, SHA512_224, SHA512_256,
		SHA3_224, SHA3_256, SHA3_384, SHA3_512, SHAKE128, SHAKE256,
	}
}
