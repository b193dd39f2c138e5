package rsaimpl

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/weiz0823/cryptogo/hashid"
	"github.com/weiz0823/cryptogo/randomart"
)

// Fingerprint is a public key's identity summary: a hash of its PKCS#1 DER
// encoding, rendered as hex, base64, and a drunken-bishop randomart image.
type Fingerprint struct {
	Algorithm hashid.Algorithm
	Digest    []byte
}

// Hex returns the fingerprint digest as lowercase hex.
func (f Fingerprint) Hex() string { return hex.EncodeToString(f.Digest) }

// Base64 returns the fingerprint digest as standard base64.
func (f Fingerprint) Base64() string { return base64.StdEncoding.EncodeToString(f.Digest) }

// Randomart renders the fingerprint digest as a drunken-bishop image,
// titled with the key's bit length and the hash algorithm's name.
func (f Fingerprint) Randomart(bitlen int) string {
	return randomart.Visualize(f.Digest, fmt.Sprintf("RSA %d", bitlen), hashName(f.Algorithm))
}

func hashName(alg hashid.Algorithm) string {
	desc := alg.OID.Description
	for i := len(desc) - 1; i >= 0; i-- {
		if desc[i] == '/' {
			return desc[i+1:]
		}
	}
	return desc
}

// ComputeFingerprint hashes pub's PKCS#1 DER encoding with hashAlg.
func ComputeFingerprint(pub *PublicKey, hashAlg hashid.Algorithm) Fingerprint {
	der := EncodePublicKeyPKCS1(pub)
	return Fingerprint{Algorithm: hashAlg, Digest: hashAlg.Invoke(der)}
}
