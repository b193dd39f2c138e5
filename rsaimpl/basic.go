package rsaimpl

import (
	"github.com/weiz0823/cryptogo/octet"
)

// EncryptBasic is the demo primitive form of RSA encryption: it converts msg
// to an integer, applies RSAEP, and pads the result with leading zeros to
// exactly klen octets. It performs no padding beyond that fixed-width
// conversion and is not secure for arbitrary messages — callers must use
// EncryptOAEP or the PKCS#1 v1.5 EME wrapper (EncryptPKCS1v15) instead.
func EncryptBasic(pub *PublicKey, msg []byte) ([]byte, error) {
	m, err := RSAEP(pub, octet.OS2UI(msg))
	if err != nil {
		return nil, err
	}
	return octet.I2OSPFixed(m, pub.Size())
}

// DecryptBasic is the demo primitive form of RSA decryption: the inverse of
// EncryptBasic. It converts the klen-octet ciphertext to an integer, applies
// RSADP via CRT, and pads the recovered message representative with leading
// zeros back to klen octets. Like EncryptBasic, it is not a secure padding
// scheme on its own.
func DecryptBasic(priv *PrivateKey, ciphertext []byte) ([]byte, error) {
	m, err := RSADP(nil, priv, octet.OS2UI(ciphertext))
	if err != nil {
		return nil, err
	}
	return octet.I2OSPFixed(m, priv.Size())
}

// SignBasic is the demo primitive form of RSA signing: identical to
// DecryptBasic, since RSASP is RSADP under another name. It signs a raw
// klen-octet message representative with no EMSA padding or hashing — not
// the scheme to use outside demonstrations; see SignPKCS1v15 or SignPSS.
func SignBasic(priv *PrivateKey, msg []byte) ([]byte, error) {
	return DecryptBasic(priv, msg)
}

// VerifyBasic is the demo primitive form of RSA signature verification:
// identical to EncryptBasic, since RSAVP is RSAEP under another name.
func VerifyBasic(pub *PublicKey, sig []byte) ([]byte, error) {
	return EncryptBasic(pub, sig)
}
