package rsaimpl_test

import (
	"bytes"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/weiz0823/cryptogo/hashid"
	"github.com/weiz0823/cryptogo/rsaimpl"
)

func bi(n int64) *big.Int { return big.NewInt(n) }

var _ = Describe("NewPrivateKey", func() {
	It("derives the textbook RSA-3233 example's CRT parameters", func() {
		priv := rsaimpl.NewPrivateKey(bi(61), bi(53), bi(17), bi(413))
		Expect(priv.N).To(Equal(bi(3233)))
		Expect(priv.DP).To(Equal(bi(53)))
		Expect(priv.DQ).To(Equal(bi(49)))
		Expect(priv.QInv).To(Equal(bi(38)))
	})
})

var _ = Describe("RSAEP/RSADP", func() {
	priv := rsaimpl.NewPrivateKey(bi(61), bi(53), bi(17), bi(413))

	It("matches the textbook RSA-3233 worked example", func() {
		c, err := rsaimpl.RSAEP(&priv.PublicKey, bi(65))
		Expect(err).NotTo(HaveOccurred())
		Expect(c).To(Equal(bi(2790)))
	})

	It("round-trips via CRT decryption, matching the plain exponentiation", func() {
		m := bi(65)
		c, _ := rsaimpl.RSAEP(&priv.PublicKey, m)
		viaCRT, err := rsaimpl.RSADP(nil, priv, c)
		Expect(err).NotTo(HaveOccurred())
		Expect(viaCRT).To(Equal(m))

		viaPlain, err := rsaimpl.RSADPPlain(priv, c)
		Expect(err).NotTo(HaveOccurred())
		Expect(viaPlain).To(Equal(m))
	})

	It("round-trips with blinding enabled", func() {
		m := bi(65)
		c, _ := rsaimpl.RSAEP(&priv.PublicKey, m)
		blinded, err := rsaimpl.RSADP(cryptoRandReader{}, priv, c)
		Expect(err).NotTo(HaveOccurred())
		Expect(blinded).To(Equal(m))
	})

	It("rejects an out-of-range message representative", func() {
		_, err := rsaimpl.RSAEP(&priv.PublicKey, bi(3233))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("EncryptBasic/DecryptBasic", func() {
	priv, _ := rsaimpl.GenerateKey(512)

	It("round-trips a short message, zero-padded to klen octets", func() {
		msg := []byte("hi")
		ct, err := rsaimpl.EncryptBasic(&priv.PublicKey, msg)
		Expect(err).NotTo(HaveOccurred())
		Expect(ct).To(HaveLen(priv.Size()))

		pt, err := rsaimpl.DecryptBasic(priv, ct)
		Expect(err).NotTo(HaveOccurred())
		Expect(pt).To(HaveLen(priv.Size()))
		Expect(bytes.TrimLeft(pt, "\x00")).To(Equal(msg))
	})

	It("matches the textbook RSA-3233 worked example", func() {
		small := rsaimpl.NewPrivateKey(bi(61), bi(53), bi(17), bi(413))
		ct, err := rsaimpl.EncryptBasic(&small.PublicKey, []byte{65})
		Expect(err).NotTo(HaveOccurred())
		Expect(new(big.Int).SetBytes(ct)).To(Equal(bi(2790)))
	})
})

var _ = Describe("SignBasic/VerifyBasic", func() {
	priv, _ := rsaimpl.GenerateKey(512)

	It("round-trips a raw message representative", func() {
		msg := make([]byte, priv.Size())
		msg[len(msg)-1] = 42
		sig, err := rsaimpl.SignBasic(priv, msg)
		Expect(err).NotTo(HaveOccurred())

		got, err := rsaimpl.VerifyBasic(&priv.PublicKey, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(msg))
	})
})

var _ = Describe("GenerateKey", func() {
	It("produces a key whose modulus is exactly the requested bit length", func() {
		priv, err := rsaimpl.GenerateKey(256)
		Expect(err).NotTo(HaveOccurred())
		Expect(priv.BitLen()).To(Equal(256))
	})

	It("produces e*d == 1 mod lambda(n), verified via a round trip", func() {
		priv, err := rsaimpl.GenerateKey(256)
		Expect(err).NotTo(HaveOccurred())
		m := bi(42)
		c, err := rsaimpl.RSAEP(&priv.PublicKey, m)
		Expect(err).NotTo(HaveOccurred())
		got, err := rsaimpl.RSADP(nil, priv, c)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(m))
	})
})

var _ = Describe("PKCS#1 v1.5 encryption", func() {
	priv, _ := rsaimpl.GenerateKey(512)

	It("round-trips a short message", func() {
		msg := []byte("attack at dawn")
		ct, err := rsaimpl.EncryptPKCS1v15(nil, &priv.PublicKey, msg)
		Expect(err).NotTo(HaveOccurred())
		pt, err := rsaimpl.DecryptPKCS1v15(nil, priv, ct)
		Expect(err).NotTo(HaveOccurred())
		Expect(pt).To(Equal(msg))
	})

	It("produces different ciphertexts for the same message (random padding)", func() {
		msg := []byte("same message")
		a, _ := rsaimpl.EncryptPKCS1v15(nil, &priv.PublicKey, msg)
		b, _ := rsaimpl.EncryptPKCS1v15(nil, &priv.PublicKey, msg)
		Expect(bytes.Equal(a, b)).To(BeFalse())
	})

	It("rejects a message too long for the modulus", func() {
		huge := make([]byte, priv.Size())
		_, err := rsaimpl.EncryptPKCS1v15(nil, &priv.PublicKey, huge)
		Expect(err).To(MatchError(rsaimpl.ErrMessageTooLong))
	})

	It("rejects tampered ciphertext", func() {
		msg := []byte("hello")
		ct, _ := rsaimpl.EncryptPKCS1v15(nil, &priv.PublicKey, msg)
		ct[len(ct)-1] ^= 0xFF
		_, err := rsaimpl.DecryptPKCS1v15(nil, priv, ct)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("PKCS#1 v1.5 signatures", func() {
	priv, _ := rsaimpl.GenerateKey(512)

	It("signs and verifies", func() {
		hashed := hashid.SHA256.Invoke([]byte("sign me"))
		sig, err := rsaimpl.SignPKCS1v15(nil, priv, hashid.SHA256, hashed)
		Expect(err).NotTo(HaveOccurred())
		Expect(rsaimpl.VerifyPKCS1v15(&priv.PublicKey, hashid.SHA256, hashed, sig)).To(Succeed())
	})

	It("rejects a signature over a different message", func() {
		hashed := hashid.SHA256.Invoke([]byte("sign me"))
		sig, _ := rsaimpl.SignPKCS1v15(nil, priv, hashid.SHA256, hashed)
		other := hashid.SHA256.Invoke([]byte("not signed"))
		Expect(rsaimpl.VerifyPKCS1v15(&priv.PublicKey, hashid.SHA256, other, sig)).To(MatchError(rsaimpl.ErrVerification))
	})
})

var _ = Describe("OAEP", func() {
	priv, _ := rsaimpl.GenerateKey(1024)

	It("round-trips with an empty label", func() {
		msg := []byte("oaep message")
		ct, err := rsaimpl.EncryptOAEP(nil, &priv.PublicKey, hashid.SHA256, msg, nil)
		Expect(err).NotTo(HaveOccurred())
		pt, err := rsaimpl.DecryptOAEP(nil, priv, hashid.SHA256, ct, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(pt).To(Equal(msg))
	})

	It("round-trips with a non-empty label", func() {
		msg := []byte("labeled message")
		label := []byte("context")
		ct, err := rsaimpl.EncryptOAEP(nil, &priv.PublicKey, hashid.SHA256, msg, label)
		Expect(err).NotTo(HaveOccurred())
		pt, err := rsaimpl.DecryptOAEP(nil, priv, hashid.SHA256, ct, label)
		Expect(err).NotTo(HaveOccurred())
		Expect(pt).To(Equal(msg))
	})

	It("fails to decrypt with the wrong label", func() {
		msg := []byte("labeled message")
		ct, _ := rsaimpl.EncryptOAEP(nil, &priv.PublicKey, hashid.SHA256, msg, []byte("a"))
		_, err := rsaimpl.DecryptOAEP(nil, priv, hashid.SHA256, ct, []byte("b"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a message too long for the modulus and hash overhead", func() {
		huge := make([]byte, priv.Size())
		_, err := rsaimpl.EncryptOAEP(nil, &priv.PublicKey, hashid.SHA256, huge, nil)
		Expect(err).To(MatchError(rsaimpl.ErrMessageTooLong))
	})
})

var _ = Describe("PSS", func() {
	priv, _ := rsaimpl.GenerateKey(1024)

	It("signs and verifies with a non-zero salt length", func() {
		msg := []byte("pss message")
		sig, err := rsaimpl.SignPSS(nil, priv, hashid.SHA256, msg, 32)
		Expect(err).NotTo(HaveOccurred())
		ok, err := rsaimpl.VerifyPSS(&priv.PublicKey, hashid.SHA256, msg, sig, 32)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("produces different signatures across calls (random salt)", func() {
		msg := []byte("pss message")
		a, _ := rsaimpl.SignPSS(nil, priv, hashid.SHA256, msg, 16)
		b, _ := rsaimpl.SignPSS(nil, priv, hashid.SHA256, msg, 16)
		Expect(bytes.Equal(a, b)).To(BeFalse())
	})

	It("rejects a signature over a tampered message", func() {
		msg := []byte("pss message")
		sig, _ := rsaimpl.SignPSS(nil, priv, hashid.SHA256, msg, 16)
		ok, err := rsaimpl.VerifyPSS(&priv.PublicKey, hashid.SHA256, []byte("pss messagf"), sig, 16)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("accepts a zero salt length", func() {
		msg := []byte("deterministic pss")
		sig, err := rsaimpl.SignPSS(nil, priv, hashid.SHA256, msg, 0)
		Expect(err).NotTo(HaveOccurred())
		ok, _ := rsaimpl.VerifyPSS(&priv.PublicKey, hashid.SHA256, msg, sig, 0)
		Expect(ok).To(BeTrue())
	})
})

var _ = Describe("PKCS#1 DER import/export", func() {
	priv, _ := rsaimpl.GenerateKey(512)

	It("round-trips a public key", func() {
		der := rsaimpl.EncodePublicKeyPKCS1(&priv.PublicKey)
		got, err := rsaimpl.DecodePublicKeyPKCS1(der)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.N).To(Equal(priv.N))
		Expect(got.E).To(Equal(priv.E))
	})

	It("round-trips a private key", func() {
		der := rsaimpl.EncodePrivateKeyPKCS1(priv)
		got, err := rsaimpl.DecodePrivateKeyPKCS1(der)
		Expect(err).NotTo(HaveOccurred())
		Expect(got.D).To(Equal(priv.D))
		Expect(got.DP).To(Equal(priv.DP))
		Expect(got.QInv).To(Equal(priv.QInv))
	})

	It("rejects a non-zero version (multi-prime) private key", func() {
		der := rsaimpl.EncodePrivateKeyPKCS1(priv)
		der[6] = 1 // the version INTEGER's content byte
		_, err := rsaimpl.DecodePrivateKeyPKCS1(der)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Fingerprint", func() {
	priv, _ := rsaimpl.GenerateKey(512)

	It("is deterministic and renders hex, base64 and randomart", func() {
		a := rsaimpl.ComputeFingerprint(&priv.PublicKey, hashid.SHA256)
		b := rsaimpl.ComputeFingerprint(&priv.PublicKey, hashid.SHA256)
		Expect(a.Hex()).To(Equal(b.Hex()))
		Expect(a.Base64()).NotTo(BeEmpty())
		Expect(a.Randomart(priv.BitLen())).To(ContainSubstring("RSA 512"))
	})
})

type cryptoRandReader struct{}

func (cryptoRandReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(i*7 + 1)
	}
	return len(p), nil
}
