package dsa_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/weiz0823/cryptogo/dsa"
	"github.com/weiz0823/cryptogo/hashid"
)

var _ = Describe("SecureLN", func() {
	DescribeTable("maps a security strength to the FIPS 186-4 / SP 800-57 (L,N) pair",
		func(strength, wantL, wantN int) {
			l, n := dsa.SecureLN(strength)
			Expect(l).To(Equal(wantL))
			Expect(n).To(Equal(wantN))
		},
		Entry("80-bit strength", 80, 1024, 160),
		Entry("112-bit strength", 112, 2048, 224),
		Entry("128-bit strength", 128, 3072, 256),
		Entry("192-bit strength", 192, 7680, 384),
		Entry("beyond 256-bit strength saturates at the max parameter set", 1000, 15360, 512),
	)
})

var _ = Describe("DomainGen", func() {
	It("rejects a modulus length below the FIPS 186-4 floor", func() {
		_, err := dsa.DomainGen(512, 160)
		Expect(err).To(MatchError(dsa.ErrDomainTooSmall))
	})

	It("produces domain parameters satisfying q | (p-1) and g^q == 1 mod p", func() {
		domain, err := dsa.DomainGen(1024, 160)
		Expect(err).NotTo(HaveOccurred())
		Expect(domain.P.BitLen()).To(Equal(1024))
		Expect(domain.Q.BitLen()).To(Equal(160))
		Expect(domain.Q.ProbablyPrime(20)).To(BeTrue())
		Expect(domain.P.ProbablyPrime(20)).To(BeTrue())

		pm1 := new(big.Int).Sub(domain.P, big.NewInt(1))
		rem := new(big.Int).Mod(pm1, domain.Q)
		Expect(rem.Sign()).To(Equal(0))

		gq := new(big.Int).Exp(domain.G, domain.Q, domain.P)
		Expect(gq.Cmp(big.NewInt(1))).To(Equal(0))
		Expect(domain.G.Cmp(big.NewInt(1))).NotTo(Equal(0))
	})
})

var _ = Describe("Sign and Verify", func() {
	domain, _ := dsa.DomainGen(1024, 160)
	pub, priv, _ := dsa.Keygen(domain)

	It("produces y == g^x mod p", func() {
		y := new(big.Int).Exp(domain.G, priv.X, domain.P)
		Expect(y).To(Equal(priv.Y))
		Expect(pub.Y).To(Equal(priv.Y))
	})

	It("verifies a signature over the signed message", func() {
		msg := []byte("dsa test message")
		sig, err := dsa.Sign(priv, hashid.SHA1, msg)
		Expect(err).NotTo(HaveOccurred())
		Expect(sig.R.Sign()).To(BeNumerically(">", 0))
		Expect(sig.S.Sign()).To(BeNumerically(">", 0))

		ok, err := dsa.Verify(pub, hashid.SHA1, msg, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	It("rejects a signature over a tampered message", func() {
		msg := []byte("dsa test message")
		sig, _ := dsa.Sign(priv, hashid.SHA1, msg)
		ok, err := dsa.Verify(pub, hashid.SHA1, []byte("dsa test massage"), sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("rejects a signature produced under a different key", func() {
		msg := []byte("dsa test message")
		sig, _ := dsa.Sign(priv, hashid.SHA1, msg)
		otherPub, _, _ := dsa.Keygen(domain)
		ok, err := dsa.Verify(otherPub, hashid.SHA1, msg, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())
	})

	It("rejects an out-of-range r or s without erroring", func() {
		msg := []byte("dsa test message")
		sig, _ := dsa.Sign(priv, hashid.SHA1, msg)

		bad := &dsa.Signature{R: new(big.Int).Set(domain.Q), S: sig.S}
		ok, err := dsa.Verify(pub, hashid.SHA1, msg, bad)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		bad2 := &dsa.Signature{R: sig.R, S: big.NewInt(0)}
		ok2, err := dsa.Verify(pub, hashid.SHA1, msg, bad2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok2).To(BeFalse())
	})

	It("works with a hash wider than the subgroup order, truncating the digest", func() {
		msg := []byte("dsa with sha256 digest truncated to 160 bits")
		sig, err := dsa.Sign(priv, hashid.SHA256, msg)
		Expect(err).NotTo(HaveOccurred())
		ok, err := dsa.Verify(pub, hashid.SHA256, msg, sig)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})
})

var _ = Describe("DER encoding", func() {
	domain, _ := dsa.DomainGen(1024, 160)
	pub, priv, _ := dsa.Keygen(domain)

	It("encodes domain parameters as a non-empty SEQUENCE", func() {
		der := domain.Encode()
		Expect(der).NotTo(BeEmpty())
		Expect(der[0]).To(Equal(byte(0x30)))
	})

	It("encodes public and private key values as INTEGERs", func() {
		Expect(pub.Encode()[0]).To(Equal(byte(0x02)))
		Expect(priv.Encode()[0]).To(Equal(byte(0x02)))
	})

	It("encodes a signature as a SEQUENCE of two INTEGERs", func() {
		sig, _ := dsa.Sign(priv, hashid.SHA1, []byte("msg"))
		Expect(sig.Encode()[0]).To(Equal(byte(0x30)))
	})
})
