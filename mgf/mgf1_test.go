package mgf_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/weiz0823/cryptogo/hashid"
	"github.com/weiz0823/cryptogo/mgf"
)

var _ = Describe("MGF1", func() {
	It("returns exactly maskLen bytes, shorter or longer than one hash block", func() {
		for _, n := range []int{0, 1, 19, 20, 21, 100} {
			out, err := mgf.MGF1([]byte("seed"), n, hashid.SHA1)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(HaveLen(n))
		}
	})

	It("is deterministic for a given seed, length and hash", func() {
		a, err := mgf.MGF1([]byte("seed"), 50, hashid.SHA256)
		Expect(err).NotTo(HaveOccurred())
		b, err := mgf.MGF1([]byte("seed"), 50, hashid.SHA256)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("produces masks that are a prefix-compatible growing sequence across lengths", func() {
		short, err := mgf.MGF1([]byte("seed"), 20, hashid.SHA1)
		Expect(err).NotTo(HaveOccurred())
		long, err := mgf.MGF1([]byte("seed"), 40, hashid.SHA1)
		Expect(err).NotTo(HaveOccurred())
		Expect(long[:20]).To(Equal(short))
	})

	It("differs across seeds", func() {
		a, _ := mgf.MGF1([]byte("seed-a"), 32, hashid.SHA256)
		b, _ := mgf.MGF1([]byte("seed-b"), 32, hashid.SHA256)
		Expect(a).NotTo(Equal(b))
	})

	It("rejects a mask length beyond the hash's output capacity", func() {
		tiny := hashid.Algorithm{OID: hashid.SHA1.OID, Invoke: hashid.SHA1.Invoke, HLen: 1}
		_, err := mgf.MGF1([]byte("s"), 1<<33, tiny)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("AlgorithmIdentifier", func() {
	It("embeds the hash OID under MGF1", func() {
		seq := mgf.AlgorithmIdentifier(hashid.SHA256)
		Expect(seq).To(HaveLen(2))
	})
})
