package arith_test

import (
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/weiz0823/cryptogo/arith"
)

var _ = Describe("ExtGCD", func() {
	It("satisfies a*x + b*y == d == gcd(a,b)", func() {
		a := big.NewInt(240)
		b := big.NewInt(46)
		d, x, y := arith.ExtGCD(a, b)
		Expect(d.Int64()).To(Equal(int64(2)))

		lhs := new(big.Int).Add(new(big.Int).Mul(a, x), new(big.Int).Mul(b, y))
		Expect(lhs).To(Equal(d))
	})

	It("handles negative operands without sign-flipping the cofactors' identity", func() {
		a := big.NewInt(-240)
		b := big.NewInt(46)
		d, x, y := arith.ExtGCD(a, b)
		Expect(d.Sign()).To(BeNumerically(">=", 0))
		lhs := new(big.Int).Add(new(big.Int).Mul(a, x), new(big.Int).Mul(b, y))
		Expect(lhs).To(Equal(d))
	})
})

var _ = Describe("BinaryGCD", func() {
	DescribeTable("matches math/big's GCD",
		func(a, b int64) {
			want := new(big.Int).GCD(nil, nil, big.NewInt(abs(a)), big.NewInt(abs(b)))
			got := arith.BinaryGCD(big.NewInt(a), big.NewInt(b))
			Expect(got).To(Equal(want))
		},
		Entry("coprime", int64(35), int64(64)),
		Entry("shared factor of 2", int64(48), int64(18)),
		Entry("one is zero", int64(17), int64(0)),
		Entry("equal", int64(9), int64(9)),
	)
})

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}

var _ = Describe("TrailingZeros", func() {
	It("is 0 for 0", func() {
		Expect(arith.TrailingZeros(big.NewInt(0))).To(Equal(0))
	})
	It("counts low zero bits", func() {
		Expect(arith.TrailingZeros(big.NewInt(8))).To(Equal(3))
		Expect(arith.TrailingZeros(big.NewInt(12))).To(Equal(2))
	})
})

var _ = Describe("FixedRandBits", func() {
	It("always sets the top bit, producing exactly k bits", func() {
		for k := 2; k < 64; k += 7 {
			x, err := arith.FixedRandBits(k, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(x.BitLen()).To(Equal(k))
		}
	})

	It("forces the low bit odd when requested", func() {
		x, err := arith.FixedRandBits(16, true)
		Expect(err).NotTo(HaveOccurred())
		Expect(x.Bit(0)).To(Equal(uint(1)))
	})
})

var _ = Describe("IsPerfectSquare", func() {
	DescribeTable("detects perfect squares",
		func(n int64, want bool) {
			Expect(arith.IsPerfectSquare(big.NewInt(n))).To(Equal(want))
		},
		Entry("0", int64(0), true),
		Entry("1", int64(1), true),
		Entry("4", int64(4), true),
		Entry("9801 = 99^2", int64(9801), true),
		Entry("2", int64(2), false),
		Entry("9802", int64(9802), false),
		Entry("negative", int64(-4), false),
	)
})

var _ = Describe("Lcm", func() {
	It("computes the least common multiple", func() {
		Expect(arith.Lcm(big.NewInt(4), big.NewInt(6))).To(Equal(big.NewInt(12)))
	})
})

var _ = Describe("CeilDiv", func() {
	It("rounds up", func() {
		Expect(arith.CeilDiv(big.NewInt(7), big.NewInt(2))).To(Equal(big.NewInt(4)))
		Expect(arith.CeilDiv(big.NewInt(8), big.NewInt(2))).To(Equal(big.NewInt(4)))
	})
})
