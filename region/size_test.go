package region_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pebaz/tidbytes/region"
)

var _ = Describe("Size operations", func() {
	Describe("Truncate", func() {
		It("drops bits beyond new_length", func() {
			r := mustBitList(region.One, region.Zero, region.One, region.One, region.Zero, region.Zero)
			got, err := region.Truncate(r, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.BitLength(got)).To(Equal(3))
		})

		It("reports ErrBounds when new_length exceeds the current length", func() {
			r := mustBitList(region.One, region.Zero)
			_, err := region.Truncate(r, 5)
			Expect(err).To(MatchError(region.ErrBounds))
		})

		It("returns the empty region when new_length is 0", func() {
			r := mustBitList(region.One, region.Zero)
			got, err := region.Truncate(r, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.BitLength(got)).To(Equal(0))
		})

		It("round-trips via concatenate/truncate (scenario #3 from spec.md §8)", func() {
			a := mustBitList(region.One, region.Zero, region.One)
			cat := region.Concatenate(a, a)
			back, err := region.Truncate(cat, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(cellsEqual(back, a)).To(BeTrue())
		})
	})

	Describe("Extend", func() {
		It("appends the fill bit until new_length is reached", func() {
			r := mustBitList(region.One)
			got, err := region.Extend(r, 4, region.Zero)
			Expect(err).NotTo(HaveOccurred())
			var bits []int
			for v := range region.IterateLogicalBits(got) {
				bits = append(bits, v)
			}
			Expect(bits).To(Equal([]int{1, 0, 0, 0}))
		})

		It("reports ErrBounds when new_length is shorter than the current length", func() {
			r := mustBitList(region.One, region.Zero, region.One)
			_, err := region.Extend(r, 1, region.Zero)
			Expect(err).To(MatchError(region.ErrBounds))
		})
	})

	Describe("EnsureBitLength", func() {
		It("truncates when target is shorter", func() {
			r := mustBitList(region.One, region.Zero, region.One)
			got, err := region.EnsureBitLength(r, 1, region.Zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.BitLength(got)).To(Equal(1))
		})

		It("extends when target is longer", func() {
			r := mustBitList(region.One)
			got, err := region.EnsureBitLength(r, 3, region.One)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.BitLength(got)).To(Equal(3))
		})

		It("is a no-op when target equals the current length", func() {
			r := mustBitList(region.One, region.Zero)
			got, err := region.EnsureBitLength(r, 2, region.Zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(cellsEqual(got, r)).To(BeTrue())
		})
	})

	Describe("EnsureByteLength", func() {
		It("operates in whole-byte units", func() {
			r := fromByteList(0x12)
			got, err := region.EnsureByteLength(r, 2, region.Zero)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.ByteLength(got)).To(Equal(2))
		})
	})

	Describe("Concatenate", func() {
		It("concatenation additivity (spec.md §8)", func() {
			a := mustBitList(region.One, region.Zero, region.One)
			b := mustBitList(region.One, region.Zero)
			cat := region.Concatenate(a, b)
			Expect(region.BitLength(cat)).To(Equal(region.BitLength(a) + region.BitLength(b)))
		})

		It("places a's bits first (scenario #2 from spec.md §8)", func() {
			a := mustBitList(region.One, region.Zero, region.One)
			cat := region.Concatenate(a, a)
			Expect(region.BitLength(cat)).To(Equal(6))
			var bits []int
			for v := range region.IterateLogicalBits(cat) {
				bits = append(bits, v)
			}
			Expect(bits).To(Equal([]int{1, 0, 1, 1, 0, 1}))
		})
	})
})
