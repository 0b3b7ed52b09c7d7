package region_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pebaz/tidbytes/region"
)

var _ = Describe("Read/write operations", func() {
	Describe("GetBits", func() {
		It("extracts a half-open range in identity order", func() {
			r := fromByteList(0x12, 0x34)
			got, err := region.GetBits(r, 4, 12)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.BitLength(got)).To(Equal(8))
			Expect(toByteList(got)).To(Equal([]byte{0x23}))
		})

		It("reports ErrBounds when stop exceeds bit length", func() {
			r := fromByteList(0x12)
			_, err := region.GetBits(r, 0, 9)
			Expect(err).To(MatchError(region.ErrBounds))
		})

		It("reports ErrBounds when start > stop", func() {
			r := fromByteList(0x12)
			_, err := region.GetBits(r, 5, 2)
			Expect(err).To(MatchError(region.ErrBounds))
		})

		It("allows start == stop, returning an empty region", func() {
			r := fromByteList(0x12)
			got, err := region.GetBits(r, 3, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(region.BitLength(got)).To(Equal(0))
		})
	})

	Describe("GetByte", func() {
		It("returns ErrByteAlignment for a partial-byte read", func() {
			r := mustBitList(region.One, region.Zero, region.One)
			_, err := region.GetByte(r, 0)
			Expect(err).To(MatchError(region.ErrByteAlignment))
		})

		It("reads whole bytes when the length permits", func() {
			r := fromByteList(0x12, 0x34)
			got, err := region.GetByte(r, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(toByteList(got)).To(Equal([]byte{0x34}))
		})
	})

	Describe("GetBytes", func() {
		It("returns a region spanning whole cells", func() {
			r := fromByteList(0x12, 0x34, 0x56)
			got, err := region.GetBytes(r, 1, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(toByteList(got)).To(Equal([]byte{0x34, 0x56}))
		})
	})

	Describe("Get/Set inversion (spec.md §8)", func() {
		It("GetBits(SetBits(d, off, s), off, off+len(s)) == s", func() {
			d := fromByteList(0x00, 0x00)
			s := mustBitList(region.One, region.Zero, region.One)
			updated, err := region.SetBits(d, 4, s)
			Expect(err).NotTo(HaveOccurred())
			readBack, err := region.GetBits(updated, 4, 7)
			Expect(err).NotTo(HaveOccurred())
			Expect(cellsEqual(readBack, s)).To(BeTrue())
		})

		It("leaves bits outside the overwritten range untouched", func() {
			d := fromByteList(0xFF, 0xFF)
			s := mustBitList(region.Zero, region.Zero, region.Zero)
			updated, err := region.SetBits(d, 0, s)
			Expect(err).NotTo(HaveOccurred())
			tail, err := region.GetBits(updated, 3, 16)
			Expect(err).NotTo(HaveOccurred())
			for v := range region.IterateLogicalBits(tail) {
				Expect(v).To(Equal(1))
			}
		})

		It("reports ErrBounds when the write would extend the destination", func() {
			d := fromByteList(0x00)
			s := mustBitList(region.One, region.One)
			_, err := region.SetBits(d, 7, s)
			Expect(err).To(MatchError(region.ErrBounds))
		})
	})

	Describe("SetByte / SetBytes", func() {
		It("SetByte requires an exactly-8-bit source", func() {
			d := fromByteList(0x00, 0x00)
			s := mustBitList(region.One, region.Zero, region.One)
			_, err := region.SetByte(d, 0, s)
			Expect(err).To(MatchError(region.ErrByteAlignment))
		})

		It("SetByte overwrites the addressed cell", func() {
			d := fromByteList(0x00, 0x00)
			s := fromByteList(0xAB)
			updated, err := region.SetByte(d, 1, s)
			Expect(err).NotTo(HaveOccurred())
			Expect(toByteList(updated)).To(Equal([]byte{0x00, 0xAB}))
		})

		It("SetBytes requires a whole-byte-length source", func() {
			d := fromByteList(0x00, 0x00)
			s := mustBitList(region.One, region.Zero, region.One)
			_, err := region.SetBytes(d, 0, s)
			Expect(err).To(MatchError(region.ErrByteAlignment))
		})
	})
})
