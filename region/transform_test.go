package region_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/pebaz/tidbytes/region"
)

var _ = Describe("Transform operations", func() {
	Describe("length homomorphism (spec.md §8)", func() {
		It("preserves bit length for all four transforms", func() {
			r := mustBitList(region.One, region.Zero, region.One, region.One, region.Zero, region.Zero, region.One, region.Zero, region.One)
			l := region.BitLength(r)
			Expect(region.BitLength(region.Identity(r))).To(Equal(l))
			Expect(region.BitLength(region.Reverse(r))).To(Equal(l))
			Expect(region.BitLength(region.ReverseBits(r))).To(Equal(l))
			Expect(region.BitLength(region.ReverseBytes(r))).To(Equal(l))
		})
	})

	Describe("Identity is a unit", func() {
		It("returns an equal-valued, independent copy", func() {
			r := mustBitList(region.One, region.Zero, region.One)
			id := region.Identity(r)
			Expect(cellsEqual(r, id)).To(BeTrue())
		})
	})

	Describe("Reverse involution", func() {
		It("Reverse(Reverse(r)) == r", func() {
			r := mustBitList(region.One, region.Zero, region.One, region.One, region.Zero, region.Zero, region.One, region.Zero, region.One)
			Expect(cellsEqual(region.Reverse(region.Reverse(r)), r)).To(BeTrue())
		})

		It("ReverseBits(ReverseBits(r)) == r", func() {
			r := mustBitList(region.One, region.Zero, region.One)
			Expect(cellsEqual(region.ReverseBits(region.ReverseBits(r)), r)).To(BeTrue())
		})

		It("ReverseBytes(ReverseBytes(r)) == r", func() {
			r := mustBitList(region.One, region.Zero, region.One, region.One, region.Zero, region.Zero, region.One, region.Zero, region.One)
			Expect(cellsEqual(region.ReverseBytes(region.ReverseBytes(r)), r)).To(BeTrue())
		})
	})

	Describe("ReverseBits on a partial final cell", func() {
		It("reverses only within the populated prefix, leaving padding as suffix (spec.md §9)", func() {
			r := mustBitList(region.One, region.Zero, region.One)
			got := region.ReverseBits(r)
			Expect(region.BitLength(got)).To(Equal(3))
			var bits []int
			for v := range region.IterateLogicalBits(got) {
				bits = append(bits, v)
			}
			Expect(bits).To(Equal([]int{1, 0, 1}))
		})
	})

	Describe("scenario #6 from spec.md §8", func() {
		It("reverses byte order of a 2-byte region: [0x12, 0x34] -> [0x34, 0x12]", func() {
			r := fromByteList(0x12, 0x34)
			got := region.ReverseBytes(r)
			Expect(toByteList(got)).To(Equal([]byte{0x34, 0x12}))
		})

		It("bit-reverses each cell of the byte-reversed result to 0x2C, 0x48", func() {
			r := fromByteList(0x12, 0x34)
			got := region.ReverseBits(region.ReverseBytes(r))
			Expect(toByteList(got)).To(Equal([]byte{0x2C, 0x48}))
		})

		It("Reverse equals ReverseBits(ReverseBytes(r)) when L is a byte multiple", func() {
			r := fromByteList(0x12, 0x34)
			Expect(cellsEqual(region.Reverse(r), region.ReverseBits(region.ReverseBytes(r)))).To(BeTrue())
		})
	})

	Describe("byte-multiple decomposition (spec.md §8)", func() {
		It("holds for an 8-bit region", func() {
			r := fromByteList(0xA5)
			Expect(cellsEqual(region.Reverse(r), region.ReverseBits(region.ReverseBytes(r)))).To(BeTrue())
		})
	})
})

// fromByteList and toByteList are small region_test-local helpers built
// directly on the cell representation so transform tests don't need to
// import package codec (kept decoupled: region must be independently
// testable without the codec layer depending on it).
func fromByteList(bs ...byte) region.Region {
	var slots []region.Slot
	for _, b := range bs {
		for bit := 7; bit >= 0; bit-- {
			if b&(1<<uint(bit)) != 0 {
				slots = append(slots, region.One)
			} else {
				slots = append(slots, region.Zero)
			}
		}
	}
	return mustBitList(slots...)
}

func toByteList(r region.Region) []byte {
	n := region.ByteLength(r)
	out := make([]byte, n)
	i := 0
	for v := range region.IterateLogicalBits(r) {
		out[i/8] = out[i/8]<<1 | byte(v)
		i++
	}
	// pad the last byte's low bits left-aligned across the whole byte
	// when bit_length is not a multiple of 8.
	if rem := region.BitLength(r) % 8; rem != 0 {
		out[n-1] <<= uint(8 - rem)
	}
	return out
}
