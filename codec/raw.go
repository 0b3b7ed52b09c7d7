package codec

import (
	"fmt"

	"github.com/pebaz/tidbytes/region"
)

// FromBitList builds an identity-ordered Region from a list of 0/1
// values, exactly bitLength of them.
func FromBitList(bits []int, bitLength int) (region.Region, error) {
	if len(bits) != bitLength {
		return region.Region{}, fmt.Errorf("%w: from_bit_list got %d bits, wanted %d", region.ErrBounds, len(bits), bitLength)
	}
	cells := make([]region.Cell, (bitLength+7)/8)
	for i, b := range bits {
		if b != 0 && b != 1 {
			return region.Region{}, fmt.Errorf("%w: from_bit_list: bit %d is %d, not 0 or 1", region.ErrInvalidMemoryRegion, i, b)
		}
		cell, slot := i/8, i%8
		if b == 1 {
			cells[cell][slot] = region.One
		} else {
			cells[cell][slot] = region.Zero
		}
	}
	for i := bitLength; i < len(cells)*8; i++ {
		cells[i/8][i%8] = region.None
	}
	return region.New(cells)
}

// FromByteList builds an identity-ordered Region from a list of whole
// byte values (0..255), truncated to bitLength logical bits (bitLength
// must be <= 8*len(bytes)).
func FromByteList(bytes []int, bitLength int) (region.Region, error) {
	if bitLength > len(bytes)*8 {
		return region.Region{}, fmt.Errorf("%w: from_byte_list: bit_length %d exceeds %d bytes", region.ErrBounds, bitLength, len(bytes))
	}
	bits := make([]int, len(bytes)*8)
	for bi, v := range bytes {
		if v < 0 || v > 255 {
			return region.Region{}, fmt.Errorf("%w: from_byte_list: byte %d value %d out of range", region.ErrInvalidMemoryRegion, bi, v)
		}
		for j := 0; j < 8; j++ {
			bits[bi*8+j] = (v >> uint(7-j)) & 1
		}
	}
	return FromBitList(bits[:bitLength], bitLength)
}

// FromBytes loads a host byte slice left-to-right; it is already
// identity-ordered at the byte axis, and the bit axis within each byte
// is assumed left-to-right (bit 7 first), per spec §4.F's raw/identity
// family.
func FromBytes(data []byte) region.Region {
	cells := make([]region.Cell, len(data))
	for i, b := range data {
		for j := 0; j < 8; j++ {
			if (b>>uint(7-j))&1 == 1 {
				cells[i][j] = region.One
			} else {
				cells[i][j] = region.Zero
			}
		}
	}
	r, _ := region.New(cells) // a fully-populated cell slice is always valid
	return r
}

// IntoBitList is the inverse of FromBitList: the region's logical bits
// as a 0/1 slice, in identity order.
func IntoBitList(r region.Region) []int {
	l := region.BitLength(r)
	out := make([]int, 0, l)
	for v := range region.IterateLogicalBits(r) {
		out = append(out, v)
	}
	return out
}

// IntoByteList is the inverse of FromByteList: whole-byte values
// (0..255), left-packing a short final byte with zero bits (not
// padding — the returned values are ordinary integers).
func IntoByteList(r region.Region) []int {
	n := region.ByteLength(r)
	out := make([]int, n)
	i := 0
	for v := range region.IterateLogicalBits(r) {
		out[i/8] = out[i/8]<<1 | v
		i++
	}
	if rem := region.BitLength(r) % 8; rem != 0 {
		out[n-1] <<= uint(8 - rem)
	}
	return out
}

// IntoBytes is the inverse of FromBytes: requires a byte-multiple bit
// length, else reports region.ErrByteAlignment.
func IntoBytes(r region.Region) ([]byte, error) {
	if region.BitLength(r)%8 != 0 {
		return nil, fmt.Errorf("%w: into_bytes: %d bits is not a whole number of bytes", region.ErrByteAlignment, region.BitLength(r))
	}
	list := IntoByteList(r)
	out := make([]byte, len(list))
	for i, v := range list {
		out[i] = byte(v)
	}
	return out, nil
}
