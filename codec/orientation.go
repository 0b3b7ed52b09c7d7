package codec

import (
	"fmt"

	"github.com/pebaz/tidbytes/region"
)

// BitOrder declares how a foreign region's bits are numbered within
// each byte-sized cell.
type BitOrder uint8

const (
	// BitL2R is identity bit order: slot 0 is the leftmost (most
	// significant, by convention) bit of a cell.
	BitL2R BitOrder = iota
	// BitR2L is the numeric convention's bit order.
	BitR2L
)

// ByteOrder declares how a foreign region's cells are ordered.
type ByteOrder uint8

const (
	// ByteL2R is identity byte order: the first cell is the first
	// cell (e.g. big-endian multi-byte layout).
	ByteL2R ByteOrder = iota
	// ByteR2L reverses cell order (e.g. little-endian layout).
	ByteR2L
)

// Validate reports ErrOrientation if the declared (bitOrder, byteOrder)
// pair is inconsistent for a region of the given bit length. The only
// inconsistency this algebra can detect structurally is a byte-order
// swap requested against a length that is not a whole number of bytes:
// byte order has no meaning below byte granularity.
func Validate(bitOrder BitOrder, byteOrder ByteOrder, bitLength int) error {
	if byteOrder == ByteR2L && bitLength%8 != 0 {
		return fmt.Errorf("%w: byte order swap requested for a %d-bit region (not a whole number of bytes)", ErrOrientation, bitLength)
	}
	return nil
}

// adapt applies the orientation adapter's table (spec §4.G) to r. Each
// of the four cells is its own inverse, so the same table serves both
// identity<->foreign directions.
func adapt(bitOrder BitOrder, byteOrder ByteOrder, r region.Region) region.Region {
	switch {
	case bitOrder == BitL2R && byteOrder == ByteL2R:
		return region.Identity(r)
	case bitOrder == BitR2L && byteOrder == ByteL2R:
		return region.ReverseBits(r)
	case bitOrder == BitL2R && byteOrder == ByteR2L:
		return region.ReverseBytes(r)
	default: // BitR2L, ByteR2L
		return region.Reverse(r)
	}
}

// ToIdentity takes r as a foreign region declared under (bitOrder,
// byteOrder) and returns its identity-ordered equivalent: component G
// of the core algebra, "Orientation adapter" (spec §4.G). This is a
// convenience composition of the transform operations in package
// region, exposed for callers working at memory-universe boundaries —
// e.g. a region built by hand from a wire capture whose origin bit/byte
// order is already known.
func ToIdentity(bitOrder BitOrder, byteOrder ByteOrder, r region.Region) (region.Region, error) {
	if err := Validate(bitOrder, byteOrder, region.BitLength(r)); err != nil {
		return region.Region{}, err
	}
	return adapt(bitOrder, byteOrder, r), nil
}

// FromIdentity is the reverse of ToIdentity: given an identity-ordered
// Region, returns its representation under the foreign (bitOrder,
// byteOrder). The table is symmetric (spec §4.G: "the reverse direction
// uses the same table"), so this is ToIdentity by another name.
func FromIdentity(bitOrder BitOrder, byteOrder ByteOrder, r region.Region) (region.Region, error) {
	return ToIdentity(bitOrder, byteOrder, r)
}
