package codec

import (
	"fmt"
	"math"
	"math/big"

	"github.com/pebaz/tidbytes/region"
)

// twosComplementBits returns the exact bitLength-bit two's complement
// (signed) or plain binary (unsigned) representation of v, most
// significant bit first. Reports ErrNumericRange if v does not fit.
func twosComplementBits(v *big.Int, bitLength int, signed bool) ([]int, error) {
	if bitLength < 0 {
		return nil, fmt.Errorf("%w: bit length %d is negative", ErrNumericRange, bitLength)
	}
	if bitLength == 0 {
		if v.Sign() != 0 {
			return nil, fmt.Errorf("%w: %s does not fit in 0 bits", ErrNumericRange, v.String())
		}
		return []int{}, nil
	}
	var u *big.Int
	if signed {
		half := new(big.Int).Lsh(big.NewInt(1), uint(bitLength-1))
		max := new(big.Int).Sub(half, big.NewInt(1))
		min := new(big.Int).Neg(half)
		if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
			return nil, fmt.Errorf("%w: %s does not fit in %d signed bits", ErrNumericRange, v.String(), bitLength)
		}
		if v.Sign() < 0 {
			mod := new(big.Int).Lsh(big.NewInt(1), uint(bitLength))
			u = new(big.Int).Add(v, mod)
		} else {
			u = new(big.Int).Set(v)
		}
	} else {
		if v.Sign() < 0 {
			return nil, fmt.Errorf("%w: %s is negative, cannot encode as unsigned", ErrNumericRange, v.String())
		}
		bound := new(big.Int).Lsh(big.NewInt(1), uint(bitLength))
		if v.Cmp(bound) >= 0 {
			return nil, fmt.Errorf("%w: %s does not fit in %d unsigned bits", ErrNumericRange, v.String(), bitLength)
		}
		u = new(big.Int).Set(v)
	}
	bits := make([]int, bitLength)
	for i := 0; i < bitLength; i++ {
		bits[i] = int(u.Bit(bitLength - 1 - i))
	}
	return bits, nil
}

// bitsToBigInt is the inverse of twosComplementBits: bits is MSB first.
func bitsToBigInt(bits []int, signed bool) *big.Int {
	n := len(bits)
	u := new(big.Int)
	for i, b := range bits {
		if b == 1 {
			u.SetBit(u, n-1-i, 1)
		}
	}
	if signed && n > 0 && bits[0] == 1 {
		mod := new(big.Int).Lsh(big.NewInt(1), uint(n))
		u.Sub(u, mod)
	}
	return u
}

// encodeInt builds the identity-ordered Region for v under the numeric
// orientation (R2L bit order, the given byte order), per spec §4.F/§4.G.
func encodeInt(v *big.Int, bitLength int, signed bool, byteOrder ByteOrder) (region.Region, error) {
	bits, err := twosComplementBits(v, bitLength, signed)
	if err != nil {
		return region.Region{}, err
	}
	foreign, err := FromBitList(bits, bitLength)
	if err != nil {
		return region.Region{}, err
	}
	return ToIdentity(BitR2L, byteOrder, foreign)
}

// decodeInt is the inverse of encodeInt.
func decodeInt(r region.Region, signed bool, byteOrder ByteOrder) (*big.Int, error) {
	foreign, err := FromIdentity(BitR2L, byteOrder, r)
	if err != nil {
		return nil, err
	}
	return bitsToBigInt(IntoBitList(foreign), signed), nil
}

func rangeErr(name string, v *big.Int, lo, hi int64) error {
	return fmt.Errorf("%w: into_numeric_%s: %s outside [%d, %d]", ErrNumericRange, name, v.String(), lo, hi)
}

// FromNumericU8 builds an 8-bit unsigned Region. Byte order is
// immaterial for a single byte.
func FromNumericU8(v uint8) region.Region {
	r, _ := encodeInt(new(big.Int).SetUint64(uint64(v)), 8, false, ByteL2R)
	return r
}

// IntoNumericU8 is the inverse of FromNumericU8.
func IntoNumericU8(r region.Region) (uint8, error) {
	v, err := decodeInt(r, false, ByteL2R)
	if err != nil {
		return 0, err
	}
	if v.Sign() < 0 || v.Cmp(big.NewInt(math.MaxUint8)) > 0 {
		return 0, rangeErr("u8", v, 0, math.MaxUint8)
	}
	return uint8(v.Uint64()), nil
}

// FromNumericI8 builds an 8-bit two's-complement signed Region.
func FromNumericI8(v int8) region.Region {
	r, _ := encodeInt(big.NewInt(int64(v)), 8, true, ByteL2R)
	return r
}

// IntoNumericI8 is the inverse of FromNumericI8.
func IntoNumericI8(r region.Region) (int8, error) {
	v, err := decodeInt(r, true, ByteL2R)
	if err != nil {
		return 0, err
	}
	if v.Cmp(big.NewInt(math.MinInt8)) < 0 || v.Cmp(big.NewInt(math.MaxInt8)) > 0 {
		return 0, rangeErr("i8", v, math.MinInt8, math.MaxInt8)
	}
	return int8(v.Int64()), nil
}

// FromNumericU16 builds a 16-bit unsigned Region under byteOrder.
func FromNumericU16(v uint16, byteOrder ByteOrder) (region.Region, error) {
	return encodeInt(new(big.Int).SetUint64(uint64(v)), 16, false, byteOrder)
}

// IntoNumericU16 is the inverse of FromNumericU16.
func IntoNumericU16(r region.Region, byteOrder ByteOrder) (uint16, error) {
	v, err := decodeInt(r, false, byteOrder)
	if err != nil {
		return 0, err
	}
	if v.Sign() < 0 || v.Cmp(big.NewInt(math.MaxUint16)) > 0 {
		return 0, rangeErr("u16", v, 0, math.MaxUint16)
	}
	return uint16(v.Uint64()), nil
}

// FromNumericI16 builds a 16-bit signed Region under byteOrder.
func FromNumericI16(v int16, byteOrder ByteOrder) (region.Region, error) {
	return encodeInt(big.NewInt(int64(v)), 16, true, byteOrder)
}

// IntoNumericI16 is the inverse of FromNumericI16.
func IntoNumericI16(r region.Region, byteOrder ByteOrder) (int16, error) {
	v, err := decodeInt(r, true, byteOrder)
	if err != nil {
		return 0, err
	}
	if v.Cmp(big.NewInt(math.MinInt16)) < 0 || v.Cmp(big.NewInt(math.MaxInt16)) > 0 {
		return 0, rangeErr("i16", v, math.MinInt16, math.MaxInt16)
	}
	return int16(v.Int64()), nil
}

// FromNumericU32 builds a 32-bit unsigned Region under byteOrder.
func FromNumericU32(v uint32, byteOrder ByteOrder) (region.Region, error) {
	return encodeInt(new(big.Int).SetUint64(uint64(v)), 32, false, byteOrder)
}

// IntoNumericU32 is the inverse of FromNumericU32.
func IntoNumericU32(r region.Region, byteOrder ByteOrder) (uint32, error) {
	v, err := decodeInt(r, false, byteOrder)
	if err != nil {
		return 0, err
	}
	if v.Sign() < 0 || v.Cmp(big.NewInt(math.MaxUint32)) > 0 {
		return 0, rangeErr("u32", v, 0, math.MaxUint32)
	}
	return uint32(v.Uint64()), nil
}

// FromNumericI32 builds a 32-bit signed Region under byteOrder.
func FromNumericI32(v int32, byteOrder ByteOrder) (region.Region, error) {
	return encodeInt(big.NewInt(int64(v)), 32, true, byteOrder)
}

// IntoNumericI32 is the inverse of FromNumericI32.
func IntoNumericI32(r region.Region, byteOrder ByteOrder) (int32, error) {
	v, err := decodeInt(r, true, byteOrder)
	if err != nil {
		return 0, err
	}
	if v.Cmp(big.NewInt(math.MinInt32)) < 0 || v.Cmp(big.NewInt(math.MaxInt32)) > 0 {
		return 0, rangeErr("i32", v, math.MinInt32, math.MaxInt32)
	}
	return int32(v.Int64()), nil
}

// FromNumericU64 builds a 64-bit unsigned Region under byteOrder.
func FromNumericU64(v uint64, byteOrder ByteOrder) (region.Region, error) {
	return encodeInt(new(big.Int).SetUint64(v), 64, false, byteOrder)
}

// IntoNumericU64 is the inverse of FromNumericU64.
func IntoNumericU64(r region.Region, byteOrder ByteOrder) (uint64, error) {
	v, err := decodeInt(r, false, byteOrder)
	if err != nil {
		return 0, err
	}
	max := new(big.Int).SetUint64(math.MaxUint64)
	if v.Sign() < 0 || v.Cmp(max) > 0 {
		return 0, fmt.Errorf("%w: into_numeric_u64: %s outside [0, %d]", ErrNumericRange, v.String(), uint64(math.MaxUint64))
	}
	return v.Uint64(), nil
}

// FromNumericI64 builds a 64-bit signed Region under byteOrder.
func FromNumericI64(v int64, byteOrder ByteOrder) (region.Region, error) {
	return encodeInt(big.NewInt(v), 64, true, byteOrder)
}

// IntoNumericI64 is the inverse of FromNumericI64.
func IntoNumericI64(r region.Region, byteOrder ByteOrder) (int64, error) {
	v, err := decodeInt(r, true, byteOrder)
	if err != nil {
		return 0, err
	}
	if v.Cmp(big.NewInt(math.MinInt64)) < 0 || v.Cmp(big.NewInt(math.MaxInt64)) > 0 {
		return 0, rangeErr("i64", v, math.MinInt64, math.MaxInt64)
	}
	return v.Int64(), nil
}

// FromNumericF32 builds a 32-bit IEEE-754 Region under byteOrder.
func FromNumericF32(v float32, byteOrder ByteOrder) (region.Region, error) {
	bits := math.Float32bits(v)
	return encodeInt(new(big.Int).SetUint64(uint64(bits)), 32, false, byteOrder)
}

// IntoNumericF32 is the inverse of FromNumericF32. Requires the
// Region's bit length to be exactly 32.
func IntoNumericF32(r region.Region, byteOrder ByteOrder) (float32, error) {
	if region.BitLength(r) != 32 {
		return 0, fmt.Errorf("%w: into_numeric_f32: region is %d bits, want 32", ErrNumericRange, region.BitLength(r))
	}
	v, err := decodeInt(r, false, byteOrder)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v.Uint64())), nil
}

// FromNumericF64 builds a 64-bit IEEE-754 Region under byteOrder.
func FromNumericF64(v float64, byteOrder ByteOrder) (region.Region, error) {
	bits := math.Float64bits(v)
	return encodeInt(new(big.Int).SetUint64(bits), 64, false, byteOrder)
}

// IntoNumericF64 is the inverse of FromNumericF64. Requires the
// Region's bit length to be exactly 64.
func IntoNumericF64(r region.Region, byteOrder ByteOrder) (float64, error) {
	if region.BitLength(r) != 64 {
		return 0, fmt.Errorf("%w: into_numeric_f64: region is %d bits, want 64", ErrNumericRange, region.BitLength(r))
	}
	v, err := decodeInt(r, false, byteOrder)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v.Uint64()), nil
}

// FromNumericBigInteger builds a bitLength-bit Region from v, two's
// complement if signed. Byte order is always the natural (big-endian
// like) order: arbitrary-width integers do not have a well-defined
// per-byte swap when bitLength is not a multiple of 8 (Validate in
// orientation.go rejects a byte-order swap for such lengths).
func FromNumericBigInteger(v *big.Int, bitLength int, signed bool) (region.Region, error) {
	return encodeInt(v, bitLength, signed, ByteL2R)
}

// IntoNumericBigInteger interprets r as a signed (two's complement) or
// unsigned integer per the signed flag. spec §9 deliberately leaves no
// silently-chosen default for this flag.
func IntoNumericBigInteger(r region.Region, signed bool) *big.Int {
	v, _ := decodeInt(r, signed, ByteL2R) // ByteL2R is always a valid declaration
	return v
}
