package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/pebaz/tidbytes/region"
)

// FromASCII builds an identity-ordered Region from the code-unit bytes
// of s, requiring every rune to be 7-bit ASCII.
func FromASCII(s string) (region.Region, error) {
	for i, r := range s {
		if r > 0x7F {
			return region.Region{}, fmt.Errorf("%w: from_ascii: rune %q at byte %d is not ASCII", region.ErrInvalidMemoryRegion, r, i)
		}
	}
	return FromBytes([]byte(s)), nil
}

// FromUTF8 builds an identity-ordered Region from the UTF-8 code-unit
// bytes of s.
func FromUTF8(s string) region.Region {
	return FromBytes([]byte(s))
}

// IntoASCII is the inverse of FromASCII.
func IntoASCII(r region.Region) (string, error) {
	data, err := IntoBytes(r)
	if err != nil {
		return "", err
	}
	for i, b := range data {
		if b > 0x7F {
			return "", fmt.Errorf("%w: into_ascii: byte %d (0x%X) is not ASCII", region.ErrInvalidMemoryRegion, i, b)
		}
	}
	return string(data), nil
}

// IntoUTF8 is the inverse of FromUTF8.
func IntoUTF8(r region.Region) (string, error) {
	data, err := IntoBytes(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: into_utf8: not valid UTF-8", region.ErrInvalidMemoryRegion)
	}
	return string(data), nil
}
