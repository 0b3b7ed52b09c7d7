// Package codec bridges host-language primitives (integers, byte
// arrays, bit arrays, text) and region.Region under one of two explicit
// orientations: numeric (right-to-left bit order) or identity
// (left-to-right bit order). Every exported function is named
// from_<src> or into_<src> in spirit (FromX / IntoX in Go) — never
// Op-prefixed, since that prefix is reserved for the pure Region->Region
// algebra in package region.
package codec

import "errors"

// ErrNumericRange means a numeric codec cannot represent the value in
// the requested bit length: overflow, underflow, or a negative value
// offered to an unsigned encode.
var ErrNumericRange = errors.New("tidbytes: numeric range error")

// ErrOrientation means a codec (or the orientation adapter) was
// invoked with an inconsistent bit/byte-order declaration — e.g. a
// byte-swapped byte order requested against a region whose bit length
// is not a multiple of 8.
var ErrOrientation = errors.New("tidbytes: orientation error")
