// Package region implements the bit-addressed memory algebra at the
// heart of Tidbytes: a single opaque Region value type together with a
// closed set of pure operations that transform Regions into Regions.
//
// A Region is always presented to this algebra in identity order (the
// leftmost bit of the leftmost cell is logical bit 0). Orientation —
// numeric (right-to-left bit order) vs. identity (left-to-right) — is
// not a property a Region carries; it is a property of whichever codec
// produced or will consume it. See package codec for the boundary
// between host primitives and Region.
package region

import "fmt"

// Slot is the state of one bit position within a Cell.
type Slot int8

const (
	// Zero is a populated bit with value 0.
	Zero Slot = 0
	// One is a populated bit with value 1.
	One Slot = 1
	// None is an unpopulated (padding) slot. Only valid as a
	// contiguous suffix of the final Cell of a Region.
	None Slot = -1
)

// Cell is one byte-sized unit of Region storage: eight slots, each
// either a populated bit or padding.
type Cell [8]Slot

// Region is the opaque bit-addressed memory value manipulated by the
// algebra. Its zero value is the empty (zero-length) Region. Regions
// are logically immutable: every operation in this package returns a
// freshly allocated Region rather than mutating its inputs.
type Region struct {
	cells []Cell
}

// New constructs a Region from a raw cell sequence, returning
// ErrInvalidMemoryRegion if the sequence fails Validate.
func New(cells []Cell) (Region, error) {
	if err := validate(cells); err != nil {
		return Region{}, err
	}
	out := make([]Cell, len(cells))
	copy(out, cells)
	return Region{cells: out}, nil
}

// Empty returns the zero-length Region.
func Empty() Region {
	return Region{}
}

// Cells returns a defensive copy of r's underlying cell sequence, in
// identity order. Intended for codecs and diagnostics; algebra
// operations should prefer the higher-level accessors in this package.
func (r Region) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// Validate reports whether r currently satisfies every Region
// invariant. Operations in this package always return valid Regions;
// Validate exists as the boundary check described in spec §4.A and is
// mainly useful when a Region is built by hand (e.g. in tests or by a
// codec) rather than by another operation's output.
func (r Region) Validate() error {
	return validate(r.cells)
}

// validate checks the invariants from the data model:
//   - every cell has exactly 8 slots (guaranteed by the Cell array type)
//   - every slot is Zero, One, or None
//   - None forms a contiguous suffix of the final cell only
//   - a zero-length Region has zero cells, never one all-None cell
func validate(cells []Cell) error {
	n := len(cells)
	for ci, cell := range cells {
		seenNone := false
		populated := 0
		for si, s := range cell {
			switch s {
			case Zero, One:
				if seenNone {
					return fmt.Errorf("%w: cell %d slot %d: populated slot follows padding", ErrInvalidMemoryRegion, ci, si)
				}
				populated++
			case None:
				if ci != n-1 {
					return fmt.Errorf("%w: cell %d slot %d: padding in non-final cell", ErrInvalidMemoryRegion, ci, si)
				}
				seenNone = true
			default:
				return fmt.Errorf("%w: cell %d slot %d: invalid slot value %d", ErrInvalidMemoryRegion, ci, si, s)
			}
		}
		if ci == n-1 && populated == 0 {
			return fmt.Errorf("%w: final cell is entirely padding; a zero-length region must have zero cells", ErrInvalidMemoryRegion)
		}
	}
	return nil
}
