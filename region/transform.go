package region

// Identity returns a structurally independent, equal-valued copy of r.
// It is the algebra's unit: Identity(r) == r for every valid r.
func Identity(r Region) Region {
	return Region{cells: r.Cells()}
}

// ReverseBits reverses the 8 bit slots within each cell, preserving
// cell order. This is a per-byte reversal: bits never cross cell
// boundaries. If the final cell holds P < 8 populated slots, only
// those P slots participate — they are reversed among themselves and
// remain left-packed in the final cell; padding stays in the same
// suffix positions (see spec §9's stated resolution of this ambiguity).
func ReverseBits(r Region) Region {
	cells := r.Cells()
	for ci := range cells {
		populated := 8
		for j, s := range cells[ci] {
			if s == None {
				populated = j
				break
			}
		}
		prefix := make([]Slot, populated)
		copy(prefix, cells[ci][:populated])
		for j := 0; j < populated; j++ {
			cells[ci][j] = prefix[populated-1-j]
		}
	}
	return Region{cells: cells}
}

// ReverseBytes reverses the order of cells at byte granularity. When L
// is not a multiple of 8, the logical bit sequence is split into
// groups of 8 (the last group possibly short), the group order is
// reversed, and the result is re-packed left-aligned — so the original
// partial final cell becomes the new first cell's content, and padding
// still ends up solely as the suffix of the (new) final cell. Applying
// ReverseBytes twice returns r only when L is a multiple of 8; for other
// lengths the re-packed groups no longer line up with the original ones.
func ReverseBytes(r Region) Region {
	b := bits(r)
	n := len(b)
	groupCount := (n + 7) / 8
	out := make([]Slot, 0, n)
	for g := groupCount - 1; g >= 0; g-- {
		start := g * 8
		end := start + 8
		if end > n {
			end = n
		}
		out = append(out, b[start:end]...)
	}
	return fromBits(out)
}

// Reverse reverses the full logical bit sequence: bit i becomes bit
// L-1-i. It equals the composition of ReverseBits and ReverseBytes
// only when L is a multiple of 8; for non-byte-multiple lengths it is
// defined directly on the logical sequence, per spec §4.C.
func Reverse(r Region) Region {
	b := bits(r)
	n := len(b)
	out := make([]Slot, n)
	for i, s := range b {
		out[n-1-i] = s
	}
	return fromBits(out)
}
