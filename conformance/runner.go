package conformance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pebaz/tidbytes/region"
)

// Result is the outcome of running one TestCase.
type Result struct {
	Tag  string
	Pass bool
	Err  error
}

// Load parses a JSON test-suite document (spec §6) from r.
func Load(r io.Reader) (Suite, error) {
	var s Suite
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Suite{}, fmt.Errorf("conformance: decode suite: %w", err)
	}
	return s, nil
}

// Run dispatches every test case in the suite and reports pass/fail
// per case. A dispatch or resolution error counts as a failed case
// rather than aborting the run, so one bad case doesn't hide the rest.
func (s Suite) Run() []Result {
	results := make([]Result, len(s.Tests))
	for i, tc := range s.Tests {
		results[i] = runOne(tc)
	}
	return results
}

func runOne(tc TestCase) Result {
	in := make([]any, len(tc.In))
	for i, v := range tc.In {
		resolved, err := v.Resolve()
		if err != nil {
			return Result{Tag: tc.Tag, Err: fmt.Errorf("test %q: resolve input %d: %w", tc.Tag, i, err)}
		}
		in[i] = resolved
	}

	out, err := Dispatch(tc.Op, in)
	if err != nil {
		return Result{Tag: tc.Tag, Err: fmt.Errorf("test %q: op %s: %w", tc.Tag, tc.Op, err)}
	}
	if len(out) != len(tc.Out) {
		return Result{Tag: tc.Tag, Err: fmt.Errorf("test %q: op %s produced %d outputs, want %d", tc.Tag, tc.Op, len(out), len(tc.Out))}
	}
	for i := range out {
		eq, err := equalValue(tc.Out[i], out[i])
		if err != nil {
			return Result{Tag: tc.Tag, Err: fmt.Errorf("test %q: compare output %d: %w", tc.Tag, i, err)}
		}
		if !eq {
			return Result{Tag: tc.Tag, Pass: false}
		}
	}
	return Result{Tag: tc.Tag, Pass: true}
}

func asRegion(in []any, i int) (region.Region, error) {
	r, ok := in[i].(region.Region)
	if !ok {
		return region.Region{}, fmt.Errorf("argument %d: want Region, got %T", i, in[i])
	}
	return r, nil
}

func asInt(in []any, i int) (int, error) {
	f, ok := in[i].(float64)
	if !ok {
		return 0, fmt.Errorf("argument %d: want number, got %T", i, in[i])
	}
	return int(f), nil
}

func asSlot(in []any, i int) (region.Slot, error) {
	n, err := asInt(in, i)
	if err != nil {
		return 0, err
	}
	switch n {
	case 0:
		return region.Zero, nil
	case 1:
		return region.One, nil
	default:
		return 0, fmt.Errorf("%w: argument %d: want 0 or 1, got %d", region.ErrInvalidMemoryRegion, i, n)
	}
}

// Dispatch applies the named operation (spec §4.B-E's op_*/meta_op_*
// names) to positionally-unpacked arguments and returns its outputs,
// ready to compare against a TestCase.Out list.
func Dispatch(op string, in []any) ([]any, error) {
	switch op {
	case "op_identity":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		return []any{region.Identity(r)}, nil

	case "op_reverse_bits":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		return []any{region.ReverseBits(r)}, nil

	case "op_reverse_bytes":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		return []any{region.ReverseBytes(r)}, nil

	case "op_reverse":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		return []any{region.Reverse(r)}, nil

	case "op_get_bits":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		start, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		stop, err := asInt(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.GetBits(r, start, stop)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_get_bit":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		i, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		out, err := region.GetBit(r, i)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_get_byte":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		i, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		out, err := region.GetByte(r, i)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_get_bytes":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		i, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		j, err := asInt(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.GetBytes(r, i, j)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_set_bits":
		d, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		offset, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		s, err := asRegion(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.SetBits(d, offset, s)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_set_bit":
		d, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		i, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		v, err := asSlot(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.SetBit(d, i, v)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_set_byte":
		d, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		i, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		s, err := asRegion(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.SetByte(d, i, s)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_set_bytes":
		d, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		i, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		s, err := asRegion(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.SetBytes(d, i, s)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_truncate":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		n, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		out, err := region.Truncate(r, n)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_extend":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		n, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		fill, err := asSlot(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.Extend(r, n, fill)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_ensure_bit_length":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		n, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		fill, err := asSlot(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.EnsureBitLength(r, n, fill)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_ensure_byte_length":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		n, err := asInt(in, 1)
		if err != nil {
			return nil, err
		}
		fill, err := asSlot(in, 2)
		if err != nil {
			return nil, err
		}
		out, err := region.EnsureByteLength(r, n, fill)
		if err != nil {
			return nil, err
		}
		return []any{out}, nil

	case "op_concatenate":
		a, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		b, err := asRegion(in, 1)
		if err != nil {
			return nil, err
		}
		return []any{region.Concatenate(a, b)}, nil

	case "meta_op_bit_length":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		return []any{float64(region.BitLength(r))}, nil

	case "meta_op_byte_length":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		return []any{float64(region.ByteLength(r))}, nil

	case "meta_op_iterate_logical_bits":
		r, err := asRegion(in, 0)
		if err != nil {
			return nil, err
		}
		out := make([]any, 0, region.BitLength(r))
		for v := range region.IterateLogicalBits(r) {
			out = append(out, float64(v))
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}
