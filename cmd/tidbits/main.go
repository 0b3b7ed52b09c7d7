// Command tidbits is a small CLI front end for the Tidbytes bit
// algebra. It loads a raw file into a region.Region through package
// codec and lets you inspect or slice it by bit range — the same
// "load flat bytes, then address sub-ranges" shape as loader.Load
// feeding emu.Memory in the teacher ARM64 emulator, but now over the
// bit-addressed algebra instead of a byte-addressed one.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pebaz/tidbytes/codec"
	"github.com/pebaz/tidbytes/region"
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	var err error
	switch flag.Arg(0) {
	case "decode":
		err = runDecode(flag.Args()[1:])
	case "fields":
		err = runFields(flag.Args()[1:])
	case "convert":
		err = runConvert(flag.Args()[1:])
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "tidbits: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: tidbits <decode|fields|convert> [options]\n")
	fmt.Fprintf(os.Stderr, "  decode -file <path>\n")
	fmt.Fprintf(os.Stderr, "  fields -file <path> -ranges 0:8,8:16\n")
	fmt.Fprintf(os.Stderr, "  convert -hex <bytes> -as u32be|u32le|i32be|i32le\n")
}

// runDecode loads a file and reports its bit/byte length plus a hex
// dump of the identity-ordered region it produces.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	file := fs.String("file", "", "path to the file to load")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("decode: -file is required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	r := codec.FromBytes(data)
	fmt.Printf("bit_length=%d byte_length=%d\n", region.BitLength(r), region.ByteLength(r))
	bytes, _ := codec.IntoBytes(r)
	fmt.Println(hex.EncodeToString(bytes))
	return nil
}

// runFields generalizes insts.Decoder's shift-and-mask bit-field
// extraction idiom: instead of "(word >> shift) & mask", each field is
// a start:stop bit range sliced out with region.GetBits.
func runFields(args []string) error {
	fs := flag.NewFlagSet("fields", flag.ExitOnError)
	file := fs.String("file", "", "path to the file to load")
	ranges := fs.String("ranges", "", "comma-separated start:stop bit ranges, e.g. 0:8,8:16")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" || *ranges == "" {
		return fmt.Errorf("fields: -file and -ranges are required")
	}
	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("fields: %w", err)
	}
	r := codec.FromBytes(data)

	for _, spec := range strings.Split(*ranges, ",") {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 {
			return fmt.Errorf("fields: invalid range %q, want start:stop", spec)
		}
		start, err := strconv.Atoi(parts[0])
		if err != nil {
			return fmt.Errorf("fields: invalid range %q: %w", spec, err)
		}
		stop, err := strconv.Atoi(parts[1])
		if err != nil {
			return fmt.Errorf("fields: invalid range %q: %w", spec, err)
		}
		field, err := region.GetBits(r, start, stop)
		if err != nil {
			return fmt.Errorf("fields: range %q: %w", spec, err)
		}
		value := codec.IntoNumericBigInteger(field, false)
		fmt.Printf("[%d:%d) bits=%v value=%s\n", start, stop, codec.IntoBitList(field), value.String())
	}
	return nil
}

// runConvert demonstrates the numeric codec layer end to end: parse a
// hex byte string, load it as a Region, and reinterpret it as a fixed
// width integer under the requested byte order.
func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	hexStr := fs.String("hex", "", "hex-encoded bytes, e.g. DEADBEEF")
	as := fs.String("as", "u32be", "target numeric type: u32be|u32le|i32be|i32le")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.TrimSpace(*hexStr))
	if err != nil {
		return fmt.Errorf("convert: invalid -hex: %w", err)
	}
	r := codec.FromBytes(data)

	var byteOrder codec.ByteOrder
	var signed bool
	switch *as {
	case "u32be":
		byteOrder, signed = codec.ByteL2R, false
	case "u32le":
		byteOrder, signed = codec.ByteR2L, false
	case "i32be":
		byteOrder, signed = codec.ByteL2R, true
	case "i32le":
		byteOrder, signed = codec.ByteR2L, true
	default:
		return fmt.Errorf("convert: unknown -as %q", *as)
	}

	if signed {
		v, err := codec.IntoNumericI32(r, byteOrder)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
		fmt.Println(v)
		return nil
	}
	v, err := codec.IntoNumericU32(r, byteOrder)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	fmt.Println(v)
	return nil
}
