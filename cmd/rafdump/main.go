// rafdump decodes typed values from a binary file at a chosen offset.
//
// Usage:
//
//	rafdump [options] <file>
//
// Options:
//
//	-be           Decode big-endian.
//	-le           Decode little-endian (default).
//	-z            Treat the input as a zlib-compressed block.
//	-s <offset>   Byte offset to seek to before decoding (default 0).
//	-t <type>     Value type: u8 i8 u16 i16 u32 i32 u64 i64 f32 f64 str cstr bytes (default u8).
//	-w <len>      Length in bytes for str and bytes (default 16).
//	-n <count>    Number of consecutive values to decode (default 1).
//	-h, --help    Show this help message.
//	--version     Show version information.
//
// Exit codes:
//
//	0: Success
//	1: Decode failure
//	2: Usage or I/O error
package main

import (
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/saugatasil/OpenVehicleDiag/raf"
)

const version = "1.0.0"

func main() {
	order := binary.ByteOrder(binary.LittleEndian)
	compressed := false
	offset := 0
	typ := "u8"
	width := 16
	count := 1
	file := ""

	// Parse command line arguments
	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-be":
			order = binary.BigEndian
		case "-le":
			order = binary.LittleEndian
		case "-z":
			compressed = true
		case "-s", "-t", "-w", "-n":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "Option %s requires a value\n", arg)
				printUsage()
				os.Exit(2)
			}
			i++
			val := args[i]
			var err error
			switch arg {
			case "-s":
				offset, err = strconv.Atoi(val)
			case "-t":
				typ = val
			case "-w":
				width, err = strconv.Atoi(val)
			case "-n":
				count, err = strconv.Atoi(val)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "Invalid value for %s: %s\n", arg, val)
				os.Exit(2)
			}
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		case "--version":
			fmt.Printf("rafdump version %s\n", version)
			fmt.Println("Part of OpenVehicleDiag - vehicle diagnostics toolkit")
			fmt.Println("https://github.com/saugatasil/OpenVehicleDiag")
			os.Exit(0)
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", arg)
				printUsage()
				os.Exit(2)
			}
			if file != "" {
				fmt.Fprintln(os.Stderr, "Error: Multiple input files specified")
				printUsage()
				os.Exit(2)
			}
			file = arg
		}
	}

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		printUsage()
		os.Exit(2)
	}

	r, err := openFile(file, compressed, order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: error: %v\n", file, err)
		os.Exit(2)
	}

	r.Seek(offset)
	for i := 0; i < count; i++ {
		pos := r.Pos()
		s, err := decodeOne(r, typ, width)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: offset 0x%08X: %v\n", file, pos, err)
			os.Exit(1)
		}
		fmt.Printf("%08X  %s\n", pos, s)
	}
}

func openFile(path string, compressed bool, order binary.ByteOrder) (*raf.Raf, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if compressed {
		return raf.FromZlibReader(f, order)
	}
	return raf.FromReader(f, order)
}

func decodeOne(r *raf.Raf, typ string, width int) (string, error) {
	switch typ {
	case "u8":
		v, err := r.ReadUint8()
		return fmt.Sprintf("%d", v), err
	case "i8":
		v, err := r.ReadInt8()
		return fmt.Sprintf("%d", v), err
	case "u16":
		v, err := r.ReadUint16()
		return fmt.Sprintf("%d", v), err
	case "i16":
		v, err := r.ReadInt16()
		return fmt.Sprintf("%d", v), err
	case "u32":
		v, err := r.ReadUint32()
		return fmt.Sprintf("%d", v), err
	case "i32":
		v, err := r.ReadInt32()
		return fmt.Sprintf("%d", v), err
	case "u64":
		v, err := r.ReadUint64()
		return fmt.Sprintf("%d", v), err
	case "i64":
		v, err := r.ReadInt64()
		return fmt.Sprintf("%d", v), err
	case "f32":
		v, err := r.ReadFloat32()
		return fmt.Sprintf("%g", v), err
	case "f64":
		v, err := r.ReadFloat64()
		return fmt.Sprintf("%g", v), err
	case "str":
		s, err := r.ReadString(width)
		return fmt.Sprintf("%q", s), err
	case "cstr":
		s, err := r.ReadCString()
		return fmt.Sprintf("%q", s), err
	case "bytes":
		b, err := r.ReadBytes(width)
		return fmt.Sprintf("% X", b), err
	default:
		return "", fmt.Errorf("unknown type %q", typ)
	}
}

func printUsage() {
	fmt.Println("rafdump - decode typed values from a binary file")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  rafdump [options] <file>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -be           Decode big-endian")
	fmt.Println("  -le           Decode little-endian (default)")
	fmt.Println("  -z            Treat the input as a zlib-compressed block")
	fmt.Println("  -s <offset>   Byte offset to seek to before decoding (default 0)")
	fmt.Println("  -t <type>     Value type: u8 i8 u16 i16 u32 i32 u64 i64 f32 f64 str cstr bytes (default u8)")
	fmt.Println("  -w <len>      Length in bytes for str and bytes (default 16)")
	fmt.Println("  -n <count>    Number of consecutive values to decode (default 1)")
	fmt.Println("  -h, --help    Show this help message")
	fmt.Println("  --version     Show version information")
	fmt.Println()
	fmt.Println("Exit codes:")
	fmt.Println("  0: Success")
	fmt.Println("  1: Decode failure")
	fmt.Println("  2: Usage or I/O error")
}
