// Package main provides a short pointer to the Tidbytes CLIs.
// Tidbytes is a bit-addressed memory algebra: immutable regions of
// bits with pure transform, read/write, and codec operations.
//
// For the full CLIs, use: go run ./cmd/tidbits  or  go run ./cmd/conform
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Tidbytes - bit-addressed memory algebra")
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/tidbits decode  -file <path>")
	fmt.Println("  go run ./cmd/tidbits fields  -file <path> -ranges 0:8,8:16")
	fmt.Println("  go run ./cmd/tidbits convert -hex <bytes> -as u32be|u32le|i32be|i32le")
	fmt.Println("  go run ./cmd/conform  -suite <conformance-suite.json>")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/tidbits' or 'go run ./cmd/conform' instead.")
	}
}
