// Command conform runs a conformance-suite JSON file (spec §6) against
// the region/codec packages and reports pass/fail counts, following
// cmd/spec-check's "load external data, report pass/fail, exit nonzero
// on failure" shape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pebaz/tidbytes/conformance"
)

func main() {
	path := flag.String("suite", "testdata/conformance.json", "path to a conformance suite JSON file")
	verbose := flag.Bool("v", false, "print every test case, not just failures")
	flag.Parse()

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conform: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	suite, err := conformance.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conform: %v\n", err)
		os.Exit(1)
	}

	results := suite.Run()
	passed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(os.Stderr, "ERROR %s: %v\n", r.Tag, r.Err)
		case !r.Pass:
			fmt.Fprintf(os.Stderr, "FAIL  %s\n", r.Tag)
		default:
			passed++
			if *verbose {
				fmt.Printf("PASS  %s\n", r.Tag)
			}
		}
	}

	fmt.Printf("%d/%d passed (suite %s)\n", passed, len(results), suite.Version)
	if passed != len(results) {
		os.Exit(1)
	}
}
