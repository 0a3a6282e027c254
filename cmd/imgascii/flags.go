// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Flags precede the positionals: <image-path> [width] [inv|invert]

package main

import (
	"flag"
	"strconv"
)

type cliArgs struct {
	ramp    string
	fit     bool
	workers int
	output  string
	json    bool
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.ramp, "ramp", "", "Ramp name: default, inverted, or a custom ramp from config")
	flag.BoolVar(&args.fit, "fit", false, "Fit the output width to the terminal")
	flag.IntVar(&args.workers, "workers", 1, "Row-rendering goroutines")
	flag.StringVar(&args.output, "o", "", "Write the rendering to a file instead of stdout")
	flag.BoolVar(&args.json, "json", false, "Emit a JSON frame instead of raw rows")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}

// parseWidth interprets the optional width argument. Anything that is not a
// positive integer falls back to def; lenient by contract, never an error.
func parseWidth(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// invertToken reports whether s is the literal ramp-inversion token. Any
// other third argument is ignored.
func invertToken(s string) bool {
	return s == "inv" || s == "invert"
}
