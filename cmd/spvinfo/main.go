// Command spvinfo validates SPIR-V binaries and prints their header fields.
//
// Usage:
//
//	spvinfo [-q] file.spv [file.spv ...]
//
// Each file is checked for word alignment and the SPIR-V magic number.
// Valid files get a one-line summary of the module header; invalid files
// are reported on stderr and the exit status is 1.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gogpu/wgputil"
)

func main() {
	quiet := flag.Bool("q", false, "suppress per-file output, only set the exit status")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: spvinfo [-q] file.spv [file.spv ...]")
		os.Exit(2)
	}

	status := 0
	for _, path := range flag.Args() {
		if err := report(path, *quiet); err != nil {
			fmt.Fprintf(os.Stderr, "spvinfo: %s: %v\n", path, err)
			status = 1
		}
	}
	os.Exit(status)
}

func report(path string, quiet bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	source, err := wgputil.MakeSpirV(data)
	if err != nil {
		return err
	}
	header, err := source.SpirVHeader()
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("%s: SPIR-V %d.%d, generator 0x%08X, bound %d, %d words\n",
			path, header.Major, header.Minor, header.Generator, header.Bound, len(source.SPIRV))
	}
	return nil
}
